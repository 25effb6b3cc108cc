package forms

import (
	"context"
	"fmt"
	"time"

	"keshwala/models"
	"keshwala/services/auth"
	"keshwala/services/documents"
	"keshwala/services/notification"
	"keshwala/services/result"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	KindBooking = "booking"
	KindContact = "contact"
	KindSignIn  = "signin"
	KindSignUp  = "signup"
	KindReset   = "reset"
)

const (
	// SubmissionResetAfter is how long booking and contact confirmations stay up.
	SubmissionResetAfter = 5 * time.Second
	// AuthResetAfter is how long sign-in and sign-up confirmations stay up.
	AuthResetAfter = 1500 * time.Millisecond
)

// Set is every form on the site.
type Set struct {
	Booking *Form[BookingInput]
	Contact *Form[ContactInput]
	SignIn  *Form[SignInInput]
	SignUp  *Form[SignUpInput]
	Reset   *Form[ResetInput]
}

// NewSet builds the site's forms over the gateways.
func NewSet(docs documents.DocumentService, authSvc auth.AuthService, notifier notification.NotificationService, v *validator.Validate, logger *zap.Logger) *Set {
	return &Set{
		Booking: NewBookingForm(docs, notifier, v, logger),
		Contact: NewContactForm(docs, notifier, v, logger),
		SignIn:  NewSignInForm(authSvc, v, logger),
		SignUp:  NewSignUpForm(authSvc, v, logger),
		Reset:   NewResetForm(authSvc, v, logger),
	}
}

// Prune drops idle instances from every form.
func (s *Set) Prune() int {
	return s.Booking.Prune() + s.Contact.Prune() + s.SignIn.Prune() + s.SignUp.Prune() + s.Reset.Prune()
}

// StartPruning runs Prune every interval until ctx is done.
func (s *Set) StartPruning(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Prune()
			}
		}
	}()
}

// NewBookingForm stores bookings and alerts staff.
func NewBookingForm(docs documents.DocumentService, notifier notification.NotificationService, v *validator.Validate, logger *zap.Logger) *Form[BookingInput] {
	return New(Config[BookingInput]{
		Kind:           KindBooking,
		Messages:       bookingMessages,
		SuccessMessage: "Thank you for choosing Keshwala. We'll contact you shortly to confirm your appointment details.",
		FailureMessage: "Failed to submit booking. Please try again.",
		ResetAfter:     SubmissionResetAfter,
		Submit: func(ctx context.Context, in BookingInput) result.Result[string] {
			res := docs.AddBooking(ctx, in.Booking())
			if id, rerr := res.Unwrap(); rerr == nil {
				notifyAsync(notifier, logger, "New booking request",
					fmt.Sprintf("%s: %s on %s at %s", in.Name, in.ServiceType, in.Date, in.Time),
					map[string]string{"collection": models.CollectionBookings, "id": id})
			}
			return res
		},
	}, v, logger)
}

// NewContactForm stores contact messages and alerts staff.
func NewContactForm(docs documents.DocumentService, notifier notification.NotificationService, v *validator.Validate, logger *zap.Logger) *Form[ContactInput] {
	return New(Config[ContactInput]{
		Kind:           KindContact,
		Messages:       contactMessages,
		SuccessMessage: "Thank you for reaching out. We'll get back to you within 24 hours.",
		FailureMessage: "Failed to send message. Please try again.",
		ResetAfter:     SubmissionResetAfter,
		Submit: func(ctx context.Context, in ContactInput) result.Result[string] {
			res := docs.AddContactMessage(ctx, in.ContactMessage())
			if id, rerr := res.Unwrap(); rerr == nil {
				notifyAsync(notifier, logger, "New message: "+in.Subject, in.Name+" ("+in.Email+")",
					map[string]string{"collection": models.CollectionContactMessages, "id": id})
			}
			return res
		},
	}, v, logger)
}

func NewSignInForm(authSvc auth.AuthService, v *validator.Validate, logger *zap.Logger) *Form[SignInInput] {
	return New(Config[SignInInput]{
		Kind:           KindSignIn,
		Messages:       authMessages,
		SuccessMessage: "Signed in successfully!",
		FailureMessage: "Something went wrong",
		ResetAfter:     AuthResetAfter,
		Submit: func(ctx context.Context, in SignInInput) result.Result[string] {
			return result.Map(authSvc.SignIn(ctx, in.SessionID, in.Email, in.Password), displayName)
		},
	}, v, logger)
}

func NewSignUpForm(authSvc auth.AuthService, v *validator.Validate, logger *zap.Logger) *Form[SignUpInput] {
	return New(Config[SignUpInput]{
		Kind:           KindSignUp,
		Messages:       authMessages,
		SuccessMessage: "Account created. You are now signed in.",
		FailureMessage: "Something went wrong",
		ResetAfter:     AuthResetAfter,
		Submit: func(ctx context.Context, in SignUpInput) result.Result[string] {
			return result.Map(authSvc.SignUp(ctx, in.SessionID, in.Email, in.Password, in.Name), displayName)
		},
	}, v, logger)
}

// NewResetForm sends password reset mail. Its confirmation stays until dismissed.
func NewResetForm(authSvc auth.AuthService, v *validator.Validate, logger *zap.Logger) *Form[ResetInput] {
	return New(Config[ResetInput]{
		Kind:           KindReset,
		Messages:       authMessages,
		FailureMessage: "Something went wrong",
		Submit: func(ctx context.Context, in ResetInput) result.Result[string] {
			return authSvc.ResetPassword(ctx, in.Email)
		},
	}, v, logger)
}

func displayName(u *models.User) string {
	if u == nil {
		return ""
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}

// notifyAsync alerts staff without holding up the visitor's response.
func notifyAsync(notifier notification.NotificationService, logger *zap.Logger, title, body string, data map[string]string) {
	if notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := notifier.NotifyStaff(ctx, title, body, data); err != nil {
			logger.Warn("staff notification failed", zap.String("title", title), zap.Error(err))
		}
	}()
}
