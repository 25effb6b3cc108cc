package forms

import (
	"reflect"
	"strings"

	"keshwala/models"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns the validator shared by every form. Errors name fields
// by their json tag. Two site rules are registered: bookable (an offered
// service) and timeslot (an offered start time).
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("bookable", oneOf(models.BookableServices))
	_ = v.RegisterValidation("timeslot", oneOf(models.BookingTimeSlots))
	return v
}

func oneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, a := range allowed {
			if s == a {
				return true
			}
		}
		return false
	}
}

// BookingInput is the booking form.
type BookingInput struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Phone       string `json:"phone" form:"phone" validate:"required,number,len=10"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	Address     string `json:"address" form:"address" validate:"required"`
	ServiceType string `json:"serviceType" form:"serviceType" validate:"required,bookable"`
	Date        string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" form:"time" validate:"required,timeslot"`
	Notes       string `json:"notes,omitempty" form:"notes"`

	// UserID is filled from the session, never from the request body.
	UserID string `json:"-" form:"-"`
}

func (in *BookingInput) Normalize() {
	trim(&in.Name, &in.Phone, &in.Email, &in.Address, &in.ServiceType, &in.Date, &in.Time, &in.Notes)
}

// Booking converts the input into the stored record.
func (in BookingInput) Booking() models.Booking {
	return models.Booking{
		UserID:      in.UserID,
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
		ServiceType: in.ServiceType,
		Date:        in.Date,
		Time:        in.Time,
		Notes:       in.Notes,
	}
}

var bookingMessages = map[string]string{
	"name.required":        "Name is required",
	"phone.required":       "Phone number is required",
	"phone.number":         "Invalid phone number",
	"phone.len":            "Invalid phone number",
	"email.required":       "Email is required",
	"email.email":          "Invalid email",
	"address.required":     "Address is required",
	"serviceType.required": "Please select a service",
	"serviceType.bookable": "Please select a service",
	"date.required":        "Date is required",
	"date.datetime":        "Invalid date",
	"time.required":        "Time is required",
	"time.timeslot":        "Please select a time",
}

// ContactInput is the contact form.
type ContactInput struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone" validate:"required"`
	Subject string `json:"subject" form:"subject" validate:"required"`
	Message string `json:"message" form:"message" validate:"required"`
}

func (in *ContactInput) Normalize() {
	trim(&in.Name, &in.Email, &in.Phone, &in.Subject, &in.Message)
}

// ContactMessage converts the input into the stored record.
func (in ContactInput) ContactMessage() models.ContactMessage {
	return models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
	}
}

var contactMessages = map[string]string{
	"name.required":    "Name is required",
	"email.required":   "Email is required",
	"email.email":      "Invalid email",
	"phone.required":   "Phone number is required",
	"subject.required": "Subject is required",
	"message.required": "Message is required",
}

// SignInInput is the sign-in form.
type SignInInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password,omitempty" form:"password" validate:"required,min=6"`

	SessionID string `json:"-" form:"-"`
}

func (in *SignInInput) Normalize() { trim(&in.Email) }

// Redact keeps the password out of anything rendered back to the visitor.
func (in *SignInInput) Redact() { in.Password = "" }

// SignUpInput is the sign-up form.
type SignUpInput struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password,omitempty" form:"password" validate:"required,min=6"`

	SessionID string `json:"-" form:"-"`
}

func (in *SignUpInput) Normalize() { trim(&in.Name, &in.Email) }

func (in *SignUpInput) Redact() { in.Password = "" }

// ResetInput is the password reset form.
type ResetInput struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

func (in *ResetInput) Normalize() { trim(&in.Email) }

var authMessages = map[string]string{
	"name.required":     "Name is required",
	"email.required":    "Email is required",
	"email.email":       "Invalid email",
	"password.required": "Password is required",
	"password.min":      "Password must be at least 6 characters",
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
