package handlers

import (
	"net/http"

	"keshwala/middleware"
	"keshwala/services/auth"
	"keshwala/services/forms"
	"keshwala/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FormHandler accepts the site's form posts. Each post carries the instance
// ID it was rendered with in formId, as a form field or query parameter.
type FormHandler struct {
	forms  *forms.Set
	auth   auth.AuthService
	page   *PageHandler
	logger *zap.Logger
}

// NewFormHandler creates a new FormHandler instance.
func NewFormHandler(set *forms.Set, authSvc auth.AuthService, page *PageHandler, logger *zap.Logger) *FormHandler {
	return &FormHandler{forms: set, auth: authSvc, page: page, logger: logger}
}

// formReply is the JSON answer to a form post.
type formReply[T any] struct {
	Form  forms.Snapshot[T] `json:"form"`
	Kind  string            `json:"kind,omitempty"`
	Error string            `json:"error,omitempty"`
}

// submitForm binds the body into T, runs the submission and answers with the
// resulting state as JSON or as the re-rendered page.
func submitForm[T any](h *FormHandler, c *gin.Context, form *forms.Form[T], prepare func(*T), show func(*PageData, forms.Snapshot[T])) {
	var input T
	if err := c.ShouldBind(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if prepare != nil {
		prepare(&input)
	}

	id := c.PostForm("formId")
	if id == "" {
		id = c.Query("formId")
	}
	snap, rerr := form.Submit(c.Request.Context(), id, input)

	status := http.StatusOK
	reply := formReply[T]{Form: snap}
	if rerr != nil {
		status = StatusFor(rerr.Kind)
		reply.Kind = rerr.Kind.String()
		reply.Error = rerr.Message
	}

	if wantsJSON(c) {
		c.JSON(status, reply)
		return
	}
	h.page.render(c, status, func(d *PageData) { show(d, snap) })
}

func (h *FormHandler) Booking(c *gin.Context) {
	submitForm(h, c, h.forms.Booking,
		func(in *forms.BookingInput) {
			if u := h.auth.CurrentUser(c.Request.Context(), middleware.SessionID(c)); u != nil {
				in.UserID = u.UID
			}
		},
		func(d *PageData, s forms.Snapshot[forms.BookingInput]) { d.Booking = s },
	)
}

func (h *FormHandler) Contact(c *gin.Context) {
	submitForm(h, c, h.forms.Contact, nil,
		func(d *PageData, s forms.Snapshot[forms.ContactInput]) { d.Contact = s },
	)
}

func (h *FormHandler) SignIn(c *gin.Context) {
	submitForm(h, c, h.forms.SignIn,
		func(in *forms.SignInInput) { in.SessionID = middleware.SessionID(c) },
		func(d *PageData, s forms.Snapshot[forms.SignInInput]) {
			d.SignIn = s
			d.AuthPanel = forms.KindSignIn
			d.User = h.auth.CurrentUser(c.Request.Context(), middleware.SessionID(c))
		},
	)
}

func (h *FormHandler) SignUp(c *gin.Context) {
	submitForm(h, c, h.forms.SignUp,
		func(in *forms.SignUpInput) { in.SessionID = middleware.SessionID(c) },
		func(d *PageData, s forms.Snapshot[forms.SignUpInput]) {
			d.SignUp = s
			d.AuthPanel = forms.KindSignUp
			d.User = h.auth.CurrentUser(c.Request.Context(), middleware.SessionID(c))
		},
	)
}

func (h *FormHandler) Reset(c *gin.Context) {
	submitForm(h, c, h.forms.Reset, nil,
		func(d *PageData, s forms.Snapshot[forms.ResetInput]) {
			d.Reset = s
			d.AuthPanel = forms.KindReset
		},
	)
}

// Status reports the state of one form instance; the page polls it to drop a
// confirmation once the instance reverts to idle.
func (h *FormHandler) Status(c *gin.Context) {
	id := c.Param("id")
	switch c.Param("kind") {
	case forms.KindBooking:
		c.JSON(http.StatusOK, h.forms.Booking.Get(id))
	case forms.KindContact:
		c.JSON(http.StatusOK, h.forms.Contact.Get(id))
	case forms.KindSignIn:
		c.JSON(http.StatusOK, h.forms.SignIn.Get(id))
	case forms.KindSignUp:
		c.JSON(http.StatusOK, h.forms.SignUp.Get(id))
	case forms.KindReset:
		c.JSON(http.StatusOK, h.forms.Reset.Get(id))
	default:
		utils.JSONError(c, http.StatusNotFound, "Unknown form", c.Param("kind"))
	}
}

// Dismiss closes a confirmation ("Book Another Appointment").
func (h *FormHandler) Dismiss(c *gin.Context) {
	id, kind := c.Param("id"), c.Param("kind")
	var snap any
	switch kind {
	case forms.KindBooking:
		snap = h.forms.Booking.Dismiss(id)
	case forms.KindContact:
		snap = h.forms.Contact.Dismiss(id)
	case forms.KindSignIn:
		snap = h.forms.SignIn.Dismiss(id)
	case forms.KindSignUp:
		snap = h.forms.SignUp.Dismiss(id)
	case forms.KindReset:
		snap = h.forms.Reset.Dismiss(id)
	default:
		utils.JSONError(c, http.StatusNotFound, "Unknown form", kind)
		return
	}
	if wantsJSON(c) {
		c.JSON(http.StatusOK, snap)
		return
	}
	switch kind {
	case forms.KindBooking, forms.KindContact:
		c.Redirect(http.StatusSeeOther, "/#"+kind)
	default:
		c.Redirect(http.StatusSeeOther, "/?auth="+kind+"#auth")
	}
}
