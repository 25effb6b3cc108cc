package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"keshwala/models"
	"keshwala/services/result"
	"keshwala/utils"

	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
)

type fakeIdentity struct {
	users   map[string]string // email -> password
	err     error
	resets  []string
	lastIdP string
	lastURI string
}

func (f *fakeIdentity) SignInWithPassword(_ context.Context, email, password string) (*Credential, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.users[email] != password {
		return nil, &googleapi.Error{Code: 400, Message: "INVALID_LOGIN_CREDENTIALS"}
	}
	return &Credential{User: models.User{UID: "uid-" + email, Email: email, ProviderID: "password"}, RefreshToken: "r"}, nil
}

func (f *fakeIdentity) SignUp(_ context.Context, email, password, _ string) (*Credential, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.users[email]; ok {
		return nil, &googleapi.Error{Code: 400, Message: "EMAIL_EXISTS"}
	}
	f.users[email] = password
	return &Credential{User: models.User{UID: "uid-" + email, Email: email}}, nil
}

func (f *fakeIdentity) SignInWithIdP(_ context.Context, providerID, idToken, requestURI string) (*Credential, error) {
	f.lastIdP, f.lastURI = providerID, requestURI
	return &Credential{User: models.User{UID: "g-" + idToken, ProviderID: providerID}}, nil
}

func (f *fakeIdentity) SendPasswordReset(_ context.Context, email string) error {
	if f.err != nil {
		return f.err
	}
	f.resets = append(f.resets, email)
	return nil
}

type fakeRevoker struct {
	revoked []string
	err     error
}

func (f *fakeRevoker) RevokeRefreshTokens(_ context.Context, uid string) error {
	f.revoked = append(f.revoked, uid)
	return f.err
}

func newTestService() (*DefaultAuthService, *fakeIdentity, *fakeRevoker) {
	idp := &fakeIdentity{users: map[string]string{"asha@example.com": "secret1"}}
	rev := &fakeRevoker{}
	svc := NewAuthService(idp, rev, utils.NewMemorySessionStore(time.Hour), "http://localhost:8080", zap.NewNop())
	return svc, idp, rev
}

func TestUnavailableWithoutIdentityProvider(t *testing.T) {
	svc := NewAuthService(nil, nil, utils.NewMemorySessionStore(time.Hour), "", zap.NewNop())
	ctx := context.Background()
	errs := []*result.Error{
		svc.SignIn(ctx, "s", "a@example.com", "secret1").Err(),
		svc.SignUp(ctx, "s", "a@example.com", "secret1", "A").Err(),
		svc.SignInWithProvider(ctx, "s", "", "tok").Err(),
		svc.ResetPassword(ctx, "a@example.com").Err(),
		svc.SignOut(ctx, "s").Err(),
	}
	for i, e := range errs {
		if e == nil || e.Kind != result.KindUnavailable || e.Message != NotAvailable {
			t.Errorf("call %d: %v", i, e)
		}
	}
}

func TestSignInSignOutEvents(t *testing.T) {
	svc, _, rev := newTestService()
	ctx := context.Background()

	events, cancel := svc.Subscribe(ctx, "s1")
	defer cancel()
	if ev := <-events; ev.User != nil {
		t.Fatalf("initial event = %+v, want signed out", ev.User)
	}

	user, rerr := svc.SignIn(ctx, "s1", "asha@example.com", "secret1").Unwrap()
	if rerr != nil {
		t.Fatal(rerr)
	}
	if ev := <-events; ev.User == nil || ev.User.UID != user.UID {
		t.Fatalf("sign-in event = %+v", ev.User)
	}
	if cur := svc.CurrentUser(ctx, "s1"); cur == nil || cur.Email != "asha@example.com" {
		t.Fatalf("CurrentUser = %+v", cur)
	}
	if svc.CurrentUser(ctx, "s2") != nil {
		t.Fatal("user leaked into another session")
	}

	if r := svc.SignOut(ctx, "s1"); !r.IsOk() {
		t.Fatal(r.Err())
	}
	select {
	case ev := <-events:
		if ev.User != nil {
			t.Fatalf("sign-out event = %+v", ev.User)
		}
	default:
		t.Fatal("no signed-out event after sign-out")
	}
	select {
	case ev := <-events:
		t.Fatalf("unexpected extra event %+v", ev)
	default:
	}

	// A second sign-out is not a transition.
	svc.SignOut(ctx, "s1")
	select {
	case ev := <-events:
		t.Fatalf("sign-out while signed out produced %+v", ev)
	default:
	}
	if len(rev.revoked) != 1 || rev.revoked[0] != user.UID {
		t.Fatalf("revoked = %v", rev.revoked)
	}
}

func TestSignOutSucceedsWhenRevocationFails(t *testing.T) {
	svc, _, rev := newTestService()
	rev.err = errors.New("network down")
	ctx := context.Background()
	svc.SignIn(ctx, "s1", "asha@example.com", "secret1")
	if r := svc.SignOut(ctx, "s1"); !r.IsOk() {
		t.Fatalf("SignOut = %v", r.Err())
	}
	if svc.CurrentUser(ctx, "s1") != nil {
		t.Fatal("session still signed in")
	}
}

func TestProviderErrorsAreTranslated(t *testing.T) {
	svc, idp, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		call func() *result.Error
		want string
	}{
		{"wrong password", func() *result.Error {
			return svc.SignIn(ctx, "s", "asha@example.com", "nope12").Err()
		}, "Invalid email or password."},
		{"duplicate sign-up", func() *result.Error {
			return svc.SignUp(ctx, "s", "asha@example.com", "secret1", "Asha").Err()
		}, "An account with this email already exists."},
		{"detail suffix", func() *result.Error {
			idp.err = &googleapi.Error{Code: 400, Message: "WEAK_PASSWORD : Password should be at least 6 characters"}
			defer func() { idp.err = nil }()
			return svc.SignUp(ctx, "s", "new@example.com", "123", "").Err()
		}, "Password must be at least 6 characters."},
		{"unknown error keeps text", func() *result.Error {
			idp.err = fmt.Errorf("dial tcp: timeout")
			defer func() { idp.err = nil }()
			return svc.ResetPassword(ctx, "asha@example.com").Err()
		}, "dial tcp: timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.call()
			if e == nil || e.Kind != result.KindBackend || e.Message != tt.want {
				t.Fatalf("got %v, want %q", e, tt.want)
			}
		})
	}
}

func TestSignUpKeepsDisplayName(t *testing.T) {
	svc, _, _ := newTestService()
	user, rerr := svc.SignUp(context.Background(), "s", "new@example.com", "secret1", "Meera").Unwrap()
	if rerr != nil {
		t.Fatal(rerr)
	}
	if user.DisplayName != "Meera" {
		t.Fatalf("DisplayName = %q", user.DisplayName)
	}
}

func TestResetPasswordAndProviderDefaults(t *testing.T) {
	svc, idp, _ := newTestService()
	ctx := context.Background()

	msg, rerr := svc.ResetPassword(ctx, "asha@example.com").Unwrap()
	if rerr != nil || msg != ResetSent || len(idp.resets) != 1 {
		t.Fatalf("ResetPassword = %q, %v, resets %v", msg, rerr, idp.resets)
	}

	if r := svc.SignInWithProvider(ctx, "s", "", "tok"); !r.IsOk() {
		t.Fatal(r.Err())
	}
	if idp.lastIdP != DefaultProviderID || idp.lastURI != "http://localhost:8080" {
		t.Fatalf("provider %q uri %q", idp.lastIdP, idp.lastURI)
	}
}
