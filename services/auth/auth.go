package auth

import (
	"context"
	"errors"
	"time"

	"keshwala/models"
	"keshwala/services/result"
	"keshwala/utils"

	"go.uber.org/zap"
)

const (
	// NotAvailable is the failure message when no identity provider is configured.
	NotAvailable = "Authentication not available"
	// ResetSent confirms a password reset request.
	ResetSent = "Password reset email sent!"
)

// Revoker invalidates a user's refresh tokens. *auth.Client from the Firebase
// Admin SDK satisfies it.
type Revoker interface {
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// AuthService is the gateway to the hosted authentication service. The
// signed-in user is tracked per browser session.
type AuthService interface {
	SignIn(ctx context.Context, sessionID, email, password string) result.Result[*models.User]
	SignUp(ctx context.Context, sessionID, email, password, displayName string) result.Result[*models.User]
	SignInWithProvider(ctx context.Context, sessionID, providerID, idToken string) result.Result[*models.User]
	ResetPassword(ctx context.Context, email string) result.Result[string]
	SignOut(ctx context.Context, sessionID string) result.Result[struct{}]
	CurrentUser(ctx context.Context, sessionID string) *models.User
	Subscribe(ctx context.Context, sessionID string) (<-chan Event, func())
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	identity   IdentityProvider
	revoker    Revoker
	sessions   utils.SessionStore
	watcher    *Watcher
	requestURI string
	logger     *zap.Logger
}

// NewAuthService wires the gateway. identity and revoker may be nil; without
// identity every account operation fails with NotAvailable, without revoker
// sign-out only forgets the session locally.
func NewAuthService(identity IdentityProvider, revoker Revoker, sessions utils.SessionStore, requestURI string, logger *zap.Logger) *DefaultAuthService {
	return &DefaultAuthService{
		identity:   identity,
		revoker:    revoker,
		sessions:   sessions,
		watcher:    NewWatcher(),
		requestURI: requestURI,
		logger:     logger,
	}
}

func (s *DefaultAuthService) SignIn(ctx context.Context, sessionID, email, password string) result.Result[*models.User] {
	if s.identity == nil {
		return result.Unavailable[*models.User](NotAvailable)
	}
	cred, err := s.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		return s.providerFailure("SignIn", err)
	}
	return s.establish(ctx, sessionID, cred)
}

func (s *DefaultAuthService) SignUp(ctx context.Context, sessionID, email, password, displayName string) result.Result[*models.User] {
	if s.identity == nil {
		return result.Unavailable[*models.User](NotAvailable)
	}
	cred, err := s.identity.SignUp(ctx, email, password, displayName)
	if err != nil {
		return s.providerFailure("SignUp", err)
	}
	if cred.User.DisplayName == "" {
		cred.User.DisplayName = displayName
	}
	return s.establish(ctx, sessionID, cred)
}

func (s *DefaultAuthService) SignInWithProvider(ctx context.Context, sessionID, providerID, idToken string) result.Result[*models.User] {
	if s.identity == nil {
		return result.Unavailable[*models.User](NotAvailable)
	}
	if providerID == "" {
		providerID = DefaultProviderID
	}
	cred, err := s.identity.SignInWithIdP(ctx, providerID, idToken, s.requestURI)
	if err != nil {
		return s.providerFailure("SignInWithProvider", err)
	}
	return s.establish(ctx, sessionID, cred)
}

func (s *DefaultAuthService) ResetPassword(ctx context.Context, email string) result.Result[string] {
	if s.identity == nil {
		return result.Unavailable[string](NotAvailable)
	}
	if err := s.identity.SendPasswordReset(ctx, email); err != nil {
		return providerFailureOf[string](s.logger, "ResetPassword", err)
	}
	return result.Ok(ResetSent)
}

// SignOut forgets the session's user and notifies subscribers once. Token
// revocation is best effort.
func (s *DefaultAuthService) SignOut(ctx context.Context, sessionID string) result.Result[struct{}] {
	if s.identity == nil {
		return result.Unavailable[struct{}](NotAvailable)
	}
	prev := s.CurrentUser(ctx, sessionID)
	if err := s.sessions.DeleteAuthSession(ctx, sessionID); err != nil {
		s.logger.Warn("SignOut: failed to delete session", zap.String("session", sessionID), zap.Error(err))
		return result.Backend[struct{}](err)
	}
	if prev == nil {
		return result.Ok(struct{}{})
	}
	s.watcher.Publish(sessionID, nil)

	if s.revoker != nil {
		if err := s.revoker.RevokeRefreshTokens(ctx, prev.UID); err != nil {
			s.logger.Warn("SignOut: token revocation failed", zap.String("uid", prev.UID), zap.Error(err))
		}
	}
	s.logger.Info("User signed out", zap.String("uid", prev.UID))
	return result.Ok(struct{}{})
}

// CurrentUser returns the session's signed-in user, or nil.
func (s *DefaultAuthService) CurrentUser(ctx context.Context, sessionID string) *models.User {
	if sessionID == "" {
		return nil
	}
	session, err := s.sessions.GetAuthSession(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, utils.ErrSessionNotFound) {
			s.logger.Warn("CurrentUser: session lookup failed", zap.String("session", sessionID), zap.Error(err))
		}
		return nil
	}
	return session.User
}

// Subscribe delivers the session's current user now and again after every
// sign-in or sign-out on that session.
func (s *DefaultAuthService) Subscribe(ctx context.Context, sessionID string) (<-chan Event, func()) {
	return s.watcher.Subscribe(sessionID, func() *models.User { return s.CurrentUser(ctx, sessionID) })
}

func (s *DefaultAuthService) establish(ctx context.Context, sessionID string, cred *Credential) result.Result[*models.User] {
	prev := s.CurrentUser(ctx, sessionID)
	user := cred.User
	session := utils.AuthSession{
		ID:           sessionID,
		User:         &user,
		RefreshToken: cred.RefreshToken,
		CreatedAt:    time.Now(),
	}
	if err := s.sessions.SaveAuthSession(ctx, session); err != nil {
		s.logger.Warn("failed to save session", zap.String("session", sessionID), zap.Error(err))
		return result.Backend[*models.User](err)
	}
	if prev == nil || prev.UID != user.UID {
		s.watcher.Publish(sessionID, &user)
	}
	s.logger.Info("User signed in", zap.String("uid", user.UID), zap.String("provider", user.ProviderID))
	return result.Ok(&user)
}

func (s *DefaultAuthService) providerFailure(op string, err error) result.Result[*models.User] {
	return providerFailureOf[*models.User](s.logger, op, err)
}

func providerFailureOf[T any](logger *zap.Logger, op string, err error) result.Result[T] {
	logger.Warn(op+" failed", zap.Error(err))
	return result.Fail[T](&result.Error{
		Kind:    result.KindBackend,
		Message: friendlyMessage(err),
		Cause:   err,
	})
}
