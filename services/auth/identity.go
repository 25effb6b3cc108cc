package auth

import (
	"context"
	"fmt"
	"net/url"

	"keshwala/models"

	"google.golang.org/api/identitytoolkit/v3"
)

// DefaultProviderID is the federated provider used when none is given.
const DefaultProviderID = "google.com"

// Credential is a signed-in identity together with the tokens issued for it.
type Credential struct {
	User         models.User
	IDToken      string
	RefreshToken string
}

// IdentityProvider performs the end-user account operations of the hosted
// authentication service.
type IdentityProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Credential, error)
	SignUp(ctx context.Context, email, password, displayName string) (*Credential, error)
	SignInWithIdP(ctx context.Context, providerID, idToken, requestURI string) (*Credential, error)
	SendPasswordReset(ctx context.Context, email string) error
}

type identityToolkit struct {
	rp *identitytoolkit.RelyingpartyService
}

// NewIdentityToolkit adapts the Identity Toolkit REST client.
func NewIdentityToolkit(svc *identitytoolkit.Service) IdentityProvider {
	return &identityToolkit{rp: svc.Relyingparty}
}

func (p *identityToolkit) SignInWithPassword(ctx context.Context, email, password string) (*Credential, error) {
	resp, err := p.rp.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("identitytoolkit: verify password: %w", err)
	}
	return &Credential{
		User: models.User{
			UID:         resp.LocalId,
			Email:       resp.Email,
			DisplayName: resp.DisplayName,
			ProviderID:  "password",
		},
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// SignUp creates the account with its display name set, so the new user never
// exists without one when a name was given.
func (p *identityToolkit) SignUp(ctx context.Context, email, password, displayName string) (*Credential, error) {
	resp, err := p.rp.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("identitytoolkit: sign up: %w", err)
	}
	return &Credential{
		User: models.User{
			UID:         resp.LocalId,
			Email:       resp.Email,
			DisplayName: resp.DisplayName,
			ProviderID:  "password",
		},
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (p *identityToolkit) SignInWithIdP(ctx context.Context, providerID, idToken, requestURI string) (*Credential, error) {
	body := url.Values{}
	body.Set("id_token", idToken)
	body.Set("providerId", providerID)

	resp, err := p.rp.VerifyAssertion(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:          body.Encode(),
		RequestUri:        requestURI,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("identitytoolkit: verify assertion: %w", err)
	}
	if resp.ErrorMessage != "" {
		return nil, fmt.Errorf("identitytoolkit: verify assertion: %s", resp.ErrorMessage)
	}
	return &Credential{
		User: models.User{
			UID:         resp.LocalId,
			Email:       resp.Email,
			DisplayName: resp.DisplayName,
			ProviderID:  resp.ProviderId,
		},
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (p *identityToolkit) SendPasswordReset(ctx context.Context, email string) error {
	_, err := p.rp.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		RequestType: "PASSWORD_RESET",
		Email:       email,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("identitytoolkit: send password reset: %w", err)
	}
	return nil
}
