package models

// User is the signed-in identity as reported by the authentication service.
// The application never persists it; it only keeps a per-session reference.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	ProviderID  string `json:"providerId,omitempty"`
}
