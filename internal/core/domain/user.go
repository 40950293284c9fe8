package domain

// RoleKind is the capability level resolved from a user's role identifier.
// The backend identifies roles by opaque ids; the session gate resolves the
// configured public role id to RolePublic once, so handlers and templates
// never compare raw identifier strings.
type RoleKind string

const (
	RolePublic RoleKind = "public"
	RoleAdmin  RoleKind = "admin"
)

// CanModerate reports whether the role may change feedback status or delete
// feedback. The backend is the actual enforcement point; this only gates UI.
func (k RoleKind) CanModerate() bool {
	return k == RoleAdmin
}

// User models an authenticated actor. All user records live in the backend
// identity service; this is only the projection read back from it.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	RoleID    string `json:"role"`
}

// Role is a registration role choice offered by the backend.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TokenPair is the credential pair issued by the backend identity service:
// a short-lived access token and a longer-lived refresh token. Both are
// opaque strings; the portal only carries them inside signed cookies.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
