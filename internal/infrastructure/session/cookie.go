// Package session signs and verifies the auth cookie pair. Cookie values are
// compact HS256 JWTs wrapping the opaque backend token, so a tampered or
// expired cookie parses to nothing instead of leaking a token.
package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessCookie carries the short-lived access token.
	AccessCookie = "auth"
	// RefreshCookie carries the long-lived refresh token.
	RefreshCookie = "refresh"

	// AccessTTL matches the backend's access-token lifetime. Expires and
	// Max-Age are both set to this value.
	AccessTTL = time.Hour
	// RefreshTTL matches the backend's refresh-token lifetime.
	RefreshTTL = 7 * 24 * time.Hour
)

const tokenClaim = "tok"

// Codec issues and parses the signed auth cookies.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// IssueAccess wraps an access token in the signed auth cookie.
func (c *Codec) IssueAccess(token string) *http.Cookie {
	return c.issue(AccessCookie, token, AccessTTL)
}

// IssueRefresh wraps a refresh token in the signed refresh cookie.
func (c *Codec) IssueRefresh(token string) *http.Cookie {
	return c.issue(RefreshCookie, token, RefreshTTL)
}

// Expire returns a cookie that makes the browser drop the named cookie
// immediately: value cleared, Expires at the epoch, Max-Age zero.
func (c *Codec) Expire(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Parse extracts and verifies the named cookie from a request. It fails
// closed: a missing cookie, bad signature, or expired value returns "".
func (c *Codec) Parse(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil || cookie.Value == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return ""
	}

	value, _ := claims[tokenClaim].(string)
	return value
}

func (c *Codec) issue(name, value string, ttl time.Duration) *http.Cookie {
	now := time.Now()
	claims := jwt.MapClaims{
		tokenClaim: value,
		"exp":      now.Add(ttl).Unix(),
		"iat":      now.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		// HMAC signing over in-memory data cannot fail with a valid key;
		// an empty cookie keeps the failure on the "not logged in" side.
		signed = ""
	}

	return &http.Cookie{
		Name:     name,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(ttl),
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}
