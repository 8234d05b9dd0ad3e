package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotJWT = errors.New("token is not a JWT")

// Inspector reads the claims of backend-issued tokens. Signatures are not verified here;
// the backend validates every forwarded request.
type Inspector struct {
	parser *jwt.Parser
}

func NewInspector() *Inspector {
	return &Inspector{parser: jwt.NewParser()}
}

func (i *Inspector) ExpiresAt(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, ErrNotJWT
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}

// Expired reports true only for JWTs whose exp claim is at or before now.
// Opaque tokens are never considered expired here.
func (i *Inspector) Expired(token string, now time.Time) bool {
	exp, err := i.ExpiresAt(token)
	if err != nil || exp.IsZero() {
		return false
	}
	return !now.Before(exp)
}
