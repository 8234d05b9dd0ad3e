package session

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
)

var ErrMalformedProfile = errors.New("malformed user profile")

// Profile is the signed-in administrator as returned by the backend at login.
// Decoding is lenient: a field of an unexpected type is read as empty and kept as sent,
// so re-encoding a decoded profile does not lose it.
type Profile struct {
	ID                string
	Name              string
	Email             string
	Role              string
	PasswordChangedAt *string

	fields map[string]json.RawMessage
}

// MustChangePassword reports whether the backend has never recorded a password change.
func (p Profile) MustChangePassword() bool {
	return p.PasswordChangedAt == nil || *p.PasswordChangedAt == ""
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*p = Profile{
		ID:     scalar(fields["id"]),
		Name:   scalar(fields["name"]),
		Email:  scalar(fields["email"]),
		Role:   scalar(fields["role"]),
		fields: fields,
	}
	if raw, ok := fields["password_changed_at"]; ok && truthy(raw) {
		changedAt := scalar(raw)
		if changedAt == "" {
			changedAt = string(raw)
		}
		p.PasswordChangedAt = &changedAt
	}
	return nil
}

func (p Profile) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.fields)+5)
	for k, raw := range p.fields {
		out[k] = raw
	}
	unchanged := func(key, value string) bool {
		raw, ok := p.fields[key]
		return ok && scalar(raw) == value
	}

	if !unchanged("id", p.ID) && p.ID != "" {
		if n, err := strconv.ParseInt(p.ID, 10, 64); err == nil {
			out["id"] = n
		} else {
			out["id"] = p.ID
		}
	}
	for key, value := range map[string]string{"name": p.Name, "email": p.Email, "role": p.Role} {
		if !unchanged(key, value) && value != "" {
			out[key] = value
		}
	}

	raw, had := p.fields["password_changed_at"]
	switch {
	case p.PasswordChangedAt == nil:
		if !had || truthy(raw) {
			out["password_changed_at"] = nil
		}
	case !had || !truthy(raw) || !unchanged("password_changed_at", *p.PasswordChangedAt):
		out["password_changed_at"] = *p.PasswordChangedAt
	}
	return json.Marshal(out)
}

// scalar reads a string, number or boolean as text; anything else is "".
func scalar(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var n json.Number
	if json.Unmarshal(raw, &n) == nil {
		return n.String()
	}
	var b bool
	if json.Unmarshal(raw, &b) == nil {
		return strconv.FormatBool(b)
	}
	return ""
}

// truthy follows JavaScript: null, false, 0 and "" are falsy.
func truthy(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}

// Session is an authenticated identity. A non-empty token implies authentication.
type Session struct {
	Token string
	User  *Profile
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

// EncodeProfile renders a profile the way the dashboard stores it in the user cookie.
func EncodeProfile(p Profile) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(string(raw)), nil
}

// DecodeProfile parses a URL-encoded JSON profile. Only an unreadable value or JSON null
// is ErrMalformedProfile; any other JSON decodes, and a non-object has no password change.
func DecodeProfile(cookieValue string) (Profile, error) {
	unescaped, err := url.QueryUnescape(cookieValue)
	if err != nil {
		return Profile{}, ErrMalformedProfile
	}
	raw := bytes.TrimSpace([]byte(unescaped))
	if !json.Valid(raw) || string(raw) == "null" {
		return Profile{}, ErrMalformedProfile
	}
	if raw[0] != '{' {
		return Profile{}, nil
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return Profile{}, ErrMalformedProfile
	}
	return p, nil
}

type ctxKey struct{}

func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}

// Token returns the bearer token carried by ctx, or "" when none.
func Token(ctx context.Context) string {
	s, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return s.Token
}

// Fingerprint identifies the session carrying token without exposing it; "anon" when empty.
func Fingerprint(token string) string {
	if token == "" {
		return "anon"
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}
