package usecase

import (
	"strings"

	"market-admin/internal/domain/session"
)

// RoutePaths are the public prefix and the two redirect targets the guard knows about.
type RoutePaths struct {
	PublicPrefix       string
	LoginPath          string
	ChangePasswordPath string
}

type GuardRequest struct {
	Path       string
	Token      string
	UserCookie string
}

type GuardDecision struct {
	Allow    bool
	Redirect string
	// Profile is set when the user cookie decoded successfully.
	Profile *session.Profile
}

// DecideRoute is the pure authorization decision run before every protected route.
// An empty user cookie counts as absent.
func DecideRoute(paths RoutePaths, req GuardRequest) GuardDecision {
	if underPrefix(req.Path, paths.PublicPrefix) {
		return GuardDecision{Allow: true}
	}

	var profile *session.Profile
	mustChangePassword := false
	if req.UserCookie != "" {
		p, err := session.DecodeProfile(req.UserCookie)
		if err != nil {
			return GuardDecision{Redirect: paths.LoginPath}
		}
		profile = &p
		mustChangePassword = p.MustChangePassword()
	}

	if req.Token == "" {
		return GuardDecision{Redirect: paths.LoginPath}
	}
	if mustChangePassword {
		return GuardDecision{Redirect: paths.ChangePasswordPath, Profile: profile}
	}
	return GuardDecision{Allow: true, Profile: profile}
}

// underPrefix matches prefix itself or any path below it, never "/authx".
func underPrefix(path, prefix string) bool {
	if prefix == "" {
		return false
	}
	prefix = strings.TrimSuffix(prefix, "/")
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
