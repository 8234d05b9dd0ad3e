//go:build unit

package commands_test

import "market-admin/internal/domain/session"

func profileChangedAt(passwordChangedAt string) session.Profile {
	return session.Profile{ID: "1", Name: "Admin", Email: "admin@example.com", PasswordChangedAt: &passwordChangedAt}
}
