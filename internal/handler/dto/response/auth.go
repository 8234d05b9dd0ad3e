package response

import "market-admin/internal/domain/session"

type LoginResponse struct {
	User *session.Profile `json:"user"`
	// Redirect is the page the UI should open next.
	Redirect string `json:"redirect"`
}

type RouteDecisionResponse struct {
	Allow    bool   `json:"allow"`
	Redirect string `json:"redirect,omitempty"`
}
