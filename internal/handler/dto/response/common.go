package response

import (
	"market-admin/internal/usecase/commands"
	"market-admin/internal/usecase/readmodel"
)

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func FromEnvelope(e readmodel.Envelope) MessageResponse {
	return MessageResponse{Status: e.Status, Message: e.Message}
}

type TransitionResponse struct {
	Notice    string                `json:"notice"`
	Booking   *commands.BookingView `json:"booking,omitempty"`
	Discarded bool                  `json:"discarded,omitempty"`
}

func FromTransition(r *commands.TransitionResult) TransitionResponse {
	return TransitionResponse{Notice: r.Notice, Booking: r.View, Discarded: r.Discarded}
}

type BannerResponse struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}
