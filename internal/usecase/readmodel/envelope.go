package readmodel

import (
	"encoding/json"
	"errors"
)

const StatusSuccess = "success"

var ErrMissingStatus = errors.New("response envelope has no status")

// Envelope is the common {status, message} wrapper of admin API responses.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (e Envelope) Succeeded() bool {
	return e.Status == StatusSuccess
}

func (e Envelope) Validate() error {
	if e.Status == "" {
		return ErrMissingStatus
	}
	return nil
}

// MutationResult is returned by create/update/delete endpoints.
type MutationResult struct {
	Envelope
	Data json.RawMessage `json:"data,omitempty"`
}

// GraphPoint is one sample of a dashboard time series.
type GraphPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type GraphSeries []GraphPoint

// StatsResult carries dashboard counters keyed by metric name.
type StatsResult struct {
	Envelope
	Data map[string]any `json:"data"`
}
