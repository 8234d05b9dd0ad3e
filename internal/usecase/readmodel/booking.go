package readmodel

import (
	"errors"
	"fmt"
)

type UserRef struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type ShopRef struct {
	ID   int64   `json:"id,omitempty"`
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

type ServiceRef struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

// Booking is the server-owned booking with embedded customer/vendor/shop snapshots.
type Booking struct {
	ID             int64       `json:"id"`
	Amount         string      `json:"amount"`
	DeliveryStatus string      `json:"delivery_status"`
	PaymentStatus  string      `json:"payment_status"`
	DeliveryMethod string      `json:"delivery_method,omitempty"`
	StartDate      string      `json:"start_date"`
	EndDate        string      `json:"end_date"`
	CreatedAt      string      `json:"created_at"`
	Address        string      `json:"address,omitempty"`
	Service        *ServiceRef `json:"service"`
	Customer       *UserRef    `json:"customer"`
	Vendor         *UserRef    `json:"vendor"`
	Shop           *ShopRef    `json:"shop"`
}

func (b Booking) Validate() error {
	if b.ID <= 0 {
		return errors.New("booking id missing")
	}
	if b.DeliveryStatus == "" || b.PaymentStatus == "" {
		return fmt.Errorf("booking %d has no status", b.ID)
	}
	return nil
}

type BookingStats struct {
	TotalBookings  int    `json:"total_bookings"`
	TotalCompleted int    `json:"total_completed"`
	TotalCancelled int    `json:"total_cancelled"`
	TotalRevenue   string `json:"total_revenue"`
}

type BookingPage struct {
	Envelope
	Data  []Booking `json:"data"`
	Total int       `json:"total"`
}

func (p *BookingPage) Validate() error {
	if err := p.Envelope.Validate(); err != nil {
		return err
	}
	for _, b := range p.Data {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type BookingDetail struct {
	Envelope
	Data struct {
		Booking Booking       `json:"booking"`
		Stats   *BookingStats `json:"stats"`
	} `json:"data"`
}

func (d *BookingDetail) Validate() error {
	if err := d.Envelope.Validate(); err != nil {
		return err
	}
	return d.Data.Booking.Validate()
}

// OrderStats is the body of GET /bookings/stats.
type OrderStats struct {
	Envelope
	Data BookingStats `json:"data"`
}

// ListBookingsParams mirrors the query of GET /bookings.
type ListBookingsParams struct {
	Limit  int
	Offset int
	Search string
	Status string
}
