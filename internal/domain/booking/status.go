package booking

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidAxis       = errors.New("invalid status axis")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// Axis names one of the two independent status dimensions of a booking.
type Axis string

const (
	AxisDelivery Axis = "delivery_status"
	AxisPayment  Axis = "payment_status"
)

func ParseAxis(s string) (Axis, error) {
	switch Axis(s) {
	case AxisDelivery, AxisPayment:
		return Axis(s), nil
	default:
		return "", ErrInvalidAxis
	}
}

type DeliveryStatus string

const (
	DeliveryProcessing DeliveryStatus = "processing"
	DeliveryOngoing    DeliveryStatus = "ongoing"
	DeliveryReturned   DeliveryStatus = "returned"
	DeliveryDelivered  DeliveryStatus = "delivered"
	DeliveryCancelled  DeliveryStatus = "cancelled"
)

var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryProcessing: {DeliveryOngoing, DeliveryCancelled},
	DeliveryOngoing:    {DeliveryReturned, DeliveryDelivered, DeliveryCancelled},
	DeliveryReturned:   nil,
	DeliveryDelivered:  nil,
	DeliveryCancelled:  nil,
}

func (s DeliveryStatus) String() string {
	return string(s)
}

func (s DeliveryStatus) IsValid() bool {
	_, ok := deliveryTransitions[s]
	return ok
}

func (s DeliveryStatus) IsTerminal() bool {
	return s.IsValid() && len(deliveryTransitions[s]) == 0
}

// Next lists the statuses offered from s, excluding s itself.
func (s DeliveryStatus) Next() []DeliveryStatus {
	return append([]DeliveryStatus(nil), deliveryTransitions[s]...)
}

// CanTransitionTo allows re-selecting the current value.
func (s DeliveryStatus) CanTransitionTo(target DeliveryStatus) bool {
	if !s.IsValid() || !target.IsValid() {
		return false
	}
	if s == target {
		return true
	}
	for _, next := range deliveryTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:   {PaymentCompleted, PaymentCancelled},
	PaymentCompleted: {PaymentRefunded},
	PaymentCancelled: nil,
	PaymentRefunded:  nil,
}

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	_, ok := paymentTransitions[s]
	return ok
}

func (s PaymentStatus) IsTerminal() bool {
	return s.IsValid() && len(paymentTransitions[s]) == 0
}

func (s PaymentStatus) Next() []PaymentStatus {
	return append([]PaymentStatus(nil), paymentTransitions[s]...)
}

func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	if !s.IsValid() || !target.IsValid() {
		return false
	}
	if s == target {
		return true
	}
	for _, next := range paymentTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// DeliveryOptions and PaymentOptions are the selector entries in display order.
var (
	DeliveryOptions = []DeliveryStatus{DeliveryProcessing, DeliveryOngoing, DeliveryReturned, DeliveryDelivered, DeliveryCancelled}
	PaymentOptions  = []PaymentStatus{PaymentPending, PaymentCancelled, PaymentCompleted, PaymentRefunded}
)
