package booking

// Booking is the client-side projection of a server-owned booking. Status fields change
// only through Apply after the backend confirmed the change.
type Booking struct {
	id             int64
	deliveryStatus DeliveryStatus
	paymentStatus  PaymentStatus
}

func Reconstruct(id int64, deliveryStatus, paymentStatus string) (*Booking, error) {
	delivery := DeliveryStatus(deliveryStatus)
	payment := PaymentStatus(paymentStatus)
	if !delivery.IsValid() || !payment.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Booking{
		id:             id,
		deliveryStatus: delivery,
		paymentStatus:  payment,
	}, nil
}

func (b *Booking) ID() int64                      { return b.id }
func (b *Booking) DeliveryStatus() DeliveryStatus { return b.deliveryStatus }
func (b *Booking) PaymentStatus() PaymentStatus   { return b.paymentStatus }

// StatusOf returns the current value of axis.
func (b *Booking) StatusOf(axis Axis) string {
	switch axis {
	case AxisDelivery:
		return b.deliveryStatus.String()
	case AxisPayment:
		return b.paymentStatus.String()
	default:
		return ""
	}
}

// CanCancel is true only for bookings that have neither started nor been paid.
func (b *Booking) CanCancel() bool {
	return b.deliveryStatus == DeliveryProcessing && b.paymentStatus == PaymentPending
}

// ValidateTransition checks value against the current state of axis.
func (b *Booking) ValidateTransition(axis Axis, value string) error {
	switch axis {
	case AxisDelivery:
		target := DeliveryStatus(value)
		if !target.IsValid() {
			return ErrInvalidStatus
		}
		if !b.deliveryStatus.CanTransitionTo(target) {
			return ErrInvalidTransition
		}
	case AxisPayment:
		target := PaymentStatus(value)
		if !target.IsValid() {
			return ErrInvalidStatus
		}
		if !b.paymentStatus.CanTransitionTo(target) {
			return ErrInvalidTransition
		}
	default:
		return ErrInvalidAxis
	}
	return nil
}

// Apply commits a confirmed value. It assumes ValidateTransition passed.
func (b *Booking) Apply(axis Axis, value string) {
	switch axis {
	case AxisDelivery:
		b.deliveryStatus = DeliveryStatus(value)
	case AxisPayment:
		b.paymentStatus = PaymentStatus(value)
	}
}
