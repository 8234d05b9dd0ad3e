package request

type DeliveryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type PaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}
