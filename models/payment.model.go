package models

// PaymentResult holds what the payment gateway reported for an order.
// Field names follow the gateway's wire format.
type PaymentResult struct {
	ID           string `bson:"id,omitempty" json:"id,omitempty"`
	Status       string `bson:"status,omitempty" json:"status,omitempty"`
	UpdateTime   string `bson:"update_time,omitempty" json:"update_time,omitempty"`
	EmailAddress string `bson:"email_address,omitempty" json:"email_address,omitempty"`
}
