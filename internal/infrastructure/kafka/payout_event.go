package publisher

type PayoutEvent struct {
	VendorOrderID    string `json:"vendor_order_id"`
	OrderID          string `json:"order_id"`
	StoreID          string `json:"store_id"`
	VendorID         string `json:"vendor_id"`
	PayoutStatus     string `json:"payout_status"`
	CommissionAmount string `json:"commission_amount"`
	VendorAmount     string `json:"vendor_amount"`
	Currency         string `json:"currency"`
	TransferID       string `json:"transfer_id,omitempty"`
	Reason           string `json:"reason,omitempty"`
}

// PayoutPublisher is what the settlement usecase needs from the broker. May be
// backed by DefaultKafkaPublisher or a fake in tests.
type PayoutPublisher interface {
	PublishPayout(topic string, event PayoutEvent) error
}
