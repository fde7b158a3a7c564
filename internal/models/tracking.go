package models

// TrackingRecord is the client-portal projection of a shipment, keyed by
// the uppercased package number. Scalars are overwritten on every sync;
// Events and a non-empty CurrentLocation survive syncs untouched.
type TrackingRecord struct {
	TrackingNumber string `json:"trackingNumber"`
	Sender         string `json:"sender"`
	SenderPhone    string `json:"senderPhone"`
	Recipient      string `json:"recipient"`
	RecipientPhone string `json:"recipientPhone"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	City           string `json:"city"`
	Address        string `json:"address"`
	Weight         string `json:"weight"`
	Product        string `json:"product"`
	Comment        string `json:"comment"`
	Price          string `json:"price"`
	Status         string `json:"status"`

	EstimatedDelivery string `json:"estimatedDelivery"`
	CreatedAt         string `json:"createdAt"`
	CreatedAtTime     string `json:"createdAtTime"`

	CurrentLocation string          `json:"currentLocation"`
	Events          []TrackingEvent `json:"events"`
}

type TrackingEvent struct {
	Time        string `json:"time"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	Description string `json:"description"`
}
