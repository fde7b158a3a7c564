package messages

import "time"

// TrackingSynced is published after the shipment set was replaced and the
// client tracking projection was rebuilt from it.
type TrackingSynced struct {
	SyncedAt time.Time `json:"synced_at"`

	ShipmentCount int `json:"shipment_count"`
	TrackingCount int `json:"tracking_count"`

	Created []string `json:"created,omitempty"` // tracking numbers seeded this sync
	Dropped []string `json:"dropped,omitempty"` // tracking numbers without a shipment
}
