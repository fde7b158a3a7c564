package models

import "github.com/pkg/errors"

// Client-facing (French) tracking statuses.
const (
	TrackingStatusPending        = "En attente"
	TrackingStatusInTransit      = "En transit"
	TrackingStatusOutForDelivery = "En livraison"
	TrackingStatusDelivered      = "Livré"
	TrackingStatusFailed         = "Échoué"
)

var toClient = map[string]string{
	ShipmentStatusPending:        TrackingStatusPending,
	ShipmentStatusInTransit:      TrackingStatusInTransit,
	ShipmentStatusOutForDelivery: TrackingStatusOutForDelivery,
	ShipmentStatusDelivered:      TrackingStatusDelivered,
	ShipmentStatusFailed:         TrackingStatusFailed,
}

var toAdmin = map[string]string{
	TrackingStatusPending:        ShipmentStatusPending,
	TrackingStatusInTransit:      ShipmentStatusInTransit,
	TrackingStatusOutForDelivery: ShipmentStatusOutForDelivery,
	TrackingStatusDelivered:      ShipmentStatusDelivered,
	TrackingStatusFailed:         ShipmentStatusFailed,
}

// ToClientStatus maps an admin shipment status to the client vocabulary.
// Both mappers are total over their 5-value sets; an unknown input is a
// programming error upstream (validation guards every boundary) and is
// returned as an error rather than silently defaulted.
func ToClientStatus(adminStatus string) (string, error) {
	s, ok := toClient[adminStatus]
	if !ok {
		return "", errors.Errorf("unmapped admin status %q", adminStatus)
	}
	return s, nil
}

// ToAdminStatus is the inverse of ToClientStatus.
func ToAdminStatus(clientStatus string) (string, error) {
	s, ok := toAdmin[clientStatus]
	if !ok {
		return "", errors.Errorf("unmapped client status %q", clientStatus)
	}
	return s, nil
}

// IsTerminalTrackingStatus reports whether the parcel has reached its
// final state (delivered or failed).
func IsTerminalTrackingStatus(clientStatus string) bool {
	return clientStatus == TrackingStatusDelivered || clientStatus == TrackingStatusFailed
}
