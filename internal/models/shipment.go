package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Admin-side shipment statuses. The client portal uses the French
// vocabulary in status.go; the two sets map one-to-one.
const (
	ShipmentStatusPending        = "Pending"
	ShipmentStatusInTransit      = "In Transit"
	ShipmentStatusOutForDelivery = "Out for Delivery"
	ShipmentStatusDelivered      = "Delivered"
	ShipmentStatusFailed         = "Failed"
)

var shipmentStatuses = map[string]struct{}{
	ShipmentStatusPending:        {},
	ShipmentStatusInTransit:      {},
	ShipmentStatusOutForDelivery: {},
	ShipmentStatusDelivered:      {},
	ShipmentStatusFailed:         {},
}

// ShipmentRecord is the canonical package record managed by the admin
// portal. Driver is the driver's display name, intentionally denormalized:
// drivers have their own id space and no join is performed.
type ShipmentRecord struct {
	ID             int    `json:"id"`
	PackageNumber  string `json:"packageNumber"`
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
	Driver         string `json:"driver"`

	EstimatedDelivery string `json:"estimatedDelivery"`
	CreatedAt         string `json:"createdAt"`
	CreatedAtTime     string `json:"createdAtTime"`
}

// Price stays a string on the wire but must be a decimal amount with an
// optional currency suffix ("120", "120.50", "120 DH") when set.
var priceRe = regexp.MustCompile(`^\d+(\.\d{1,2})?( ?(DH|MAD))?$`)

func (s *ShipmentRecord) Validate() error {
	if s.ID <= 0 {
		return errors.New("id must be a positive integer")
	}
	if strings.TrimSpace(s.PackageNumber) == "" {
		return errors.New("packageNumber is required")
	}
	if _, ok := shipmentStatuses[s.Status]; !ok {
		return errors.Errorf("invalid shipment status %q", s.Status)
	}
	if p := strings.TrimSpace(s.Price); p != "" && !priceRe.MatchString(p) {
		return errors.Errorf("invalid price %q", s.Price)
	}
	if s.CreatedAt != "" {
		if _, err := time.Parse("2006-01-02", s.CreatedAt); err != nil {
			return errors.Errorf("invalid createdAt %q, want YYYY-MM-DD", s.CreatedAt)
		}
	}
	if s.CreatedAtTime != "" {
		if _, err := time.Parse("15:04", s.CreatedAtTime); err != nil {
			return errors.Errorf("invalid createdAtTime %q, want HH:MM", s.CreatedAtTime)
		}
	}
	return nil
}

// ValidateShipments checks every record plus the set-level invariants:
// ids unique, package numbers unique (case-insensitive). Any failure
// rejects the whole set.
func ValidateShipments(records []ShipmentRecord) error {
	ids := make(map[int]struct{}, len(records))
	numbers := make(map[string]struct{}, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return errors.Wrapf(err, "shipment [%d]", i)
		}
		if _, ok := ids[records[i].ID]; ok {
			return errors.Errorf("duplicate shipment id %d", records[i].ID)
		}
		ids[records[i].ID] = struct{}{}
		num := strings.ToUpper(strings.TrimSpace(records[i].PackageNumber))
		if _, ok := numbers[num]; ok {
			return errors.Errorf("duplicate packageNumber %q", records[i].PackageNumber)
		}
		numbers[num] = struct{}{}
	}
	return nil
}
