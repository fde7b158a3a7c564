package tracksync

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/rorado/colistrack/internal/models"
)

const createdDescription = "Colis créé"

// Sync rebuilds the client tracking projection from the shipment set.
//
// The shipment list is authoritative for the entity set: records are keyed
// by uppercased package number, tracking records without a shipment are
// dropped. For a known number the scalar fields are overwritten from the
// shipment while the event history and a non-empty current location
// survive. Unknown numbers get a fresh record seeded with a single
// creation event.
//
// Pure given its inputs; now is only used when a shipment carries no
// creation date. Callers load and persist around it.
func Sync(shipments []models.ShipmentRecord, existing []models.TrackingRecord, now time.Time) ([]models.TrackingRecord, error) {
	prev := make(map[string]*models.TrackingRecord, len(existing))
	for i := range existing {
		prev[trackingKey(existing[i].TrackingNumber)] = &existing[i]
	}

	out := make([]models.TrackingRecord, 0, len(shipments))
	for i := range shipments {
		s := &shipments[i]
		key := trackingKey(s.PackageNumber)

		status, err := models.ToClientStatus(s.Status)
		if err != nil {
			return nil, errors.Wrapf(err, "shipment %s", s.PackageNumber)
		}

		rec := models.TrackingRecord{
			TrackingNumber:    key,
			Sender:            s.Sender,
			SenderPhone:       s.SenderPhone,
			Recipient:         s.Recipient,
			RecipientPhone:    s.RecipientPhone,
			Origin:            s.Origin,
			Destination:       s.Destination,
			City:              s.City,
			Address:           s.Address,
			Weight:            s.Weight,
			Product:           s.Product,
			Comment:           s.Comment,
			Price:             s.Price,
			Status:            status,
			EstimatedDelivery: s.EstimatedDelivery,
			CreatedAt:         s.CreatedAt,
			CreatedAtTime:     s.CreatedAtTime,
		}

		old, known := prev[key]

		rec.CurrentLocation = seedLocation(s, status)
		if known && old.CurrentLocation != "" {
			rec.CurrentLocation = old.CurrentLocation
		}

		if known && len(old.Events) > 0 {
			rec.Events = old.Events
		} else {
			rec.Events = []models.TrackingEvent{{
				Time:        eventTime(s, now),
				Location:    rec.CurrentLocation,
				Status:      status,
				Description: createdDescription,
			}}
		}

		out = append(out, rec)
	}
	return out, nil
}

func trackingKey(packageNumber string) string {
	return strings.ToUpper(strings.TrimSpace(packageNumber))
}

// Terminal parcels sit at their destination; everything else is reported
// from the city, falling back to the origin.
func seedLocation(s *models.ShipmentRecord, clientStatus string) string {
	if models.IsTerminalTrackingStatus(clientStatus) {
		return s.Destination
	}
	if s.City != "" {
		return s.City
	}
	return s.Origin
}

func eventTime(s *models.ShipmentRecord, now time.Time) string {
	if s.CreatedAt != "" {
		if s.CreatedAtTime != "" {
			return s.CreatedAt + " " + s.CreatedAtTime
		}
		return s.CreatedAt
	}
	return now.Format("2006-01-02 15:04")
}
