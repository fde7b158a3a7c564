package tracksync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rorado/colistrack/internal/models"
)

var syncNow = time.Date(2026, 2, 15, 10, 30, 0, 0, time.UTC)

func TestSync_seedsNewRecord(t *testing.T) {
	shipments := []models.ShipmentRecord{{
		ID:            10,
		PackageNumber: "DLV-2026-010",
		Status:        models.ShipmentStatusDelivered,
		Destination:   "Rabat",
		City:          "Casablanca",
		CreatedAt:     "2026-02-10",
		CreatedAtTime: "09:15",
	}}

	out, err := Sync(shipments, nil, syncNow)
	require.NoError(t, err)
	require.Len(t, out, 1)

	rec := out[0]
	require.Equal(t, "DLV-2026-010", rec.TrackingNumber)
	require.Equal(t, models.TrackingStatusDelivered, rec.Status)
	// Terminal status: location is the destination, not the city.
	require.Equal(t, "Rabat", rec.CurrentLocation)
	require.Len(t, rec.Events, 1)
	require.Equal(t, "Colis créé", rec.Events[0].Description)
	require.Equal(t, models.TrackingStatusDelivered, rec.Events[0].Status)
	require.Equal(t, "Rabat", rec.Events[0].Location)
	require.Equal(t, "2026-02-10 09:15", rec.Events[0].Time)
}

func TestSync_nonTerminalUsesCityThenOrigin(t *testing.T) {
	out, err := Sync([]models.ShipmentRecord{{
		ID: 1, PackageNumber: "A1", Status: models.ShipmentStatusInTransit,
		Origin: "Tanger", City: "Fès", Destination: "Oujda",
	}}, nil, syncNow)
	require.NoError(t, err)
	require.Equal(t, "Fès", out[0].CurrentLocation)

	out, err = Sync([]models.ShipmentRecord{{
		ID: 1, PackageNumber: "A1", Status: models.ShipmentStatusInTransit,
		Origin: "Tanger", Destination: "Oujda",
	}}, nil, syncNow)
	require.NoError(t, err)
	require.Equal(t, "Tanger", out[0].CurrentLocation)
}

func TestSync_preservesHistoryAndLocation(t *testing.T) {
	existing := []models.TrackingRecord{{
		TrackingNumber:  "DLV-2026-001",
		Status:          models.TrackingStatusPending,
		Price:           "80 DH",
		CurrentLocation: "Casablanca",
		Events: []models.TrackingEvent{
			{Time: "2026-02-10 09:15", Location: "Casablanca", Status: models.TrackingStatusPending, Description: "Colis créé"},
			{Time: "2026-02-11 08:00", Location: "Casablanca", Status: models.TrackingStatusInTransit, Description: "Départ du dépôt"},
		},
	}}
	shipments := []models.ShipmentRecord{{
		ID:            1,
		PackageNumber: "dlv-2026-001", // matches case-insensitively
		Status:        models.ShipmentStatusOutForDelivery,
		City:          "Rabat",
		Price:         "120 DH",
	}}

	out, err := Sync(shipments, existing, syncNow)
	require.NoError(t, err)
	require.Len(t, out, 1)

	rec := out[0]
	// Scalars overwritten from the shipment.
	require.Equal(t, models.TrackingStatusOutForDelivery, rec.Status)
	require.Equal(t, "120 DH", rec.Price)
	// History and location untouched despite the new city.
	require.Equal(t, "Casablanca", rec.CurrentLocation)
	require.Equal(t, existing[0].Events, rec.Events)
}

func TestSync_reseedsEmptyHistory(t *testing.T) {
	existing := []models.TrackingRecord{{
		TrackingNumber: "DLV-2026-002",
		Events:         nil,
	}}
	shipments := []models.ShipmentRecord{{
		ID: 2, PackageNumber: "DLV-2026-002",
		Status: models.ShipmentStatusPending, City: "Marrakech",
	}}

	out, err := Sync(shipments, existing, syncNow)
	require.NoError(t, err)
	require.Len(t, out[0].Events, 1)
	require.Equal(t, "Colis créé", out[0].Events[0].Description)
	require.Equal(t, "2026-02-15 10:30", out[0].Events[0].Time)
}

func TestSync_dropsOrphans(t *testing.T) {
	existing := []models.TrackingRecord{
		{TrackingNumber: "KEEP-1", Events: []models.TrackingEvent{{Description: "Colis créé"}}},
		{TrackingNumber: "GONE-1", Events: []models.TrackingEvent{{Description: "Colis créé"}}},
	}
	shipments := []models.ShipmentRecord{{
		ID: 1, PackageNumber: "KEEP-1", Status: models.ShipmentStatusPending, City: "Rabat",
	}}

	out, err := Sync(shipments, existing, syncNow)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "KEEP-1", out[0].TrackingNumber)
}

func TestSync_unmappedStatus(t *testing.T) {
	_, err := Sync([]models.ShipmentRecord{{
		ID: 1, PackageNumber: "X", Status: "Lost",
	}}, nil, syncNow)
	require.Error(t, err)
}
