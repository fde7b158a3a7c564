package filestore

import "github.com/rorado/colistrack/internal/models"

// Fixture data written on first start. Mirrors the demo data the portals
// expect, so a fresh install renders non-empty tables.

func SeedShipments() []models.ShipmentRecord {
	return []models.ShipmentRecord{
		{
			ID: 1, PackageNumber: "DLV-2026-001",
			Sender: "Omar Benali", SenderPhone: "0661-234567",
			Recipient: "Sara El Idrissi", RecipientPhone: "0662-345678",
			Origin: "Casablanca", Destination: "Rabat", City: "Rabat",
			Address: "12 Avenue Mohammed V", Weight: "2.5 kg",
			Product: "2 x (Chaussures)", Comment: "Appeler avant livraison",
			Price: "120 DH", Status: models.ShipmentStatusInTransit,
			Driver: "Hassan Amrani", EstimatedDelivery: "2026-02-12",
			CreatedAt: "2026-02-10", CreatedAtTime: "09:15",
		},
		{
			ID: 2, PackageNumber: "DLV-2026-002",
			Sender: "Nadia Tazi", SenderPhone: "0663-456789",
			Recipient: "Karim Fassi", RecipientPhone: "0664-567890",
			Origin: "Casablanca", Destination: "Marrakech", City: "Marrakech",
			Address: "45 Rue de la Kasbah", Weight: "1.0 kg",
			Product: "1 x (Livre)", Comment: "",
			Price: "80 DH", Status: models.ShipmentStatusPending,
			Driver: "", EstimatedDelivery: "2026-02-14",
			CreatedAt: "2026-02-11", CreatedAtTime: "11:40",
		},
		{
			ID: 3, PackageNumber: "DLV-2026-003",
			Sender: "Youssef Alaoui", SenderPhone: "0665-678901",
			Recipient: "Fatima Zahra Bennis", RecipientPhone: "0666-789012",
			Origin: "Tanger", Destination: "Fès", City: "Fès",
			Address: "8 Boulevard Hassan II", Weight: "4.2 kg",
			Product: "3 x (Vêtements)", Comment: "Fragile",
			Price: "150 DH", Status: models.ShipmentStatusOutForDelivery,
			Driver: "Rachid Belkadi", EstimatedDelivery: "2026-02-11",
			CreatedAt: "2026-02-09", CreatedAtTime: "16:05",
		},
		{
			ID: 4, PackageNumber: "DLV-2026-004",
			Sender: "Leila Chraibi", SenderPhone: "0667-890123",
			Recipient: "Mehdi Ouazzani", RecipientPhone: "0668-901234",
			Origin: "Rabat", Destination: "Agadir", City: "Agadir",
			Address: "23 Avenue du Prince Héritier", Weight: "0.8 kg",
			Product: "1 x (Parfum)", Comment: "",
			Price: "95 DH", Status: models.ShipmentStatusDelivered,
			Driver: "Hassan Amrani", EstimatedDelivery: "2026-02-08",
			CreatedAt: "2026-02-06", CreatedAtTime: "10:20",
		},
		{
			ID: 5, PackageNumber: "DLV-2026-005",
			Sender: "Amine Berrada", SenderPhone: "0669-012345",
			Recipient: "Salma Kettani", RecipientPhone: "0660-123456",
			Origin: "Casablanca", Destination: "Oujda", City: "Oujda",
			Address: "67 Rue Al Massira", Weight: "3.1 kg",
			Product: "1 x (Électronique)", Comment: "Adresse introuvable",
			Price: "200 DH", Status: models.ShipmentStatusFailed,
			Driver: "Rachid Belkadi", EstimatedDelivery: "2026-02-09",
			CreatedAt: "2026-02-07", CreatedAtTime: "13:55",
		},
	}
}

// SeedTracking includes one code with no matching shipment; the client
// portal can still render it and print its label from fallbacks.
func SeedTracking() []models.TrackingRecord {
	return []models.TrackingRecord{
		{
			TrackingNumber:  "CLT-2026-777",
			Recipient:       "Client de démonstration",
			City:            "Casablanca",
			Status:          models.TrackingStatusPending,
			CurrentLocation: "Casablanca",
			Events: []models.TrackingEvent{
				{
					Time:        "2026-02-01 08:00",
					Location:    "Casablanca",
					Status:      models.TrackingStatusPending,
					Description: "Colis créé",
				},
			},
		},
	}
}

func SeedDrivers() []models.DriverRecord {
	return []models.DriverRecord{
		{ID: 1, Name: "Hassan Amrani", Phone: "0671-111222", License: "B-448812", City: "Casablanca", Status: models.DriverStatusOnDelivery, JoinedAt: "2024-06-01"},
		{ID: 2, Name: "Rachid Belkadi", Phone: "0672-333444", License: "B-551190", City: "Rabat", Status: models.DriverStatusAvailable, JoinedAt: "2025-01-15"},
		{ID: 3, Name: "Mounir Sefrioui", Phone: "0673-555666", License: "C-102238", City: "Marrakech", Status: models.DriverStatusOffDuty, JoinedAt: "2023-11-20"},
	}
}

func SeedVehicles() []models.VehicleRecord {
	return []models.VehicleRecord{
		{ID: 1, Plate: "12345-A-6", Model: "Renault Kangoo", Capacity: "800 kg", Status: models.VehicleStatusActive},
		{ID: 2, Plate: "67890-B-1", Model: "Dacia Dokker", Capacity: "750 kg", Status: models.VehicleStatusActive},
		{ID: 3, Plate: "24680-A-20", Model: "Mercedes Sprinter", Capacity: "1500 kg", Status: models.VehicleStatusMaintenance},
	}
}

func SeedCustomers() []models.CustomerRecord {
	return []models.CustomerRecord{
		{ID: 1, Name: "Omar Benali", Phone: "0661-234567", Email: "omar.benali@example.ma", City: "Casablanca", Address: "3 Rue Ibn Batouta", Status: models.CustomerStatusActive},
		{ID: 2, Name: "Nadia Tazi", Phone: "0663-456789", Email: "nadia.tazi@example.ma", City: "Casablanca", Address: "18 Boulevard Zerktouni", Status: models.CustomerStatusActive},
		{ID: 3, Name: "Youssef Alaoui", Phone: "0665-678901", Email: "y.alaoui@example.ma", City: "Tanger", Address: "52 Avenue des FAR", Status: models.CustomerStatusInactive},
	}
}

func SeedProfiles() map[string]*models.Profile {
	return map[string]*models.Profile{
		models.ProfileAdmin: {
			Name: "Administrateur", Email: "admin@colistrack.ma",
			Phone: "0522-000111", Company: "ColisTrack", Password: "admin123",
		},
		models.ProfileClient: {
			Name: "Client Démo", Email: "client@colistrack.ma",
			Phone: "0522-000222", Company: "", Password: "client123",
		},
		models.ProfileDelivery: {
			Name: "Livreur Démo", Email: "livreur@colistrack.ma",
			Phone: "0522-000333", Company: "ColisTrack", Password: "livreur123",
		},
	}
}
