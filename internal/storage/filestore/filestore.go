package filestore

import (
	"github.com/pkg/errors"

	"github.com/rorado/colistrack/internal/models"
	"github.com/rorado/colistrack/internal/storage/jsonfile"
)

// Entity file names under the data directory.
const (
	fileShipments = "shipments"
	fileTracking  = "client-tracking"
	fileDrivers   = "drivers"
	fileVehicles  = "vehicles"
	fileCustomers = "customers"
)

func profileFile(kind string) string {
	return "profile-" + kind
}

// Storage is the typed flat-file repository set. Every entity lives in
// its own JSON file; reads and writes go through jsonfile.Store.
type Storage struct {
	store *jsonfile.Store
}

func New(dataDir string) *Storage {
	return &Storage{store: jsonfile.New(dataDir)}
}

// Init seeds every entity file that does not exist yet. Idempotent;
// called once at startup.
func (s *Storage) Init() error {
	if err := s.store.EnsureSeeded(fileShipments, SeedShipments()); err != nil {
		return err
	}
	if err := s.store.EnsureSeeded(fileTracking, SeedTracking()); err != nil {
		return err
	}
	if err := s.store.EnsureSeeded(fileDrivers, SeedDrivers()); err != nil {
		return err
	}
	if err := s.store.EnsureSeeded(fileVehicles, SeedVehicles()); err != nil {
		return err
	}
	if err := s.store.EnsureSeeded(fileCustomers, SeedCustomers()); err != nil {
		return err
	}
	for kind, p := range SeedProfiles() {
		if err := s.store.EnsureSeeded(profileFile(kind), p); err != nil {
			return err
		}
	}
	return nil
}

// ReadShipments returns the stored shipment set. An empty array re-seeds
// the file with the fixture list and returns it, so a wiped store comes
// back in a usable state.
func (s *Storage) ReadShipments() ([]models.ShipmentRecord, error) {
	var out []models.ShipmentRecord
	if err := s.store.Read(fileShipments, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		out = SeedShipments()
		if err := s.store.Write(fileShipments, out); err != nil {
			return nil, errors.Wrap(err, "reseed shipments")
		}
	}
	return out, nil
}

// WriteShipments replaces the shipment set wholesale. Validation happens
// in the shipments service before this is called.
func (s *Storage) WriteShipments(records []models.ShipmentRecord) error {
	return s.store.Write(fileShipments, records)
}

func (s *Storage) ReadTracking() ([]models.TrackingRecord, error) {
	var out []models.TrackingRecord
	if err := s.store.Read(fileTracking, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Storage) WriteTracking(records []models.TrackingRecord) error {
	return s.store.Write(fileTracking, records)
}

func (s *Storage) ReadDrivers() ([]models.DriverRecord, error) {
	var out []models.DriverRecord
	if err := s.store.Read(fileDrivers, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Storage) WriteDrivers(records []models.DriverRecord) error {
	return s.store.Write(fileDrivers, records)
}

func (s *Storage) ReadVehicles() ([]models.VehicleRecord, error) {
	var out []models.VehicleRecord
	if err := s.store.Read(fileVehicles, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Storage) WriteVehicles(records []models.VehicleRecord) error {
	return s.store.Write(fileVehicles, records)
}

func (s *Storage) ReadCustomers() ([]models.CustomerRecord, error) {
	var out []models.CustomerRecord
	if err := s.store.Read(fileCustomers, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Storage) WriteCustomers(records []models.CustomerRecord) error {
	return s.store.Write(fileCustomers, records)
}

func (s *Storage) ReadProfile(kind string) (*models.Profile, error) {
	if !models.IsProfileKind(kind) {
		return nil, errors.Errorf("unknown profile kind %q", kind)
	}
	var p models.Profile
	if err := s.store.Read(profileFile(kind), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) WriteProfile(kind string, p *models.Profile) error {
	if !models.IsProfileKind(kind) {
		return errors.Errorf("unknown profile kind %q", kind)
	}
	return s.store.Write(profileFile(kind), p)
}
