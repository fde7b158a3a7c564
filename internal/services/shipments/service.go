package shipments

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/rorado/colistrack/internal/broker/messages"
	"github.com/rorado/colistrack/internal/models"
	"github.com/rorado/colistrack/internal/services/tracksync"
)

type Repository interface {
	ReadShipments() ([]models.ShipmentRecord, error)
	WriteShipments(records []models.ShipmentRecord) error
	ReadTracking() ([]models.TrackingRecord, error)
	WriteTracking(records []models.TrackingRecord) error
}

type Producer interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}

// Service owns the canonical shipment set. Every replace re-projects the
// client tracking view and, when a broker is configured, announces the
// sync on the tracking.synced topic.
type Service struct {
	repo     Repository
	producer Producer // optional
	topic    string

	now func() time.Time
}

func New(repo Repository, producer Producer, topic string) *Service {
	return &Service{
		repo:     repo,
		producer: producer,
		topic:    topic,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) ReadAll(ctx context.Context) ([]models.ShipmentRecord, error) {
	return s.repo.ReadShipments()
}

// ReplaceAll validates the whole set, replaces the store contents and
// rebuilds the tracking projection. Any invalid record rejects the entire
// write; nothing is partially accepted.
func (s *Service) ReplaceAll(ctx context.Context, records []models.ShipmentRecord) error {
	if records == nil {
		return errors.New("shipments payload is required")
	}
	if err := models.ValidateShipments(records); err != nil {
		return err
	}
	if err := s.repo.WriteShipments(records); err != nil {
		return err
	}
	_, err := s.resync(ctx, records)
	return err
}

// GetByPackageNumber returns the first shipment whose package number
// matches exactly (case-sensitive). Under the uniqueness invariant the
// first match is the only match.
func (s *Service) GetByPackageNumber(ctx context.Context, number string) (*models.ShipmentRecord, bool, error) {
	all, err := s.repo.ReadShipments()
	if err != nil {
		return nil, false, err
	}
	for i := range all {
		if all[i].PackageNumber == number {
			return &all[i], true, nil
		}
	}
	return nil, false, nil
}

// SyncTracking re-projects tracking from the current shipment set without
// modifying shipments. Exposed for the explicit resync endpoint.
func (s *Service) SyncTracking(ctx context.Context) ([]models.TrackingRecord, error) {
	all, err := s.repo.ReadShipments()
	if err != nil {
		return nil, err
	}
	return s.resync(ctx, all)
}

func (s *Service) resync(ctx context.Context, shipments []models.ShipmentRecord) ([]models.TrackingRecord, error) {
	existing, err := s.repo.ReadTracking()
	if err != nil {
		return nil, err
	}
	synced, err := tracksync.Sync(shipments, existing, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.WriteTracking(synced); err != nil {
		return nil, err
	}
	s.publishSynced(ctx, shipments, existing, synced)
	return synced, nil
}

// publishSynced is best-effort: a broker failure must never fail the
// write that triggered it.
func (s *Service) publishSynced(ctx context.Context, shipments []models.ShipmentRecord, before, after []models.TrackingRecord) {
	if s.producer == nil || s.topic == "" {
		return
	}

	known := make(map[string]struct{}, len(before))
	for i := range before {
		known[before[i].TrackingNumber] = struct{}{}
	}
	kept := make(map[string]struct{}, len(after))
	var created []string
	for i := range after {
		kept[after[i].TrackingNumber] = struct{}{}
		if _, ok := known[after[i].TrackingNumber]; !ok {
			created = append(created, after[i].TrackingNumber)
		}
	}
	var dropped []string
	for i := range before {
		if _, ok := kept[before[i].TrackingNumber]; !ok {
			dropped = append(dropped, before[i].TrackingNumber)
		}
	}

	msg := messages.TrackingSynced{
		SyncedAt:      s.now(),
		ShipmentCount: len(shipments),
		TrackingCount: len(after),
		Created:       created,
		Dropped:       dropped,
	}
	value, err := json.Marshal(msg)
	if err != nil {
		slog.Warn("marshal tracking.synced", "err", err)
		return
	}
	if err := s.producer.Publish(ctx, s.topic, []byte("tracking.synced"), value); err != nil {
		slog.Warn("publish tracking.synced", "err", err)
	}
}
