package labels

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/rorado/colistrack/internal/models"
)

// Placeholders used when neither the shipment nor the query fallback
// carries a value.
const (
	placeholderDash    = "—"
	placeholderProduct = "1 x (1)"
)

// Payload is the flat, ephemeral label payload: everything the renderer
// needs, images included. Never persisted.
type Payload struct {
	TrackingNumber string `json:"trackingNumber"`
	Sender         string `json:"sender"`
	SenderPhone    string `json:"senderPhone"`
	Recipient      string `json:"recipient"`
	RecipientPhone string `json:"recipientPhone"`
	City           string `json:"city"`
	Address        string `json:"address"`
	Price          string `json:"price"`
	Comment        string `json:"comment"`
	Product        string `json:"product"`
	CreatedAt      string `json:"createdAt"`
	CreatedAtTime  string `json:"createdAtTime"`

	QRCode  string `json:"qrCode"`  // PNG data URI
	Barcode string `json:"barcode"` // PNG data URI, Code128
}

type ShipmentSource interface {
	GetByPackageNumber(ctx context.Context, number string) (*models.ShipmentRecord, bool, error)
}

type Service struct {
	shipments ShipmentSource
}

func New(shipments ShipmentSource) *Service {
	return &Service{shipments: shipments}
}

// BuildLabel assembles the label payload for a tracking number. Field
// precedence: shipment value (trimmed, non-empty) over query fallback
// over placeholder. A code with no shipment still gets a label (the
// client portal prints labels for its seed list). A failed image encode
// fails the whole request.
func (s *Service) BuildLabel(ctx context.Context, trackingNumber string, queryFallback map[string]string) (*Payload, error) {
	var rec *models.ShipmentRecord
	found := false
	if s.shipments != nil {
		var err error
		rec, found, err = s.shipments.GetByPackageNumber(ctx, trackingNumber)
		if err != nil {
			return nil, err
		}
	}
	if !found {
		rec = &models.ShipmentRecord{}
	}

	pick := func(fromShipment, key, placeholder string) string {
		if v := strings.TrimSpace(fromShipment); v != "" {
			return v
		}
		if v := strings.TrimSpace(queryFallback[key]); v != "" {
			return v
		}
		return placeholder
	}

	p := &Payload{
		TrackingNumber: trackingNumber,
		Sender:         pick(rec.Sender, "sender", placeholderDash),
		SenderPhone:    pick(rec.SenderPhone, "senderPhone", placeholderDash),
		Recipient:      pick(rec.Recipient, "recipient", placeholderDash),
		RecipientPhone: pick(rec.RecipientPhone, "recipientPhone", placeholderDash),
		City:           pick(rec.City, "city", placeholderDash),
		Address:        pick(rec.Address, "address", placeholderDash),
		Price:          pick(rec.Price, "price", placeholderDash),
		Comment:        pick(rec.Comment, "comment", placeholderDash),
		Product:        pick(rec.Product, "product", placeholderProduct),
		CreatedAt:      pick(rec.CreatedAt, "createdAt", placeholderDash),
		CreatedAtTime:  pick(rec.CreatedAtTime, "createdAtTime", placeholderDash),
	}

	qr, err := qrPNGDataURI(trackingNumber)
	if err != nil {
		return nil, errors.Wrap(err, "encode qr")
	}
	bc, err := code128PNGDataURI(trackingNumber)
	if err != nil {
		return nil, errors.Wrap(err, "encode barcode")
	}
	p.QRCode = qr
	p.Barcode = bc

	return p, nil
}
