package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rorado/colistrack/internal/labelpdf"
	"github.com/rorado/colistrack/internal/models"
	labelsvc "github.com/rorado/colistrack/internal/services/labels"
	"github.com/rorado/colistrack/internal/services/shipments"
	"github.com/rorado/colistrack/internal/services/tracking"
	"github.com/rorado/colistrack/internal/storage/filestore"
)

type testEnv struct {
	dataDir string
	srv     *httptest.Server
}

func newTestEnv(t *testing.T, limiter RateLimiter, perMin int64) *testEnv {
	t.Helper()
	dataDir := t.TempDir()

	store := filestore.New(dataDir)
	require.NoError(t, store.Init())

	shipSvc := shipments.New(store, nil, "")
	trackSvc := tracking.New(store, nil, 0)
	labelSvc := labelsvc.New(shipSvc)

	h := New(Config{
		Shipments:               shipSvc,
		Tracking:                trackSvc,
		Labels:                  labelSvc,
		Renderer:                labelpdf.New(""),
		Store:                   store,
		Limiter:                 limiter,
		LabelRateLimitPerMinute: perMin,
	})

	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return &testEnv{dataDir: dataDir, srv: srv}
}

func (e *testEnv) get(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(e.srv.URL + path)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, body
}

func (e *testEnv) put(t *testing.T, path string, payload any) (*http.Response, []byte) {
	t.Helper()
	var body bytes.Buffer
	require.NoError(t, json.NewEncoder(&body).Encode(payload))
	req, err := http.NewRequest(http.MethodPut, e.srv.URL+path, &body)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, out
}

func TestShipments_roundTrip(t *testing.T) {
	env := newTestEnv(t, nil, 0)

	resp, body := env.get(t, "/api/shipments")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got []models.ShipmentRecord
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, filestore.SeedShipments(), got)

	set := []models.ShipmentRecord{{
		ID: 10, PackageNumber: "DLV-2026-010",
		Status: models.ShipmentStatusDelivered, Destination: "Rabat", City: "Casablanca",
	}}
	resp, _ = env.put(t, "/api/shipments", set)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = env.get(t, "/api/shipments")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, set, got)
}

func TestShipments_putSyncsTracking(t *testing.T) {
	env := newTestEnv(t, nil, 0)

	set := []models.ShipmentRecord{{
		ID: 10, PackageNumber: "DLV-2026-010",
		Status: models.ShipmentStatusDelivered, Destination: "Rabat", City: "Casablanca",
	}}
	resp, _ := env.put(t, "/api/shipments", set)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := env.get(t, "/api/tracking/DLV-2026-010")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rec models.TrackingRecord
	require.NoError(t, json.Unmarshal(body, &rec))
	require.Equal(t, models.TrackingStatusDelivered, rec.Status)
	require.Equal(t, "Rabat", rec.CurrentLocation)
	require.Len(t, rec.Events, 1)
	require.Equal(t, "Colis créé", rec.Events[0].Description)
}

func TestShipments_putValidation(t *testing.T) {
	env := newTestEnv(t, nil, 0)

	bad := []models.ShipmentRecord{{ID: 1, PackageNumber: "A1", Status: "Shipped"}}
	resp, body := env.put(t, "/api/shipments", bad)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(body, &errBody))
	require.Equal(t, "shipment validation failed", errBody["message"])
	require.Contains(t, errBody["error"], "invalid shipment status")

	// Rejected writes must not touch the store.
	resp, body = env.get(t, "/api/shipments")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got []models.ShipmentRecord
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, filestore.SeedShipments(), got)
}

func TestShipments_putMalformedBody(t *testing.T) {
	env := newTestEnv(t, nil, 0)

	req, err := http.NewRequest(http.MethodPut, env.srv.URL+"/api/shipments", strings.NewReader("{not json"))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestShipments_storageFailure(t *testing.T) {
	env := newTestEnv(t, nil, 0)
	require.NoError(t, os.WriteFile(filepath.Join(env.dataDir, "shipments.json"), []byte("{broken"), 0o644))

	resp, body := env.get(t, "/api/shipments")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(body, &errBody))
	require.Equal(t, "failed to read shipments", errBody["message"])
}

func TestTracking_unknownNumber(t *testing.T) {
	env := newTestEnv(t, nil, 0)
	resp, _ := env.get(t, "/api/tracking/NOPE-404")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTracking_explicitSync(t *testing.T) {
	env := newTestEnv(t, nil, 0)

	resp, err := http.Post(env.srv.URL+"/api/tracking/sync", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var recs []models.TrackingRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recs))
	require.Len(t, recs, len(filestore.SeedShipments()))
}

func TestDrivers_roundTripAndValidation(t *testing.T) {
	env := newTestEnv(t, nil, 0)

	set := []models.DriverRecord{{ID: 1, Name: "Hassan Amrani", Status: models.DriverStatusAvailable}}
	resp, _ := env.put(t, "/api/drivers", set)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = env.put(t, "/api/drivers", []models.DriverRecord{{ID: 1, Name: "X", Status: "Sleeping"}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProfiles(t *testing.T) {
	env := newTestEnv(t, nil, 0)

	resp, body := env.get(t, "/api/profiles/admin")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var p models.Profile
	require.NoError(t, json.Unmarshal(body, &p))
	require.Equal(t, "admin@colistrack.ma", p.Email)

	p.Phone = "0522-123456"
	resp, _ = env.put(t, "/api/profiles/admin", p)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = env.get(t, "/api/profiles/manager")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLabel_fallbacksAndImages(t *testing.T) {
	env := newTestEnv(t, nil, 0)

	resp, body := env.get(t, "/label/X1?city=Fes")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload labelsvc.Payload
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Equal(t, "X1", payload.TrackingNumber)
	require.Equal(t, "Fes", payload.City)
	require.Equal(t, "—", payload.Sender)
	require.Equal(t, "1 x (1)", payload.Product)
	require.True(t, strings.HasPrefix(payload.QRCode, "data:image/png;base64,"))
	require.True(t, strings.HasPrefix(payload.Barcode, "data:image/png;base64,"))
}

func TestLabel_usesShipmentFields(t *testing.T) {
	env := newTestEnv(t, nil, 0)

	resp, body := env.get(t, "/label/DLV-2026-001?city=Fes")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload labelsvc.Payload
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Equal(t, "Rabat", payload.City) // shipment wins over query
	require.Equal(t, "Omar Benali", payload.Sender)
}

func TestLabelPDF(t *testing.T) {
	env := newTestEnv(t, nil, 0)

	resp, body := env.get(t, "/label/DLV-2026-001/pdf")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	require.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
}

type denyLimiter struct{}

func (denyLimiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error) {
	return false, limit + 1, nil
}

func TestLabelPDF_rateLimited(t *testing.T) {
	env := newTestEnv(t, denyLimiter{}, 5)

	resp, _ := env.get(t, "/label/DLV-2026-001/pdf")
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestLegacyRedirects(t *testing.T) {
	env := newTestEnv(t, nil, 0)

	client := &http.Client{CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	resp, err := client.Get(env.srv.URL + "/signin")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	require.Equal(t, "/connexion", resp.Header.Get("Location"))
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, nil, 0)
	resp, body := env.get(t, "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"status":"ok"}`, string(body))
}
