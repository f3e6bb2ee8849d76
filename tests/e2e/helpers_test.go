//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/fieldpost/backend/internal/adapter/blob"
	entryrepo "github.com/fieldpost/backend/internal/adapter/postgres/entry"
	settingsrepo "github.com/fieldpost/backend/internal/adapter/postgres/settings"
	"github.com/fieldpost/backend/internal/adapter/postgres/testhelper"
	"github.com/fieldpost/backend/internal/domain"
	entrysvc "github.com/fieldpost/backend/internal/service/entry"
	settingssvc "github.com/fieldpost/backend/internal/service/settings"
	"github.com/fieldpost/backend/internal/sweeper"
	"github.com/fieldpost/backend/internal/transport/middleware"
	"github.com/fieldpost/backend/internal/transport/rest"
)

// testRestoreTTL is the grace window used by every test server.
const testRestoreTTL = time.Hour

// stubConfidence backs the fake provider's fixed answer.
var stubConfidence = 0.87

// stubClassifier replaces the vision provider so ingestion runs without
// network access. Every upload classifies to the same fixed result.
type stubClassifier struct{}

func (stubClassifier) Classify(_ context.Context, _ []byte, _ string) (*domain.Classification, error) {
	return &domain.Classification{
		Label:       "Vintage Compass",
		Description: "A brass pocket compass with a cracked glass face.",
		Confidence:  &stubConfidence,
		Tags:        []string{"navigation", "brass"},
		Raw:         json.RawMessage(`{"stub":true}`),
	}, nil
}

// testServer bundles the running HTTP server with direct handles used for
// assertions and for driving the sweeper by hand.
type testServer struct {
	URL     string
	Client  *http.Client
	Pool    *pgxpool.Pool
	Sweeper *sweeper.Sweeper
}

// setupTestServer wires the real repository, blob, and service stack against
// the shared test database, with only the classifier stubbed out. The
// collection starts empty and private.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	testhelper.ResetData(t, pool)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	entryRepo := entryrepo.New(pool)
	settingsRepo := settingsrepo.New(pool)
	require.NoError(t, settingsRepo.Ensure(context.Background()))

	blobStore, err := blob.NewFSStore(t.TempDir())
	require.NoError(t, err)

	entryService := entrysvc.NewService(
		logger, entryRepo, blobStore, stubClassifier{}, settingsRepo, testRestoreTTL,
	)
	settingsService := settingssvc.NewService(logger, settingsRepo)

	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, "stub-model", "e2e"),
		Settings: rest.NewSettingsHandler(settingsService, logger),
		Entries:  rest.NewEntryHandler(entryService, 10<<20, logger),
		Media:    rest.NewMediaHandler(entryService, logger),
	})

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:     srv.URL,
		Client:  srv.Client(),
		Pool:    pool,
		Sweeper: sweeper.New(logger, entryRepo, blobStore, testRestoreTTL, time.Minute),
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// uploadPNG ingests a capture through POST /api/entries and returns the
// entry detail from the response.
func (ts *testServer) uploadPNG(t *testing.T) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="capture.png"`)
	header.Set("Content-Type", "image/png")

	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 1, 2, 3, 4})
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := ts.Client.Post(ts.URL+"/api/entries", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Entry map[string]any `json:"entry"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Entry["id"])

	return body.Entry
}

// getObject GETs a path and decodes the response body as a JSON object.
func (ts *testServer) getObject(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// getArray GETs a path expecting a JSON array. Fails the test on any
// non-200 status.
func (ts *testServer) getArray(t *testing.T, path string) []any {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// postObject POSTs a JSON payload (nil for an empty body) and decodes the
// response object.
func (ts *testServer) postObject(t *testing.T, path string, payload any) (int, map[string]any) {
	t.Helper()
	return ts.sendObject(t, http.MethodPost, path, payload)
}

// putObject PUTs a JSON payload and decodes the response object.
func (ts *testServer) putObject(t *testing.T, path string, payload any) (int, map[string]any) {
	t.Helper()
	return ts.sendObject(t, http.MethodPut, path, payload)
}

func (ts *testServer) sendObject(t *testing.T, method, path string, payload any) (int, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// entryID extracts the id field from an entry object.
func entryID(t *testing.T, entry map[string]any) string {
	t.Helper()

	id, ok := entry["id"].(string)
	require.True(t, ok, "expected string id in entry")
	return id
}
