package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trucite/trucite/internal/audit"
	"github.com/trucite/trucite/internal/cache"
	"github.com/trucite/trucite/internal/match"
	"github.com/trucite/trucite/internal/model"
	"github.com/trucite/trucite/internal/pipeline"
	"github.com/trucite/trucite/internal/score"
	"github.com/trucite/trucite/internal/store"
)

func testServerConfig() model.ServerConfig {
	return model.ServerConfig{
		Port:            0,
		RatePerSecond:   1000,
		RateBurst:       1000,
		AllowedOrigins:  []string{"*"},
		ShutdownTimeout: time.Second,
	}
}

func newTestServer(t *testing.T, sink *store.Sink, reports *cache.ReportCache, cfg model.ServerConfig) *httptest.Server {
	t.Helper()

	clock := func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	gen := audit.NewGenerator("claim-engine/v2", clock)
	p := pipeline.New(gen, match.NewMatcher(nil), score.ConstantScorer{}, nil)

	ts := httptest.NewServer(New(p, sink, reports, cfg).Router())
	t.Cleanup(ts.Close)
	return ts
}

func postVerify(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/verify", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeReport(t *testing.T, resp *http.Response) model.VerificationReport {
	t.Helper()
	var report model.VerificationReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	return report
}

func TestVerify_HappyPath(t *testing.T) {
	ts := newTestServer(t, nil, nil, testServerConfig())

	resp := postVerify(t, ts, `{"text":"The Moon is made of rock."}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	report := decodeReport(t, resp)
	require.Len(t, report.Claims, 1)
	assert.Equal(t, "c1", report.Claims[0].ID)
	assert.Equal(t, model.ClaimTypeFactual, report.Claims[0].Type)
	assert.Equal(t, 54, report.Score)
	assert.Equal(t, "Questionable / High Uncertainty", report.Verdict)
	assert.Equal(t, "cec02116c23c722c35efcc4318e20201d5b62ab6f1fe6e5e4dfdf87f164490ff", report.AuditFingerprint.Hash)
	assert.NotEmpty(t, report.EventID)
	require.Len(t, report.References, 1)
	assert.Equal(t, "NASA Lunar Science", report.References[0].Source)
}

func TestVerify_EventIDPassthrough(t *testing.T) {
	ts := newTestServer(t, nil, nil, testServerConfig())

	resp := postVerify(t, ts, `{"text":"some text","event_id":"abc-123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc-123", decodeReport(t, resp).EventID)
}

func TestVerify_MissingTextField(t *testing.T) {
	ts := newTestServer(t, nil, nil, testServerConfig())

	resp := postVerify(t, ts, `{"event_id":"abc"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "text field is required")
}

func TestVerify_EmptyAndWhitespaceText(t *testing.T) {
	ts := newTestServer(t, nil, nil, testServerConfig())

	for _, body := range []string{`{"text":""}`, `{"text":"   \n\t "}`} {
		resp := postVerify(t, ts, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body: %s", body)
	}
}

func TestVerify_InvalidJSON(t *testing.T) {
	ts := newTestServer(t, nil, nil, testServerConfig())

	resp := postVerify(t, ts, `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVerify_HTMLBody(t *testing.T) {
	ts := newTestServer(t, nil, nil, testServerConfig())

	doc := `<html><body><p>The Moon is a satellite.</p><script>ignored()</script></body></html>`
	resp, err := http.Post(ts.URL+"/verify?event_id=html-1", "text/html", strings.NewReader(doc))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	report := decodeReport(t, resp)
	assert.Equal(t, "html-1", report.EventID)
	require.Len(t, report.Claims, 1)
	assert.Equal(t, "The Moon is a satellite.", report.Claims[0].Text)
}

func TestVerify_CachedResubmission(t *testing.T) {
	reports := cache.NewReportCache(time.Minute)
	ts := newTestServer(t, nil, reports, testServerConfig())

	first := decodeReport(t, postVerify(t, ts, `{"text":"The Moon is made of rock."}`))
	second := decodeReport(t, postVerify(t, ts, `{"text":"The Moon is made of rock."}`))

	// The second submission hits the cache: same report, same generated event id.
	assert.Equal(t, first.EventID, second.EventID)
}

func TestVerify_PersistsAuditRecords(t *testing.T) {
	st, err := store.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate(context.Background()))

	sink := store.NewSink(st, 16, 1, nil)
	sink.Start()

	ts := newTestServer(t, sink, nil, testServerConfig())

	resp := postVerify(t, ts, `{"text":"The Moon is a satellite. It orbits Earth.","event_id":"evt-persist"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	sink.Close() // drain

	records, err := st.RecordsByEvent(context.Background(), "evt-persist")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "The Moon is a satellite.", records[0].ClaimText)
	assert.Equal(t, 54, records[0].Score)
}

func TestRateLimit(t *testing.T) {
	cfg := testServerConfig()
	cfg.RatePerSecond = 0
	cfg.RateBurst = 1
	ts := newTestServer(t, nil, nil, cfg)

	first := postVerify(t, ts, `{"text":"some text"}`)
	assert.Equal(t, http.StatusOK, first.StatusCode)

	second := postVerify(t, ts, `{"text":"some text"}`)
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil, nil, testServerConfig())

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Service string   `json:"service"`
		Status  string   `json:"status"`
		TimeUTC string   `json:"time_utc"`
		Routes  []string `json:"routes"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "TruCite Backend", body.Service)
	assert.Equal(t, "ok", body.Status)
	assert.Contains(t, body.Routes, "/verify")
}

func TestRoot_StatusPage(t *testing.T) {
	ts := newTestServer(t, nil, nil, testServerConfig())

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "TruCite Backend is Running")
}
