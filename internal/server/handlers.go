package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/trucite/trucite/internal/audit"
	"github.com/trucite/trucite/internal/cache"
	"github.com/trucite/trucite/internal/extract"
	"github.com/trucite/trucite/internal/pipeline"
)

const maxRequestBytes = 2 << 20

// verifyRequest is the JSON request shape. Text is a pointer so a missing
// field is distinguishable from an empty one: both are rejected, with
// different messages.
type verifyRequest struct {
	Text    *string `json:"text"`
	EventID string  `json:"event_id"`
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	text, eventID, err := decodeVerifyRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cacheKey := ""
	if s.reports != nil {
		cacheKey = cache.Key(audit.HashText(extract.Normalize(text)), eventID)
		if report, found := s.reports.Get(cacheKey); found {
			writeJSON(w, http.StatusOK, report)
			return
		}
	}

	report, err := s.pipeline.Run(text, eventID)
	if err != nil {
		var verr *pipeline.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		zap.L().Error("verification failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	// Persistence is best-effort and must never delay or fail the response.
	if s.sink != nil {
		s.sink.Enqueue(report)
	}
	if s.reports != nil {
		s.reports.Set(cacheKey, report)
	}

	writeJSON(w, http.StatusOK, report)
}

// decodeVerifyRequest accepts either a JSON body {text, event_id} or, with a
// text/html content type, a raw HTML document reduced to its visible text
// (event id via the event_id query parameter).
func decodeVerifyRequest(r *http.Request) (text, eventID string, err error) {
	body := io.LimitReader(r.Body, maxRequestBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "text/html") {
		raw, err := io.ReadAll(body)
		if err != nil {
			return "", "", fmt.Errorf("read request body: %w", err)
		}
		text, err := extract.VisibleText(string(raw))
		if err != nil {
			return "", "", fmt.Errorf("parse html body: %w", err)
		}
		return text, r.URL.Query().Get("event_id"), nil
	}

	var req verifyRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return "", "", fmt.Errorf("invalid request body: %w", err)
	}
	if req.Text == nil {
		return "", "", &pipeline.ValidationError{Reason: "text field is required"}
	}
	return *req.Text, req.EventID, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service":  "TruCite Backend",
		"status":   "ok",
		"time_utc": time.Now().UTC().Format(time.RFC3339),
		"routes":   []string{"/", "/health", "/verify"},
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<html>
<body style="background:#000;color:#f5c542;font-family:Arial;padding:40px;">
	<h1>TruCite Backend is Running</h1>
	<p>Status: Online</p>
	<p>UTC: %s</p>
	<p>Up since: %s</p>
</body>
</html>
`, time.Now().UTC().Format(time.RFC3339), s.started.Format(time.RFC3339))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("response encode failed", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
