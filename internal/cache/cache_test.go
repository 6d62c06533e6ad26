package cache

import (
	"testing"
	"time"

	"github.com/trucite/trucite/internal/model"
)

func TestReportCache_RoundTrip(t *testing.T) {
	c := NewReportCache(time.Minute)
	report := &model.VerificationReport{EventID: "evt-1", Score: 54}

	key := Key("abc123", "evt-1")
	c.Set(key, report)

	got, found := c.Get(key)
	if !found {
		t.Fatal("Expected cache hit")
	}
	if got.EventID != "evt-1" || got.Score != 54 {
		t.Errorf("Expected cached report back, got %+v", got)
	}
}

func TestReportCache_Miss(t *testing.T) {
	c := NewReportCache(time.Minute)

	if _, found := c.Get(Key("nope", "")); found {
		t.Error("Expected cache miss")
	}
}

func TestKey_SeparatesEventIDs(t *testing.T) {
	if Key("samehash", "evt-1") == Key("samehash", "evt-2") {
		t.Error("Expected different keys for different event ids")
	}
	if Key("samehash", "") != Key("samehash", "") {
		t.Error("Expected stable keys")
	}
}
