package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/trucite/trucite/internal/model"
)

// Key builds a cache key from the input fingerprint hash and the supplied
// event id. Keying on the hash makes identical re-submissions hit the same
// entry; the event id keeps caller-identified requests separate.
func Key(fingerprintHash, eventID string) string {
	return "trucite:v1:" + fingerprintHash + ":" + eventID
}

// ReportCache is an in-memory TTL cache of assembled verification reports,
// used to dedup identical re-submissions. Reports are immutable value
// objects, so entries are shared safely.
type ReportCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewReportCache creates a report cache with the given entry TTL.
func NewReportCache(ttl time.Duration) *ReportCache {
	return &ReportCache{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Get returns the cached report for key, if any.
func (c *ReportCache) Get(key string) (*model.VerificationReport, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(*model.VerificationReport), true
	}
	return nil, false
}

// Set stores a report under key with the default TTL.
func (c *ReportCache) Set(key string, report *model.VerificationReport) {
	c.cache.Set(key, report, c.ttl)
}
