package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/trucite/trucite/internal/model"
)

// ErrorHook observes persistence failures without being able to affect the
// caller. Wire it to metrics or alerting; a nil hook is a no-op.
type ErrorHook func(error)

// Sink writes audit records best-effort and asynchronously. Enqueue never
// blocks: when the queue is full, records are dropped and counted. Write
// failures are logged, reported through the hook, and swallowed — they must
// never surface in the verification result.
type Sink struct {
	store   Store
	records chan model.AuditRecord
	workers int
	hook    ErrorHook
	clock   func() time.Time

	wg      sync.WaitGroup
	dropped atomic.Int64
	failed  atomic.Int64
}

// NewSink creates a sink draining into store. queueSize bounds the buffer;
// workers sets how many writers drain it concurrently.
func NewSink(store Store, queueSize, workers int, hook ErrorHook) *Sink {
	if queueSize <= 0 {
		queueSize = 64
	}
	if workers <= 0 {
		workers = 1
	}
	return &Sink{
		store:   store,
		records: make(chan model.AuditRecord, queueSize),
		workers: workers,
		hook:    hook,
		clock:   time.Now,
	}
}

// Start launches the writer goroutines.
func (s *Sink) Start() {
	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.writer()
	}
}

func (s *Sink) writer() {
	defer s.wg.Done()

	for rec := range s.records {
		if err := s.store.SaveRecord(context.Background(), rec); err != nil {
			s.failed.Add(1)
			zap.L().Warn("audit record write failed",
				zap.String("record_id", rec.ID),
				zap.String("event_id", rec.EventID),
				zap.Error(err),
			)
			if s.hook != nil {
				s.hook(err)
			}
		}
	}
}

// Enqueue derives the flat audit records from a report and queues them for
// writing. It returns immediately; records that do not fit are dropped.
func (s *Sink) Enqueue(report *model.VerificationReport) {
	for _, rec := range RecordsFromReport(report, s.clock()) {
		select {
		case s.records <- rec:
		default:
			s.dropped.Add(1)
			zap.L().Warn("audit queue full, record dropped",
				zap.String("event_id", rec.EventID),
			)
		}
	}
}

// Dropped reports how many records were discarded because the queue was full.
func (s *Sink) Dropped() int64 {
	return s.dropped.Load()
}

// Failed reports how many records could not be written.
func (s *Sink) Failed() int64 {
	return s.failed.Load()
}

// Close drains outstanding records and stops the writers. Enqueue must not be
// called after Close.
func (s *Sink) Close() {
	close(s.records)
	s.wg.Wait()
}
