package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nzwalks/walks-api/internal/api/metrics"
	"github.com/nzwalks/walks-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes audit entries to a fixed set of workers using consistent
// hashing on the resource id, so the audit trail preserves per-resource
// mutation ordering. Worker lifetime is owned by Start/Stop, not by a request
// or signal context: queued entries survive until Stop has drained them.
type Dispatcher struct {
	workers []chan ports.AuditEntry
	service ports.AuditService
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AuditEntry, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines.
func (d *Dispatcher) Start() {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
}

// Stop closes the worker channels and blocks until every already-queued
// entry has been persisted. Call it only after the producers have stopped;
// Record panics once Stop has run.
func (d *Dispatcher) Stop() {
	for _, ch := range d.workers {
		close(ch)
	}
	d.wg.Wait()
}

// Record sends an entry to the worker responsible for its resource id.
// Non-blocking up to channelBuffer capacity. Satisfies ports.AuditRecorder.
func (d *Dispatcher) Record(entry ports.AuditEntry) {
	i := d.shardIndex(entry.ResourceID)
	d.workers[i] <- entry
	metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a resource id deterministically to a worker index.
func (d *Dispatcher) shardIndex(resourceID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(resourceID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(id int, ch <-chan ports.AuditEntry) {
	defer d.wg.Done()
	gauge := metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id))
	for entry := range ch {
		// The store call carries its own timeout, so draining after the
		// process-wide context is cancelled still persists each entry.
		if err := d.service.Process(context.Background(), entry); err != nil {
			d.log.Error().Err(err).
				Str("resource", entry.Resource).
				Str("resource_id", entry.ResourceID).
				Int("worker_id", id).
				Msg("audit recording failed")
		}
		gauge.Set(float64(len(ch)))
	}
}
