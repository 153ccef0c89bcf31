package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nzwalks/walks-api/internal/api/metrics"
	"github.com/nzwalks/walks-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists entries to the audit
// trail store. Failures are reported to the caller (the dispatcher), which
// logs them; audit problems never surface to API clients.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, entry ports.AuditEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, &entry); err != nil {
		metrics.AuditErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("insert audit entry: %w", err)
	}

	metrics.AuditProcessedTotal.Inc()
	metrics.ResourceMutationsTotal.WithLabelValues(entry.Resource, entry.Action).Inc()

	s.log.Debug().
		Str("resource", entry.Resource).
		Str("resource_id", entry.ResourceID).
		Str("action", entry.Action).
		Str("actor", entry.Actor).
		Msg("audit entry recorded")

	return nil
}
