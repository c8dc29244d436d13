package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nexus-ceredi/nexus-backend-go/internal/service/audit"
)

// AuditJobs wires the absence audit into the scheduler. The job is opt-in
// (AUDIT_CRON_ENABLED) and safe to re-run: filing an absence twice for the
// same intern and day is a no-op.
type AuditJobs struct {
	auditSvc audit.Service
}

func NewAuditJobs(auditSvc audit.Service) *AuditJobs {
	return &AuditJobs{auditSvc: auditSvc}
}

func (j *AuditJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("absence_audit", 1*time.Hour, j.RunAbsenceAudit)
}

// RunAbsenceAudit audits yesterday's attendance once the day has closed.
// It only fires in the 01:00 hour; other ticks return immediately.
func (j *AuditJobs) RunAbsenceAudit(ctx context.Context) error {
	now := time.Now().UTC()
	if now.Hour() != 1 {
		return nil
	}

	yesterday := now.AddDate(0, 0, -1)
	result, err := j.auditSvc.RunAndReport(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("absence audit failed: %w", err)
	}

	slog.Info("Cron: absence audit completed",
		"date", yesterday.Format("2006-01-02"),
		"expected", len(result.Expected),
		"present", len(result.Present),
		"absent", len(result.Absent),
	)
	return nil
}
