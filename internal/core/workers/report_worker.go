package workers

import (
	"context"
	"errors"
	"log"

	"github.com/comitanigiacomo/kanso-ledger/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
)

const queueSize = 100

// ReportCache stores generated feedback reports per identity.
type ReportCache interface {
	Get(ctx context.Context, identity string) (*analytics.Report, bool)
	Set(ctx context.Context, identity string, report *analytics.Report)
	Invalidate(ctx context.Context, identity string)
}

type ReportJob struct {
	Identity string
}

// ReportWorker rebuilds feedback reports off the request path.
type ReportWorker struct {
	repo    domain.LedgerRepository
	reports ReportCache
	jobs    chan ReportJob
}

func NewReportWorker(repo domain.LedgerRepository, reports ReportCache) *ReportWorker {
	return &ReportWorker{
		repo:    repo,
		reports: reports,
		jobs:    make(chan ReportJob, queueSize),
	}
}

func (w *ReportWorker) Start(ctx context.Context) {
	go func() {
		log.Println("[WORKER] Report worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("[WORKER] Report worker shutting down...")
				return
			}
		}
	}()
}

// Enqueue never blocks. It reports false when the queue is full and the job
// was dropped.
func (w *ReportWorker) Enqueue(identity string) bool {
	select {
	case w.jobs <- ReportJob{Identity: identity}:
		return true
	default:
		log.Printf("[WORKER] Queue full! Dropping report job for %s", identity)
		return false
	}
}

func (w *ReportWorker) processJob(ctx context.Context, job ReportJob) {
	ledger, err := w.repo.Load(ctx, job.Identity)
	if err != nil && !errors.Is(err, domain.ErrLedgerNotFound) && !errors.Is(err, domain.ErrCorruptLedger) {
		log.Printf("[WORKER] Error loading ledger for %s: %v", job.Identity, err)
		return
	}

	report := analytics.GenerateFeedback(ledger)
	w.reports.Set(ctx, job.Identity, &report)
	log.Printf("[WORKER] Report rebuilt for %s: grade=%s", job.Identity, report.Overall.Grade)
}
