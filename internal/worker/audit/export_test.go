package audit

import (
	"context"
	"time"
)

func (w *AuditWorker) ProcessBatch(ctx context.Context) (int, error) {
	return w.processBatch(ctx)
}

func (w *AuditWorker) ClaimPending(ctx context.Context) (int, error) {
	return w.claimPending(ctx)
}

func (w *AuditWorker) SetRetryBackoff(d time.Duration) {
	w.retryBackoff = d
}

const PendingMinIdle = pendingMinIdle
