package worker

// report_worker.go
// Processes report jobs from QueueReport: renders the full recipe cost
// report to PDF and enqueues an email job delivering it.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/infra"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/service"
)

// ReportJobPayload is the job envelope sent to QueueReport.
type ReportJobPayload struct {
	ToEmail string `json:"to_email"`
}

// ReportWorker builds the cost report PDF and hands delivery to the
// email queue.
type ReportWorker struct {
	costing     service.CostingService
	dispatcher  *Dispatcher
	storagePath string
}

func NewReportWorker(costing service.CostingService, dispatcher *Dispatcher, storagePath string) *ReportWorker {
	return &ReportWorker{costing: costing, dispatcher: dispatcher, storagePath: storagePath}
}

func (w *ReportWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReportJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("report_worker: invalid payload: %w", err)
	}
	if payload.ToEmail == "" {
		return fmt.Errorf("report_worker: empty to_email")
	}

	rows, err := w.costing.AllRecipeCosts(ctx)
	if err != nil {
		return fmt.Errorf("report_worker: aggregate costs: %w", err)
	}

	pdfPath, err := infra.GenerateCostReportPDF(rows, w.storagePath)
	if err != nil {
		return fmt.Errorf("report_worker: render pdf: %w", err)
	}

	return w.dispatcher.EnqueueEmail(ctx, EmailJobPayload{
		ToEmail:    payload.ToEmail,
		Subject:    "Recipe cost report",
		Body:       fmt.Sprintf("Attached: cost and margin breakdown for %d recipes.", len(rows)),
		AttachPath: pdfPath,
	})
}
