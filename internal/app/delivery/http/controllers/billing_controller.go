package controllers

import (
	"context"
	"healthapp-admin/internal/app/contracts"
	"healthapp-admin/internal/app/services/shared/listing"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/dto/responses"
	"healthapp-admin/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type BillingController struct {
	Log            *zap.Logger
	BillingAdapter contracts.BillingAdapter

	mu    sync.Mutex
	state listing.State
}

func NewBillingController(logger *zap.Logger, billingAdapter contracts.BillingAdapter) *BillingController {
	return &BillingController{
		Log:            logger,
		BillingAdapter: billingAdapter,
	}
}

func (ctrl *BillingController) List(w http.ResponseWriter, r *http.Request) {
	search, status, page := listControls(r)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	invoices, ok := ctrl.BillingAdapter.GetAll(ctx)
	view := buildListView(invoices, ok, &ctrl.state, &ctrl.mu, search, status, page,
		func(invoice responses.Invoice) []string {
			fields := []string{invoice.ID, invoice.Amount}
			if invoice.Patient != nil {
				fields = append(fields, invoice.Patient.FirstName, invoice.Patient.LastName)
			}
			return fields
		},
		func(invoice responses.Invoice) string { return invoice.Status },
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, view)
}

func (ctrl *BillingController) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	stats, ok := ctrl.BillingAdapter.Stats(ctx)
	if !ok {
		stats = &responses.BillingStats{
			TotalRevenue:     "0.00",
			PendingAmount:    "0.00",
			ThisMonthRevenue: "0.00",
		}
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, stats)
}
