package billing

import (
	"context"
	"healthapp-admin/internal/app/contracts"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/dto/responses"
	"healthapp-admin/internal/pkg/envelope"
	"healthapp-admin/internal/pkg/utils"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	billingAdapterInstance contracts.BillingAdapter
	onceBillingAdapter     sync.Once
)

type billingAdapter struct {
	Client   contracts.RestClient
	Patients contracts.PatientAdapter
	Log      *zap.Logger
}

// NewBillingAdapter fetches invoices. Deployments without a billing
// endpoint get them flattened out of the patient records instead.
func NewBillingAdapter(client contracts.RestClient, patients contracts.PatientAdapter, logger *zap.Logger) contracts.BillingAdapter {
	onceBillingAdapter.Do(func() {
		billingAdapterInstance = &billingAdapter{
			Client:   client,
			Patients: patients,
			Log:      logger,
		}
	})
	return billingAdapterInstance
}

func (a *billingAdapter) GetAll(ctx context.Context) ([]responses.Invoice, bool) {
	body, err := a.Client.Get(ctx, constvars.EndpointInvoices, nil)
	if err == nil {
		invoices := envelope.DecodeList[responses.Invoice](body,
			envelope.Path("data", "invoices"),
			envelope.Path("data"),
			envelope.Path(),
		)
		if invoices != nil {
			a.Log.Debug("billingAdapter.GetAll succeeded",
				zap.Int(constvars.LoggingCountKey, len(invoices)),
			)
			return invoices, true
		}
	}

	a.Log.Warn("billingAdapter.GetAll falling back to patient records",
		zap.String(constvars.LoggingResourceKey, constvars.EndpointInvoices),
		zap.Error(err),
	)

	patients, ok := a.Patients.GetAll(ctx)
	if !ok {
		return []responses.Invoice{}, false
	}

	invoices := make([]responses.Invoice, 0)
	for _, patient := range patients {
		ref := patient.Ref()
		for _, invoice := range patient.Invoices {
			invoices = append(invoices, deriveInvoice(invoice, patient.ID, ref))
		}
	}
	utils.SortByNewest(invoices, func(inv responses.Invoice) string { return inv.CreatedAt })
	return invoices, true
}

// deriveInvoice normalizes an embedded patient invoice into the billing
// view shape. Statuses outside the due/paid pair are treated as cancelled.
func deriveInvoice(invoice responses.Invoice, patientID string, ref *responses.PatientRef) responses.Invoice {
	if invoice.ID == "" {
		invoice.ID = uuid.NewString()
	}
	if invoice.PatientID == "" {
		invoice.PatientID = patientID
	}
	invoice.Patient = ref

	if invoice.Amount == "" {
		if invoice.AmountCents > 0 {
			invoice.Amount = utils.CentsToAmount(invoice.AmountCents)
		} else {
			invoice.Amount = "0.00"
		}
	}

	switch invoice.Status {
	case constvars.InvoiceStatusDue:
		invoice.Status = constvars.InvoiceStatusPending
	case constvars.InvoiceStatusPaid:
		invoice.Status = constvars.InvoiceStatusPaid
	default:
		invoice.Status = constvars.InvoiceStatusCancelled
	}
	return invoice
}

func (a *billingAdapter) Stats(ctx context.Context) (*responses.BillingStats, bool) {
	body, err := a.Client.Get(ctx, constvars.EndpointBillingStats, nil)
	if err == nil {
		if raw := envelope.ObjectAt(body, "data"); raw != nil {
			stats := new(responses.BillingStats)
			if err := json.Unmarshal(raw, stats); err == nil && stats.TotalRevenue != "" {
				return stats, true
			}
		}
	}

	a.Log.Warn("billingAdapter.Stats computing locally",
		zap.String(constvars.LoggingResourceKey, constvars.EndpointBillingStats),
		zap.Error(err),
	)

	invoices, ok := a.GetAll(ctx)
	if !ok {
		return nil, false
	}
	return computeStats(invoices, time.Now()), true
}

func computeStats(invoices []responses.Invoice, now time.Time) *responses.BillingStats {
	var totalRevenue, pendingAmount, thisMonthRevenue float64
	for _, invoice := range invoices {
		amount, err := strconv.ParseFloat(invoice.Amount, 64)
		if err != nil {
			continue
		}
		switch invoice.Status {
		case constvars.InvoiceStatusPaid:
			totalRevenue += amount
			created := utils.ParseTimestamp(invoice.CreatedAt)
			if created.Year() == now.Year() && created.Month() == now.Month() {
				thisMonthRevenue += amount
			}
		case constvars.InvoiceStatusPending, constvars.InvoiceStatusOverdue:
			pendingAmount += amount
		}
	}
	return &responses.BillingStats{
		TotalRevenue:     strconv.FormatFloat(totalRevenue, 'f', 2, 64),
		PendingAmount:    strconv.FormatFloat(pendingAmount, 'f', 2, 64),
		ThisMonthRevenue: strconv.FormatFloat(thisMonthRevenue, 'f', 2, 64),
		Total:            len(invoices),
	}
}
