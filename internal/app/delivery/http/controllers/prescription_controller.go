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

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionAdapter contracts.PrescriptionAdapter

	mu    sync.Mutex
	state listing.State
}

func NewPrescriptionController(logger *zap.Logger, prescriptionAdapter contracts.PrescriptionAdapter) *PrescriptionController {
	return &PrescriptionController{
		Log:                 logger,
		PrescriptionAdapter: prescriptionAdapter,
	}
}

func (ctrl *PrescriptionController) List(w http.ResponseWriter, r *http.Request) {
	search, status, page := listControls(r)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	prescriptions, ok := ctrl.PrescriptionAdapter.GetAll(ctx)
	view := buildListView(prescriptions, ok, &ctrl.state, &ctrl.mu, search, status, page,
		func(prescription responses.Prescription) []string {
			fields := []string{prescription.MedicationName, prescription.DoctorName}
			if prescription.Patient != nil {
				fields = append(fields, prescription.Patient.FirstName, prescription.Patient.LastName)
			}
			return fields
		},
		func(prescription responses.Prescription) string { return prescription.Status },
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, view)
}
