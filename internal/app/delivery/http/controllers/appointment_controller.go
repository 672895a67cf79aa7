package controllers

import (
	"context"
	"healthapp-admin/internal/app/contracts"
	"healthapp-admin/internal/app/services/shared/listing"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/dto/responses"
	"healthapp-admin/internal/pkg/exceptions"
	"healthapp-admin/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentAdapter contracts.AppointmentAdapter

	mu    sync.Mutex
	state listing.State
}

func NewAppointmentController(logger *zap.Logger, appointmentAdapter contracts.AppointmentAdapter) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentAdapter: appointmentAdapter,
	}
}

func (ctrl *AppointmentController) List(w http.ResponseWriter, r *http.Request) {
	search, status, page := listControls(r)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	appointments, ok := ctrl.AppointmentAdapter.GetAll(ctx)
	view := buildListView(appointments, ok, &ctrl.state, &ctrl.mu, search, status, page,
		func(appointment responses.Appointment) []string {
			fields := []string{appointment.Reason}
			if appointment.Patient != nil {
				fields = append(fields, appointment.Patient.FirstName, appointment.Patient.LastName)
			}
			return fields
		},
		func(appointment responses.Appointment) string { return appointment.Status },
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, view)
}

func (ctrl *AppointmentController) GetByID(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentID")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentAdapter.GetByID(ctx, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, appointment)
}

func (ctrl *AppointmentController) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	stats, ok := ctrl.AppointmentAdapter.Stats(ctx)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFeatureUnavailable(constvars.EndpointAppointmentStats))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, stats)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentID")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := ctrl.AppointmentAdapter.Cancel(ctx, appointmentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSuccessMessage, nil)
}
