package controllers

import (
	"context"
	"healthapp-admin/internal/app/contracts"
	"healthapp-admin/internal/app/services/shared/listing"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/dto/requests"
	"healthapp-admin/internal/pkg/dto/responses"
	"healthapp-admin/internal/pkg/exceptions"
	"healthapp-admin/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientAdapter contracts.PatientAdapter

	mu    sync.Mutex
	state listing.State
}

func NewPatientController(logger *zap.Logger, patientAdapter contracts.PatientAdapter) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientAdapter: patientAdapter,
	}
}

func (ctrl *PatientController) List(w http.ResponseWriter, r *http.Request) {
	search, status, page := listControls(r)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	patients, ok := ctrl.PatientAdapter.GetAll(ctx)
	view := buildListView(patients, ok, &ctrl.state, &ctrl.mu, search, status, page,
		func(patient responses.Patient) []string {
			return []string{patient.FirstName, patient.LastName, patient.Email, patient.Username}
		},
		nil,
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, view)
}

func (ctrl *PatientController) GetByID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	patient, err := ctrl.PatientAdapter.GetByID(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, patient)
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePatient)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	patient, err := ctrl.PatientAdapter.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSuccessMessage, patient)
}

func (ctrl *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")

	request := new(requests.UpdatePatient)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	patient, err := ctrl.PatientAdapter.Update(ctx, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSuccessMessage, patient)
}

func (ctrl *PatientController) Delete(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := ctrl.PatientAdapter.Delete(ctx, patientID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSuccessMessage, nil)
}

func (ctrl *PatientController) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	stats, ok := ctrl.PatientAdapter.Stats(ctx)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFeatureUnavailable(constvars.EndpointPatientStats))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, stats)
}
