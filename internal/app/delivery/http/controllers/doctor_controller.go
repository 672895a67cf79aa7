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

type DoctorController struct {
	Log           *zap.Logger
	DoctorAdapter contracts.DoctorAdapter

	mu    sync.Mutex
	state listing.State
}

func NewDoctorController(logger *zap.Logger, doctorAdapter contracts.DoctorAdapter) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorAdapter: doctorAdapter,
	}
}

func (ctrl *DoctorController) List(w http.ResponseWriter, r *http.Request) {
	search, status, page := listControls(r)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	doctors, ok := ctrl.DoctorAdapter.GetAll(ctx)
	view := buildListView(doctors, ok, &ctrl.state, &ctrl.mu, search, status, page,
		func(doctor responses.Doctor) []string {
			return []string{doctor.FirstName, doctor.LastName, doctor.Name, doctor.Specialization, doctor.Email}
		},
		nil,
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, view)
}

func (ctrl *DoctorController) GetByID(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	doctor, err := ctrl.DoctorAdapter.GetByID(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, doctor)
}

func (ctrl *DoctorController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateDoctor)
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

	doctor, err := ctrl.DoctorAdapter.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSuccessMessage, doctor)
}

func (ctrl *DoctorController) Update(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")

	request := new(requests.UpdateDoctor)
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

	doctor, err := ctrl.DoctorAdapter.Update(ctx, doctorID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSuccessMessage, doctor)
}

func (ctrl *DoctorController) Delete(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := ctrl.DoctorAdapter.Delete(ctx, doctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSuccessMessage, nil)
}

func (ctrl *DoctorController) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	stats, ok := ctrl.DoctorAdapter.Stats(ctx)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFeatureUnavailable(constvars.EndpointDoctorStats))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, stats)
}
