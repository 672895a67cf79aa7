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

type UserController struct {
	Log         *zap.Logger
	UserAdapter contracts.UserAdapter

	mu    sync.Mutex
	state listing.State
}

func NewUserController(logger *zap.Logger, userAdapter contracts.UserAdapter) *UserController {
	return &UserController{
		Log:         logger,
		UserAdapter: userAdapter,
	}
}

func (ctrl *UserController) List(w http.ResponseWriter, r *http.Request) {
	search, status, page := listControls(r)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	users, ok := ctrl.UserAdapter.GetAll(ctx)
	view := buildListView(users, ok, &ctrl.state, &ctrl.mu, search, status, page,
		func(user responses.User) []string {
			return []string{user.Username, user.Email, user.FirstName, user.LastName}
		},
		func(user responses.User) string { return user.Role },
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, view)
}

func (ctrl *UserController) GetByID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	user, err := ctrl.UserAdapter.GetByID(ctx, userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, user)
}

func (ctrl *UserController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateUser)
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

	user, err := ctrl.UserAdapter.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSuccessMessage, user)
}

func (ctrl *UserController) Update(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	request := new(requests.UpdateUser)
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

	user, err := ctrl.UserAdapter.Update(ctx, userID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSuccessMessage, user)
}

func (ctrl *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := ctrl.UserAdapter.Delete(ctx, userID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSuccessMessage, nil)
}

func (ctrl *UserController) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	stats, ok := ctrl.UserAdapter.Stats(ctx)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFeatureUnavailable(constvars.EndpointUserStats))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, stats)
}
