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

type TestResultController struct {
	Log               *zap.Logger
	TestResultAdapter contracts.TestResultAdapter

	mu    sync.Mutex
	state listing.State
}

func NewTestResultController(logger *zap.Logger, testResultAdapter contracts.TestResultAdapter) *TestResultController {
	return &TestResultController{
		Log:               logger,
		TestResultAdapter: testResultAdapter,
	}
}

func (ctrl *TestResultController) List(w http.ResponseWriter, r *http.Request) {
	search, status, page := listControls(r)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	results, ok := ctrl.TestResultAdapter.GetAll(ctx)
	view := buildListView(results, ok, &ctrl.state, &ctrl.mu, search, status, page,
		func(result responses.TestResult) []string {
			fields := []string{result.TestName, result.TestType}
			if result.Patient != nil {
				fields = append(fields, result.Patient.FirstName, result.Patient.LastName)
			}
			return fields
		},
		func(result responses.TestResult) string { return result.Status },
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchSuccessMessage, view)
}
