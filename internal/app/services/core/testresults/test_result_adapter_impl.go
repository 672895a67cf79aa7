package testresults

import (
	"context"
	"healthapp-admin/internal/app/contracts"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/dto/responses"
	"healthapp-admin/internal/pkg/envelope"
	"healthapp-admin/internal/pkg/utils"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	testResultAdapterInstance contracts.TestResultAdapter
	onceTestResultAdapter     sync.Once
)

type testResultAdapter struct {
	Client   contracts.RestClient
	Patients contracts.PatientAdapter
	Log      *zap.Logger
}

// NewTestResultAdapter fetches lab results. Deployments without the
// endpoint get results derived from patient medical records.
func NewTestResultAdapter(client contracts.RestClient, patients contracts.PatientAdapter, logger *zap.Logger) contracts.TestResultAdapter {
	onceTestResultAdapter.Do(func() {
		testResultAdapterInstance = &testResultAdapter{
			Client:   client,
			Patients: patients,
			Log:      logger,
		}
	})
	return testResultAdapterInstance
}

func (a *testResultAdapter) GetAll(ctx context.Context) ([]responses.TestResult, bool) {
	body, err := a.Client.Get(ctx, constvars.EndpointTestResults, nil)
	if err == nil {
		results := envelope.DecodeList[responses.TestResult](body,
			envelope.Path("data", "testResults"),
			envelope.Path("data", "items"),
			envelope.Path("data", "payload"),
			envelope.Path("data"),
			envelope.Path(),
		)
		if results != nil {
			a.Log.Debug("testResultAdapter.GetAll succeeded",
				zap.Int(constvars.LoggingCountKey, len(results)),
			)
			return results, true
		}
	}

	a.Log.Warn("testResultAdapter.GetAll falling back to medical records",
		zap.String(constvars.LoggingResourceKey, constvars.EndpointTestResults),
		zap.Error(err),
	)

	patients, ok := a.Patients.GetAll(ctx)
	if !ok {
		return []responses.TestResult{}, false
	}

	results := make([]responses.TestResult, 0)
	for _, patient := range patients {
		ref := patient.Ref()
		for _, record := range patient.MedicalRecords {
			results = append(results, deriveTestResult(record, patient.ID, ref))
		}
	}
	utils.SortByNewest(results, func(r responses.TestResult) string {
		return utils.FirstNonEmpty(r.TestDate, r.CreatedAt)
	})
	return results, true
}

// deriveTestResult reads a medical record as a completed test: the
// diagnosis names the test, and the presence of a treatment decides
// whether it was a treatment or a diagnostic visit.
func deriveTestResult(record responses.MedicalRecord, patientID string, ref *responses.PatientRef) responses.TestResult {
	id := record.ID
	if id == "" {
		id = uuid.NewString()
	}
	testType := constvars.TestTypeDiagnostic
	if record.Treatment != "" {
		testType = constvars.TestTypeTreatment
	}
	return responses.TestResult{
		ID:        id,
		PatientID: patientID,
		TestName:  record.Diagnosis,
		TestType:  testType,
		Status:    constvars.TestResultStatusCompleted,
		TestDate:  record.VisitDate,
		CreatedAt: record.CreatedAt,
		Patient:   ref,
	}
}
