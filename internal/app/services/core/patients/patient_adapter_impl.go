package patients

import (
	"context"
	"fmt"
	"healthapp-admin/internal/app/contracts"
	"healthapp-admin/internal/app/services/shared/rest"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/dto/requests"
	"healthapp-admin/internal/pkg/dto/responses"
	"healthapp-admin/internal/pkg/envelope"
	"healthapp-admin/internal/pkg/exceptions"
	"net/url"
	"strconv"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	patientAdapterInstance contracts.PatientAdapter
	oncePatientAdapter     sync.Once
)

type patientAdapter struct {
	Client contracts.RestClient
	Log    *zap.Logger
}

func NewPatientAdapter(client contracts.RestClient, logger *zap.Logger) contracts.PatientAdapter {
	oncePatientAdapter.Do(func() {
		patientAdapterInstance = &patientAdapter{
			Client: client,
			Log:    logger,
		}
	})
	return patientAdapterInstance
}

func (a *patientAdapter) GetAll(ctx context.Context) ([]responses.Patient, bool) {
	params := url.Values{}
	params.Set(constvars.ParamLimit, strconv.Itoa(constvars.DefaultListLimit))

	body, err := a.Client.Get(ctx, constvars.EndpointPatients, params)
	if err != nil {
		a.Log.Warn("patientAdapter.GetAll upstream fetch failed",
			zap.String(constvars.LoggingResourceKey, constvars.EndpointPatients),
			zap.Error(err),
		)
		return []responses.Patient{}, false
	}

	patients := envelope.DecodeList[responses.Patient](body,
		envelope.Path("data", "patients"),
		envelope.Path("data", "data", "patients"),
		envelope.Path("data"),
		envelope.Path(),
	)
	if patients == nil {
		a.Log.Warn("patientAdapter.GetAll unrecognized response shape",
			zap.String(constvars.LoggingResourceKey, constvars.EndpointPatients),
		)
		return []responses.Patient{}, false
	}

	a.Log.Debug("patientAdapter.GetAll succeeded",
		zap.Int(constvars.LoggingCountKey, len(patients)),
	)
	return patients, true
}

func (a *patientAdapter) GetByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	path := fmt.Sprintf("%s/%s", constvars.EndpointPatients, patientID)
	body, err := a.Client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return decodePatient(body, path)
}

func (a *patientAdapter) Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	body, err := a.Client.Post(ctx, constvars.EndpointPatients, request)
	if err != nil {
		return nil, err
	}
	return decodePatient(body, constvars.EndpointPatients)
}

func (a *patientAdapter) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	path := fmt.Sprintf("%s/%s", constvars.EndpointPatients, patientID)
	body, err := a.Client.Put(ctx, path, request)
	if err != nil {
		return nil, err
	}
	return decodePatient(body, path)
}

func (a *patientAdapter) Delete(ctx context.Context, patientID string) error {
	path := fmt.Sprintf("%s/%s", constvars.EndpointPatients, patientID)
	if _, err := a.Client.Delete(ctx, path); err != nil {
		a.Log.Error("patientAdapter.Delete failed",
			zap.String(constvars.LoggingResourceKey, path),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (a *patientAdapter) Stats(ctx context.Context) (json.RawMessage, bool) {
	return rest.FetchStats(ctx, a.Client, a.Log, constvars.EndpointPatientStats)
}

func decodePatient(body []byte, resource string) (*responses.Patient, error) {
	patient := envelope.DecodeObject[responses.Patient](body,
		func(p *responses.Patient) bool { return p.ID != "" || p.FirstName != "" },
		[]string{"data", "patient"},
		[]string{"data", "data"},
		[]string{"data"},
		nil,
	)
	if patient == nil {
		return nil, exceptions.ErrDecodeResponse(fmt.Errorf("no recognizable object in envelope"), resource)
	}
	return patient, nil
}
