package doctors

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
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	doctorAdapterInstance contracts.DoctorAdapter
	onceDoctorAdapter     sync.Once
)

type doctorAdapter struct {
	Client contracts.RestClient
	Log    *zap.Logger
}

func NewDoctorAdapter(client contracts.RestClient, logger *zap.Logger) contracts.DoctorAdapter {
	onceDoctorAdapter.Do(func() {
		doctorAdapterInstance = &doctorAdapter{
			Client: client,
			Log:    logger,
		}
	})
	return doctorAdapterInstance
}

func (a *doctorAdapter) GetAll(ctx context.Context) ([]responses.Doctor, bool) {
	body, err := a.Client.Get(ctx, constvars.EndpointDoctors, nil)
	if err != nil {
		a.Log.Warn("doctorAdapter.GetAll upstream fetch failed",
			zap.String(constvars.LoggingResourceKey, constvars.EndpointDoctors),
			zap.Error(err),
		)
		return []responses.Doctor{}, false
	}

	doctors := envelope.DecodeList[responses.Doctor](body,
		envelope.Path("data", "doctors"),
		envelope.Path("data"),
		envelope.Path(),
	)
	if doctors == nil {
		a.Log.Warn("doctorAdapter.GetAll unrecognized response shape",
			zap.String(constvars.LoggingResourceKey, constvars.EndpointDoctors),
		)
		return []responses.Doctor{}, false
	}

	a.Log.Debug("doctorAdapter.GetAll succeeded",
		zap.Int(constvars.LoggingCountKey, len(doctors)),
	)
	return doctors, true
}

func (a *doctorAdapter) GetByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	path := fmt.Sprintf("%s/%s", constvars.EndpointDoctors, doctorID)
	body, err := a.Client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeDoctor(body, path)
}

func (a *doctorAdapter) Create(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	body, err := a.Client.Post(ctx, constvars.EndpointDoctors, request)
	if err != nil {
		return nil, err
	}
	return decodeDoctor(body, constvars.EndpointDoctors)
}

func (a *doctorAdapter) Update(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error) {
	path := fmt.Sprintf("%s/%s", constvars.EndpointDoctors, doctorID)
	body, err := a.Client.Put(ctx, path, request)
	if err != nil {
		return nil, err
	}
	return decodeDoctor(body, path)
}

func (a *doctorAdapter) Delete(ctx context.Context, doctorID string) error {
	path := fmt.Sprintf("%s/%s", constvars.EndpointDoctors, doctorID)
	if _, err := a.Client.Delete(ctx, path); err != nil {
		a.Log.Error("doctorAdapter.Delete failed",
			zap.String(constvars.LoggingResourceKey, path),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (a *doctorAdapter) Stats(ctx context.Context) (json.RawMessage, bool) {
	return rest.FetchStats(ctx, a.Client, a.Log, constvars.EndpointDoctorStats)
}

func decodeDoctor(body []byte, resource string) (*responses.Doctor, error) {
	doctor := envelope.DecodeObject[responses.Doctor](body,
		func(d *responses.Doctor) bool { return d.ID != "" || d.FirstName != "" || d.Name != "" },
		[]string{"data", "doctor"},
		[]string{"data", "data"},
		[]string{"data"},
		nil,
	)
	if doctor == nil {
		return nil, exceptions.ErrDecodeResponse(fmt.Errorf("no recognizable object in envelope"), resource)
	}
	return doctor, nil
}
