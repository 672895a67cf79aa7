package appointments

import (
	"context"
	"fmt"
	"healthapp-admin/internal/app/contracts"
	"healthapp-admin/internal/app/services/shared/rest"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/dto/responses"
	"healthapp-admin/internal/pkg/envelope"
	"healthapp-admin/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	appointmentAdapterInstance contracts.AppointmentAdapter
	onceAppointmentAdapter     sync.Once
)

type appointmentAdapter struct {
	Client contracts.RestClient
	Log    *zap.Logger
}

func NewAppointmentAdapter(client contracts.RestClient, logger *zap.Logger) contracts.AppointmentAdapter {
	onceAppointmentAdapter.Do(func() {
		appointmentAdapterInstance = &appointmentAdapter{
			Client: client,
			Log:    logger,
		}
	})
	return appointmentAdapterInstance
}

func (a *appointmentAdapter) GetAll(ctx context.Context) ([]responses.Appointment, bool) {
	body, err := a.Client.Get(ctx, constvars.EndpointAppointments, nil)
	if err != nil {
		a.Log.Warn("appointmentAdapter.GetAll upstream fetch failed",
			zap.String(constvars.LoggingResourceKey, constvars.EndpointAppointments),
			zap.Error(err),
		)
		return []responses.Appointment{}, false
	}

	appointments := envelope.DecodeList[responses.Appointment](body,
		envelope.Path("data", "appointments"),
		envelope.Path("data"),
		envelope.Path(),
	)
	if appointments == nil {
		a.Log.Warn("appointmentAdapter.GetAll unrecognized response shape",
			zap.String(constvars.LoggingResourceKey, constvars.EndpointAppointments),
		)
		return []responses.Appointment{}, false
	}

	a.Log.Debug("appointmentAdapter.GetAll succeeded",
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return appointments, true
}

func (a *appointmentAdapter) GetByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	path := fmt.Sprintf("%s/%s", constvars.EndpointAppointments, appointmentID)
	body, err := a.Client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	appointment := envelope.DecodeObject[responses.Appointment](body,
		func(ap *responses.Appointment) bool { return ap.ID != "" },
		[]string{"data", "appointment"},
		[]string{"data", "data"},
		[]string{"data"},
		nil,
	)
	if appointment == nil {
		return nil, exceptions.ErrDecodeResponse(fmt.Errorf("no recognizable object in envelope"), path)
	}
	return appointment, nil
}

// Cancel hits the dedicated cancel sub-resource rather than patching the
// appointment record, since status transitions are backend-validated.
func (a *appointmentAdapter) Cancel(ctx context.Context, appointmentID string) error {
	path := fmt.Sprintf("%s/%s/cancel", constvars.EndpointAppointments, appointmentID)

	if _, err := a.Client.Patch(ctx, path, nil); err != nil {
		a.Log.Error("appointmentAdapter.Cancel failed",
			zap.String(constvars.LoggingResourceKey, path),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (a *appointmentAdapter) Stats(ctx context.Context) (json.RawMessage, bool) {
	return rest.FetchStats(ctx, a.Client, a.Log, constvars.EndpointAppointmentStats)
}
