package prescriptions

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
	prescriptionAdapterInstance contracts.PrescriptionAdapter
	oncePrescriptionAdapter     sync.Once
)

type prescriptionAdapter struct {
	Client   contracts.RestClient
	Patients contracts.PatientAdapter
	Log      *zap.Logger
}

func NewPrescriptionAdapter(client contracts.RestClient, patients contracts.PatientAdapter, logger *zap.Logger) contracts.PrescriptionAdapter {
	oncePrescriptionAdapter.Do(func() {
		prescriptionAdapterInstance = &prescriptionAdapter{
			Client:   client,
			Patients: patients,
			Log:      logger,
		}
	})
	return prescriptionAdapterInstance
}

func (a *prescriptionAdapter) GetAll(ctx context.Context) ([]responses.Prescription, bool) {
	body, err := a.Client.Get(ctx, constvars.EndpointMedications, nil)
	if err == nil {
		prescriptions := envelope.DecodeList[responses.Prescription](body,
			envelope.Path("data", "medications"),
			envelope.Path("data", "prescriptions"),
			envelope.Path("data"),
			envelope.Path(),
		)
		if prescriptions != nil {
			a.Log.Debug("prescriptionAdapter.GetAll succeeded",
				zap.Int(constvars.LoggingCountKey, len(prescriptions)),
			)
			return prescriptions, true
		}
	}

	a.Log.Warn("prescriptionAdapter.GetAll falling back to patient records",
		zap.String(constvars.LoggingResourceKey, constvars.EndpointMedications),
		zap.Error(err),
	)

	patients, ok := a.Patients.GetAll(ctx)
	if !ok {
		return []responses.Prescription{}, false
	}

	prescriptions := make([]responses.Prescription, 0)
	for _, patient := range patients {
		ref := patient.Ref()
		for _, prescription := range patient.Prescriptions {
			if prescription.ID == "" {
				prescription.ID = uuid.NewString()
			}
			if prescription.PatientID == "" {
				prescription.PatientID = patient.ID
			}
			if prescription.Status == "" {
				prescription.Status = constvars.PrescriptionStatusActive
			}
			prescription.Patient = ref
			prescriptions = append(prescriptions, prescription)
		}
	}
	utils.SortByNewest(prescriptions, func(p responses.Prescription) string {
		return utils.FirstNonEmpty(p.PrescribedDate, p.CreatedAt)
	})
	return prescriptions, true
}
