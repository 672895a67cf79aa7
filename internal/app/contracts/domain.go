package contracts

import (
	"context"
	"healthapp-admin/internal/pkg/dto/requests"
	"healthapp-admin/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
)

// Domain adapters fetch a normalized upstream collection. GetAll never
// returns an error: when every source fails the adapter yields an empty
// slice and ok=false so the console keeps rendering. Single-record reads
// and mutations propagate errors instead, since the caller acted on a
// specific resource and needs to know the outcome. Stats passes the
// upstream aggregate payload through untouched.

type UserAdapter interface {
	GetAll(ctx context.Context) ([]responses.User, bool)
	GetByID(ctx context.Context, userID string) (*responses.User, error)
	Create(ctx context.Context, request *requests.CreateUser) (*responses.User, error)
	Update(ctx context.Context, userID string, request *requests.UpdateUser) (*responses.User, error)
	Delete(ctx context.Context, userID string) error
	Stats(ctx context.Context) (json.RawMessage, bool)
}

type DoctorAdapter interface {
	GetAll(ctx context.Context) ([]responses.Doctor, bool)
	GetByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	Create(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	Update(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error)
	Delete(ctx context.Context, doctorID string) error
	Stats(ctx context.Context) (json.RawMessage, bool)
}

type PatientAdapter interface {
	GetAll(ctx context.Context) ([]responses.Patient, bool)
	GetByID(ctx context.Context, patientID string) (*responses.Patient, error)
	Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	Delete(ctx context.Context, patientID string) error
	Stats(ctx context.Context) (json.RawMessage, bool)
}

type AppointmentAdapter interface {
	GetAll(ctx context.Context) ([]responses.Appointment, bool)
	GetByID(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	Cancel(ctx context.Context, appointmentID string) error
	Stats(ctx context.Context) (json.RawMessage, bool)
}

type BillingAdapter interface {
	GetAll(ctx context.Context) ([]responses.Invoice, bool)
	Stats(ctx context.Context) (*responses.BillingStats, bool)
}

type PrescriptionAdapter interface {
	GetAll(ctx context.Context) ([]responses.Prescription, bool)
}

type TestResultAdapter interface {
	GetAll(ctx context.Context) ([]responses.TestResult, bool)
}

type MessageAdapter interface {
	GetAll(ctx context.Context) ([]responses.MessageThread, bool)
}
