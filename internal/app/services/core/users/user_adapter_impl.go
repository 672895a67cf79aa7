package users

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
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	userAdapterInstance contracts.UserAdapter
	onceUserAdapter     sync.Once
)

type userAdapter struct {
	Client   contracts.RestClient
	Doctors  contracts.DoctorAdapter
	Patients contracts.PatientAdapter
	Log      *zap.Logger
}

// NewUserAdapter fetches the user directory. Deployments without a
// dedicated users endpoint get one synthesized from the doctor and
// patient collections instead.
func NewUserAdapter(client contracts.RestClient, doctors contracts.DoctorAdapter, patients contracts.PatientAdapter, logger *zap.Logger) contracts.UserAdapter {
	onceUserAdapter.Do(func() {
		userAdapterInstance = &userAdapter{
			Client:   client,
			Doctors:  doctors,
			Patients: patients,
			Log:      logger,
		}
	})
	return userAdapterInstance
}

func (a *userAdapter) GetAll(ctx context.Context) ([]responses.User, bool) {
	params := url.Values{}
	params.Set(constvars.ParamLimit, strconv.Itoa(constvars.DefaultListLimit))

	body, err := a.Client.Get(ctx, constvars.EndpointUsers, params)
	if err == nil {
		users := envelope.DecodeList[responses.User](body,
			envelope.Path("data", "users"),
			envelope.Path("data", "data", "users"),
			envelope.Path("data", "data"),
			envelope.Path("data"),
			envelope.Path(),
		)
		if users != nil {
			a.Log.Debug("userAdapter.GetAll succeeded",
				zap.Int(constvars.LoggingCountKey, len(users)),
			)
			return users, true
		}
	}

	a.Log.Warn("userAdapter.GetAll falling back to doctors and patients",
		zap.String(constvars.LoggingResourceKey, constvars.EndpointUsers),
		zap.Error(err),
	)
	return a.fallback(ctx)
}

func (a *userAdapter) GetByID(ctx context.Context, userID string) (*responses.User, error) {
	path := fmt.Sprintf("%s/%s", constvars.EndpointUsers, userID)
	body, err := a.Client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeUser(body, path)
}

func (a *userAdapter) Create(ctx context.Context, request *requests.CreateUser) (*responses.User, error) {
	body, err := a.Client.Post(ctx, constvars.EndpointUsers, request)
	if err != nil {
		return nil, err
	}
	return decodeUser(body, constvars.EndpointUsers)
}

func (a *userAdapter) Update(ctx context.Context, userID string, request *requests.UpdateUser) (*responses.User, error) {
	path := fmt.Sprintf("%s/%s", constvars.EndpointUsers, userID)
	body, err := a.Client.Put(ctx, path, request)
	if err != nil {
		return nil, err
	}
	return decodeUser(body, path)
}

func (a *userAdapter) Delete(ctx context.Context, userID string) error {
	path := fmt.Sprintf("%s/%s", constvars.EndpointUsers, userID)
	if _, err := a.Client.Delete(ctx, path); err != nil {
		a.Log.Error("userAdapter.Delete failed",
			zap.String(constvars.LoggingResourceKey, path),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (a *userAdapter) Stats(ctx context.Context) (json.RawMessage, bool) {
	return rest.FetchStats(ctx, a.Client, a.Log, constvars.EndpointUserStats)
}

func decodeUser(body []byte, resource string) (*responses.User, error) {
	user := envelope.DecodeObject[responses.User](body,
		func(u *responses.User) bool { return u.ID != "" || u.Username != "" || u.Email != "" },
		[]string{"data", "user"},
		[]string{"data", "data"},
		[]string{"data"},
		nil,
	)
	if user == nil {
		return nil, exceptions.ErrDecodeResponse(fmt.Errorf("no recognizable object in envelope"), resource)
	}
	return user, nil
}

// fallback fans out to both collections concurrently and projects each
// record into the user directory shape.
func (a *userAdapter) fallback(ctx context.Context) ([]responses.User, bool) {
	var (
		wg        sync.WaitGroup
		doctors   []responses.Doctor
		patients  []responses.Patient
		doctorOK  bool
		patientOK bool
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		doctors, doctorOK = a.Doctors.GetAll(ctx)
	}()
	go func() {
		defer wg.Done()
		patients, patientOK = a.Patients.GetAll(ctx)
	}()
	wg.Wait()

	if !doctorOK && !patientOK {
		return []responses.User{}, false
	}

	now := time.Now()
	users := make([]responses.User, 0, len(doctors)+len(patients))
	for _, doctor := range doctors {
		users = append(users, doctorToUser(doctor, now))
	}
	for _, patient := range patients {
		users = append(users, patientToUser(patient, now))
	}
	return users, true
}

func doctorToUser(d responses.Doctor, now time.Time) responses.User {
	firstName, lastName := splitName(d.FirstName, d.LastName, d.Name)
	id := d.UserID
	if id == "" {
		id = d.ID
	}
	if id == "" {
		id = uuid.NewString()
	}

	email := d.Email
	if d.User != nil && d.User.Email != "" {
		email = d.User.Email
	}
	if email == "" {
		email = syntheticEmail(firstName, lastName)
	}

	username := ""
	if d.User != nil {
		username = d.User.Username
	}
	if username == "" {
		username = syntheticUsername(firstName, lastName, constvars.RoleDoctor, id)
	}

	createdAt := d.CreatedAt
	if createdAt == "" {
		createdAt = now.Format(time.RFC3339)
	}

	return responses.User{
		ID:        id,
		Email:     email,
		Username:  username,
		Role:      constvars.RoleDoctor,
		FirstName: firstName,
		LastName:  lastName,
		IsActive:  true,
		CreatedAt: createdAt,
	}
}

func patientToUser(p responses.Patient, now time.Time) responses.User {
	id := p.UserID
	if id == "" {
		id = p.ID
	}
	if id == "" {
		id = uuid.NewString()
	}

	email := p.Email
	if p.User != nil && p.User.Email != "" {
		email = p.User.Email
	}
	if email == "" {
		email = syntheticEmail(p.FirstName, p.LastName)
	}

	username := p.Username
	if p.User != nil && p.User.Username != "" {
		username = p.User.Username
	}
	if username == "" {
		username = syntheticUsername(p.FirstName, p.LastName, constvars.RolePatient, id)
	}

	createdAt := p.CreatedAt
	if createdAt == "" {
		createdAt = now.Format(time.RFC3339)
	}

	return responses.User{
		ID:        id,
		Email:     email,
		Username:  username,
		Role:      constvars.RolePatient,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		IsActive:  true,
		CreatedAt: createdAt,
	}
}

func splitName(firstName, lastName, fullName string) (string, string) {
	if firstName != "" || lastName != "" {
		return firstName, lastName
	}
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func syntheticEmail(firstName, lastName string) string {
	return strings.ToLower(fmt.Sprintf("%s.%s@%s", firstName, lastName, constvars.SyntheticEmailDomain))
}

func syntheticUsername(firstName, lastName, role, id string) string {
	name := strings.ReplaceAll(firstName+lastName, " ", "")
	if name != "" {
		return strings.ToLower(name)
	}
	prefix := strings.ToLower(role)
	if len(id) > 8 {
		id = id[:8]
	}
	return prefix + id
}
