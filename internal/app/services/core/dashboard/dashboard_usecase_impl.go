package dashboard

import (
	"context"
	"fmt"
	"healthapp-admin/internal/app/contracts"
	"healthapp-admin/internal/pkg/constvars"
	"healthapp-admin/internal/pkg/dto/responses"
	"healthapp-admin/internal/pkg/utils"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	dashboardUsecaseInstance contracts.DashboardUsecase
	onceDashboardUsecase     sync.Once
)

type previousCounts struct {
	users    int
	doctors  int
	patients int
	seeded   bool
}

type dashboardUsecase struct {
	Users        contracts.UserAdapter
	Doctors      contracts.DoctorAdapter
	Patients     contracts.PatientAdapter
	Appointments contracts.AppointmentAdapter
	Log          *zap.Logger

	mu       sync.RWMutex
	overview *responses.DashboardOverview
	previous previousCounts
}

func NewDashboardUsecase(
	users contracts.UserAdapter,
	doctors contracts.DoctorAdapter,
	patients contracts.PatientAdapter,
	appointments contracts.AppointmentAdapter,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	onceDashboardUsecase.Do(func() {
		dashboardUsecaseInstance = &dashboardUsecase{
			Users:        users,
			Doctors:      doctors,
			Patients:     patients,
			Appointments: appointments,
			Log:          logger,
		}
	})
	return dashboardUsecaseInstance
}

// Overview serves the last aggregated snapshot, computing one on demand
// when the poller has not run yet.
func (u *dashboardUsecase) Overview(ctx context.Context) (*responses.DashboardOverview, error) {
	u.mu.RLock()
	cached := u.overview
	u.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	u.Refresh(ctx)

	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.overview, nil
}

func (u *dashboardUsecase) Refresh(ctx context.Context) {
	if apply := u.Fetch(ctx); apply != nil {
		apply()
	}
}

// Fetch gathers every collection concurrently and returns the closure
// that installs the aggregated snapshot. Matches the poller contract so
// a slow fetch can be discarded without touching state.
func (u *dashboardUsecase) Fetch(ctx context.Context) func() {
	var (
		wg           sync.WaitGroup
		users        []responses.User
		doctors      []responses.Doctor
		patients     []responses.Patient
		appointments []responses.Appointment
		usersOK      bool
		doctorsOK    bool
		patientsOK   bool
		apptsOK      bool
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		users, usersOK = u.Users.GetAll(ctx)
	}()
	go func() {
		defer wg.Done()
		doctors, doctorsOK = u.Doctors.GetAll(ctx)
	}()
	go func() {
		defer wg.Done()
		patients, patientsOK = u.Patients.GetAll(ctx)
	}()
	go func() {
		defer wg.Done()
		appointments, apptsOK = u.Appointments.GetAll(ctx)
	}()
	wg.Wait()

	now := time.Now()
	partial := !usersOK || !doctorsOK || !patientsOK || !apptsOK

	return func() {
		u.mu.Lock()
		defer u.mu.Unlock()

		// First snapshot seeds the previous counts with the current ones,
		// so growth starts at 0% instead of a fabricated jump.
		if !u.previous.seeded {
			u.previous = previousCounts{
				users:    len(users),
				doctors:  len(doctors),
				patients: len(patients),
				seeded:   true,
			}
		}

		stats := responses.DashboardStats{
			TotalUsers:        len(users),
			TotalDoctors:      len(doctors),
			TotalPatients:     len(patients),
			AppointmentsToday: countAppointmentsToday(appointments, now),
			NewUsersToday:     countNewToday(users, now),
			ActiveSessions:    int(float64(len(users)) * 0.08),
			UsersGrowth:       utils.FormatGrowth(utils.GrowthPercent(len(users), u.previous.users)),
			DoctorsGrowth:     utils.FormatGrowth(utils.GrowthPercent(len(doctors), u.previous.doctors)),
			PatientsGrowth:    utils.FormatGrowth(utils.GrowthPercent(len(patients), u.previous.patients)),
			SystemHealth:      constvars.SystemHealthDefault,
		}

		u.overview = &responses.DashboardOverview{
			Stats:       stats,
			RecentUsers: recentUsers(users),
			Activity:    buildActivity(users, doctors, now),
			Partial:     partial,
			RefreshedAt: now.Format(time.RFC3339),
		}

		u.previous = previousCounts{
			users:    len(users),
			doctors:  len(doctors),
			patients: len(patients),
			seeded:   true,
		}

		u.Log.Debug("dashboardUsecase refreshed snapshot",
			zap.Int(constvars.LoggingCountKey, len(users)),
			zap.Bool(constvars.LoggingSuccessKey, !partial),
		)
	}
}

func countNewToday(users []responses.User, now time.Time) int {
	midnight := utils.StartOfToday(now)
	count := 0
	for _, user := range users {
		created := utils.ParseTimestamp(user.CreatedAt)
		if !created.IsZero() && !created.Before(midnight) {
			count++
		}
	}
	return count
}

func countAppointmentsToday(appointments []responses.Appointment, now time.Time) int {
	midnight := utils.StartOfToday(now)
	tomorrow := midnight.Add(24 * time.Hour)
	count := 0
	for _, appointment := range appointments {
		date := utils.ParseTimestamp(appointment.AppointmentDate)
		if !date.Before(midnight) && date.Before(tomorrow) {
			count++
		}
	}
	return count
}

func recentUsers(users []responses.User) []responses.User {
	sorted := make([]responses.User, len(users))
	copy(sorted, users)
	utils.SortByNewest(sorted, func(user responses.User) string { return user.CreatedAt })
	if len(sorted) > constvars.RecentUsersCount {
		sorted = sorted[:constvars.RecentUsersCount]
	}
	return sorted
}

// buildActivity interleaves the newest registrations with a system pulse
// entry and keeps the freshest few.
func buildActivity(users []responses.User, doctors []responses.Doctor, now time.Time) []responses.ActivityEntry {
	entries := make([]responses.ActivityEntry, 0, constvars.ActivityFeedSize+1)

	newestUsers := make([]responses.User, len(users))
	copy(newestUsers, users)
	utils.SortByNewest(newestUsers, func(user responses.User) string { return user.CreatedAt })
	if len(newestUsers) > constvars.ActivityUsersCount {
		newestUsers = newestUsers[:constvars.ActivityUsersCount]
	}
	for _, user := range newestUsers {
		entries = append(entries, responses.ActivityEntry{
			ID:        user.ID,
			Type:      "user_registered",
			Message:   fmt.Sprintf("New %s registered: %s %s", user.Role, user.FirstName, user.LastName),
			Timestamp: user.CreatedAt,
			TimeAgo:   utils.TimeAgo(utils.ParseTimestamp(user.CreatedAt), now),
		})
	}

	newestDoctors := make([]responses.Doctor, len(doctors))
	copy(newestDoctors, doctors)
	utils.SortByNewest(newestDoctors, func(doctor responses.Doctor) string { return doctor.CreatedAt })
	if len(newestDoctors) > constvars.ActivityDoctorCount {
		newestDoctors = newestDoctors[:constvars.ActivityDoctorCount]
	}
	for _, doctor := range newestDoctors {
		entries = append(entries, responses.ActivityEntry{
			ID:        doctor.ID,
			Type:      "doctor_joined",
			Message:   fmt.Sprintf("Dr. %s %s joined (%s)", doctor.FirstName, doctor.LastName, doctor.Specialization),
			Timestamp: doctor.CreatedAt,
			TimeAgo:   utils.TimeAgo(utils.ParseTimestamp(doctor.CreatedAt), now),
		})
	}

	entries = append(entries, responses.ActivityEntry{
		ID:        uuid.NewString(),
		Type:      "system",
		Message:   "System health check completed",
		Timestamp: now.Format(time.RFC3339),
		TimeAgo:   utils.TimeAgo(now, now),
	})

	utils.SortByNewest(entries, func(entry responses.ActivityEntry) string { return entry.Timestamp })
	if len(entries) > constvars.ActivityFeedSize {
		entries = entries[:constvars.ActivityFeedSize]
	}
	return entries
}
