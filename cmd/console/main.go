package main

import (
	"context"
	"healthapp-admin/internal/app/config"
	"healthapp-admin/internal/app/contracts"
	"healthapp-admin/internal/app/delivery/http/controllers"
	"healthapp-admin/internal/app/delivery/http/middlewares"
	"healthapp-admin/internal/app/delivery/http/routers"
	"healthapp-admin/internal/app/drivers/database"
	"healthapp-admin/internal/app/drivers/logger"
	"healthapp-admin/internal/app/services/core/appointments"
	"healthapp-admin/internal/app/services/core/auth"
	"healthapp-admin/internal/app/services/core/billing"
	"healthapp-admin/internal/app/services/core/dashboard"
	"healthapp-admin/internal/app/services/core/doctors"
	"healthapp-admin/internal/app/services/core/messages"
	"healthapp-admin/internal/app/services/core/patients"
	"healthapp-admin/internal/app/services/core/prescriptions"
	"healthapp-admin/internal/app/services/core/testresults"
	"healthapp-admin/internal/app/services/core/users"
	"healthapp-admin/internal/app/services/shared/poller"
	"healthapp-admin/internal/app/services/shared/rest"
	"healthapp-admin/internal/app/services/shared/session"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient, err := database.NewRedisClient(driverConfig)
	if err != nil {
		log.Warnf("Redis unavailable, sessions will not survive restarts: %v", err)
		redisClient = nil
	}

	chiRouter := chi.NewRouter()

	dashboardPoller := bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}, zapLogger)

	pollCtx, stopPolling := context.WithCancel(context.Background())
	dashboardPoller.Start(pollCtx)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	log.Printf("Admin console listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	dashboardPoller.Stop()
	stopPolling()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, zapLogger *zap.Logger) *poller.Poller {
	// Session store: Redis when reachable, process memory otherwise.
	var sessionStore contracts.SessionStore
	if bootstrap.Redis != nil {
		sessionStore = session.NewRedisSessionStore(
			bootstrap.Redis,
			time.Duration(bootstrap.InternalConfig.Console.SessionTTLInHour)*time.Hour,
			zapLogger,
		)
	} else {
		sessionStore = session.NewMemorySessionStore()
	}

	// Upstream transport
	restClient := rest.NewRestClient(
		bootstrap.InternalConfig.Upstream.BaseUrl,
		time.Duration(bootstrap.InternalConfig.Upstream.RequestTimeoutInSecond)*time.Second,
		bootstrap.InternalConfig.Upstream.MaxRequestsPerSecond,
		sessionStore,
		zapLogger,
	)
	restClient.SetOnUnauthorized(func() {
		bootstrap.Logger.Warn("Upstream session expired, operator must sign in again")
	})

	// Adapters
	doctorAdapter := doctors.NewDoctorAdapter(restClient, zapLogger)
	patientAdapter := patients.NewPatientAdapter(restClient, zapLogger)
	userAdapter := users.NewUserAdapter(restClient, doctorAdapter, patientAdapter, zapLogger)
	appointmentAdapter := appointments.NewAppointmentAdapter(restClient, zapLogger)
	billingAdapter := billing.NewBillingAdapter(restClient, patientAdapter, zapLogger)
	prescriptionAdapter := prescriptions.NewPrescriptionAdapter(restClient, patientAdapter, zapLogger)
	testResultAdapter := testresults.NewTestResultAdapter(restClient, patientAdapter, zapLogger)
	messageAdapter := messages.NewMessageAdapter(restClient, zapLogger)

	// Usecases
	authUsecase := auth.NewAuthUsecase(restClient, sessionStore, zapLogger)
	dashboardUsecase := dashboard.NewDashboardUsecase(userAdapter, doctorAdapter, patientAdapter, appointmentAdapter, zapLogger)

	// Delivery
	mw := middlewares.NewMiddlewares(zapLogger, sessionStore)
	ctrl := &routers.Controllers{
		Auth:         controllers.NewAuthController(zapLogger, authUsecase),
		Dashboard:    controllers.NewDashboardController(zapLogger, dashboardUsecase),
		User:         controllers.NewUserController(zapLogger, userAdapter),
		Doctor:       controllers.NewDoctorController(zapLogger, doctorAdapter),
		Patient:      controllers.NewPatientController(zapLogger, patientAdapter),
		Appointment:  controllers.NewAppointmentController(zapLogger, appointmentAdapter),
		Billing:      controllers.NewBillingController(zapLogger, billingAdapter),
		Prescription: controllers.NewPrescriptionController(zapLogger, prescriptionAdapter),
		TestResult:   controllers.NewTestResultController(zapLogger, testResultAdapter),
		Message:      controllers.NewMessageController(zapLogger, messageAdapter),
	}
	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, mw, ctrl)

	return poller.New(
		time.Duration(bootstrap.InternalConfig.Console.PollIntervalInSecond)*time.Second,
		dashboardUsecase.Fetch,
		zapLogger,
	)
}
