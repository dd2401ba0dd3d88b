package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sparrc-service/internal/app/config"
	"sparrc-service/internal/app/delivery/http/middlewares"
	"sparrc-service/internal/app/delivery/http/routers"
	"sparrc-service/internal/app/drivers/database"
	"sparrc-service/internal/app/drivers/logger"
	"sparrc-service/internal/app/services/appointments"
	"sparrc-service/internal/app/services/patients"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location: " + err.Error())
	}
	time.Local = location

	mysqlDB := database.NewMySQLDB(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MySQL:          mysqlDB,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: " + err.Error())
		}
	}()
	log.Info("SPARRC patient API listening on " + internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already reached the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown: " + err.Error())
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	requestTimeout := time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Patient
	patientRepository := patients.NewPatientMySQLRepository(bootstrap.MySQL, bootstrap.Logger)
	patientUsecase := patients.NewPatientUsecase(patientRepository, bootstrap.Logger)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase, requestTimeout)

	// Appointment
	appointmentRepository := appointments.NewAppointmentMySQLRepository(bootstrap.MySQL, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase, requestTimeout)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, patientController, appointmentController)
}
