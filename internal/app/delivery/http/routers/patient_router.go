package routers

import (
	"sparrc-service/internal/app/delivery/http/middlewares"
	"sparrc-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.Get("/{patient_id}", patientController.FetchPatient)
	router.Put("/{patient_id}", patientController.UpdateProfile)
}
