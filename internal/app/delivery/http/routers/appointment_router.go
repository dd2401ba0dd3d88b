package routers

import (
	"sparrc-service/internal/app/delivery/http/middlewares"
	"sparrc-service/internal/app/services/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Post("/", appointmentController.CreateAppointment)
}
