package exceptions

import (
	"fmt"
	"sparrc-service/internal/pkg/constvars"
)

var (
	// Validation — recovered locally, never sent over the network.
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidation, paramName))
	}
	ErrProfileRequiredFields = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientProfileIncomplete, constvars.ErrDevProfileRequiredFields)
	}
	ErrAppointmentRequiredFields = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientAppointmentIncomplete, constvars.ErrDevAppointmentRequiredField)
	}
	ErrSessionNotLoaded = func() *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusBadRequest, constvars.ErrClientSessionNotLoaded, constvars.ErrDevSessionNotLoaded)
	}
	ErrSessionDisposed = func() *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusGone, constvars.ErrClientSessionDisposed, constvars.ErrDevSessionDisposed)
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDate)
	}

	// Network transport
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusInternalServerError, constvars.ErrClientCannotReachServer, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusBadGateway, constvars.ErrClientCannotReachServer, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, KindTimeout, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevDeadlineExceeded)
	}
	ErrRemoteServer = func(err error) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRemoteServerError)
	}
	ErrRemoteBadRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevValidationFailed)
	}

	// Domain
	ErrPatientNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, constvars.ErrDevPatientNotFound)
	}

	// Storage
	ErrMySQLQuery = func(err error) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMySQLQuery)
	}
	ErrMySQLExec = func(err error) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMySQLExec)
	}
)
