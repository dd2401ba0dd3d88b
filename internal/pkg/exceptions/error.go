package exceptions

import (
	"errors"
	"fmt"
	"runtime"
	"sparrc-service/internal/pkg/constvars"
)

// Kind classifies an error so callers can branch on failure class without
// matching on message text.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNetwork    Kind = "network"
	KindTimeout    Kind = "timeout"
	KindNotFound   Kind = "not_found"
	KindServer     Kind = "server"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Kind          Kind     `json:"kind"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Is(target error) bool {
	var customErr *CustomError
	if errors.As(target, &customErr) {
		return e.Kind == customErr.Kind
	}
	return false
}

func BuildNewCustomError(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

// AsCustomError normalizes any error into a *CustomError so every failure
// carries a kind and a client message; unclassified errors become KindServer.
func AsCustomError(err error) *CustomError {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr
	}
	return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ResponseUnknown)
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
