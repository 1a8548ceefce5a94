package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Configuration & Environment Errors
var (
	ErrConfigMissing       = errors.New("configuration missing")
	ErrEnvironmentVariable = errors.New("environment variable error")
)

// Serialization & Encoding Errors
var (
	ErrJSONMarshal   = errors.New("JSON marshal error")
	ErrJSONUnmarshal = errors.New("JSON unmarshal error")
)

// Dependency & Upstream Errors
var (
	ErrServiceUnreachable = errors.New("service unreachable")
	ErrUpstreamStatus     = errors.New("unexpected upstream status")
)

// Configuration & Environment Error Constructors
func NewConfigError(configName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigMissing,
		Details:    fmt.Sprintf("Configuration error for %s", configName),
		Cause:      cause,
	}
}

func NewEnvironmentVariableError(varName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrEnvironmentVariable,
		Details:    fmt.Sprintf("Environment variable %s is not set or invalid", varName),
		Field:      varName,
	}
}

func NewJSONMarshalError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrJSONMarshal,
		Details:    fmt.Sprintf("JSON marshal error in %s", operation),
		Cause:      cause,
		Field:      "json",
	}
}

func NewJSONUnmarshalError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrJSONUnmarshal,
		Details:    fmt.Sprintf("JSON unmarshal error in %s", operation),
		Cause:      cause,
		Field:      "json",
	}
}

func NewServiceUnreachableError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrServiceUnreachable,
		Details:    fmt.Sprintf("Service %s is unreachable", service),
		Cause:      cause,
		Field:      "service",
	}
}

// NewUpstreamStatusError records a non-2xx answer. message is the error text the
// upstream attached to its response body, empty when it sent none.
func NewUpstreamStatusError(endpoint string, statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        ErrUpstreamStatus,
		Details:    message,
		Field:      endpoint,
	}
}

// UpstreamMessage returns the message carried by an upstream status error, or ""
// when err is not one or the upstream sent no message.
func UpstreamMessage(err error) string {
	var apiErr *ApiErr
	if errors.As(err, &apiErr) && errors.Is(apiErr, ErrUpstreamStatus) {
		return apiErr.Details
	}
	return ""
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfigMissing)
}

func IsJSONUnmarshalError(err error) bool {
	return errors.Is(err, ErrJSONUnmarshal)
}

func IsServiceUnreachableError(err error) bool {
	return errors.Is(err, ErrServiceUnreachable)
}

func IsUpstreamStatusError(err error) bool {
	return errors.Is(err, ErrUpstreamStatus)
}
