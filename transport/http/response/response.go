package response

import (
	"encoding/json"
	"net/http"

	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
)

// envelope is the body of every API response: exactly one of the fields is set.
type envelope struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, envelope{Message: message})
}

// WithJSON wraps payload under "data".
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, envelope{Data: payload})
}

// WithError maps the failure kind to its status: 400, 404, 409, or 500 for anything untyped.
func WithError(writer http.ResponseWriter, err error) {
	write(writer, failure.GetCode(err), envelope{Error: err.Error()})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func write(writer http.ResponseWriter, code int, body envelope) {
	raw, err := json.Marshal(body)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(raw); err != nil {
		logger.ErrorWithStack(err)
	}
}
