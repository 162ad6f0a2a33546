package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Kirolos010/E-Commerce-API/internal/errors"
	"github.com/go-playground/validator/v10"
)

// Envelope is the body shape of every response. Status mirrors the HTTP
// status code; Errors maps a field name to the messages of the violated
// constraints.
type Envelope struct {
	Status  int                 `json:"status"`
	Message string              `json:"message,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(body)
}

// Data writes `{data, status}` for list/get responses.
func Data(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, Envelope{Status: statusCode, Data: data})
}

// Message writes `{status, message, data?}` for mutation responses.
func Message(w http.ResponseWriter, statusCode int, message string, data any) {
	WriteJSON(w, statusCode, Envelope{Status: statusCode, Message: message, Data: data})
}

// Error maps any error onto the envelope. Unknown errors become a 500.
func Error(w http.ResponseWriter, err error) {
	if appErr, ok := errors.IsAppError(err); ok {
		WriteJSON(w, appErr.StatusCode, Envelope{
			Status:  appErr.StatusCode,
			Message: appErr.Message,
			Errors:  appErr.Fields,
		})

		return
	}

	WriteJSON(w, http.StatusInternalServerError, Envelope{
		Status:  http.StatusInternalServerError,
		Message: "An unexpected error occurred",
	})
}

// ValidationFailed renders struct validation failures as a field → messages
// map under a "Validation failed" envelope.
func ValidationFailed(w http.ResponseWriter, errs validator.ValidationErrors) {
	fields := make(map[string][]string, len(errs))

	for _, err := range errs {
		fields[err.Field()] = append(fields[err.Field()], fieldMessage(err))
	}

	WriteJSON(w, http.StatusBadRequest, Envelope{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Errors:  fields,
	})
}

func fieldMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", err.Field())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", err.Field())
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", err.Field(), err.Param())
	case "min", "gte":
		return fmt.Sprintf("The %s field must be at least %s.", err.Field(), err.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", err.Field())
	}
}
