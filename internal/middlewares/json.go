package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/Renal37/order-dashboard/internal/logger"
	"go.uber.org/zap"
)

type parsedJSONDataFieldType string

const parsedJSONDataField parsedJSONDataFieldType = "parsedJSONDataField"

type ModelParameter interface {
	interface{} | []interface{}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// JSONMiddleware decodes the request body into Model and stores it in the
// request context for GetParsedJSONData.
func JSONMiddleware[Model ModelParameter](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			WriteJSONError(w, http.StatusUnsupportedMediaType, "Content type is not application/json")
			return
		}

		var parsedData Model
		var buf bytes.Buffer

		if _, err := buf.ReadFrom(r.Body); err != nil {
			WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Error occurred during reading request body %s", err.Error()))
			return
		}

		if err := json.Unmarshal(buf.Bytes(), &parsedData); err != nil {
			WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Error occurred during unmarshaling data %s", err.Error()))
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), parsedJSONDataField, parsedData)))
	})
}

func GetParsedJSONData[Model ModelParameter](w http.ResponseWriter, r *http.Request) (Model, bool) {
	data, ok := r.Context().Value(parsedJSONDataField).(Model)

	if !ok {
		WriteJSONError(w, http.StatusInternalServerError, "Couldn't get parsed data from context")
		var empty Model
		return empty, false
	}

	return data, true
}

func EncodeJSONResponse[Model any](w http.ResponseWriter, status int, data Model) {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Log.Error("failed to encode response", zap.Error(err))
		WriteJSONError(w, http.StatusInternalServerError, fmt.Sprintf("Error occurred during encoding response %s", err.Error()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(resp); err != nil {
		logger.Log.Error("failed to write response", zap.Error(err))
	}
}

// WriteJSONError writes {"error": message} with the given status.
func WriteJSONError(w http.ResponseWriter, status int, message string) {
	resp, _ := json.Marshal(ErrorResponse{Error: message})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(resp); err != nil {
		logger.Log.Error("failed to write error response", zap.Error(err))
	}
}
