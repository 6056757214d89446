package httpx

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// Envelope is the uniform body of every API response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// WriteJSON encodes v with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONSuccess writes a success envelope. message and data are omitted when empty.
func JSONSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	WriteJSON(w, statusCode, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// JSONFail writes a fail envelope carrying message.
func JSONFail(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, Envelope{
		Status:  StatusFail,
		Message: message,
	})
}

// DecodeJSON decodes the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
