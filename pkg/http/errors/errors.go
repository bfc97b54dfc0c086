package errors

import (
	"encoding/json"
	"net/http"
)

// Response is the client-facing error envelope. The numeric error field
// repeats the HTTP status so browser clients can branch without reading
// response headers.
type Response struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// Respond writes the error envelope with the given status and message.
func Respond(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// BadRequest reports malformed client input.
func BadRequest(w http.ResponseWriter) {
	Respond(w, http.StatusBadRequest, "bad request")
}

// NotFound reports a missing question, category or page.
func NotFound(w http.ResponseWriter) {
	Respond(w, http.StatusNotFound, "resource not found")
}

// MethodNotAllowed reports an unsupported verb on a known path.
func MethodNotAllowed(w http.ResponseWriter) {
	Respond(w, http.StatusMethodNotAllowed, "method not allowed")
}

// Unprocessable reports a request that parsed but cannot be acted on.
func Unprocessable(w http.ResponseWriter) {
	Respond(w, http.StatusUnprocessableEntity, "unprocessable")
}

// Internal reports an unexpected server-side failure.
func Internal(w http.ResponseWriter) {
	Respond(w, http.StatusInternalServerError, "internal server error")
}
