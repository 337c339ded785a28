package responses

import (
	"encoding/json"
	"net/http"

	appuser "userservice/internal/app/user"
)

// Error categories used in the envelope's "error" field.
const (
	CategoryBadRequest = "Bad Request"
	CategoryNotFound   = "Not Found"
	CategoryInternal   = "Internal Server Error"
	CategoryDatabase   = "Database Error"
)

const (
	msgInvalidInput     = "Invalid input or missing data"
	msgResourceNotFound = "Resource not found"
	msgServerError      = "Something went wrong on the server"
	msgConnectFailed    = "Failed to connect to the database"
)

// ErrorResponse is the envelope for every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, category, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: category, Message: msg})
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, MessageResponse{Message: msg})
}

// WriteBadRequest answers a request-specific validation failure.
func WriteBadRequest(w http.ResponseWriter, msg string) {
	WriteError(w, http.StatusBadRequest, CategoryBadRequest, msg)
}

// WriteStoreFailure maps a service error to its 500 envelope. Store errors
// carry the store's own text to the client.
func WriteStoreFailure(w http.ResponseWriter, err error) {
	switch {
	case appuser.IsConnectivity(err):
		WriteError(w, http.StatusInternalServerError, CategoryInternal, msgConnectFailed)
	default:
		if msg, ok := appuser.StoreMessage(err); ok {
			WriteError(w, http.StatusInternalServerError, CategoryDatabase, msg)
			return
		}
		WriteInternalError(w, nil)
	}
}

// Generic fallbacks for conditions no handler answered itself.

func WriteInvalidInput(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusBadRequest, CategoryBadRequest, msgInvalidInput)
}

func WriteNotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, CategoryNotFound, msgResourceNotFound)
}

func WriteInternalError(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusInternalServerError, CategoryInternal, msgServerError)
}
