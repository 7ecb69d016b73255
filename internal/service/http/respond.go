package httpsvc

import (
	"encoding/json"
	"net/http"
)

// errorPayload — единый формат ошибки для клиента.
type errorPayload struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusBadRequest, errorPayload{Error: "validation_failed", Detail: detail})
}

func notFound(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusNotFound, errorPayload{Error: "not_found", Detail: detail})
}

func internalError(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusInternalServerError, errorPayload{Error: "internal", Detail: detail})
}
