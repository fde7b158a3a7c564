package httpapi

import (
	"encoding/json"
	"net/http"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes the {message, error} body every failure path uses:
// message is the stable human explanation, error the underlying cause.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]string{"message": message, "error": ""}
	if err != nil {
		body["error"] = err.Error()
	}
	respondJSON(w, status, body)
}
