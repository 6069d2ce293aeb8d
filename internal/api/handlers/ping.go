package handlers

import "net/http"

// Ping answers the liveness check.
func Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Pong!"})
}
