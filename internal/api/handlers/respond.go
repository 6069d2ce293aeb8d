package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/paulajardimf/poo-1-exercicios/internal/api/apierr"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr resolves err to a status code and writes its message as plain
// text, the error shape this API has always answered with.
func writeErr(w http.ResponseWriter, err error) {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		http.Error(w, ae.Error(), ae.Kind.Status())
		return
	}
	http.Error(w, "Erro inesperado", http.StatusInternalServerError)
}
