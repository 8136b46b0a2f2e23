package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// envelope — единый конверт ответа API.
type envelope struct {
	Status  int               `json:"status"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Message string            `json:"message,omitempty"`
}

// writeEnvelope отправляет конверт с HTTP-статусом из поля Status.
// Для 204 тело не пишется: net/http не допускает тела у No Content.
func writeEnvelope(w http.ResponseWriter, e envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	if e.Status == http.StatusNoContent {
		return
	}
	if err := json.NewEncoder(w).Encode(e); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, envelope{Status: status, Data: data})
}

func writeFieldErrors(w http.ResponseWriter, errs map[string]string) {
	writeEnvelope(w, envelope{Status: http.StatusBadRequest, Errors: errs})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, envelope{Status: status, Message: message})
}
