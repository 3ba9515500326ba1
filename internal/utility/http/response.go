package http

import (
	"encoding/json"
	"log"
	"net/http"
)

type messageResponse struct {
	Message string `json:"message"`
}

type dataResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// RespondMessage sends {"message": message}.
func RespondMessage(w http.ResponseWriter, code int, message string) {
	sendJSONResponse(w, code, &messageResponse{Message: message})
}

// RespondData sends {"message": message, "data": data}.
func RespondData(w http.ResponseWriter, code int, message string, data interface{}) {
	sendJSONResponse(w, code, &dataResponse{Message: message, Data: data})
}

// RespondInvalid sends a 400 carrying the validation message as {"error": ...}.
func RespondInvalid(w http.ResponseWriter, message string) {
	sendJSONResponse(w, http.StatusBadRequest, &errorResponse{Error: message})
}

// RespondError sends an error JSON response and logs the cause.
func RespondError(w http.ResponseWriter, code int, message string, err error) {
	if err != nil {
		log.Printf("Error: %v", err)
	}
	sendJSONResponse(w, code, &messageResponse{Message: message})
}

// RespondJSON encodes payload as is.
func RespondJSON(w http.ResponseWriter, code int, payload interface{}) {
	sendJSONResponse(w, code, payload)
}

func sendJSONResponse(w http.ResponseWriter, code int, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
