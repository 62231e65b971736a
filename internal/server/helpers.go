package server

import (
	"encoding/json"
	"net/http"

	"github.com/matheuscscp/oauth2-device-bridge/internal/constants"
	"github.com/matheuscscp/oauth2-device-bridge/internal/logging"
)

func authorizationCode(r *http.Request) string {
	return r.URL.Query().Get(constants.QueryParamAuthorizationCode)
}

func state(r *http.Request) string {
	return r.URL.Query().Get(constants.QueryParamState)
}

func deviceCode(r *http.Request) string {
	return r.URL.Query().Get(constants.QueryParamDeviceCode)
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.FromRequest(r).WithError(err).Error("failed to write response")
	}
}
