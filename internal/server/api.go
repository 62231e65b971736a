package server

import (
	"errors"
	"net/http"

	"github.com/matheuscscp/oauth2-device-bridge/internal/code"
	"github.com/matheuscscp/oauth2-device-bridge/internal/config"
	"github.com/matheuscscp/oauth2-device-bridge/internal/constants"
	"github.com/matheuscscp/oauth2-device-bridge/internal/logging"
	"github.com/matheuscscp/oauth2-device-bridge/internal/provider"
	"github.com/matheuscscp/oauth2-device-bridge/internal/store"
)

const (
	// Device-facing endpoints.
	pathCode      = "/code"
	pathPollToken = "/poll-token"

	// Browser-facing endpoints.
	pathLogin    = "/login"
	pathCallback = constants.CallbackPath

	// Device codes are short on purpose, so insertion can collide with a
	// live session. Regenerate a bounded number of times before giving up.
	maxCodeAttempts = 16
)

func newAPI(p provider.Interface, conf *config.Config, st store.Store, gen *code.Generator) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(pathCode, func(w http.ResponseWriter, r *http.Request) {
		l := logging.FromRequest(r)

		for range maxCodeAttempts {
			deviceCode, err := gen.Generate()
			if err != nil {
				l.WithError(err).Error("failed to generate device code")
				http.Error(w, "Failed to generate device code", http.StatusInternalServerError)
				return
			}

			auth, err := p.NewAuthorization()
			if err != nil {
				l.WithError(err).Error("failed to create authorization")
				http.Error(w, "Failed to create authorization", http.StatusInternalServerError)
				return
			}

			err = st.Create(&store.Session{
				DeviceCode:    deviceCode,
				CorrelationID: auth.State,
				CodeVerifier:  auth.CodeVerifier,
				AuthorizeURL:  auth.URL,
			})
			if errors.Is(err, store.ErrConflict) {
				continue
			}
			if err != nil {
				l.WithError(err).Error("failed to store session")
				http.Error(w, "Failed to store session", http.StatusInternalServerError)
				return
			}

			l.WithField("deviceCode", deviceCode).Debug("device code issued")
			respondJSON(w, r, http.StatusOK, map[string]any{
				"code": deviceCode,
				"url":  conf.Server.DevicePageURL(),
			})
			return
		}

		l.Error("exhausted device code generation attempts")
		http.Error(w, "Failed to allocate device code", http.StatusInternalServerError)
	})

	mux.HandleFunc(pathLogin, func(w http.ResponseWriter, r *http.Request) {
		l := logging.FromRequest(r)

		if r.Method != http.MethodPost {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseForm(); err != nil {
			l.WithError(err).Error("failed to parse form")
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			return
		}

		deviceCode := r.FormValue(constants.FormParamDeviceCode)
		s, err := st.LookupByDeviceCode(deviceCode)
		if err != nil {
			l.Info("login attempt with unknown device code")
			http.Redirect(w, r, constants.DevicePagePath+"?error=invalid_code", http.StatusSeeOther)
			return
		}

		// Hand the browser off to the identity provider for sign-in.
		http.Redirect(w, r, s.AuthorizeURL, http.StatusSeeOther)
	})

	mux.HandleFunc(pathCallback, func(w http.ResponseWriter, r *http.Request) {
		l := logging.FromRequest(r)

		state := state(r)
		authzCode := authorizationCode(r)
		if state == "" || authzCode == "" {
			http.Error(w, "Invalid callback parameters", http.StatusBadRequest)
			return
		}

		s, err := st.LookupByCorrelation(state)
		if err != nil {
			// Unrecognized state: forged, stale or expired callback.
			l.Error("callback with unrecognized state")
			http.Error(w, "Invalid state", http.StatusBadRequest)
			return
		}

		if s.Status == store.StatusAuthorized {
			// Duplicate callback. The first exchange already captured the
			// token, so this one succeeds as a no-op.
			http.Redirect(w, r, constants.CompletePagePath, http.StatusSeeOther)
			return
		}

		// Exchange the authorization code for tokens. The network call
		// happens outside any store lock; single attempt, no retry.
		token, err := p.Exchange(r.Context(), authzCode, s.CodeVerifier)
		if err != nil {
			l.WithError(err).Error("failed to exchange authorization code for tokens")
			http.Redirect(w, r, constants.DevicePagePath+"?error=auth_failed", http.StatusSeeOther)
			return
		}

		switch err := st.CompleteByCorrelation(state, token); {
		case err == nil, errors.Is(err, store.ErrAlreadyCompleted):
			// Losing the completion race to a concurrent duplicate callback
			// is as good as winning it.
		case errors.Is(err, store.ErrNotFound):
			l.Error("session expired during token exchange")
			http.Redirect(w, r, constants.DevicePagePath+"?error=invalid_code", http.StatusSeeOther)
			return
		default:
			l.WithError(err).Error("failed to complete session")
			http.Error(w, "Failed to complete session", http.StatusInternalServerError)
			return
		}

		l.Info("device authorization completed")
		http.Redirect(w, r, constants.CompletePagePath, http.StatusSeeOther)
	})

	mux.HandleFunc(pathPollToken, func(w http.ResponseWriter, r *http.Request) {
		out := st.Get(deviceCode(r))
		switch out.Status {
		case store.OutcomeReady:
			respondJSON(w, r, http.StatusOK, out.Token)
		case store.OutcomePending:
			w.WriteHeader(http.StatusNoContent)
		default:
			// Never issued and expired are indistinguishable on purpose.
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		}
	})

	static := http.FileServer(http.Dir(conf.Server.StaticDir))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, constants.DevicePagePath, http.StatusSeeOther)
			return
		}
		static.ServeHTTP(w, r)
	})

	return mux
}
