package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matheuscscp/oauth2-device-bridge/internal/config"
	"github.com/matheuscscp/oauth2-device-bridge/internal/logging"
	"github.com/matheuscscp/oauth2-device-bridge/internal/store"
)

func newServer(conf *config.Config, api http.Handler, st store.Store,
	promRegisterer prometheus.Registerer, promGatherer prometheus.Gatherer) *http.Server {

	promHandler := promhttp.HandlerFor(promGatherer, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	requestDurationSecs := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: "http_request_duration_seconds",
		Help: "Duration of HTTP requests in seconds",
	}, []string{"host", "method", "path", "status"})
	liveSessions := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "device_sessions_live",
		Help: "Number of live device-code sessions",
	}, func() float64 { return float64(st.Len()) })
	promRegisterer.MustRegister(requestDurationSecs, liveSessions)

	return &http.Server{
		Addr: conf.Server.Addr,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t := time.Now()
			sr := &statusRecorder{ResponseWriter: w}
			defer func() {
				status := fmt.Sprintf("%d", sr.getStatusCode())
				requestDurationSecs.
					WithLabelValues(r.Host, r.Method, r.URL.Path, status).
					Observe(time.Since(t).Seconds())
			}()

			w = sr
			r = logging.IntoRequest(r, logging.ForRequest(r))

			switch r.URL.Path {
			case "/readyz", "/healthz":
				w.WriteHeader(http.StatusOK)
			case "/metrics":
				promHandler.ServeHTTP(w, r)
			default:
				api.ServeHTTP(w, r)
			}
		}),
	}
}
