package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/matheuscscp/oauth2-device-bridge/internal/config"
	"github.com/matheuscscp/oauth2-device-bridge/internal/logging"
	"github.com/matheuscscp/oauth2-device-bridge/internal/provider/factory"
	"github.com/matheuscscp/oauth2-device-bridge/internal/server"
	"github.com/matheuscscp/oauth2-device-bridge/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := logging.LoadLevel(); err != nil {
		logrus.WithError(err).Warn("falling back to info level")
	}

	conf, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	p, err := factory.New(&conf.Provider, conf.Server.CallbackURL())
	if err != nil {
		logrus.WithError(err).Fatal("failed to create provider")
	}

	srv, st := server.New(conf, p)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go store.RunSweeper(ctx, st, conf.Device.SweepEvery())

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shut down server")
		}
	}()

	logrus.WithField("addr", srv.Addr).Info("server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("server error")
	}
}
