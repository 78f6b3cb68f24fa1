package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/goaltrack-lambda/internal/config"
)

// Run starts the Lambda runtime, or a plain HTTP server on localAddr when it is set.
func Run(name, localAddr string, handler http.Handler) {
	if localAddr == "" {
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return
	}

	if err := ListenAndServe(name, localAddr, handler, stopSignal()); err != nil {
		config.Logger.WithError(err).Fatalf("%s stopped", name)
	}
}

func stopSignal() <-chan struct{} {
	stop := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		close(stop)
	}()
	return stop
}

// ListenAndServe serves until stop is closed and then shuts down gracefully.
func ListenAndServe(name, addr string, handler http.Handler, stop <-chan struct{}) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		config.Logger.WithField("addr", addr).Infof("%s listening", name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	return <-errCh
}
