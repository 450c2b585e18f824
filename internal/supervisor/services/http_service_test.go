// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// fakeServer blocks in ListenAndServe until Shutdown, like *http.Server.
type fakeServer struct {
	listenErr   error
	shutdownErr error

	started   chan struct{}
	stop      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once

	shutdowns        atomic.Int32
	shutdownDeadline atomic.Pointer[time.Time]
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		started: make(chan struct{}),
		stop:    make(chan struct{}),
	}
}

func (f *fakeServer) ListenAndServe() error {
	f.startOnce.Do(func() { close(f.started) })
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.stop
	return http.ErrServerClosed
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	f.shutdowns.Add(1)
	if d, ok := ctx.Deadline(); ok {
		f.shutdownDeadline.Store(&d)
	}
	f.stopOnce.Do(func() { close(f.stop) })
	return f.shutdownErr
}

func waitStarted(t *testing.T, f *fakeServer) {
	t.Helper()
	select {
	case <-f.started:
	case <-time.After(2 * time.Second):
		t.Fatal("ListenAndServe was not called")
	}
}

var (
	_ suture.Service = (*HTTPServerService)(nil)
	_ HTTPServer     = (*http.Server)(nil)
)

func TestNewHTTPServerService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{"explicit", 3 * time.Second, 3 * time.Second},
		{"zero uses default", 0, DefaultShutdownTimeout},
		{"negative uses default", -time.Second, DefaultShutdownTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewHTTPServerService(newFakeServer(), tt.timeout)
			if svc.shutdownTimeout != tt.want {
				t.Errorf("shutdownTimeout = %v, want %v", svc.shutdownTimeout, tt.want)
			}
			if svc.String() != "http-server" {
				t.Errorf("String() = %q, want http-server", svc.String())
			}
		})
	}
}

func TestHTTPServerService_ServeReturnsListenError(t *testing.T) {
	t.Parallel()

	errBind := errors.New("bind: address already in use")
	srv := newFakeServer()
	srv.listenErr = errBind

	err := NewHTTPServerService(srv, time.Second).Serve(context.Background())
	if !errors.Is(err, errBind) {
		t.Fatalf("Serve() error = %v, want wrapped %v", err, errBind)
	}
	if n := srv.shutdowns.Load(); n != 0 {
		t.Errorf("Shutdown called %d times after listen failure", n)
	}
}

func TestHTTPServerService_ServeClosedElsewhere(t *testing.T) {
	t.Parallel()

	srv := newFakeServer()
	srv.listenErr = http.ErrServerClosed

	if err := NewHTTPServerService(srv, time.Second).Serve(context.Background()); err != nil {
		t.Fatalf("Serve() error = %v, want nil", err)
	}
}

func TestHTTPServerService_CancelShutsDown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		shutdownErr error
		wantErr     error
	}{
		{"clean shutdown", nil, context.Canceled},
		{"shutdown failure", context.DeadlineExceeded, context.DeadlineExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newFakeServer()
			srv.shutdownErr = tt.shutdownErr
			svc := NewHTTPServerService(srv, 5*time.Second)

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			before := time.Now()
			go func() { done <- svc.Serve(ctx) }()

			waitStarted(t, srv)
			cancel()

			select {
			case err := <-done:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Serve() error = %v, want %v", err, tt.wantErr)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("Serve did not return after cancel")
			}

			if n := srv.shutdowns.Load(); n != 1 {
				t.Errorf("Shutdown called %d times, want 1", n)
			}
			d := srv.shutdownDeadline.Load()
			if d == nil {
				t.Fatal("Shutdown context has no deadline")
			}
			if d.Before(before) || d.After(time.Now().Add(5*time.Second)) {
				t.Errorf("Shutdown deadline %v outside the 5s window", *d)
			}
		})
	}
}

func TestHTTPServerService_RealServer(t *testing.T) {
	t.Parallel()

	server := &http.Server{
		Addr:              "127.0.0.1:0",
		Handler:           http.NotFoundHandler(),
		ReadHeaderTimeout: time.Second,
	}
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestHTTPServerService_UnderSupervisor(t *testing.T) {
	t.Parallel()

	srv := newFakeServer()
	sup := suture.New("api-layer-test", suture.Spec{Timeout: 2 * time.Second})
	sup.Add(NewHTTPServerService(srv, time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	waitStarted(t, srv)
	cancel()

	select {
	case <-errCh:
	case <-time.After(3 * time.Second):
		t.Fatal("supervisor did not stop")
	}
	if n := srv.shutdowns.Load(); n != 1 {
		t.Errorf("Shutdown called %d times, want 1", n)
	}
}
