package metrics

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

const shutdownTimeout = 5 * time.Second

// Server serves metrics over HTTP at /metrics.
type Server struct {
	listener   net.Listener
	httpServer *http.Server

	started, shutdown int32
}

// NewServer listens on listenAddr and returns a Server for m. Call Start to
// begin serving.
func NewServer(listenAddr string, m *Metrics) (*Server, error) {
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to listen on %s", listenAddr)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	return &Server{
		listener: listener,
		httpServer: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Addr returns the address the server listens on.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Start begins serving in a new goroutine.
func (s *Server) Start() {
	if atomic.AddInt32(&s.started, 1) != 1 {
		return
	}

	log.Infof("Metrics server listening on %s", s.listener.Addr())
	spawn(func() {
		err := s.httpServer.Serve(s.listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("Metrics server stopped: %+v", err)
		}
	})
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if atomic.AddInt32(&s.shutdown, 1) != 1 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to stop the metrics server")
	}
	// Shutdown leaves the listener open if Serve never ran.
	if atomic.LoadInt32(&s.started) == 0 {
		return s.listener.Close()
	}
	return nil
}
