package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/feather-lang/libxc"
)

func newServeCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the functional catalog as JSON over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return newCatalogServer(opts.log).ListenAndServe(ctx, opts.addr)
		},
	}
	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "address to listen on")
	return cmd
}

// catalogServer answers catalog queries over HTTP.
//
// libxc is not documented as reentrant, so every native call made on behalf
// of a request happens under mu.
type catalogServer struct {
	mu     sync.Mutex
	router *mux.Router
	log    *zap.Logger
}

func newCatalogServer(log *zap.Logger) *catalogServer {
	s := &catalogServer{
		router: mux.NewRouter(),
		log:    log,
	}
	s.router.HandleFunc("/version", s.handleVersion).Methods(http.MethodGet)
	s.router.HandleFunc("/functionals", s.handleList).Methods(http.MethodGet)
	s.router.HandleFunc("/functionals/{key}", s.handleShow).Methods(http.MethodGet)
	return s
}

func (s *catalogServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *catalogServer) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// locked runs fn while holding mu. The lock is released even if fn panics.
func (s *catalogServer) locked(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func (s *catalogServer) handleVersion(w http.ResponseWriter, r *http.Request) {
	var lib libxc.Library
	s.locked(func() { lib = libxc.LibraryInfo() })

	s.writeJSON(w, http.StatusOK, lib)
}

func (s *catalogServer) handleList(w http.ResponseWriter, r *http.Request) {
	var entries []libxc.Entry
	s.locked(func() { entries = libxc.Catalog() })

	s.writeJSON(w, http.StatusOK, entries)
}

func (s *catalogServer) handleShow(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	polarization := libxc.Unpolarized
	if v := r.URL.Query().Get("polarized"); v != "" {
		polarized, err := strconv.ParseBool(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, errors.New("polarized must be a boolean"))
			return
		}
		if polarized {
			polarization = libxc.Polarized
		}
	}

	var (
		info libxc.Info
		err  error
	)
	s.locked(func() { info, err = describe(key, polarization) })

	if err != nil {
		var initErr *libxc.InitError
		switch {
		case errors.Is(err, libxc.ErrInvalidName), errors.Is(err, libxc.ErrInvalidID):
			s.writeError(w, http.StatusNotFound, err)
		case errors.As(err, &initErr):
			s.log.Warn("functional init failed", zap.String("key", key), zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, err)
		default:
			s.writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	s.writeJSON(w, http.StatusOK, info)
}

func (s *catalogServer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Debug("write response", zap.Error(err))
	}
}

func (s *catalogServer) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
