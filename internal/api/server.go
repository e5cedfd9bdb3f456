// Package api serves family tree reports over HTTP.
//
// The server holds one loaded record set and builds a fresh tree per
// request, so concurrent requests never share mutable state. Identical
// concurrent requests are collapsed into one build, and rendered reports
// go through the pipeline's report cache.
//
// # Routes
//
//	GET /healthz                  liveness, "ok"
//	GET /version                  build information
//	GET /v1/individuals           ids and display names
//	GET /v1/trees/{rootID}        report; query: format, sort, order, title
//	GET /metrics                  Prometheus metrics, when a gatherer is set
//
// Errors are JSON objects {"code": ..., "message": ...}. Unknown
// individuals are 404, invalid parameters 400.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/familytree/pkg/buildinfo"
	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/observability"
	"github.com/matzehuels/familytree/pkg/pipeline"
	"github.com/matzehuels/familytree/pkg/records"
	"github.com/matzehuels/familytree/pkg/render"
)

// Response headers of tree reports.
const (
	HeaderTreeID = "X-Tree-ID"
	HeaderCache  = "X-Cache"
)

// Server answers report requests for one record set.
type Server struct {
	runner   *pipeline.Runner
	store    *records.MemoryStore
	hash     string
	defaults pipeline.Options
	gatherer prometheus.Gatherer
	logger   *log.Logger
	flight   singleflight.Group
}

// Option configures a Server.
type Option func(*Server)

// WithDefaults sets the report options that query parameters override.
// Source and RootID are ignored.
func WithDefaults(opts pipeline.Options) Option {
	return func(s *Server) { s.defaults = opts }
}

// WithGatherer exposes g on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// New returns a server for store. Reports are built and cached through
// runner.
func New(runner *pipeline.Runner, store *records.MemoryStore, opts ...Option) (*Server, error) {
	hash, err := pipeline.DatasetHash(store)
	if err != nil {
		return nil, err
	}
	s := &Server{runner: runner, store: store, hash: hash, logger: runner.Logger}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.use(r)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/version", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, buildinfo.Get())
	})
	r.Route("/v1", func(r chi.Router) {
		r.Get("/individuals", s.listIndividuals)
		r.Get("/trees/{rootID}", s.getTree)
	})
	if s.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// use installs the middleware stack. instrument wraps Recoverer so that a
// panicking handler is still reported as a 500 response.
func (s *Server) use(r chi.Router) {
	r.Use(s.instrument, middleware.Recoverer)
}

// instrument reports requests to the HTTP hooks, labelled by route
// pattern so that ids do not blow up label cardinality.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			hooks.OnResponse(r.Context(), r.Method, route, status, time.Since(start))
			s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", status, "duration", time.Since(start))
		}()

		next.ServeHTTP(ww, r)
	})
}

// Individual is an entry of /v1/individuals.
type Individual struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s *Server) listIndividuals(w http.ResponseWriter, _ *http.Request) {
	inds := s.store.Individuals()
	out := make([]Individual, 0, len(inds))
	for _, ind := range inds {
		out = append(out, Individual{ID: ind.ID, Name: ind.DisplayName()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getTree(w http.ResponseWriter, r *http.Request) {
	opts, err := s.treeOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}

	key := s.runner.Keyer.ReportKey(s.hash, opts.ReportKeyOpts())
	v, err, shared := s.flight.Do(key, func() (any, error) {
		// Detached so that one cancelled caller does not fail the others.
		return s.runner.Report(context.WithoutCancel(r.Context()), s.store, s.hash, opts)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	result := v.(*pipeline.Result)
	if shared {
		s.logger.Debug("shared report build", "root", opts.RootID, "format", opts.Format)
	}

	h := w.Header()
	h.Set("Content-Type", render.ContentType(opts.Format))
	h.Set(HeaderTreeID, result.TreeID)
	if result.CacheInfo.ReportHit {
		h.Set(HeaderCache, "hit")
	} else {
		h.Set(HeaderCache, "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Report)
}

// treeOptions applies the query parameters to the server defaults.
func (s *Server) treeOptions(r *http.Request) (pipeline.Options, error) {
	opts := s.defaults
	opts.Source = ""
	opts.Refresh = false
	opts.RootID = chi.URLParam(r, "rootID")

	q := r.URL.Query()
	if v := q.Get("format"); v != "" {
		opts.Format = v
	}
	if v := q.Get("title"); v != "" {
		opts.Title = v
	}
	if v := q.Get("order"); v != "" {
		opts.Order = v
	}
	if v := q.Get("sort"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid sort: %s (must be true or false)", v)
		}
		opts.Sort = b
	}
	return opts, opts.ValidateAndSetDefaults()
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// StatusCode maps an error code to an HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, StatusCode(err), errorBody{Code: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
