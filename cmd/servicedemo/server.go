package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/centraunit/injector"
	"github.com/centraunit/injector/mock"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

var operators = map[string]rune{
	"add": '+',
	"sub": '-',
	"mul": '*',
	"div": '/',
}

type server struct {
	container *injector.Container
	logger    *zap.Logger
}

// newServer exposes the container graph and the equation demo.
//
//	GET /graph             → JSON nodes and edges
//	GET /graph.dot         → Graphviz DOT
//	GET /graph.mmd         → Mermaid
//	GET /equation/{op}?x=&y= → op is add | sub | mul | div
func newServer(c *injector.Container, logger *zap.Logger) http.Handler {
	s := &server{container: c, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/graph", s.graphJSON)
	r.Get("/graph.dot", s.graphText(func(g injector.Graph) string { return g.DOT() }))
	r.Get("/graph.mmd", s.graphText(func(g injector.Graph) string { return g.Mermaid() }))
	r.Get("/equation/{op}", s.equation)
	return r
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

func (s *server) graphJSON(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.container.Graph())
}

func (s *server) graphText(render func(injector.Graph) string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(render(s.container.Graph())))
	}
}

// equation resolves a runner from a container built for this request only.
func (s *server) equation(w http.ResponseWriter, r *http.Request) {
	op, ok := operators[chi.URLParam(r, "op")]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown operator")
		return
	}
	x, errX := strconv.Atoi(r.URL.Query().Get("x"))
	y, errY := strconv.Atoi(r.URL.Query().Get("y"))
	if errX != nil || errY != nil {
		writeError(w, http.StatusBadRequest, "x and y must be integers")
		return
	}

	c, err := injector.NewWithServices(mock.EquationServices(op, x, y), injector.WithLogger(s.logger))
	if err != nil {
		s.logger.Error("equation wiring failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	runner, err := injector.Resolve[*mock.EquationRunner](c)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	result, err := runner.Result()
	if errors.Is(err, mock.ErrDivisionByZero) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"x":        x,
		"y":        y,
		"operator": string(op),
		"result":   result,
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
