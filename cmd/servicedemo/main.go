// Command servicedemo wires the A..J sample graph, prints it, reports the
// I <-> J cycle and evaluates a sample equation. With -serve it also exposes
// the dependency graph and the equation over HTTP.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/centraunit/injector"
	"github.com/centraunit/injector/config"
	"github.com/centraunit/injector/mock"
	"go.uber.org/zap"
)

func main() {
	os.Exit(start(os.Args[1:], os.Stdout, config.NewLogger))
}

// start runs the demo and returns the process exit code.
func start(args []string, w io.Writer, newLogger func(*config.Config) (*zap.Logger, error)) int {
	fs := flag.NewFlagSet("servicedemo", flag.ContinueOnError)
	envFile := fs.String("env", ".env", "path to an optional .env file")
	serve := fs.Bool("serve", false, "serve the dependency graph over HTTP (overrides INJECTOR_SERVE)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Load(*envFile)
	if *serve {
		cfg.Serve = true
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "servicedemo: build logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	c, err := run(w, logger)
	if err != nil {
		logger.Error("demo failed", zap.Error(err))
		return 1
	}

	if !cfg.Serve {
		return 0
	}
	logger.Info("serving dependency graph", zap.String("addr", cfg.HTTPAddr))
	if err := http.ListenAndServe(cfg.HTTPAddr, newServer(c, logger)); err != nil {
		logger.Error("server error", zap.Error(err))
		return 1
	}
	return 0
}

// run builds the sample container, prints H and the I <-> J cycle error, then
// evaluates 5 + 9 in a separate container.
func run(w io.Writer, logger *zap.Logger) (*injector.Container, error) {
	c, err := injector.NewWithServices(mock.Services(), injector.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	h, err := injector.Resolve[*mock.H](c)
	if err != nil {
		return nil, err
	}
	h.Print(w)

	_, err = injector.Resolve[*mock.I](c)
	var cycle *injector.CircularDependencyError
	if !errors.As(err, &cycle) {
		return nil, fmt.Errorf("expected circular dependency for %s, got %v", "*mock.I", err)
	}
	fmt.Fprintln(w, cycle.Error())

	eq, err := injector.NewWithServices(mock.EquationServices('+', 5, 9), injector.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	runner, err := injector.Resolve[*mock.EquationRunner](eq)
	if err != nil {
		return nil, err
	}
	if err := runner.Run(w); err != nil {
		return nil, err
	}

	return c, nil
}
