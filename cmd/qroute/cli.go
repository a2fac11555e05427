// SPDX-License-Identifier: MIT
// Package: qroute/cmd/qroute
//
// cli.go - flag parsing and subcommands.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/qroute/config"
	"github.com/katalvlaran/qroute/dijkstra"
	"github.com/katalvlaran/qroute/direction"
	"github.com/katalvlaran/qroute/logging"
	"github.com/katalvlaran/qroute/pathfinder"
	"github.com/katalvlaran/qroute/provider"
)

// Exit codes.
const (
	exitUsage  = 2
	exitNoPath = 3
)

// ExitError carries the process exit code for a failure.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.Message }

func usageError(format string, args ...any) error {
	return &ExitError{Code: exitUsage, Message: fmt.Sprintf(format, args...)}
}

const usage = `qroute - shortest routes on quantum device coupling maps.

Usage:
  qroute [global options] <command> [options]

Commands:
  path        shortest path between two qubits
  reach       qubits reachable from a source qubit
  directions  orientation of every multi-qubit gate

Global options:
`

// env bundles what every command needs.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	provider provider.Provider
	stdout   io.Writer
	stderr   io.Writer
}

// run parses args, loads configuration and dispatches one command.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	global := flag.NewFlagSet("qroute", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() {
		fmt.Fprint(stderr, usage)
		global.PrintDefaults()
	}
	configPath := global.String("config", "", "Path to a YAML configuration file.")
	logLevel := global.String("log-level", "", "Override the log level: debug, info, warn or error.")

	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return usageError("%v", err)
	}
	if global.NArg() == 0 {
		global.Usage()
		return usageError("qroute: missing command")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return usageError("%v", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return usageError("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	fp, err := provider.NewFileProvider(cfg.Provider, provider.WithLogger(logger))
	if err != nil {
		return usageError("%v", err)
	}

	e := &env{cfg: cfg, logger: logger, provider: fp, stdout: stdout, stderr: stderr}
	cmd, rest := global.Arg(0), global.Args()[1:]
	logger.Debug("command started", zap.String("command", cmd), zap.Strings("sources", cfg.LoadedFrom))

	switch cmd {
	case "path":
		return e.path(ctx, rest)
	case "reach":
		return e.reach(ctx, rest)
	case "directions":
		return e.directions(ctx, rest)
	default:
		global.Usage()
		return usageError("qroute: unknown command %q", cmd)
	}
}

// newFlagSet returns a subcommand flag set writing errors to stderr.
func (e *env) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("qroute "+name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	return fs
}

// parse runs fs.Parse and maps its failure to an ExitError. ok is false when
// the command should stop without error (-h).
func parse(fs *flag.FlagSet, args []string) (ok bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return false, nil
		}
		return false, usageError("%v", err)
	}
	if fs.NArg() > 0 {
		return false, usageError("%s: unexpected arguments %v", fs.Name(), fs.Args())
	}

	return true, nil
}

func (e *env) requireDevice(fs *flag.FlagSet, device string) error {
	if device == "" {
		return usageError("%s: -device is required (or set %s)", fs.Name(), config.EnvDevice)
	}

	return nil
}

func (e *env) path(ctx context.Context, args []string) error {
	fs := e.newFlagSet("path")
	device := fs.String("device", e.cfg.Device, "Device name.")
	from := fs.Int("from", -1, "Source qubit.")
	to := fs.Int("to", -1, "Destination qubit.")
	directed := fs.Bool("directed", e.cfg.Routing.Directed, "Respect coupling orientation.")
	weighted := fs.String("weighted", e.cfg.Routing.WeightParam, "Gate parameter used as coupling weight; empty for hop count.")

	if ok, err := parse(fs, args); !ok {
		return err
	}
	if err := e.requireDevice(fs, *device); err != nil {
		return err
	}

	pf, err := pathfinder.New(ctx, e.provider, *device,
		pathfinder.WithDirected(*directed),
		pathfinder.WithWeighted(*weighted),
		pathfinder.WithLogger(e.logger),
	)
	if err != nil {
		return err
	}

	res, err := pf.FindPath(*from, *to)
	switch {
	case errors.Is(err, dijkstra.ErrNoPath):
		return &ExitError{Code: exitNoPath, Message: err.Error()}
	case errors.Is(err, dijkstra.ErrInvalidNode):
		return usageError("%v", err)
	case err != nil:
		return err
	}

	_, err = fmt.Fprintln(e.stdout, res)
	return err
}

func (e *env) reach(ctx context.Context, args []string) error {
	fs := e.newFlagSet("reach")
	device := fs.String("device", e.cfg.Device, "Device name.")
	from := fs.Int("from", -1, "Source qubit.")
	directed := fs.Bool("directed", e.cfg.Routing.Directed, "Respect coupling orientation.")

	if ok, err := parse(fs, args); !ok {
		return err
	}
	if err := e.requireDevice(fs, *device); err != nil {
		return err
	}

	pf, err := pathfinder.New(ctx, e.provider, *device,
		pathfinder.WithDirected(*directed),
		pathfinder.WithLogger(e.logger),
	)
	if err != nil {
		return err
	}

	reach, err := pf.Reachable(ctx, *from)
	if errors.Is(err, dijkstra.ErrInvalidNode) {
		return usageError("%v", err)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(e.stdout, reach)
	return err
}

func (e *env) directions(ctx context.Context, args []string) error {
	fs := e.newFlagSet("directions")
	device := fs.String("device", e.cfg.Device, "Device name.")
	save := fs.String("save", "", "Also write the result to this file.")

	if ok, err := parse(fs, args); !ok {
		return err
	}
	if err := e.requireDevice(fs, *device); err != nil {
		return err
	}

	opts := []direction.Option{direction.WithLogger(e.logger)}
	if *save != "" {
		opts = append(opts, direction.WithSaveToFile(*save))
	}

	names, flags, err := direction.NewExtractor(e.provider, *device, opts...).Extract(ctx)
	if err != nil {
		return err
	}
	if err := direction.Write(e.stdout, names, flags); err != nil {
		return err
	}

	_, err = fmt.Fprintln(e.stdout)
	return err
}
