// SPDX-License-Identifier: MIT

// Command quadfield builds a fixture hierarchy from a YAML configuration,
// runs the orientation, scale and position solvers on it and logs a summary.
//
// Usage:
//
//	quadfield [-config path.yaml] [-metrics]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quadfield/builder"
	"github.com/katalvlaran/quadfield/config"
	"github.com/katalvlaran/quadfield/hierarchy"
	"github.com/katalvlaran/quadfield/optimizer"
)

func main() {
	cfgPath := flag.String("config", "", "path to a YAML configuration (defaults when empty)")
	dumpMetrics := flag.Bool("metrics", false, "log every gathered metric sample after the run")
	flag.Parse()

	if err := run(*cfgPath, *dumpMetrics); err != nil {
		fmt.Fprintf(os.Stderr, "quadfield: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string, dumpMetrics bool) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	log := newLogger(cfg.Logging)
	optimizer.SetLogger(log)

	h, err := builder.BuildHierarchy(meshFor(cfg.Mesh),
		builder.WithSeed(cfg.Hierarchy.Seed),
		builder.WithLevels(cfg.Hierarchy.Levels),
		builder.WithScale(cfg.Hierarchy.Scale))
	if err != nil {
		return err
	}
	log.Info("hierarchy built", "mesh", cfg.Mesh.Kind, "levels", len(h.Levels),
		"vertices", h.Levels[0].Len(), "components", len(h.Levels[0].Components()))

	reg := prometheus.NewRegistry()
	opt := optimizer.New(
		optimizer.WithIterations(cfg.Optimizer.Iterations),
		optimizer.WithWorkers(cfg.Optimizer.Workers),
		optimizer.WithValidation(cfg.Optimizer.Validate),
		optimizer.WithMetrics(optimizer.NewMetrics(reg)),
	)
	rep, err := opt.Run(h)
	if err != nil {
		return err
	}

	if err = logSummary(log, h, rep); err != nil {
		return err
	}
	if dumpMetrics {
		return logMetrics(log, reg)
	}

	return nil
}

func newLogger(c config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	ho := &slog.HandlerOptions{Level: level}
	if c.Format == config.FormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, ho))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, ho))
}

func meshFor(m config.MeshConfig) builder.Constructor {
	switch m.Kind {
	case config.MeshCylinder:
		return builder.Cylinder(m.Rows, m.Cols, m.Radius, m.Height)
	case config.MeshDisk:
		return builder.Disk(m.Cols, m.Radius)
	case config.MeshSphere:
		solid := builder.Icosahedron
		switch m.Solid {
		case config.SolidTetrahedron:
			solid = builder.Tetrahedron
		case config.SolidOctahedron:
			solid = builder.Octahedron
		}

		return builder.Sphere(solid, m.Subdivisions, m.Radius)
	default:
		return builder.Grid(m.Rows, m.Cols, m.Spacing)
	}
}

// logSummary reports per-level vertex counts and the range of both scale
// components on the finest level.
func logSummary(log *slog.Logger, h *hierarchy.Hierarchy, rep optimizer.Report) error {
	s, err := h.Levels[0].Dense(hierarchy.FieldS)
	if err != nil {
		return err
	}
	s0 := mat.Row(nil, 0, s)
	s1 := mat.Row(nil, 1, s)

	log.Info("run summary",
		"vertices", rep.Vertices,
		"elapsed", rep.Elapsed,
		"s0_min", floats.Min(s0), "s0_max", floats.Max(s0),
		"s1_min", floats.Min(s1), "s1_max", floats.Max(s1),
		"raw_min", rep.Scale.Min, "raw_max", rep.Scale.Max)

	return nil
}

func logMetrics(log *slog.Logger, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"name", mf.GetName()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, "value", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				attrs = append(attrs, "value", m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				attrs = append(attrs, "count", m.GetHistogram().GetSampleCount(), "sum", m.GetHistogram().GetSampleSum())
			}
			log.Info("metric", attrs...)
		}
	}

	return nil
}
