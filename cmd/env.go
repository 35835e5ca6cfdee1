package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/probpick/internal/catalog"
	"github.com/abhisek/probpick/internal/config"
	"github.com/abhisek/probpick/internal/logger"
	"github.com/abhisek/probpick/internal/report"
	"github.com/abhisek/probpick/internal/store"
	"github.com/abhisek/probpick/internal/student"
)

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"catalog":    "catalog",
	"db":         "db",
	"threshold":  "threshold",
	"record":     "record",
	"log-level":  "log_level",
	"log-format": "log_format",
}

// env bundles what most commands need: configuration, a logger and the
// loaded catalog.
type env struct {
	cfg     *config.Config
	log     *slog.Logger
	catalog *catalog.Catalog
}

// setup loads configuration from flags, environment and config file, then
// loads the catalog it names.
func setup(cmd *cobra.Command) (*env, error) {
	overrides := make(map[string]any)
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}
	configFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(config.LoadOptions{ConfigFile: configFile, Overrides: overrides})
	if err != nil {
		return nil, err
	}

	log := logger.Setup(cmd.ErrOrStderr(), logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	var cat *catalog.Catalog
	if cfg.Catalog == "" {
		cat, err = catalog.Demo()
	} else {
		cat, err = catalog.LoadFile(cfg.Catalog)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	log.Debug("catalog loaded",
		"source", sourceName(cfg.Catalog),
		"version", cat.Version(),
		"skills", len(cat.Skills()),
		"problems", cat.ProblemSet().Len(),
		"students", len(cat.Students()))

	return &env{cfg: cfg, log: log, catalog: cat}, nil
}

// threshold resolves the effective mastery threshold.
func (e *env) threshold() float64 {
	return e.cfg.ResolveThreshold(e.catalog.Threshold())
}

// selectStudents returns the named students, or every student when names is empty.
func (e *env) selectStudents(names []string) ([]*student.Student, error) {
	if len(names) == 0 {
		return e.catalog.Students(), nil
	}
	out := make([]*student.Student, 0, len(names))
	for _, n := range names {
		st, err := e.catalog.Student(n)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// openStore opens the configured database, falling back to the default path.
func (e *env) openStore() (*store.Store, error) {
	path := e.cfg.DB
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// renderer returns a Renderer for the command's output, styled only when
// writing to a terminal.
func renderer(cmd *cobra.Command) *report.Renderer {
	w := cmd.OutOrStdout()
	plain, _ := cmd.Flags().GetBool("plain")
	return report.New(w, !plain && isTerminal(w) && os.Getenv("NO_COLOR") == "")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func sourceName(path string) string {
	if path == "" {
		return "demo"
	}
	return path
}

func checkFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}
