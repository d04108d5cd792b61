package root

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-planner/internal/app"
	"github.com/comitanigiacomo/kanso-planner/internal/config"
	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/logging"
)

func (e *cliEnv) path() string {
	if e.configPath != "" {
		return e.configPath
	}
	if p := os.Getenv("PLANNER_CONFIG"); p != "" {
		return p
	}
	return config.DefaultPath
}

func (e *cliEnv) loadConfig() (*config.Config, error) {
	return config.Load(e.path())
}

// openApp builds the planner for one command. Only serve debounces slot text: a one-shot
// command writes it straight through and exits.
func (e *cliEnv) openApp(ctx context.Context, serving bool) (*app.App, func(), error) {
	cfg, err := e.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if !serving && !e.verbose {
		cfg.Logging.Level = "warn"
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}

	a, err := app.New(ctx, cfg, logger, app.Options{Clock: e.clock, Debounce: serving})
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}

	cleanup := func() {
		_ = a.Close()
		_ = logger.Sync()
	}
	return a, cleanup, nil
}

func (e *cliEnv) printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type weekFlags struct {
	week   string
	offset int
}

func (f *weekFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.week, "week", "w", "", "ISO week, e.g. 2026-W42 (default current week)")
	cmd.Flags().IntVarP(&f.offset, "offset", "o", 0, "Move this many weeks from --week")
}

func (f *weekFlags) resolve(a *app.App) (domain.WeekID, error) {
	week := a.Planner.CurrentWeek()
	if f.week != "" {
		w, err := domain.ParseWeekID(f.week)
		if err != nil {
			return domain.WeekID{}, err
		}
		week = w
	}
	if f.offset == 0 {
		return week, nil
	}
	return a.Planner.Navigate(week, f.offset)
}
