package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/ui"
)

const Version = "0.1.0"

type cliEnv struct {
	configPath string
	jsonOut    bool
	verbose    bool

	// clock is nil outside tests.
	clock domain.Clock
}

func newRootCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "planner",
		Short:         "Kanso planner: weekly time slots, habits and daily scores",
		Long:          "Kanso planner keeps a weekly grid of time slots and habits and derives a 1-10 score for every finished day.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&env.configPath, "config", "", "Config file (default $PLANNER_CONFIG or planner.yaml)")
	pf.BoolVar(&env.jsonOut, "json", false, "Print JSON instead of text")
	pf.BoolVarP(&env.verbose, "verbose", "v", false, "Log at the configured level")

	cmd.AddCommand(
		newServeCmd(env),
		newWeekCmd(env),
		newSlotCmd(env),
		newHabitCmd(env),
		newCheckCmd(env),
		newRateCmd(env),
		newRecalcCmd(env),
		newSummaryCmd(env),
		newClearCmd(env),
		newHashPassphraseCmd(),
		newTokenCmd(env),
		newConfigCmd(env),
	)
	return cmd
}

func Execute() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

func execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd(&cliEnv{}).ExecuteContext(ctx)
}
