package root

import (
	"github.com/spf13/cobra"
)

func newWeekCmd(env *cliEnv) *cobra.Command {
	var wf weekFlags

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show a week and refresh the scores of its past days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := env.openApp(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			week, err := wf.resolve(a)
			if err != nil {
				return err
			}
			view, err := a.Planner.OpenWeek(ctx, week)
			if err != nil {
				return err
			}

			if env.jsonOut {
				return env.printJSON(cmd.OutOrStdout(), view)
			}
			renderWeek(cmd.OutOrStdout(), view)
			return nil
		},
	}
	wf.register(cmd)
	return cmd
}

func newSummaryCmd(env *cliEnv) *cobra.Command {
	var wf weekFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show slot, rating and habit statistics of a week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := env.openApp(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			week, err := wf.resolve(a)
			if err != nil {
				return err
			}
			summary, err := a.Stats.WeeklySummary(ctx, week)
			if err != nil {
				return err
			}

			if env.jsonOut {
				return env.printJSON(cmd.OutOrStdout(), summary)
			}
			renderSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}
	wf.register(cmd)
	return cmd
}

func newRecalcCmd(env *cliEnv) *cobra.Command {
	var wf weekFlags

	cmd := &cobra.Command{
		Use:   "recalc",
		Short: "Recompute the score of every past day of a week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := env.openApp(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			week, err := wf.resolve(a)
			if err != nil {
				return err
			}
			scores, err := a.Scoring.RecalculateAllPastDays(ctx, week)
			if err != nil {
				return err
			}

			if env.jsonOut {
				return env.printJSON(cmd.OutOrStdout(), scores)
			}
			renderScores(cmd.OutOrStdout(), scores)
			return nil
		},
	}
	wf.register(cmd)
	return cmd
}
