package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-planner/internal/ui"
)

func newClearCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete planner data",
	}
	cmd.AddCommand(newClearWeekCmd(env), newClearAllCmd(env))
	return cmd
}

func newClearWeekCmd(env *cliEnv) *cobra.Command {
	var wf weekFlags

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Delete the slots, checkmarks and ratings of one week",
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
			if err := a.Planner.ClearWeek(ctx, week); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s week %s cleared\n", ui.Good.Render(ui.IconDone), week)
			return nil
		},
	}
	wf.register(cmd)
	return cmd
}

func newClearAllCmd(env *cliEnv) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Delete every week and every habit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to delete everything without --yes")
			}

			ctx := cmd.Context()
			a, cleanup, err := env.openApp(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.Planner.ClearAll(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s planner cleared\n", ui.Warn.Render(ui.IconWarn))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deleting all data")
	return cmd
}
