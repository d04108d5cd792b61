package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/ui"
)

func newRateCmd(env *cliEnv) *cobra.Command {
	var wf weekFlags

	cmd := &cobra.Command{
		Use:   "rate <day> [value]",
		Short: "Set a day's rating by hand (1-10); no value clears it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseDayKey(args[0])
			if err != nil {
				return err
			}

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
			rating, err := a.Ratings.SetManual(ctx, week, day, strings.Join(args[1:], ""))
			if err != nil {
				return err
			}

			if env.jsonOut {
				return env.printJSON(cmd.OutOrStdout(), rating)
			}
			if rating == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s rating cleared\n", ui.Good.Render(ui.IconDone), day.Key())
				return nil
			}
			v := rating.Value
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconDone), day.Key(), ui.Rating(&v))
			return nil
		},
	}
	wf.register(cmd)
	return cmd
}
