package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
	"github.com/comitanigiacomo/kanso-planner/internal/ui"
)

func newSlotCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slot",
		Short: "Edit time slots",
	}
	cmd.AddCommand(newSlotSetCmd(env), newSlotToggleCmd(env))
	return cmd
}

func newSlotSetCmd(env *cliEnv) *cobra.Command {
	var wf weekFlags

	cmd := &cobra.Command{
		Use:   "set <day> <block> [text...]",
		Short: "Set the text of a slot; no text clears it",
		Args:  cobra.MinimumNArgs(2),
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
			view, err := a.Slots.SetContent(ctx, services.SetContentInput{
				Week:    week,
				Day:     day,
				Block:   args[1],
				Content: strings.Join(args[2:], " "),
			})
			if err != nil {
				return err
			}

			if env.jsonOut {
				return env.printJSON(cmd.OutOrStdout(), view)
			}
			if view.Content == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s cleared\n", ui.Good.Render(ui.IconDone), view.ID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconDone), view.ID, ui.SlotText(view.Content, view.Color))
			return nil
		},
	}
	wf.register(cmd)
	return cmd
}

func newSlotToggleCmd(env *cliEnv) *cobra.Command {
	var wf weekFlags

	cmd := &cobra.Command{
		Use:   "toggle <day> <block>",
		Short: "Mark a slot done or not done",
		Args:  cobra.ExactArgs(2),
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
			res, err := a.Slots.ToggleCompletion(ctx, week, day, args[1])
			if err != nil {
				return err
			}

			if env.jsonOut {
				return env.printJSON(cmd.OutOrStdout(), res)
			}
			state := "not done"
			if res.Slot.Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Check(res.Slot.Completed), res.Slot.ID, state)
			if res.Rating != nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Day score", ui.Rating(res.Rating)))
			}
			return nil
		},
	}
	wf.register(cmd)
	return cmd
}
