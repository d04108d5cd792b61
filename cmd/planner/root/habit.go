package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
	"github.com/comitanigiacomo/kanso-planner/internal/ui"
)

func newHabitCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}
	cmd.AddCommand(
		newHabitAddCmd(env),
		newHabitListCmd(env),
		newHabitUpdateCmd(env),
		newHabitRmCmd(env),
	)
	return cmd
}

func newHabitAddCmd(env *cliEnv) *cobra.Command {
	var score int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("habit name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := env.openApp(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			input := services.CreateHabitInput{Name: args[0]}
			if cmd.Flags().Changed("score") {
				input.Score = &score
			}
			habit, err := a.Habits.Create(ctx, input)
			if err != nil {
				return err
			}

			if env.jsonOut {
				return env.printJSON(cmd.OutOrStdout(), habit)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s added %s (%d points) %s\n", ui.Good.Render(ui.IconDone), habit.Name, habit.Score, ui.Muted.Render(habit.ID))
			return nil
		},
	}
	cmd.Flags().IntVarP(&score, "score", "s", domain.DefaultHabitScore, "Points per checked day (1-50)")
	return cmd
}

func newHabitListCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List habits in display order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := env.openApp(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			habits, err := a.Habits.List(ctx)
			if err != nil {
				return err
			}

			if env.jsonOut {
				return env.printJSON(cmd.OutOrStdout(), habits)
			}
			if len(habits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("no habits yet"))
				return nil
			}
			for _, h := range habits {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (%d) %s\n", h.SortOrder+1, h.Name, h.Score, ui.Muted.Render(h.ID))
			}
			return nil
		},
	}
}

func newHabitUpdateCmd(env *cliEnv) *cobra.Command {
	var name string
	var score, position int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename, rescore or move a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := services.UpdateHabitInput{ID: args[0]}
			if cmd.Flags().Changed("name") {
				input.Name = &name
			}
			if cmd.Flags().Changed("score") {
				input.Score = &score
			}
			if cmd.Flags().Changed("position") {
				order := position - 1
				input.SortOrder = &order
			}
			if input.Name == nil && input.Score == nil && input.SortOrder == nil {
				return errors.New("nothing to update: pass --name, --score or --position")
			}

			ctx := cmd.Context()
			a, cleanup, err := env.openApp(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			habit, err := a.Habits.Update(ctx, input)
			if err != nil {
				return err
			}

			if env.jsonOut {
				return env.printJSON(cmd.OutOrStdout(), habit)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s updated %s (%d points)\n", ui.Good.Render(ui.IconDone), habit.Name, habit.Score)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "New name")
	cmd.Flags().IntVarP(&score, "score", "s", 0, "New points per checked day")
	cmd.Flags().IntVarP(&position, "position", "p", 0, "New 1-based position in the list")
	return cmd
}

func newHabitRmCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a habit and all of its checkmarks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := env.openApp(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.Habits.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s habit deleted\n", ui.Good.Render(ui.IconDone))
			return nil
		},
	}
}

func newCheckCmd(env *cliEnv) *cobra.Command {
	var wf weekFlags

	cmd := &cobra.Command{
		Use:   "check <habit-id> <day>",
		Short: "Toggle a habit for one day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseDayKey(args[1])
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
			res, err := a.Habits.ToggleCheckmark(ctx, week, args[0], day)
			if err != nil {
				return err
			}

			if env.jsonOut {
				return env.printJSON(cmd.OutOrStdout(), res)
			}
			state := "unchecked"
			if res.Checked {
				state = "checked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Check(res.Checked), day.Key(), state)
			if res.Score.Applied {
				v := res.Score.Score
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Day score", ui.Rating(&v)))
			}
			return nil
		},
	}
	wf.register(cmd)
	return cmd
}
