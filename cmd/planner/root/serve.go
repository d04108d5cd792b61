package root

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(env *cliEnv) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := env.openApp(ctx, true)
			if err != nil {
				return err
			}
			defer cleanup()

			if port != "" {
				a.Config.Server.Port = port
			}
			if err := a.Serve(ctx); err != nil {
				return err
			}
			a.Logger.Info("server stopped gracefully", zap.String("driver", a.Config.Database.Driver))
			return nil
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (overrides config)")
	return cmd
}
