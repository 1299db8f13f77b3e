package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/color-convert-mcp/internal/server"
)

func newServeCmd(info BuildInfo, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve color conversion tools over MCP (stdin/stdout)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, info, *logLevel)
		},
	}
}

func runServe(cmd *cobra.Command, info BuildInfo, logLevel string) error {
	logger, err := newLogger(logLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger.Debug("starting color MCP server", "version", info.Version, "built", info.BuildTime, "commit", info.GitCommit)

	srv := server.New(server.WithLogger(logger), server.WithVersion(info.Version))
	if err := srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		logger.Error("server error", "error", err)
		return err
	}
	return nil
}
