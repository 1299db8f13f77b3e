// Package cli provides the command-line interface for color-mcp.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// LogLevelEnv names the environment variable that sets the default log level.
const LogLevelEnv = "COLOR_MCP_LOG_LEVEL"

// BuildInfo carries version metadata injected at build time.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// String returns a human-readable version string.
func (b BuildInfo) String() string {
	return fmt.Sprintf("color-mcp %s\n  Build time: %s\n  Git commit: %s", b.Version, b.BuildTime, b.GitCommit)
}

// NewRootCmd builds the command tree. Running the root command with no
// subcommand starts the MCP server.
func NewRootCmd(info BuildInfo) *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "color-mcp",
		Short: "MCP server for color conversion",
		Long: `color-mcp converts colors between RGB, CMYK, HEX, HSL, HSV and packed
24-bit integers.

Run without arguments it serves the conversions as MCP tools over stdin/stdout.
Configure it in your MCP client (e.g., Claude Desktop).`,
		Version:      info.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, info, logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", envOr(LogLevelEnv, "info"),
		"log level (trace, debug, info, warn, error, off); env "+LogLevelEnv)
	rootCmd.SetVersionTemplate(info.String() + "\n")

	rootCmd.AddCommand(newServeCmd(info, &logLevel))
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newVersionCmd(info))

	return rootCmd
}

// newLogger configures logging to stderr (stdout is for MCP protocol).
func newLogger(level string, w io.Writer) (hclog.Logger, error) {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "color-mcp",
		Output: w,
		Level:  lvl,
	}), nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func newVersionCmd(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
		},
	}
}
