package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mcpserver "github.com/wilbanksalexis/Powering/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP server on stdio",
	Long: `Starts a Model Context Protocol server on stdio exposing the generate_response,
list_companies and filter_locations tools. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		state, err := loadState(context.Background(), cfg, log)
		if err != nil {
			log.Warn("dataset unavailable; only generate_response will work", zap.Error(err))
		}

		mcpserver.Version = Version
		srv := mcpserver.NewServer(state)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
