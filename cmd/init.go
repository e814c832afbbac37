package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wilbanksalexis/Powering/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize powering configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose the data sources, server port, chat delay and log format, and writes a .powering.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
