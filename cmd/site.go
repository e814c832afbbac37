package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wilbanksalexis/Powering/internal/progress"
	"github.com/wilbanksalexis/Powering/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Export the map as a static website",
	Long: `Exports a self-contained static snapshot of the map: index.html with every
location plus one pre-filtered page per company under companies/. The
static pages have no chat.`,
	RunE: runSite,
}

func init() {
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	siteCmd.Flags().Int("port", 8080, "port for the local dev server")
	siteCmd.Flags().Bool("open", false, "open browser automatically when serving")
	siteCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("loading data centers: %w", err)
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	generator := site.NewGenerator(outputDir, pageConfig(cfg), progress.NewReporter("Exporting site"))
	pageCount, err := generator.Generate(state)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, pageCount)
	log.Debug("site exported", zap.String("dir", outputDir), zap.Int("pages", pageCount))

	serve, _ := cmd.Flags().GetBool("serve")
	if serve {
		port, _ := cmd.Flags().GetInt("port")
		openBrowser, _ := cmd.Flags().GetBool("open")
		return site.Serve(outputDir, port, openBrowser, log)
	}

	return nil
}
