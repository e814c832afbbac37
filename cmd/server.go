package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wilbanksalexis/Powering/internal/chat"
	"github.com/wilbanksalexis/Powering/internal/dashboard"
	"github.com/wilbanksalexis/Powering/internal/db"
	"github.com/wilbanksalexis/Powering/internal/server"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the data center map and impact chat",
	Long: `Loads the location and commentary datasets and serves the interactive map,
its JSON API, the WebSocket chat, /healthz and /metrics.

A dataset that fails to load does not stop the server: the page still
renders the map and shows the error in its legend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = serverPort
		}

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		state, err := loadState(ctx, cfg, log)
		if err != nil {
			log.Warn("serving without data", zap.String("legend", state.Legend().Message))
		}

		database, err := db.OpenMemory()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, log)

		dash := dashboard.New(state, chat.NewStore(database), pageConfig(cfg), cfg.Chat.Delay, log)
		dash.RegisterRoutes(srv.Router())

		go func() {
			<-ctx.Done()
			log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "powering server %s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Locations: %s\n", cfg.Data.Locations)
		fmt.Fprintf(os.Stderr, "  Commentary: %s\n", cfg.Data.Commentary)
		fmt.Fprintf(os.Stderr, "  Loaded: %d locations\n", len(state.Locations()))

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serverCmd)
}
