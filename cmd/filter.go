package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wilbanksalexis/Powering/internal/mapview"
)

var filterJSON bool

var filterCmd = &cobra.Command{
	Use:   "filter [company]",
	Short: "Show the markers and viewport for a company filter",
	Long:  `Loads the datasets and renders the map for one company, or for every location when no company (or "all") is given.`,
	Args:  cobra.MaximumNArgs(1),
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
			return fmt.Errorf("loading data centers: %w", err)
		}

		filter := mapview.FilterAll
		if len(args) == 1 {
			filter = args[0]
		}
		view := state.SetFilter(filter)

		if filterJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(view)
		}

		printView(view)
		return nil
	},
}

func printView(view mapview.View) {
	fmt.Printf("Filter: %s\n", view.Filter)
	fmt.Printf("Locations: %d\n", view.Count)

	vp := view.Viewport
	if vp.Mode == mapview.ViewportFit && vp.Bounds != nil {
		fmt.Printf("Viewport: fit (%.4f, %.4f) - (%.4f, %.4f), padding %dpx\n",
			vp.Bounds.SouthWest.Lat, vp.Bounds.SouthWest.Lng,
			vp.Bounds.NorthEast.Lat, vp.Bounds.NorthEast.Lng, vp.Padding[0])
	} else {
		fmt.Printf("Viewport: center (%.4f, %.4f), zoom %d\n", vp.Center.Lat, vp.Center.Lng, vp.Zoom)
	}

	if len(view.Markers) == 0 {
		return
	}
	fmt.Println()
	for _, m := range view.Markers {
		marker := " "
		if m.Variant == mapview.VariantCommentary {
			marker = "*"
		}
		l := m.Location
		fmt.Printf("%s %-28s %-24s %s, %s\n", marker, l.Company, l.Site, l.City, l.State)
	}
	fmt.Println("\n* has community commentary")
}

func init() {
	filterCmd.Flags().BoolVar(&filterJSON, "json", false, "print the rendered view as JSON")
	rootCmd.AddCommand(filterCmd)
}
