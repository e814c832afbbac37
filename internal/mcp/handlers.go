package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wilbanksalexis/Powering/internal/chat"
	"github.com/wilbanksalexis/Powering/internal/dataset"
	"github.com/wilbanksalexis/Powering/internal/mapview"
)

// handleGenerateResponse returns the canned impact answer for a query.
func (s *Server) handleGenerateResponse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	return mcp.NewToolResultText(chat.Answer(query).Text), nil
}

// handleListCompanies lists operators in sorted order with their counts.
func (s *Server) handleListCompanies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.state.Loaded() {
		return mcp.NewToolResultError(notLoadedMessage(s.state)), nil
	}

	companies := s.state.Companies()
	if len(companies) == 0 {
		return mcp.NewToolResultText("The dataset has no locations."), nil
	}

	counts := dataset.CountByCompany(s.state.Locations())
	var b strings.Builder
	fmt.Fprintf(&b, "%d companies:\n", len(companies))
	for _, c := range companies {
		fmt.Fprintf(&b, "- %s (%d)\n", c, counts[c])
	}
	return mcp.NewToolResultText(b.String()), nil
}

type filterResult struct {
	Filter    string             `json:"filter"`
	Count     int                `json:"count"`
	Viewport  mapview.Viewport   `json:"viewport"`
	Locations []dataset.Location `json:"locations"`
}

// handleFilterLocations renders a view for company and returns it as JSON
// without the popup markup.
func (s *Server) handleFilterLocations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.state.Loaded() {
		return mcp.NewToolResultError(notLoadedMessage(s.state)), nil
	}

	filter := request.GetString("company", mapview.FilterAll)
	if filter == "" {
		filter = mapview.FilterAll
	}

	view := s.state.Render(filter)
	res := filterResult{
		Filter:    view.Filter,
		Count:     view.Count,
		Viewport:  view.Viewport,
		Locations: make([]dataset.Location, 0, len(view.Markers)),
	}
	for _, m := range view.Markers {
		res.Locations = append(res.Locations, m.Location)
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func notLoadedMessage(state *mapview.State) string {
	return "dataset not loaded: " + state.Legend().Message
}
