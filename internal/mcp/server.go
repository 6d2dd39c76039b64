package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/meltforce/socialite/internal/progression"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, catalog *progression.Catalog, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Socialite", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Socialite avatar progression server. Query avatar state, generate tier-scaled workouts, inspect training programs and the fame leaderboard."),
	)

	h := &handlers{ds: ds, catalog: catalog, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetAvatar, Handler: h.getAvatar},
		server.ServerTool{Tool: toolGenerateWorkout, Handler: h.generateWorkout},
		server.ServerTool{Tool: toolGetProgram, Handler: h.getProgram},
		server.ServerTool{Tool: toolGetWorkoutHistory, Handler: h.getWorkoutHistory},
		server.ServerTool{Tool: toolGetLeaderboard, Handler: h.getLeaderboard},
		server.ServerTool{Tool: toolGetTierCatalog, Handler: h.getTierCatalog},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resTierCatalog, Handler: h.tierCatalog},
		server.ServerResource{Resource: resLeaderboard, Handler: h.leaderboard},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds      DataSource
	catalog *progression.Catalog
	log     *slog.Logger
}

// --- Resource definitions ---

var resTierCatalog = mcp.NewResource(
	"socialite://tier_catalog",
	"Tier Catalog",
	mcp.WithResourceDescription("All fame tiers and difficulty tiers with thresholds, multipliers, and decay rates"),
	mcp.WithMIMEType("application/json"),
)

var resLeaderboard = mcp.NewResource(
	"socialite://leaderboard",
	"Fame Leaderboard",
	mcp.WithResourceDescription("Top 10 avatars ranked by fame"),
	mcp.WithMIMEType("application/json"),
)
