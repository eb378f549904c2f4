package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/impact/internal/domain/activity"
	"github.com/rpggio/impact/internal/domain/record"
)

// RecordService defines record operations needed by MCP.
type RecordService interface {
	Get(ctx context.Context, id string) (*record.Record, error)
	SaveForm(ctx context.Context, req record.SaveFormRequest) (*record.Record, error)
	Delete(ctx context.Context, id string) error
	Duplicate(ctx context.Context, id string) (*record.Record, error)
	ToggleStar(ctx context.Context, id string) (*record.Record, error)
	Query(ctx context.Context, q record.Query) ([]record.Record, error)
	AppraisalSummary(ctx context.Context) (string, error)
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
	LogExport(ctx context.Context, format string, count int)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Records  RecordService
	Activity ActivityService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Version  string
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "impact",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(logger, "outbound"))

	registerTools(server, NewHandler(cfg.Services, logger))

	return server
}
