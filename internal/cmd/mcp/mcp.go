// Package mcp parses MCP command flags and serves the launch tools over stdio.
package mcp

import (
	"context"
	"flag"
	"log"

	"github.com/louisbranch/launchdash/internal/dataset"
	"github.com/louisbranch/launchdash/internal/platform/cmd"
	"github.com/louisbranch/launchdash/internal/platform/config"
	mcpservice "github.com/louisbranch/launchdash/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	DataPath  string `env:"DATA_PATH"  envDefault:"spacex_launch_dash.csv"`
	DataTable string `env:"DATA_TABLE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DataPath, "data", cfg.DataPath, "launch records: a CSV file or a SQLite database (.db, .sqlite, .sqlite3)")
	fs.StringVar(&cfg.DataTable, "data-table", cfg.DataTable, "SQLite table holding the launch records")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the launch records and serves the MCP tools on stdio.
func Run(ctx context.Context, cfg Config) error {
	return cmd.RunWithTelemetry(ctx, cmd.ServiceMCP, func(ctx context.Context) error {
		data, err := dataset.Load(ctx, dataset.Source{Path: cfg.DataPath, Table: cfg.DataTable})
		if err != nil {
			return err
		}
		log.Printf("loaded %d launch records from %s", len(data.Records), cfg.DataPath)
		return mcpservice.Run(ctx, data)
	})
}
