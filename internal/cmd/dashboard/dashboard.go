// Package dashboard parses dashboard command configuration and serves the
// launch dashboard.
package dashboard

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/louisbranch/launchdash/internal/dataset"
	"github.com/louisbranch/launchdash/internal/platform/cmd"
	"github.com/louisbranch/launchdash/internal/platform/config"
	"github.com/louisbranch/launchdash/internal/services/dashboard"
)

// Config holds dashboard command configuration.
type Config struct {
	HTTPAddr    string  `env:"HTTP_ADDR"    envDefault:"localhost:8050"`
	DataPath    string  `env:"DATA_PATH"    envDefault:"spacex_launch_dash.csv"`
	DataTable   string  `env:"DATA_TABLE"`
	PayloadStep float64 `env:"PAYLOAD_STEP" envDefault:"1000"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DataPath, "data", cfg.DataPath, "launch records: a CSV file or a SQLite database (.db, .sqlite, .sqlite3)")
	fs.StringVar(&cfg.DataTable, "data-table", cfg.DataTable, "SQLite table holding the launch records")
	fs.Float64Var(&cfg.PayloadStep, "payload-step", cfg.PayloadStep, "payload range selector step in kg")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the launch records and serves the dashboard until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return cmd.RunWithTelemetry(ctx, cmd.ServiceDashboard, func(ctx context.Context) error {
		data, err := dataset.Load(ctx, dataset.Source{Path: cfg.DataPath, Table: cfg.DataTable})
		if err != nil {
			return err
		}
		log.Printf("loaded %d launch records from %s (%d sites, payload %g..%g kg)",
			len(data.Records), cfg.DataPath, len(data.Sites), data.PayloadMin, data.PayloadMax)

		server, err := dashboard.NewServer(ctx, dashboard.Config{
			HTTPAddr:    cfg.HTTPAddr,
			Dataset:     data,
			PayloadStep: cfg.PayloadStep,
		})
		if err != nil {
			return fmt.Errorf("init dashboard server: %w", err)
		}
		defer server.Close()

		log.Printf("dashboard listening on http://%s", server.Addr())
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve dashboard: %w", err)
		}
		return nil
	})
}
