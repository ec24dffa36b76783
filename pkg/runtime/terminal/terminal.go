package terminal

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/rev-tools/salespulse/pkg/models/domain"
	"github.com/rev-tools/salespulse/pkg/runtime/terminal/commands"
	"github.com/rev-tools/salespulse/pkg/services/analytics"
	"github.com/rev-tools/salespulse/pkg/services/config"
	"github.com/rev-tools/salespulse/pkg/services/dashboard"

	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *Reporter
	logger   zerolog.Logger
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	Logger zerolog.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: NewReporter(opts.Output),
		logger:   opts.Logger,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salespulse",
		Short: "Sales analytics dashboard for the terminal",
	}

	cmd.AddCommand(commands.NewOverviewCmd(cli.connect, cli.reporter))
	cmd.AddCommand(commands.NewRegionalCmd(cli.connect, cli.reporter))
	cmd.AddCommand(commands.NewRiskCmd(cli.connect, cli.reporter))
	cmd.AddCommand(commands.NewForecastCmd(cli.connect, cli.reporter))
	cmd.AddCommand(commands.NewSeedCmd(cli.connect, cli.reporter))

	return cmd
}

// connect resolves a backend profile into a dashboard service. When the
// profiles file is missing, SALESPULSE_BASE_URL is the fallback.
func (cli *CLI) connect(profilePath, profile string) (commands.Service, error) {
	prof, err := cli.resolveProfile(profilePath, profile)
	if err != nil {
		return nil, err
	}

	client := analytics.NewClient(prof.BaseURL, prof.Timeout, cli.logger)
	return &dashboardService{ctrl: dashboard.NewController(client, cli.logger)}, nil
}

func (cli *CLI) resolveProfile(profilePath, profile string) (*config.Profile, error) {
	if _, err := os.Stat(profilePath); err == nil {
		registry, err := config.NewRegistry(profilePath)
		if err != nil {
			return nil, err
		}
		return registry.GetProfile(context.Background(), profile)
	}

	return &config.Profile{
		Name:    "env",
		BaseURL: os.Getenv("SALESPULSE_BASE_URL"),
	}, nil
}

type dashboardService struct {
	ctrl *dashboard.Controller
}

func (s *dashboardService) Fetch(ctx context.Context, filters domain.Filters) (domain.Snapshot, error) {
	err := s.ctrl.Refresh(ctx, filters)
	return s.ctrl.Snapshot(), err
}

func (s *dashboardService) Seed(ctx context.Context) (domain.Snapshot, error) {
	err := s.ctrl.Seed(ctx)
	return s.ctrl.Snapshot(), err
}
