package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rev-tools/salespulse/pkg/models/domain"
	"github.com/rev-tools/salespulse/pkg/services/report"
)

const commandTimeout = 60 * time.Second

// Service is the dashboard surface the commands drive: one full fetch cycle
// per invocation, or seed-then-fetch.
type Service interface {
	Fetch(ctx context.Context, filters domain.Filters) (domain.Snapshot, error)
	Seed(ctx context.Context) (domain.Snapshot, error)
}

// Connect resolves a profile selection into a Service.
type Connect func(profilePath, profile string) (Service, error)

// Reporter renders a report to the terminal.
type Reporter interface {
	Handle(report *domain.Report) error
}

type reportCmd struct {
	profilePath string
	profile     string
	region      string
	period      string

	connect  Connect
	reporter Reporter
	build    func(domain.Snapshot) *domain.Report
}

func newReportCmd(
	use, short string,
	connect Connect,
	reporter Reporter,
	build func(domain.Snapshot) *domain.Report,
) *cobra.Command {
	rc := &reportCmd{connect: connect, reporter: reporter, build: build}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE:  rc.run,
	}
	rc.bindFlags(cmd)
	return cmd
}

func (rc *reportCmd) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rc.profilePath, "profile-path", defaultProfilePath(),
		"Path to the profiles file (default is $HOME/.salespulsecfg)")
	cmd.Flags().StringVar(&rc.profile, "profile", "default", "Backend profile to use")
	cmd.Flags().StringVar(&rc.region, "region", "", "Region filter (empty for all regions)")
	cmd.Flags().StringVar(&rc.period, "period", "monthly", "Trend period: monthly, quarterly or yearly")
}

func (rc *reportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	service, err := rc.connect(rc.profilePath, rc.profile)
	if err != nil {
		return fmt.Errorf("failed to connect to backend profile %q: %w", rc.profile, err)
	}

	snap, err := service.Fetch(ctx, domain.Filters{
		Region: rc.region,
		Period: domain.ParsePeriod(rc.period),
	})
	if err != nil {
		return fmt.Errorf("failed to fetch dashboard data: %w", err)
	}

	return rc.reporter.Handle(rc.build(snap))
}

func NewOverviewCmd(connect Connect, reporter Reporter) *cobra.Command {
	return newReportCmd("overview", "Show KPI summary and sales trends", connect, reporter, report.BuildOverview)
}

func NewRegionalCmd(connect Connect, reporter Reporter) *cobra.Command {
	return newReportCmd("regional", "Show regional performance", connect, reporter, report.BuildRegional)
}

func NewRiskCmd(connect Connect, reporter Reporter) *cobra.Command {
	return newReportCmd("risk", "Show customer risk analysis", connect, reporter, report.BuildRisk)
}

func NewForecastCmd(connect Connect, reporter Reporter) *cobra.Command {
	return newReportCmd("forecast", "Show the revenue forecast", connect, reporter, report.BuildForecast)
}

func defaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".salespulsecfg"
	}
	return filepath.Join(home, ".salespulsecfg")
}
