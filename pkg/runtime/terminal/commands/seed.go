package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rev-tools/salespulse/pkg/services/report"
)

type seedCmd struct {
	profilePath string
	profile     string

	connect  Connect
	reporter Reporter
}

// NewSeedCmd triggers backend sample-data generation and prints the
// refreshed overview. The write completes before the read batch starts.
func NewSeedCmd(connect Connect, reporter Reporter) *cobra.Command {
	sc := &seedCmd{connect: connect, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate sample data in the backend",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.profilePath, "profile-path", defaultProfilePath(),
		"Path to the profiles file (default is $HOME/.salespulsecfg)")
	cmd.Flags().StringVar(&sc.profile, "profile", "default", "Backend profile to use")

	return cmd
}

func (sc *seedCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	service, err := sc.connect(sc.profilePath, sc.profile)
	if err != nil {
		return fmt.Errorf("failed to connect to backend profile %q: %w", sc.profile, err)
	}

	snap, err := service.Seed(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed sample data: %w", err)
	}

	return sc.reporter.Handle(report.BuildOverview(snap))
}
