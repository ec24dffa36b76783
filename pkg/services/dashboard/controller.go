package dashboard

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rev-tools/salespulse/pkg/models/domain"
	"github.com/rev-tools/salespulse/pkg/services/analytics"
)

// ForecastMonths is the fixed horizon requested from the backend.
const ForecastMonths = 6

const genericErrorMessage = "Unable to load dashboard data. The backend may be empty — try generating sample data."

// Controller owns all dashboard state. A refresh fans out the five reads
// concurrently and replaces every data slice in one step, so a snapshot
// never mixes results from two different filter selections.
//
// Each refresh claims a generation token; a batch that finishes after a
// newer one has been issued is discarded instead of overwriting fresher
// state.
type Controller struct {
	client analytics.Client
	log    zerolog.Logger

	mu         sync.Mutex
	generation uint64
	snap       domain.Snapshot
}

// batch holds the results of one five-request fetch cycle.
type batch struct {
	kpis     *domain.KPISummary
	regions  []domain.RegionalSummary
	trends   []domain.SalesTrendPoint
	risk     []domain.CustomerRisk
	forecast []domain.ForecastPoint
}

func NewController(client analytics.Client, log zerolog.Logger) *Controller {
	return &Controller{
		client: client,
		log:    log.With().Str("component", "dashboard").Logger(),
		snap: domain.Snapshot{
			State:   domain.StateIdle,
			Filters: domain.Filters{Period: domain.PeriodMonthly},
		},
	}
}

// Snapshot returns a copy of the current dashboard state. The contained
// slices are shared and must be treated as read-only.
func (c *Controller) Snapshot() domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Refresh runs one full fetch cycle for the given filters. The five reads
// run concurrently and fail fast: the first error cancels the rest and the
// whole batch is rejected, leaving the previous data slices untouched.
func (c *Controller) Refresh(ctx context.Context, filters domain.Filters) error {
	gen := c.begin(filters)

	result, err := c.fetch(ctx, filters)
	return c.complete(gen, filters, result, err)
}

// Seed triggers backend sample-data generation, then re-runs the full fetch.
// The write strictly precedes the read batch.
func (c *Controller) Seed(ctx context.Context) error {
	c.mu.Lock()
	c.snap.State = domain.StateLoading
	c.snap.Message = ""
	filters := c.snap.Filters
	c.mu.Unlock()

	if err := c.client.GenerateData(ctx); err != nil {
		c.log.Error().Err(err).Msg("sample data generation failed")
		c.mu.Lock()
		c.snap.State = domain.StateError
		c.snap.Message = genericErrorMessage
		c.mu.Unlock()
		return err
	}

	return c.Refresh(ctx, filters)
}

func (c *Controller) begin(filters domain.Filters) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.snap.State = domain.StateLoading
	c.snap.Message = ""
	c.snap.Filters = filters
	return c.generation
}

func (c *Controller) fetch(ctx context.Context, filters domain.Filters) (*batch, error) {
	var result batch

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		kpis, err := c.client.GetKPIs(gctx)
		result.kpis = kpis
		return err
	})
	g.Go(func() error {
		regions, err := c.client.GetRegionalSummary(gctx)
		result.regions = regions
		return err
	})
	g.Go(func() error {
		trends, err := c.client.GetSalesTrends(gctx, filters.Period, filters.Region)
		result.trends = trends
		return err
	})
	g.Go(func() error {
		risk, err := c.client.GetCustomerRiskAnalysis(gctx, "", "")
		result.risk = risk
		return err
	})
	g.Go(func() error {
		forecast, err := c.client.GetForecast(gctx, ForecastMonths)
		result.forecast = forecast
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Controller) complete(gen uint64, filters domain.Filters, result *batch, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		// A newer refresh owns the state now.
		c.log.Debug().
			Uint64("generation", gen).
			Uint64("latest", c.generation).
			Msg("discarding stale fetch result")
		return nil
	}

	if err != nil {
		c.log.Error().
			Err(err).
			Str("region", filters.Region).
			Str("period", string(filters.Period)).
			Msg("dashboard fetch failed")
		c.snap.State = domain.StateError
		c.snap.Message = genericErrorMessage
		return err
	}

	c.snap.State = domain.StateReady
	c.snap.Message = ""
	c.snap.KPIs = result.kpis
	c.snap.Regions = result.regions
	c.snap.Trends = result.trends
	c.snap.RiskAnalysis = result.risk
	c.snap.Forecast = result.forecast

	c.log.Info().
		Uint64("generation", gen).
		Str("region", filters.Region).
		Str("period", string(filters.Period)).
		Int("regions", len(result.regions)).
		Int("trend_points", len(result.trends)).
		Int("risk_customers", len(result.risk)).
		Msg("dashboard refreshed")
	return nil
}
