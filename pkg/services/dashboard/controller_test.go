package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rev-tools/salespulse/pkg/models/domain"
)

type stubClient struct {
	kpis     func(ctx context.Context) (*domain.KPISummary, error)
	regions  func(ctx context.Context) ([]domain.RegionalSummary, error)
	trends   func(ctx context.Context, period domain.Period, region string) ([]domain.SalesTrendPoint, error)
	risk     func(ctx context.Context, category, region string) ([]domain.CustomerRisk, error)
	forecast func(ctx context.Context, months int) ([]domain.ForecastPoint, error)
	generate func(ctx context.Context) error
}

func (s *stubClient) GetKPIs(ctx context.Context) (*domain.KPISummary, error) {
	return s.kpis(ctx)
}

func (s *stubClient) GetRegionalSummary(ctx context.Context) ([]domain.RegionalSummary, error) {
	return s.regions(ctx)
}

func (s *stubClient) GetSalesTrends(ctx context.Context, period domain.Period, region string) ([]domain.SalesTrendPoint, error) {
	return s.trends(ctx, period, region)
}

func (s *stubClient) GetCustomerRiskAnalysis(ctx context.Context, category, region string) ([]domain.CustomerRisk, error) {
	return s.risk(ctx, category, region)
}

func (s *stubClient) GetForecast(ctx context.Context, months int) ([]domain.ForecastPoint, error) {
	return s.forecast(ctx, months)
}

func (s *stubClient) GetCountryPerformance(ctx context.Context, region string) ([]domain.CountryPerformance, error) {
	return nil, errors.New("not used by the controller")
}

func (s *stubClient) GenerateData(ctx context.Context) error {
	if s.generate == nil {
		return nil
	}
	return s.generate(ctx)
}

// healthyClient returns a stub whose five reads all succeed with fixture data
// tagged by revenue so tests can tell batches apart.
func healthyClient(revenue float64) *stubClient {
	return &stubClient{
		kpis: func(context.Context) (*domain.KPISummary, error) {
			return &domain.KPISummary{TotalRevenue: revenue, TotalOrders: 42}, nil
		},
		regions: func(context.Context) ([]domain.RegionalSummary, error) {
			return []domain.RegionalSummary{{Region: "EMEA", TotalRevenue: revenue}}, nil
		},
		trends: func(_ context.Context, period domain.Period, region string) ([]domain.SalesTrendPoint, error) {
			return []domain.SalesTrendPoint{{Period: "2025-07", Revenue: revenue}}, nil
		},
		risk: func(_ context.Context, category, region string) ([]domain.CustomerRisk, error) {
			return []domain.CustomerRisk{{CustomerName: "Acme", RiskCategory: domain.RiskHigh}}, nil
		},
		forecast: func(_ context.Context, months int) ([]domain.ForecastPoint, error) {
			return []domain.ForecastPoint{{Period: "2025-09"}}, nil
		},
	}
}

func TestNewControllerStartsIdle(t *testing.T) {
	ctrl := NewController(healthyClient(100), zerolog.Nop())

	snap := ctrl.Snapshot()
	assert.Equal(t, domain.StateIdle, snap.State)
	assert.Equal(t, domain.PeriodMonthly, snap.Filters.Period)
	assert.Nil(t, snap.KPIs)
}

func TestRefreshReplacesAllSlicesAtomically(t *testing.T) {
	ctrl := NewController(healthyClient(100), zerolog.Nop())

	filters := domain.Filters{Region: "EMEA", Period: domain.PeriodQuarterly}
	require.NoError(t, ctrl.Refresh(context.Background(), filters))

	snap := ctrl.Snapshot()
	assert.Equal(t, domain.StateReady, snap.State)
	assert.Equal(t, filters, snap.Filters)
	assert.Empty(t, snap.Message)
	require.NotNil(t, snap.KPIs)
	assert.Equal(t, 100.0, snap.KPIs.TotalRevenue)
	assert.Len(t, snap.Regions, 1)
	assert.Len(t, snap.Trends, 1)
	assert.Len(t, snap.RiskAnalysis, 1)
	assert.Len(t, snap.Forecast, 1)
}

func TestRefreshPassesFiltersToTrends(t *testing.T) {
	client := healthyClient(100)

	var gotPeriod domain.Period
	var gotRegion string
	client.trends = func(_ context.Context, period domain.Period, region string) ([]domain.SalesTrendPoint, error) {
		gotPeriod = period
		gotRegion = region
		return nil, nil
	}

	var gotMonths int
	client.forecast = func(_ context.Context, months int) ([]domain.ForecastPoint, error) {
		gotMonths = months
		return nil, nil
	}

	ctrl := NewController(client, zerolog.Nop())
	require.NoError(t, ctrl.Refresh(context.Background(), domain.Filters{
		Region: "APAC",
		Period: domain.PeriodYearly,
	}))

	assert.Equal(t, domain.PeriodYearly, gotPeriod)
	assert.Equal(t, "APAC", gotRegion)
	assert.Equal(t, ForecastMonths, gotMonths)
}

func TestRefreshRunsOneCallPerEndpoint(t *testing.T) {
	client := healthyClient(100)

	var mu sync.Mutex
	calls := map[string]int{}
	count := func(name string) {
		mu.Lock()
		calls[name]++
		mu.Unlock()
	}

	base := *client
	client.kpis = func(ctx context.Context) (*domain.KPISummary, error) {
		count("kpis")
		return base.kpis(ctx)
	}
	client.regions = func(ctx context.Context) ([]domain.RegionalSummary, error) {
		count("regions")
		return base.regions(ctx)
	}
	client.trends = func(ctx context.Context, p domain.Period, r string) ([]domain.SalesTrendPoint, error) {
		count("trends")
		return base.trends(ctx, p, r)
	}
	client.risk = func(ctx context.Context, c, r string) ([]domain.CustomerRisk, error) {
		count("risk")
		return base.risk(ctx, c, r)
	}
	client.forecast = func(ctx context.Context, m int) ([]domain.ForecastPoint, error) {
		count("forecast")
		return base.forecast(ctx, m)
	}

	ctrl := NewController(client, zerolog.Nop())
	require.NoError(t, ctrl.Refresh(context.Background(), domain.Filters{Period: domain.PeriodMonthly}))

	assert.Equal(t, map[string]int{
		"kpis": 1, "regions": 1, "trends": 1, "risk": 1, "forecast": 1,
	}, calls)
}

func TestRefreshFailureKeepsPreviousData(t *testing.T) {
	client := healthyClient(100)
	ctrl := NewController(client, zerolog.Nop())

	filters := domain.Filters{Period: domain.PeriodMonthly}
	require.NoError(t, ctrl.Refresh(context.Background(), filters))

	// Second cycle: one endpoint fails, the whole batch must be rejected.
	client.risk = func(context.Context, string, string) ([]domain.CustomerRisk, error) {
		return nil, errors.New("backend unavailable")
	}
	client.kpis = func(context.Context) (*domain.KPISummary, error) {
		return &domain.KPISummary{TotalRevenue: 999}, nil
	}

	err := ctrl.Refresh(context.Background(), filters)
	require.Error(t, err)

	snap := ctrl.Snapshot()
	assert.Equal(t, domain.StateError, snap.State)
	assert.NotEmpty(t, snap.Message)
	// No partial application: the KPIs from the failed batch never land.
	require.NotNil(t, snap.KPIs)
	assert.Equal(t, 100.0, snap.KPIs.TotalRevenue)
	assert.Len(t, snap.RiskAnalysis, 1)
}

func TestRefreshFailureCancelsSiblingRequests(t *testing.T) {
	client := healthyClient(100)

	cancelled := make(chan struct{})
	client.kpis = func(ctx context.Context) (*domain.KPISummary, error) {
		<-ctx.Done()
		close(cancelled)
		return nil, ctx.Err()
	}
	client.risk = func(context.Context, string, string) ([]domain.CustomerRisk, error) {
		return nil, errors.New("boom")
	}

	ctrl := NewController(client, zerolog.Nop())
	err := ctrl.Refresh(context.Background(), domain.Filters{Period: domain.PeriodMonthly})
	require.Error(t, err)

	select {
	case <-cancelled:
	default:
		t.Fatal("sibling request was not cancelled after the first failure")
	}
}

func TestRefreshDiscardsStaleBatch(t *testing.T) {
	client := healthyClient(100)

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	var call int
	var mu sync.Mutex
	client.kpis = func(context.Context) (*domain.KPISummary, error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()
		if n == 1 {
			close(firstStarted)
			<-releaseFirst
			return &domain.KPISummary{TotalRevenue: 100}, nil
		}
		return &domain.KPISummary{TotalRevenue: 200}, nil
	}

	ctrl := NewController(client, zerolog.Nop())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		// The slow first refresh must not clobber the newer one.
		_ = ctrl.Refresh(context.Background(), domain.Filters{Region: "EMEA", Period: domain.PeriodMonthly})
	}()

	<-firstStarted
	require.NoError(t, ctrl.Refresh(context.Background(), domain.Filters{Region: "APAC", Period: domain.PeriodMonthly}))

	close(releaseFirst)
	wg.Wait()

	snap := ctrl.Snapshot()
	assert.Equal(t, domain.StateReady, snap.State)
	assert.Equal(t, "APAC", snap.Filters.Region)
	require.NotNil(t, snap.KPIs)
	assert.Equal(t, 200.0, snap.KPIs.TotalRevenue)
}

func TestSeedGeneratesBeforeFetching(t *testing.T) {
	client := healthyClient(100)

	var order []string
	var mu sync.Mutex
	record := func(step string) {
		mu.Lock()
		order = append(order, step)
		mu.Unlock()
	}

	client.generate = func(context.Context) error {
		record("generate")
		return nil
	}
	base := *client
	client.kpis = func(ctx context.Context) (*domain.KPISummary, error) {
		record("fetch")
		return base.kpis(ctx)
	}

	ctrl := NewController(client, zerolog.Nop())
	require.NoError(t, ctrl.Refresh(context.Background(), domain.Filters{Region: "EMEA", Period: domain.PeriodQuarterly}))
	require.NoError(t, ctrl.Seed(context.Background()))

	require.GreaterOrEqual(t, len(order), 2)
	assert.Equal(t, "generate", order[0])

	// Seed re-fetches with the filters that were already selected.
	snap := ctrl.Snapshot()
	assert.Equal(t, domain.StateReady, snap.State)
	assert.Equal(t, "EMEA", snap.Filters.Region)
	assert.Equal(t, domain.PeriodQuarterly, snap.Filters.Period)
}

func TestSeedFailureSkipsRefresh(t *testing.T) {
	client := healthyClient(100)
	client.generate = func(context.Context) error {
		return errors.New("generation failed")
	}

	fetched := false
	client.kpis = func(context.Context) (*domain.KPISummary, error) {
		fetched = true
		return nil, nil
	}

	ctrl := NewController(client, zerolog.Nop())
	err := ctrl.Seed(context.Background())
	require.Error(t, err)

	assert.False(t, fetched)
	snap := ctrl.Snapshot()
	assert.Equal(t, domain.StateError, snap.State)
	assert.NotEmpty(t, snap.Message)
}
