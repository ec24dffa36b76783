package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rev-tools/salespulse/pkg/adapters"
	"github.com/rev-tools/salespulse/pkg/models/api"
	"github.com/rev-tools/salespulse/pkg/models/domain"
)

const defaultTimeout = 30 * time.Second

// Client is the typed surface of the sales analytics backend. All metric
// computation (aggregation, risk scoring, forecasting) happens behind it;
// the dashboard only reads.
type Client interface {
	GetKPIs(ctx context.Context) (*domain.KPISummary, error)
	GetRegionalSummary(ctx context.Context) ([]domain.RegionalSummary, error)
	GetSalesTrends(ctx context.Context, period domain.Period, region string) ([]domain.SalesTrendPoint, error)
	GetCustomerRiskAnalysis(ctx context.Context, category, region string) ([]domain.CustomerRisk, error)
	GetForecast(ctx context.Context, months int) ([]domain.ForecastPoint, error)
	GetCountryPerformance(ctx context.Context, region string) ([]domain.CountryPerformance, error)
	GenerateData(ctx context.Context) error
}

type client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a backend client rooted at baseURL (e.g.
// "http://localhost:8000/api"). A zero timeout selects the default.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With().Str("client", "analytics").Logger(),
	}
}

func (c *client) GetKPIs(ctx context.Context) (*domain.KPISummary, error) {
	var resp api.KPISummary
	if err := c.get(ctx, "/kpis", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch kpis: %w", err)
	}
	kpis := adapters.MapKPISummaryApiToDomain(resp)
	return &kpis, nil
}

func (c *client) GetRegionalSummary(ctx context.Context) ([]domain.RegionalSummary, error) {
	var resp []api.RegionalSummary
	if err := c.get(ctx, "/regional-summary", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch regional summary: %w", err)
	}
	out := make([]domain.RegionalSummary, 0, len(resp))
	for _, r := range resp {
		out = append(out, adapters.MapRegionalSummaryApiToDomain(r))
	}
	return out, nil
}

func (c *client) GetSalesTrends(
	ctx context.Context,
	period domain.Period,
	region string,
) ([]domain.SalesTrendPoint, error) {
	params := url.Values{}
	params.Set("period", string(period))
	if region != "" {
		params.Set("region", region)
	}

	var resp []api.SalesTrendPoint
	if err := c.get(ctx, "/sales-trends", params, &resp); err != nil {
		return nil, fmt.Errorf("fetch sales trends: %w", err)
	}
	out := make([]domain.SalesTrendPoint, 0, len(resp))
	for _, p := range resp {
		out = append(out, adapters.MapSalesTrendPointApiToDomain(p))
	}
	return out, nil
}

func (c *client) GetCustomerRiskAnalysis(
	ctx context.Context,
	category, region string,
) ([]domain.CustomerRisk, error) {
	params := url.Values{}
	if category != "" {
		params.Set("risk_category", category)
	}
	if region != "" {
		params.Set("region", region)
	}

	var resp []api.CustomerRisk
	if err := c.get(ctx, "/customer-risk-analysis", params, &resp); err != nil {
		return nil, fmt.Errorf("fetch customer risk analysis: %w", err)
	}
	out := make([]domain.CustomerRisk, 0, len(resp))
	for _, r := range resp {
		out = append(out, adapters.MapCustomerRiskApiToDomain(r))
	}
	return out, nil
}

func (c *client) GetForecast(ctx context.Context, months int) ([]domain.ForecastPoint, error) {
	params := url.Values{}
	params.Set("months", strconv.Itoa(months))

	var resp []api.ForecastPoint
	if err := c.get(ctx, "/forecast", params, &resp); err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	out := make([]domain.ForecastPoint, 0, len(resp))
	for _, p := range resp {
		out = append(out, adapters.MapForecastPointApiToDomain(p))
	}
	return out, nil
}

func (c *client) GetCountryPerformance(ctx context.Context, region string) ([]domain.CountryPerformance, error) {
	params := url.Values{}
	if region != "" {
		params.Set("region", region)
	}

	var resp []api.CountryPerformance
	if err := c.get(ctx, "/country-performance", params, &resp); err != nil {
		return nil, fmt.Errorf("fetch country performance: %w", err)
	}
	out := make([]domain.CountryPerformance, 0, len(resp))
	for _, p := range resp {
		out = append(out, adapters.MapCountryPerformanceApiToDomain(p))
	}
	return out, nil
}

func (c *client) GenerateData(ctx context.Context) error {
	var resp api.GenerateResult
	if err := c.post(ctx, "/generate-data", &resp); err != nil {
		return fmt.Errorf("generate data: %w", err)
	}
	c.log.Info().Str("result", resp.Message).Msg("backend data generation completed")
	return nil
}

func (c *client) get(ctx context.Context, endpoint string, params url.Values, target interface{}) error {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, endpoint, target)
}

func (c *client) post(ctx context.Context, endpoint string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, endpoint, target)
}

func (c *client) do(req *http.Request, endpoint string, target interface{}) error {
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	c.log.Debug().
		Str("endpoint", endpoint).
		Str("request_id", requestID).
		Msg("calling analytics backend")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backend returned %d for %s: %s", resp.StatusCode, endpoint, truncateBody(body))
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func truncateBody(body []byte) string {
	const limit = 256
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
