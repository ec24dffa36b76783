package dashboard

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rev-tools/salespulse/pkg/adapters"
	"github.com/rev-tools/salespulse/pkg/models/api"
	"github.com/rev-tools/salespulse/pkg/models/domain"
	"github.com/rev-tools/salespulse/pkg/server/templates"
	"github.com/rev-tools/salespulse/pkg/services/analytics"
	"github.com/rev-tools/salespulse/pkg/services/view"
)

// StateController is the dashboard orchestrator surface the handlers need.
type StateController interface {
	Snapshot() domain.Snapshot
	Refresh(ctx context.Context, filters domain.Filters) error
	Seed(ctx context.Context) error
}

type Handler struct {
	ctrl   StateController
	client analytics.Client
}

func NewHandler(ctrl StateController, client analytics.Client) *Handler {
	return &Handler{
		ctrl:   ctrl,
		client: client,
	}
}

// Page renders the full dashboard page. Every page load runs one fresh
// five-request batch, the same as the filter-change path.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	filters, tab := selectionFromQuery(r)
	_ = h.ctrl.Refresh(ctx, filters) // failure surfaces via the snapshot state

	data := buildDashboardView(h.ctrl.Snapshot(), r.URL.Path, tab)
	if err := templates.Render(w, "dashboard", data); err != nil {
		logger.Error().Err(err).Msg("failed to render dashboard page")
	}
}

// ContentPartial re-renders the dashboard content for htmx filter and tab
// swaps.
func (h *Handler) ContentPartial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	filters, tab := selectionFromQuery(r)
	_ = h.ctrl.Refresh(ctx, filters)

	data := buildDashboardView(h.ctrl.Snapshot(), "/", tab)
	if err := templates.Render(w, "dashboard_content", data); err != nil {
		logger.Error().Err(err).Msg("failed to render dashboard partial")
	}
}

// CountriesPartial serves the on-demand country performance table for the
// regional tab. It is fetched outside the five-request batch.
func (h *Handler) CountriesPartial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	region := r.URL.Query().Get("region")

	data := templates.CountriesView{Region: region}
	countries, err := h.client.GetCountryPerformance(ctx, region)
	if err != nil {
		logger.Error().Err(err).Str("region", region).Msg("failed to fetch country performance")
		data.Failed = true
		data.ErrorMessage = "Country performance is unavailable right now."
	} else {
		data.Rows = buildCountryRows(countries)
	}

	if err := templates.Render(w, "countries", data); err != nil {
		logger.Error().Err(err).Msg("failed to render countries partial")
	}
}

// GenerateData seeds the backend with sample data, re-runs the full fetch,
// and re-renders the dashboard content.
func (h *Handler) GenerateData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if err := h.ctrl.Seed(ctx); err != nil {
		logger.Error().Err(err).Msg("seed and refresh failed")
	}

	_, tab := selectionFromQuery(r)
	data := buildDashboardView(h.ctrl.Snapshot(), "/", tab)
	if err := templates.Render(w, "dashboard_content", data); err != nil {
		logger.Error().Err(err).Msg("failed to render dashboard partial")
	}
}

// APISnapshot exposes the full dashboard state as JSON.
func (h *Handler) APISnapshot(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapSnapshotDomainToApi(h.ctrl.Snapshot())); err != nil {
		logger.Error().Err(err).Msg("failed to encode snapshot")
	}
}

// APIRiskHistogram exposes the derived risk-category histogram as JSON.
func (h *Handler) APIRiskHistogram(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	histogram := view.RiskHistogram(h.ctrl.Snapshot().RiskAnalysis)
	buckets := make([]api.RiskBucket, 0, 3)
	for _, category := range []domain.RiskCategory{domain.RiskHigh, domain.RiskMedium, domain.RiskLow} {
		buckets = append(buckets, api.RiskBucket{
			Category: string(category),
			Count:    histogram[category],
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(buckets); err != nil {
		logger.Error().Err(err).Msg("failed to encode risk histogram")
	}
}

// APIGenerateData triggers backend seeding over the JSON API.
func (h *Handler) APIGenerateData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	w.Header().Set("Content-Type", "application/json")
	if err := h.ctrl.Seed(ctx); err != nil {
		logger.Error().Err(err).Msg("seed and refresh failed")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(api.GenerateResult{Message: "sample data generation failed"})
		return
	}
	_ = json.NewEncoder(w).Encode(api.GenerateResult{Message: "sample data generated"})
}

func selectionFromQuery(r *http.Request) (domain.Filters, string) {
	query := r.URL.Query()
	filters := domain.Filters{
		Region: query.Get("region"),
		Period: domain.ParsePeriod(query.Get("period")),
	}

	tab := query.Get("tab")
	switch tab {
	case tabRegional, tabRisk, tabForecast:
	default:
		tab = tabOverview
	}
	return filters, tab
}
