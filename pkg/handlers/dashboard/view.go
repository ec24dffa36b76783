package dashboard

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rev-tools/salespulse/pkg/models/domain"
	"github.com/rev-tools/salespulse/pkg/server/templates"
	"github.com/rev-tools/salespulse/pkg/services/view"
)

const (
	tabOverview = "overview"
	tabRegional = "regional"
	tabRisk     = "risk"
	tabForecast = "forecast"
)

// All four client routes render the same dashboard; navigation only moves
// the highlight.
var navItems = []templates.NavItem{
	{Path: "/", Label: "Dashboard"},
	{Path: "/regional", Label: "Regional"},
	{Path: "/customers", Label: "Customers"},
	{Path: "/reports", Label: "Reports"},
}

var tabLabels = map[string]string{
	tabOverview: "Overview",
	tabRegional: "Regional",
	tabRisk:     "Risk",
	tabForecast: "Forecast",
}

// Fallback for the region selector before the first successful fetch.
var defaultRegions = []string{"APAC", "EMEA", "Americas"}

// buildDashboardView projects a snapshot into the template view model. All
// derived values are recomputed here on every render.
func buildDashboardView(snap domain.Snapshot, path, tab string) templates.DashboardView {
	data := templates.DashboardView{
		ActiveTab:     tab,
		Region:        snap.Filters.Region,
		Period:        string(snap.Filters.Period),
		RegionOptions: regionOptions(snap.Regions),
		PeriodOptions: []string{
			string(domain.PeriodMonthly),
			string(domain.PeriodQuarterly),
			string(domain.PeriodYearly),
		},
		State:        string(snap.State),
		Loading:      snap.State == domain.StateLoading || snap.State == domain.StateIdle,
		Failed:       snap.State == domain.StateError,
		ErrorMessage: snap.Message,
	}

	for _, item := range navItems {
		item.Active = item.Path == path
		data.Nav = append(data.Nav, item)
	}
	for _, id := range []string{tabOverview, tabRegional, tabRisk, tabForecast} {
		data.Tabs = append(data.Tabs, buildTab(id, path, snap.Filters, tab))
	}

	if snap.State != domain.StateReady {
		return data
	}

	switch tab {
	case tabRegional:
		buildRegionalTab(&data, snap)
	case tabRisk:
		buildRiskTab(&data, snap)
	case tabForecast:
		buildForecastTab(&data, snap)
	default:
		buildOverviewTab(&data, snap)
	}
	return data
}

func buildTab(id, path string, filters domain.Filters, active string) templates.Tab {
	params := url.Values{}
	params.Set("tab", id)
	if filters.Region != "" {
		params.Set("region", filters.Region)
	}
	params.Set("period", string(filters.Period))

	return templates.Tab{
		ID:         id,
		Label:      tabLabels[id],
		URL:        path + "?" + params.Encode(),
		PartialURL: "/partials/dashboard?" + params.Encode(),
		Active:     id == active,
	}
}

func buildOverviewTab(data *templates.DashboardView, snap domain.Snapshot) {
	if snap.KPIs != nil {
		k := snap.KPIs
		badge := view.BadgeFor(&k.RevenueGrowth)
		data.KPICards = []templates.KPICard{
			{
				Label:     "Total Revenue",
				Value:     view.FormatMoneyCompact(k.TotalRevenue),
				Badge:     string(badge.Direction),
				BadgeText: badge.Magnitude,
				Hint:      "last 30 days",
			},
			{
				Label: "Total Orders",
				Value: view.FormatThousands(int64(k.TotalOrders)),
			},
			{
				Label: "Avg Deal Size",
				Value: view.FormatMoney(k.AvgDealSize),
			},
			{
				Label: "High Risk Customers",
				Value: view.FormatThousands(int64(k.HighRiskCustomers)),
			},
			{
				Label: "Overdue Payments",
				Value: view.FormatMoneyCompact(k.OverduePayments),
			},
		}

		var maxRevenue float64
		for _, r := range k.TopRegions {
			if r.Revenue > maxRevenue {
				maxRevenue = r.Revenue
			}
		}
		for _, r := range k.TopRegions {
			data.TopRegions = append(data.TopRegions, templates.BarRow{
				Label:    r.Region,
				Value:    view.FormatMoney(r.Revenue),
				WidthPct: widthPct(r.Revenue, maxRevenue),
			})
		}
	}

	var maxRevenue float64
	for _, p := range snap.Trends {
		if p.Revenue > maxRevenue {
			maxRevenue = p.Revenue
		}
	}
	for _, p := range snap.Trends {
		data.TrendRows = append(data.TrendRows, templates.BarRow{
			Label:     p.Period,
			Value:     view.FormatMoney(p.Revenue),
			Secondary: fmt.Sprintf("%s orders", view.FormatThousands(int64(p.Orders))),
			WidthPct:  widthPct(p.Revenue, maxRevenue),
		})
	}
}

func buildRegionalTab(data *templates.DashboardView, snap domain.Snapshot) {
	for _, region := range snap.Regions {
		card := templates.RegionCard{
			Region:       region.Region,
			Revenue:      view.FormatMoneyCompact(region.TotalRevenue),
			Orders:       view.FormatThousands(int64(region.TotalOrders)),
			AvgDealSize:  view.FormatMoney(region.AvgDealSize),
			RiskExposure: view.FormatMoneyCompact(region.RiskExposure),
			Countries:    strings.Join(region.Countries, ", "),
		}
		for _, c := range view.TopCustomersPreview(region) {
			card.TopCustomers = append(card.TopCustomers, templates.NameValue{
				Name:  c.Name,
				Value: view.FormatMoney(c.Revenue),
			})
		}
		data.RegionCards = append(data.RegionCards, card)
	}

	rows := view.RegionalChartRows(snap.Regions)
	var maxRevenue float64
	for _, row := range rows {
		if row.Revenue > maxRevenue {
			maxRevenue = row.Revenue
		}
	}
	for _, row := range rows {
		data.ChartRows = append(data.ChartRows, templates.ChartRow{
			Region:       row.Region,
			Revenue:      view.FormatMoney(row.Revenue),
			Orders:       view.FormatThousands(int64(row.Orders)),
			RiskExposure: view.FormatMoney(row.RiskExposure),
			WidthPct:     widthPct(row.Revenue, maxRevenue),
		})
	}
}

func buildRiskTab(data *templates.DashboardView, snap domain.Snapshot) {
	histogram := view.RiskHistogram(snap.RiskAnalysis)
	maxCount := 0
	for _, count := range histogram {
		if count > maxCount {
			maxCount = count
		}
	}
	for _, category := range []domain.RiskCategory{domain.RiskHigh, domain.RiskMedium, domain.RiskLow} {
		data.Histogram = append(data.Histogram, templates.HistogramBar{
			Category: string(category),
			Count:    histogram[category],
			WidthPct: widthPct(float64(histogram[category]), float64(maxCount)),
		})
	}

	for _, row := range view.HighRiskRows(snap.RiskAnalysis) {
		data.RiskRows = append(data.RiskRows, templates.RiskRow{
			Name:    row.CustomerName,
			Region:  row.Region,
			Country: row.Country,
			Score:   view.FormatScore(row.RiskScore),
			Revenue: view.FormatMoney(row.TotalRevenue),
			Days:    row.DaysSinceLastOrder,
			Tier:    string(row.Tier),
		})
	}
}

func buildForecastTab(data *templates.DashboardView, snap domain.Snapshot) {
	summary := view.SummarizeForecast(snap.Forecast)
	data.Forecast = templates.ForecastSummary{
		HasNext:       summary.NextRevenue != nil,
		NextPeriod:    summary.NextPeriod,
		SixMonthTotal: view.FormatMoneyCompact(summary.SixMonthTotal),
		Confidence:    summary.Confidence,
	}
	if summary.NextRevenue != nil {
		data.Forecast.NextRevenue = view.FormatMoneyCompact(*summary.NextRevenue)
	}

	for _, p := range snap.Forecast {
		row := templates.ForecastRow{Period: p.Period}
		switch {
		case p.ActualRevenue != nil:
			row.Value = view.FormatMoney(*p.ActualRevenue)
			row.Kind = "actual"
		case p.ForecastedRevenue != nil:
			row.Value = view.FormatMoney(*p.ForecastedRevenue)
			row.Kind = "forecast"
			if p.ConfidenceInterval != nil {
				row.Interval = fmt.Sprintf("%s – %s",
					view.FormatMoney(p.ConfidenceInterval.Lower),
					view.FormatMoney(p.ConfidenceInterval.Upper))
			}
		default:
			continue
		}
		data.ForecastRows = append(data.ForecastRows, row)
	}
}

func buildCountryRows(countries []domain.CountryPerformance) []templates.CountryRow {
	rows := make([]templates.CountryRow, 0, len(countries))
	for _, c := range countries {
		rows = append(rows, templates.CountryRow{
			Country:     c.Country,
			Region:      c.Region,
			Revenue:     view.FormatMoney(c.Revenue),
			Orders:      view.FormatThousands(int64(c.Orders)),
			Customers:   view.FormatThousands(int64(c.Customers)),
			AvgDealSize: view.FormatMoney(c.AvgDealSize),
			HighRisk:    view.FormatThousands(int64(c.HighRiskCustomers)),
		})
	}
	return rows
}

func regionOptions(regions []domain.RegionalSummary) []string {
	if len(regions) == 0 {
		return defaultRegions
	}
	names := make([]string, 0, len(regions))
	for _, r := range regions {
		names = append(names, r.Region)
	}
	return names
}

func widthPct(value, max float64) int {
	if max <= 0 || value <= 0 {
		return 0
	}
	return int(value / max * 100)
}
