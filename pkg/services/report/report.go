package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/rev-tools/salespulse/pkg/models/domain"
	"github.com/rev-tools/salespulse/pkg/services/view"
)

// Builders projecting a dashboard snapshot into terminal reports. Each
// builder mirrors one dashboard tab.

func BuildOverview(snap domain.Snapshot) *domain.Report {
	r := newReport("Sales Overview", snap)

	if snap.KPIs != nil {
		k := snap.KPIs
		badge := view.BadgeFor(&k.RevenueGrowth)
		section := domain.ReportSection{
			Title: "Key Performance Indicators",
			Summary: map[string]string{
				"Total Revenue":       view.FormatMoney(k.TotalRevenue),
				"Total Orders":        view.FormatThousands(int64(k.TotalOrders)),
				"Avg Deal Size":       view.FormatMoney(k.AvgDealSize),
				"Revenue Growth":      fmt.Sprintf("%s (%s)", badge.Magnitude, badge.Direction),
				"High Risk Customers": view.FormatThousands(int64(k.HighRiskCustomers)),
				"Overdue Payments":    view.FormatMoney(k.OverduePayments),
			},
		}
		for _, tr := range k.TopRegions {
			section.Details = append(section.Details, domain.ReportDetail{
				Name:        tr.Region,
				Value:       view.FormatMoney(tr.Revenue),
				Description: "revenue over the last 30 days",
			})
		}
		r.Sections = append(r.Sections, section)
	}

	if len(snap.Trends) > 0 {
		section := domain.ReportSection{Title: fmt.Sprintf("Sales Trend (%s)", snap.Filters.Period)}
		for _, p := range snap.Trends {
			section.Details = append(section.Details, domain.ReportDetail{
				Name:        p.Period,
				Value:       view.FormatMoney(p.Revenue),
				Description: fmt.Sprintf("%s orders", view.FormatThousands(int64(p.Orders))),
			})
		}
		r.Sections = append(r.Sections, section)
	}

	return r
}

func BuildRegional(snap domain.Snapshot) *domain.Report {
	r := newReport("Regional Performance", snap)

	for _, region := range snap.Regions {
		section := domain.ReportSection{
			Title: region.Region,
			Summary: map[string]string{
				"Total Revenue": view.FormatMoney(region.TotalRevenue),
				"Total Orders":  view.FormatThousands(int64(region.TotalOrders)),
				"Avg Deal Size": view.FormatMoney(region.AvgDealSize),
				"Risk Exposure": view.FormatMoney(region.RiskExposure),
				"Countries":     strings.Join(region.Countries, ", "),
			},
		}
		for _, c := range view.TopCustomersPreview(region) {
			section.Details = append(section.Details, domain.ReportDetail{
				Name:        c.Name,
				Value:       view.FormatMoney(c.Revenue),
				Description: "top customer",
			})
		}
		r.Sections = append(r.Sections, section)
	}

	return r
}

func BuildRisk(snap domain.Snapshot) *domain.Report {
	r := newReport("Customer Risk", snap)

	histogram := view.RiskHistogram(snap.RiskAnalysis)
	r.Sections = append(r.Sections, domain.ReportSection{
		Title: "Risk Distribution",
		Summary: map[string]string{
			"High":   view.FormatThousands(int64(histogram[domain.RiskHigh])),
			"Medium": view.FormatThousands(int64(histogram[domain.RiskMedium])),
			"Low":    view.FormatThousands(int64(histogram[domain.RiskLow])),
		},
	})

	rows := view.HighRiskRows(snap.RiskAnalysis)
	if len(rows) > 0 {
		section := domain.ReportSection{Title: "High Risk Customers"}
		for _, row := range rows {
			section.Details = append(section.Details, domain.ReportDetail{
				Name:  row.CustomerName,
				Value: view.FormatScore(row.RiskScore),
				Unit:  "risk score",
				Description: fmt.Sprintf("%s / %s, %s revenue, last order %d days ago (%s)",
					row.Region, row.Country,
					view.FormatMoney(row.TotalRevenue),
					row.DaysSinceLastOrder, row.Tier),
			})
		}
		r.Sections = append(r.Sections, section)
	}

	return r
}

func BuildForecast(snap domain.Snapshot) *domain.Report {
	r := newReport("Revenue Forecast", snap)

	summary := view.SummarizeForecast(snap.Forecast)
	headline := domain.ReportSection{
		Title: "Forecast Summary",
		Summary: map[string]string{
			"6-Month Total": view.FormatMoney(summary.SixMonthTotal),
			"Confidence":    summary.Confidence,
		},
	}
	if summary.NextRevenue != nil {
		headline.Summary["Next Month"] = fmt.Sprintf("%s (%s)",
			view.FormatMoney(*summary.NextRevenue), summary.NextPeriod)
	}
	r.Sections = append(r.Sections, headline)

	if len(snap.Forecast) > 0 {
		section := domain.ReportSection{Title: "Forecast Detail"}
		for _, p := range snap.Forecast {
			detail := domain.ReportDetail{Name: p.Period}
			switch {
			case p.ActualRevenue != nil:
				detail.Value = view.FormatMoney(*p.ActualRevenue)
				detail.Description = "actual"
			case p.ForecastedRevenue != nil:
				detail.Value = view.FormatMoney(*p.ForecastedRevenue)
				detail.Description = "forecast"
				if p.ConfidenceInterval != nil {
					detail.Description = fmt.Sprintf("forecast (%s to %s)",
						view.FormatMoney(p.ConfidenceInterval.Lower),
						view.FormatMoney(p.ConfidenceInterval.Upper))
				}
			}
			section.Details = append(section.Details, detail)
		}
		r.Sections = append(r.Sections, section)
	}

	return r
}

func newReport(title string, snap domain.Snapshot) *domain.Report {
	return &domain.Report{
		Title:       title,
		GeneratedAt: time.Now().UTC(),
		Filters:     snap.Filters,
	}
}
