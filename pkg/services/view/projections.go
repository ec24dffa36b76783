package view

import "github.com/rev-tools/salespulse/pkg/models/domain"

// Pure projections over the dashboard snapshot. All functions here are
// deterministic and never mutate their inputs; they are recomputed on every
// render rather than cached.

const (
	// MaxRiskRows caps the high-risk table to the first rows in received order.
	MaxRiskRows = 10
	// MaxTopCustomers caps the per-region top-customer preview.
	MaxTopCustomers = 3
	// MaxRiskScore clamps displayed risk scores.
	MaxRiskScore = 100
	// ForecastConfidence is a fixed display constant, not computed from data.
	ForecastConfidence = "85%"
)

// RiskHistogram counts risk-analysis entries per category.
func RiskHistogram(customers []domain.CustomerRisk) map[domain.RiskCategory]int {
	counts := make(map[domain.RiskCategory]int)
	for _, c := range customers {
		counts[c.RiskCategory]++
	}
	return counts
}

// ChartRow is one bar-chart tuple flattened from a regional summary.
type ChartRow struct {
	Region       string
	Revenue      float64
	Orders       int
	RiskExposure float64
}

// RegionalChartRows flattens region summaries for bar-chart consumption,
// preserving received order.
func RegionalChartRows(regions []domain.RegionalSummary) []ChartRow {
	rows := make([]ChartRow, 0, len(regions))
	for _, r := range regions {
		rows = append(rows, ChartRow{
			Region:       r.Region,
			Revenue:      r.TotalRevenue,
			Orders:       r.TotalOrders,
			RiskExposure: r.RiskExposure,
		})
	}
	return rows
}

// SeverityTier grades how long a customer has gone without ordering.
type SeverityTier string

const (
	TierNormal   SeverityTier = "normal"
	TierModerate SeverityTier = "moderate"
	TierSevere   SeverityTier = "severe"
)

// RecencyTier applies the strictly-greater-than thresholds: >180 days is
// severe, >90 is moderate, anything else is normal.
func RecencyTier(daysSinceLastOrder int) SeverityTier {
	switch {
	case daysSinceLastOrder > 180:
		return TierSevere
	case daysSinceLastOrder > 90:
		return TierModerate
	default:
		return TierNormal
	}
}

// RiskRow is one display row of the high-risk customer table.
type RiskRow struct {
	CustomerName       string
	Region             string
	Country            string
	RiskScore          float64 // clamped at MaxRiskScore
	TotalRevenue       float64
	DaysSinceLastOrder int
	Tier               SeverityTier
}

// HighRiskRows filters the risk analysis down to High-category customers,
// keeping the first MaxRiskRows in received order. No client-side sorting.
func HighRiskRows(customers []domain.CustomerRisk) []RiskRow {
	rows := make([]RiskRow, 0, MaxRiskRows)
	for _, c := range customers {
		if c.RiskCategory != domain.RiskHigh {
			continue
		}
		score := c.RiskScore
		if score > MaxRiskScore {
			score = MaxRiskScore
		}
		rows = append(rows, RiskRow{
			CustomerName:       c.CustomerName,
			Region:             c.Region,
			Country:            c.Country,
			RiskScore:          score,
			TotalRevenue:       c.TotalRevenue,
			DaysSinceLastOrder: c.DaysSinceLastOrder,
			Tier:               RecencyTier(c.DaysSinceLastOrder),
		})
		if len(rows) == MaxRiskRows {
			break
		}
	}
	return rows
}

// TopCustomersPreview returns the first MaxTopCustomers entries; truncation
// is silent.
func TopCustomersPreview(r domain.RegionalSummary) []domain.CustomerRevenue {
	if len(r.TopCustomers) <= MaxTopCustomers {
		return r.TopCustomers
	}
	return r.TopCustomers[:MaxTopCustomers]
}

// ForecastSummary aggregates the forecast tab's headline numbers.
type ForecastSummary struct {
	NextPeriod    string
	NextRevenue   *float64
	SixMonthTotal float64
	Confidence    string
}

// SummarizeForecast picks the first forecasted point as "next month" and sums
// forecasted revenue over all points that carry one.
func SummarizeForecast(points []domain.ForecastPoint) ForecastSummary {
	summary := ForecastSummary{Confidence: ForecastConfidence}
	for _, p := range points {
		if p.ForecastedRevenue == nil {
			continue
		}
		if summary.NextRevenue == nil {
			v := *p.ForecastedRevenue
			summary.NextRevenue = &v
			summary.NextPeriod = p.Period
		}
		summary.SixMonthTotal += *p.ForecastedRevenue
	}
	return summary
}

// BadgeDirection styles a KPI card's trend indicator.
type BadgeDirection string

const (
	BadgeUp      BadgeDirection = "up"
	BadgeDown    BadgeDirection = "down"
	BadgeNeutral BadgeDirection = "neutral"
)

// TrendBadge derives the badge from the sign of a percent change. A zero
// change counts as non-negative and styles up; a nil change is neutral.
type TrendBadge struct {
	Direction BadgeDirection
	Magnitude string // e.g. "5%", unsigned
}

func BadgeFor(change *float64) TrendBadge {
	if change == nil {
		return TrendBadge{Direction: BadgeNeutral}
	}
	magnitude := *change
	direction := BadgeUp
	if magnitude < 0 {
		direction = BadgeDown
		magnitude = -magnitude
	}
	return TrendBadge{
		Direction: direction,
		Magnitude: FormatPercent(magnitude),
	}
}
