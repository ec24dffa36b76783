package domain

// Period is the trend bucketing requested from the backend.
type Period string

const (
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodYearly    Period = "yearly"
)

// ParsePeriod normalizes a user-supplied period, falling back to monthly.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodQuarterly:
		return PeriodQuarterly
	case PeriodYearly:
		return PeriodYearly
	default:
		return PeriodMonthly
	}
}

// Filters are the dashboard selectors. An empty Region means all regions.
type Filters struct {
	Region string
	Period Period
}

// State is the dashboard lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Snapshot is the complete dashboard state at a point in time. The five data
// slices are always replaced together; a snapshot never mixes batches.
type Snapshot struct {
	State   State
	Filters Filters
	Message string // user-facing error text, set only in StateError

	KPIs         *KPISummary
	Regions      []RegionalSummary
	Trends       []SalesTrendPoint
	RiskAnalysis []CustomerRisk
	Forecast     []ForecastPoint
}
