package templates

// View models consumed by the HTML templates. All fields are preformatted
// strings; no computation happens at template level.

type NavItem struct {
	Path   string
	Label  string
	Active bool
}

type Tab struct {
	ID         string
	Label      string
	URL        string // page URL, pushed into history
	PartialURL string // htmx endpoint returning the content fragment
	Active     bool
}

type DashboardView struct {
	Nav           []NavItem
	Tabs          []Tab
	ActiveTab     string
	Region        string
	Period        string
	RegionOptions []string
	PeriodOptions []string

	State        string
	Loading      bool
	Failed       bool
	ErrorMessage string

	KPICards     []KPICard
	TopRegions   []BarRow
	TrendRows    []BarRow
	RegionCards  []RegionCard
	ChartRows    []ChartRow
	Histogram    []HistogramBar
	RiskRows     []RiskRow
	Forecast     ForecastSummary
	ForecastRows []ForecastRow
}

type KPICard struct {
	Label     string
	Value     string
	Badge     string // up, down, neutral
	BadgeText string
	Hint      string
}

type BarRow struct {
	Label     string
	Value     string
	Secondary string
	WidthPct  int
}

type NameValue struct {
	Name  string
	Value string
}

type RegionCard struct {
	Region       string
	Revenue      string
	Orders       string
	AvgDealSize  string
	RiskExposure string
	Countries    string
	TopCustomers []NameValue
}

type ChartRow struct {
	Region       string
	Revenue      string
	Orders       string
	RiskExposure string
	WidthPct     int
}

type HistogramBar struct {
	Category string
	Count    int
	WidthPct int
}

type RiskRow struct {
	Name    string
	Region  string
	Country string
	Score   string
	Revenue string
	Days    int
	Tier    string // normal, moderate, severe
}

type ForecastSummary struct {
	HasNext       bool
	NextPeriod    string
	NextRevenue   string
	SixMonthTotal string
	Confidence    string
}

type ForecastRow struct {
	Period   string
	Value    string
	Kind     string // actual, forecast
	Interval string
}

type CountriesView struct {
	Region       string
	Failed       bool
	ErrorMessage string
	Rows         []CountryRow
}

type CountryRow struct {
	Country     string
	Region      string
	Revenue     string
	Orders      string
	Customers   string
	AvgDealSize string
	HighRisk    string
}
