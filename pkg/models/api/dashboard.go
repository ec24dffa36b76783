package api

// Response types served by the dashboard's own JSON API.

type RiskBucket struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type DashboardSnapshot struct {
	State        string            `json:"state"`
	Region       string            `json:"region,omitempty"`
	Period       string            `json:"period"`
	Error        string            `json:"error,omitempty"`
	KPIs         *KPISummary       `json:"kpis,omitempty"`
	Regions      []RegionalSummary `json:"regions,omitempty"`
	Trends       []SalesTrendPoint `json:"trends,omitempty"`
	RiskAnalysis []CustomerRisk    `json:"risk_analysis,omitempty"`
	Forecast     []ForecastPoint   `json:"forecast,omitempty"`
}
