package api

// Wire types for the sales analytics backend. Field names and json tags
// mirror the backend responses exactly; see the endpoint list in
// services/analytics.

type RegionRevenue struct {
	Region  string  `json:"region"`
	Revenue float64 `json:"revenue"`
}

type KPISummary struct {
	TotalRevenue      float64         `json:"total_revenue"`
	TotalOrders       int             `json:"total_orders"`
	AvgDealSize       float64         `json:"avg_deal_size"`
	RevenueGrowth     float64         `json:"revenue_growth"`
	HighRiskCustomers int             `json:"high_risk_customers"`
	OverduePayments   float64         `json:"overdue_payments"`
	TopRegions        []RegionRevenue `json:"top_regions"`
}

type CustomerRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

type RegionalSummary struct {
	Region       string            `json:"region"`
	TotalRevenue float64           `json:"total_revenue"`
	TotalOrders  int               `json:"total_orders"`
	AvgDealSize  float64           `json:"avg_deal_size"`
	RiskExposure float64           `json:"risk_exposure"`
	TopCustomers []CustomerRevenue `json:"top_customers"`
	Countries    []string          `json:"countries"`
}

type SalesTrendPoint struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type CustomerRisk struct {
	CustomerID          string  `json:"customer_id"`
	CustomerName        string  `json:"customer_name"`
	Region              string  `json:"region"`
	Country             string  `json:"country"`
	Industry            string  `json:"industry"`
	CompanySize         string  `json:"company_size"`
	TotalRevenue        float64 `json:"total_revenue"`
	AvgDealSize         float64 `json:"avg_deal_size"`
	PaymentHistoryScore float64 `json:"payment_history_score"`
	RiskScore           float64 `json:"risk_score"`
	RiskCategory        string  `json:"risk_category"`
	DaysSinceLastOrder  int     `json:"days_since_last_order"`
}

type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// ForecastPoint carries either an actual or a forecasted value; the backend
// leaves the other one null. Confidence intervals are only present on
// forecasted points.
type ForecastPoint struct {
	Period             string              `json:"period"`
	ActualRevenue      *float64            `json:"actual_revenue"`
	ForecastedRevenue  *float64            `json:"forecasted_revenue"`
	ConfidenceInterval *ConfidenceInterval `json:"confidence_interval,omitempty"`
}

type CountryPerformance struct {
	Country           string  `json:"country"`
	Region            string  `json:"region"`
	Revenue           float64 `json:"revenue"`
	Orders            int     `json:"orders"`
	Customers         int     `json:"customers"`
	AvgDealSize       float64 `json:"avg_deal_size"`
	HighRiskCustomers int     `json:"high_risk_customers"`
}

type GenerateResult struct {
	Message string `json:"message"`
}
