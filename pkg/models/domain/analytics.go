package domain

type RegionRevenue struct {
	Region  string
	Revenue float64
}

type KPISummary struct {
	TotalRevenue      float64
	TotalOrders       int
	AvgDealSize       float64
	RevenueGrowth     float64
	HighRiskCustomers int
	OverduePayments   float64
	TopRegions        []RegionRevenue
}

type CustomerRevenue struct {
	Name    string
	Revenue float64
}

type RegionalSummary struct {
	Region       string
	TotalRevenue float64
	TotalOrders  int
	AvgDealSize  float64
	RiskExposure float64
	TopCustomers []CustomerRevenue
	Countries    []string
}

type SalesTrendPoint struct {
	Period  string
	Revenue float64
	Orders  int
}

type RiskCategory string

const (
	RiskLow    RiskCategory = "Low"
	RiskMedium RiskCategory = "Medium"
	RiskHigh   RiskCategory = "High"
)

type CustomerRisk struct {
	CustomerID          string
	CustomerName        string
	Region              string
	Country             string
	Industry            string
	CompanySize         string
	TotalRevenue        float64
	AvgDealSize         float64
	PaymentHistoryScore float64
	RiskScore           float64
	RiskCategory        RiskCategory
	DaysSinceLastOrder  int
}

type ConfidenceInterval struct {
	Lower float64
	Upper float64
}

// ForecastPoint holds exactly one of ActualRevenue/ForecastedRevenue except
// at the actual-to-forecast transition boundary.
type ForecastPoint struct {
	Period             string
	ActualRevenue      *float64
	ForecastedRevenue  *float64
	ConfidenceInterval *ConfidenceInterval
}

type CountryPerformance struct {
	Country           string
	Region            string
	Revenue           float64
	Orders            int
	Customers         int
	AvgDealSize       float64
	HighRiskCustomers int
}
