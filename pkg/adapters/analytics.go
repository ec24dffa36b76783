package adapters

import (
	"github.com/rev-tools/salespulse/pkg/models/api"
	"github.com/rev-tools/salespulse/pkg/models/domain"
)

func MapKPISummaryApiToDomain(k api.KPISummary) domain.KPISummary {
	out := domain.KPISummary{
		TotalRevenue:      k.TotalRevenue,
		TotalOrders:       k.TotalOrders,
		AvgDealSize:       k.AvgDealSize,
		RevenueGrowth:     k.RevenueGrowth,
		HighRiskCustomers: k.HighRiskCustomers,
		OverduePayments:   k.OverduePayments,
	}
	for _, r := range k.TopRegions {
		out.TopRegions = append(out.TopRegions, domain.RegionRevenue{Region: r.Region, Revenue: r.Revenue})
	}
	return out
}

func MapRegionalSummaryApiToDomain(r api.RegionalSummary) domain.RegionalSummary {
	out := domain.RegionalSummary{
		Region:       r.Region,
		TotalRevenue: r.TotalRevenue,
		TotalOrders:  r.TotalOrders,
		AvgDealSize:  r.AvgDealSize,
		RiskExposure: r.RiskExposure,
		Countries:    append([]string(nil), r.Countries...),
	}
	for _, c := range r.TopCustomers {
		out.TopCustomers = append(out.TopCustomers, domain.CustomerRevenue{Name: c.Name, Revenue: c.Revenue})
	}
	return out
}

func MapSalesTrendPointApiToDomain(p api.SalesTrendPoint) domain.SalesTrendPoint {
	return domain.SalesTrendPoint{
		Period:  p.Period,
		Revenue: p.Revenue,
		Orders:  p.Orders,
	}
}

func MapCustomerRiskApiToDomain(c api.CustomerRisk) domain.CustomerRisk {
	return domain.CustomerRisk{
		CustomerID:          c.CustomerID,
		CustomerName:        c.CustomerName,
		Region:              c.Region,
		Country:             c.Country,
		Industry:            c.Industry,
		CompanySize:         c.CompanySize,
		TotalRevenue:        c.TotalRevenue,
		AvgDealSize:         c.AvgDealSize,
		PaymentHistoryScore: c.PaymentHistoryScore,
		RiskScore:           c.RiskScore,
		RiskCategory:        domain.RiskCategory(c.RiskCategory),
		DaysSinceLastOrder:  c.DaysSinceLastOrder,
	}
}

func MapForecastPointApiToDomain(p api.ForecastPoint) domain.ForecastPoint {
	out := domain.ForecastPoint{
		Period:            p.Period,
		ActualRevenue:     copyFloat(p.ActualRevenue),
		ForecastedRevenue: copyFloat(p.ForecastedRevenue),
	}
	if p.ConfidenceInterval != nil {
		out.ConfidenceInterval = &domain.ConfidenceInterval{
			Lower: p.ConfidenceInterval.Lower,
			Upper: p.ConfidenceInterval.Upper,
		}
	}
	return out
}

func MapCountryPerformanceApiToDomain(c api.CountryPerformance) domain.CountryPerformance {
	return domain.CountryPerformance{
		Country:           c.Country,
		Region:            c.Region,
		Revenue:           c.Revenue,
		Orders:            c.Orders,
		Customers:         c.Customers,
		AvgDealSize:       c.AvgDealSize,
		HighRiskCustomers: c.HighRiskCustomers,
	}
}

func MapSnapshotDomainToApi(s domain.Snapshot) api.DashboardSnapshot {
	out := api.DashboardSnapshot{
		State:  string(s.State),
		Region: s.Filters.Region,
		Period: string(s.Filters.Period),
		Error:  s.Message,
	}
	if s.KPIs != nil {
		kpis := MapKPISummaryDomainToApi(*s.KPIs)
		out.KPIs = &kpis
	}
	for _, r := range s.Regions {
		out.Regions = append(out.Regions, MapRegionalSummaryDomainToApi(r))
	}
	for _, p := range s.Trends {
		out.Trends = append(out.Trends, api.SalesTrendPoint{Period: p.Period, Revenue: p.Revenue, Orders: p.Orders})
	}
	for _, c := range s.RiskAnalysis {
		out.RiskAnalysis = append(out.RiskAnalysis, MapCustomerRiskDomainToApi(c))
	}
	for _, p := range s.Forecast {
		out.Forecast = append(out.Forecast, MapForecastPointDomainToApi(p))
	}
	return out
}

func MapKPISummaryDomainToApi(k domain.KPISummary) api.KPISummary {
	out := api.KPISummary{
		TotalRevenue:      k.TotalRevenue,
		TotalOrders:       k.TotalOrders,
		AvgDealSize:       k.AvgDealSize,
		RevenueGrowth:     k.RevenueGrowth,
		HighRiskCustomers: k.HighRiskCustomers,
		OverduePayments:   k.OverduePayments,
	}
	for _, r := range k.TopRegions {
		out.TopRegions = append(out.TopRegions, api.RegionRevenue{Region: r.Region, Revenue: r.Revenue})
	}
	return out
}

func MapRegionalSummaryDomainToApi(r domain.RegionalSummary) api.RegionalSummary {
	out := api.RegionalSummary{
		Region:       r.Region,
		TotalRevenue: r.TotalRevenue,
		TotalOrders:  r.TotalOrders,
		AvgDealSize:  r.AvgDealSize,
		RiskExposure: r.RiskExposure,
		Countries:    append([]string(nil), r.Countries...),
	}
	for _, c := range r.TopCustomers {
		out.TopCustomers = append(out.TopCustomers, api.CustomerRevenue{Name: c.Name, Revenue: c.Revenue})
	}
	return out
}

func MapCustomerRiskDomainToApi(c domain.CustomerRisk) api.CustomerRisk {
	return api.CustomerRisk{
		CustomerID:          c.CustomerID,
		CustomerName:        c.CustomerName,
		Region:              c.Region,
		Country:             c.Country,
		Industry:            c.Industry,
		CompanySize:         c.CompanySize,
		TotalRevenue:        c.TotalRevenue,
		AvgDealSize:         c.AvgDealSize,
		PaymentHistoryScore: c.PaymentHistoryScore,
		RiskScore:           c.RiskScore,
		RiskCategory:        string(c.RiskCategory),
		DaysSinceLastOrder:  c.DaysSinceLastOrder,
	}
}

func MapForecastPointDomainToApi(p domain.ForecastPoint) api.ForecastPoint {
	out := api.ForecastPoint{
		Period:            p.Period,
		ActualRevenue:     copyFloat(p.ActualRevenue),
		ForecastedRevenue: copyFloat(p.ForecastedRevenue),
	}
	if p.ConfidenceInterval != nil {
		out.ConfidenceInterval = &api.ConfidenceInterval{
			Lower: p.ConfidenceInterval.Lower,
			Upper: p.ConfidenceInterval.Upper,
		}
	}
	return out
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
