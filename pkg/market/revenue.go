// Package market computes a project's expected monthly revenue under a
// given season, market connections, and climate-control eligibility.
package market

import "github.com/BillTheMaker/life-optimizer-tools/pkg/catalog"

// AdjustedRevenue returns the project's expected revenue for one month
// of the given season:
//
//	base revenue x seasonal multiplier
//	x climate-control bonus, when the project is indoor and fits the
//	  snapshot's climate-controlled space
//	x the best sales multiplier among market connections serving the
//	  project's product type
//	x base sales probability (expected value under uncertain sell-through)
//
// Pure with respect to the snapshot; nothing is mutated.
func AdjustedRevenue(p *catalog.Project, season catalog.Season, res *catalog.Resources) float64 {
	revenue := p.MonthlyRevenue * p.SeasonalMultiplier(season)

	if p.IsIndoor && p.SpaceRequiredSqft <= res.ClimateControlledSqft {
		revenue *= p.ClimateControlledBenefit
	}

	if mult, ok := bestConnectionMultiplier(p.ProductType, res.MarketConnections); ok {
		revenue *= mult
	}

	return revenue * p.BaseSalesProbability
}

// bestConnectionMultiplier returns the highest sales multiplier among
// connections serving the product type, and whether any matched.
func bestConnectionMultiplier(productType string, conns []catalog.MarketConnection) (float64, bool) {
	best := 0.0
	found := false
	for _, mc := range conns {
		if !mc.Serves(productType) {
			continue
		}
		if !found || mc.SalesMultiplier > best {
			best = mc.SalesMultiplier
			found = true
		}
	}
	return best, found
}
