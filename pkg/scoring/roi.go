package scoring

import (
	"github.com/BillTheMaker/life-optimizer-tools/pkg/catalog"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/market"
)

// UpgradeROI projects the net benefit of a capital upgrade over the
// next horizon periods, as (benefit - cost) / cost. Total cost is the
// purchase price plus operating cost across the horizon. Benefit is
// only recognized for upgrades that expand climate-controlled space:
// for each period's season, every indoor active project's adjusted
// revenue is rescaled by the upgrade's seasonal benefit and the delta
// accumulates. Returns 0 when total cost is 0.
func UpgradeROI(u *catalog.Upgrade, active []*catalog.Project, res *catalog.Resources, horizon int) float64 {
	totalCost := u.Cost + u.MonthlyOperatingCost*float64(horizon)
	if totalCost <= 0 {
		return 0
	}

	totalBenefit := 0.0
	if u.ImpactsClimateSpace() {
		for period := 0; period < horizon; period++ {
			season := catalog.SeasonForPeriod(period)
			for _, p := range active {
				if !p.IsIndoor {
					continue
				}
				current := market.AdjustedRevenue(p, season, res)
				withUpgrade := current * u.SeasonalBenefit(season)
				totalBenefit += withUpgrade - current
			}
		}
	}

	return (totalBenefit - totalCost) / totalCost
}
