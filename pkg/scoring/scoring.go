// Package scoring ranks funding candidates and capital upgrades. The
// scores are greedy single-lookahead ranking signals, not a global
// optimization.
package scoring

import (
	"github.com/BillTheMaker/life-optimizer-tools/pkg/catalog"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/cost"
)

// Score weights. ROI dominates; synergy, automation fit, and
// scalability share the rest equally.
const (
	weightROI         = 0.4
	weightSynergy     = 0.2
	weightAutomation  = 0.2
	weightScalability = 0.2
)

// Selected is an already-funded project, identified by its catalog id.
type Selected struct {
	ID      string
	Project *catalog.Project
}

// Score ranks a candidate project against the already-selected set.
// Higher is better. The value is unbounded: a strong ROI can dominate,
// and a money-losing project scores negative.
func Score(id string, p *catalog.Project, selected []Selected, res *catalog.Resources) float64 {
	waterCost := cost.WaterTransport(p.WaterGallonsDaily, res)
	monthlyProfit := p.MonthlyRevenue + p.MonthlySavings - p.MonthlyCost - waterCost

	// Zero setup cost would divide by zero; treat the ROI term as 0
	// rather than propagating an arithmetic fault.
	roi := 0.0
	if p.SetupCost > 0 {
		roi = monthlyProfit / p.SetupCost
	}

	synergy := synergyCount(id, p, selected)

	automation := 0.0
	if res.HasAutomationSkills {
		automation = float64(p.AutomationPotential) / 10
	}

	scalability := float64(p.Scalability) / 10

	return roi*weightROI +
		float64(synergy)*weightSynergy +
		automation*weightAutomation +
		scalability*weightScalability
}

// synergyCount counts selected projects linked to the candidate in
// either direction. The link is symmetric: naming the partner on
// either side is enough.
func synergyCount(id string, p *catalog.Project, selected []Selected) int {
	n := 0
	for _, s := range selected {
		if s.Project.SynergizesWith(id) || p.SynergizesWith(s.ID) {
			n++
		}
	}
	return n
}
