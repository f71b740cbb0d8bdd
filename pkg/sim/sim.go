// Package sim runs the multi-period projection loop: a deterministic,
// single-pass forward simulation that funds projects greedily, applies
// at most one capital upgrade per period, and accumulates profit and
// savings. There is no backtracking and no global search.
package sim

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/BillTheMaker/life-optimizer-tools/pkg/catalog"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/cost"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/market"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/power"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/scoring"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/validation"
)

// Planner owns a validated farm file and runs projections against it.
// Each Run operates on a fresh clone of the resource snapshot, so runs
// are independent and reproducible.
type Planner struct {
	base *catalog.Resources
	cat  *catalog.Catalog
}

// New validates the farm file and constructs a planner. Configuration
// errors (negative space, bad rates, unknown upgrade impacts) are
// rejected here rather than surfacing mid-run.
func New(f *catalog.File) (*Planner, error) {
	if err := validation.ValidateSchema(f).Err(); err != nil {
		return nil, err
	}
	return &Planner{base: f.Resources.Clone(), cat: &f.Catalog}, nil
}

// Result is everything a run produces: the final active projects, the
// upgrades applied, the financial trace, and the resource snapshot as
// mutated by upgrades.
type Result struct {
	RunID     uuid.UUID          `json:"run_id"`
	Months    int                `json:"months"`
	Active    []*ProjectState    `json:"active_projects"`
	Applied   []AppliedUpgrade   `json:"applied_upgrades"`
	Ledger    *Ledger            `json:"ledger"`
	Resources *catalog.Resources `json:"resources"`
}

// Run advances the projection for the given number of periods and
// returns the trace. A failure mid-run returns the partial result
// alongside the error, wrapped with the failing period index.
func (pl *Planner) Run(months int) (*Result, error) {
	if months <= 0 {
		return nil, fmt.Errorf("projection months must be greater than 0 (got %d)", months)
	}

	res := pl.base.Clone()
	result := &Result{
		RunID:     uuid.New(),
		Months:    months,
		Applied:   []AppliedUpgrade{},
		Ledger:    NewLedger(months),
		Resources: res,
	}

	states := make(map[string]*ProjectState, len(pl.cat.Projects))
	for id, def := range pl.cat.Projects {
		states[id] = &ProjectState{ID: id, Def: def, Stage: StageUnfunded}
	}

	// Order of activation; drives every per-period iteration so the
	// run is deterministic.
	var activeOrder []string

	budget := res.AvailableMoneyMonthly * float64(res.InvestmentMonths)
	savings := 0.0
	infraSpend := 0.0

	for period := 0; period < months; period++ {
		season := catalog.SeasonForPeriod(period)
		rec := PeriodRecord{Period: period, Season: season, Actions: []string{}}

		// Lifecycle advance: ramping projects count down to production.
		for _, id := range activeOrder {
			st := states[id]
			if st.Stage != StageRamping {
				continue
			}
			st.MonthsToProduction--
			if st.MonthsToProduction <= 0 {
				st.MonthsToProduction = 0
				st.Stage = StageProducing
			}
		}

		// Funding pass: rank the not-yet-active candidates against the
		// current active set and allocate budget greedily, partial
		// allocations persisting across periods.
		activeOrder = pl.fundProjects(states, activeOrder, &budget, res, &rec)

		activeDefs := make([]*catalog.Project, len(activeOrder))
		for i, id := range activeOrder {
			activeDefs[i] = states[id].Def
		}

		// Power feasibility is advisory: record the violation, keep going.
		if len(activeDefs) > 0 {
			if d := power.DemandFor(activeDefs); !d.FeasibleWith(res) {
				rec.Actions = append(rec.Actions, fmt.Sprintf(
					"Power budget exceeded: daytime %.1f/%.1f kWh, battery %.1f/%.1f kWh usable",
					d.DaytimeKWh, res.DaytimePowerKWh,
					d.BatteryKWh, res.BatteryCapacityKWh*(1-power.BatteryDODFloor)))
			}
		}

		// Period financials over the active set. Ramping projects cost
		// money; only producing ones earn.
		revenue, costs, water := 0.0, 0.0, 0.0
		for _, id := range activeOrder {
			st := states[id]
			if st.Stage == StageProducing {
				revenue += market.AdjustedRevenue(st.Def, season, res)
			}
			costs += st.Def.MonthlyCost
			water += cost.WaterTransport(st.Def.WaterGallonsDaily, res)

			rec.LaborHoursDaily += st.Def.DailyHours
			if st.Def.IsIndoor {
				rec.IndoorSqftUsed += st.Def.SpaceRequiredSqft
			} else {
				rec.OutdoorSqftUsed += st.Def.SpaceRequiredSqft
			}
		}
		profit := revenue - costs - water

		// Upgrade selection: at most one per period, best remaining-
		// horizon ROI among the affordable ones.
		pool := profit + budget
		if id, u := pl.bestUpgrade(result.Applied, activeDefs, res, pool, months-period); u != nil {
			if err := applyImpacts(res, u); err != nil {
				pl.finish(result, states, activeOrder)
				return result, fmt.Errorf("period %d: applying upgrade %q: %w", period, id, err)
			}
			result.Applied = append(result.Applied, AppliedUpgrade{ID: id, Def: u, Period: period})
			pool -= u.Cost
			infraSpend += u.Cost
			rec.Actions = append(rec.Actions, fmt.Sprintf("Implemented upgrade: %s", u.Name))
		}

		// Split the pool: the reinvested fraction becomes next period's
		// budget, the rest is banked as durable savings.
		savings += pool * (1 - res.ReinvestmentRate)
		budget = pool * res.ReinvestmentRate

		rec.Revenue = money(revenue)
		rec.Costs = money(costs)
		rec.WaterCost = money(water)
		rec.Profit = money(profit)
		rec.Savings = money(savings)
		result.Ledger.Append(rec, money(infraSpend))
	}

	pl.finish(result, states, activeOrder)
	return result, nil
}

// fundProjects allocates available budget to not-yet-active projects
// in score order and returns the updated activation order.
func (pl *Planner) fundProjects(states map[string]*ProjectState, activeOrder []string, budget *float64, res *catalog.Resources, rec *PeriodRecord) []string {
	selected := make([]scoring.Selected, len(activeOrder))
	for i, id := range activeOrder {
		selected[i] = scoring.Selected{ID: id, Project: states[id].Def}
	}

	type candidate struct {
		id    string
		score float64
	}
	var candidates []candidate
	for _, id := range pl.cat.ProjectIDs() {
		st := states[id]
		if st.Active() {
			continue
		}
		candidates = append(candidates, candidate{
			id:    id,
			score: scoring.Score(id, st.Def, selected, res),
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].id < candidates[j].id
	})

	for _, c := range candidates {
		st := states[c.id]
		remaining := st.Def.SetupCost - st.FundedSoFar

		alloc := math.Min(remaining, *budget)
		if alloc > 0 {
			st.FundedSoFar += alloc
			*budget -= alloc
			st.Stage = StageFunding
		}

		if st.FundedSoFar >= st.Def.SetupCost {
			st.MonthsToProduction = st.Def.StartupTimeMonths
			if st.MonthsToProduction == 0 {
				// Zero startup time earns revenue this same period.
				st.Stage = StageProducing
			} else {
				st.Stage = StageRamping
			}
			activeOrder = append(activeOrder, c.id)
			rec.Actions = append(rec.Actions, fmt.Sprintf("Funded %s", st.Def.Name))
		} else if alloc > 0 {
			rec.Actions = append(rec.Actions, fmt.Sprintf(
				"Allocated $%.2f toward %s ($%.2f remaining)",
				alloc, st.Def.Name, st.Def.SetupCost-st.FundedSoFar))
		}
	}
	return activeOrder
}

// bestUpgrade picks the affordable not-yet-applied upgrade with the
// highest projected ROI over the remaining horizon, or nil. Ties keep
// the first in identifier order.
func (pl *Planner) bestUpgrade(applied []AppliedUpgrade, activeDefs []*catalog.Project, res *catalog.Resources, pool float64, horizon int) (string, *catalog.Upgrade) {
	appliedSet := make(map[string]bool, len(applied))
	for _, a := range applied {
		appliedSet[a.ID] = true
	}

	bestID := ""
	var best *catalog.Upgrade
	bestROI := 0.0
	for _, id := range pl.cat.UpgradeIDs() {
		if appliedSet[id] {
			continue
		}
		u := pl.cat.Upgrades[id]
		if u.Cost > pool {
			continue
		}
		roi := scoring.UpgradeROI(u, activeDefs, res, horizon)
		if best == nil || roi > bestROI {
			bestID, best, bestROI = id, u, roi
		}
	}
	return bestID, best
}

// applyImpacts permanently mutates the snapshot per the upgrade's
// impact map. Space and power fields never drop below zero.
func applyImpacts(res *catalog.Resources, u *catalog.Upgrade) error {
	keys := make([]string, 0, len(u.ResourceImpacts))
	for k := range u.ResourceImpacts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		delta := u.ResourceImpacts[key]
		switch key {
		case catalog.ImpactClimateControlledSqft:
			res.ClimateControlledSqft = clampFloor(res.ClimateControlledSqft + delta)
		case catalog.ImpactIndoorSpaceSqft:
			res.IndoorSpaceSqft = clampFloor(res.IndoorSpaceSqft + delta)
		case catalog.ImpactOutdoorSpaceAcres:
			res.OutdoorSpaceAcres = clampFloor(res.OutdoorSpaceAcres + delta)
		case catalog.ImpactDaytimePowerKWh:
			res.DaytimePowerKWh = clampFloor(res.DaytimePowerKWh + delta)
		case catalog.ImpactBatteryCapacityKWh:
			res.BatteryCapacityKWh = clampFloor(res.BatteryCapacityKWh + delta)
		case catalog.ImpactSolarPowerKW:
			res.SolarPowerKW = clampFloor(res.SolarPowerKW + delta)
		case catalog.ImpactWaterDistanceMiles:
			res.WaterDistanceMiles = clampFloor(res.WaterDistanceMiles + delta)
		case catalog.ImpactWaterCost:
			res.WaterCostFactor = clampFloor(res.WaterCostFactor + delta)
		default:
			return fmt.Errorf("unknown resource impact %q", key)
		}
	}
	return nil
}

func clampFloor(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// finish collects the active projects, in activation order, into the
// result.
func (pl *Planner) finish(result *Result, states map[string]*ProjectState, activeOrder []string) {
	result.Active = make([]*ProjectState, len(activeOrder))
	for i, id := range activeOrder {
		result.Active[i] = states[id]
	}
}
