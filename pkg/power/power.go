// Package power checks a candidate project set against the homestead's
// power budgets. Daytime-only loads run off solar/grid during peak sun;
// night and any-time loads must fit in the battery.
package power

import "github.com/BillTheMaker/life-optimizer-tools/pkg/catalog"

// BatteryDODFloor is the fraction of nominal battery capacity never
// drawn down, preserving battery lifespan. Only 1-BatteryDODFloor of
// capacity is usable.
const BatteryDODFloor = 0.20

// Demand is a project set's daily power draw, split by budget.
type Demand struct {
	DaytimeKWh float64 `json:"daytime_kwh"`
	BatteryKWh float64 `json:"battery_kwh"`
}

// DemandFor totals the daily draw of the given projects. Night-only
// and any-time loads both count against the battery.
func DemandFor(projects []*catalog.Project) Demand {
	var d Demand
	for _, p := range projects {
		switch p.Power.TimeOfUse {
		case catalog.DaytimeOnly:
			d.DaytimeKWh += p.Power.KWhDaily
		case catalog.NightOnly, catalog.AnyTime:
			d.BatteryKWh += p.Power.KWhDaily
		}
	}
	return d
}

// FeasibleWith reports whether the demand fits the snapshot's daytime
// budget and the usable portion of its battery. The check is advisory:
// callers decide whether to block on failure.
func (d Demand) FeasibleWith(res *catalog.Resources) bool {
	return d.DaytimeKWh <= res.DaytimePowerKWh &&
		d.BatteryKWh <= res.BatteryCapacityKWh*(1-BatteryDODFloor)
}

// Feasible is shorthand for DemandFor(projects).FeasibleWith(res).
func Feasible(projects []*catalog.Project, res *catalog.Resources) bool {
	return DemandFor(projects).FeasibleWith(res)
}
