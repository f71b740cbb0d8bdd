package validation

import (
	"fmt"

	"github.com/BillTheMaker/life-optimizer-tools/pkg/catalog"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/power"
)

// SqftPerAcre converts the outdoor acreage field to square feet for
// comparison against project space requirements.
const SqftPerAcre = 43560.0

// ValidateAnalytical checks whether the catalog, taken as a whole,
// could ever fit the resource snapshot. Findings are warnings: the
// simulation funds greedily and may never activate everything, so an
// oversubscribed catalog is suspicious but not fatal.
func ValidateAnalytical(f *catalog.File) *Report {
	r := NewReport()
	res := &f.Resources

	totalHours := 0.0
	indoorSqft := 0.0
	outdoorSqft := 0.0
	all := make([]*catalog.Project, 0, len(f.Catalog.Projects))
	for _, id := range f.Catalog.ProjectIDs() {
		p := f.Catalog.Projects[id]
		all = append(all, p)
		totalHours += p.DailyHours
		if p.IsIndoor {
			indoorSqft += p.SpaceRequiredSqft
		} else {
			outdoorSqft += p.SpaceRequiredSqft
		}
	}

	if totalHours > res.WorkHoursDaily.Max {
		r.AddWarning(Result{
			Level:       LevelAnalytical,
			Message:     fmt.Sprintf("catalog demands %.1f labor hours/day; only %.1f available", totalHours, res.WorkHoursDaily.Max),
			FieldPath:   "projects",
			ActualValue: totalHours,
			Expected:    fmt.Sprintf("<= %.1f", res.WorkHoursDaily.Max),
		})
	}

	if indoorSqft > res.IndoorSpaceSqft {
		r.AddWarning(Result{
			Level:       LevelAnalytical,
			Message:     fmt.Sprintf("catalog demands %.0f sqft indoor space; only %.0f available", indoorSqft, res.IndoorSpaceSqft),
			FieldPath:   "projects",
			ActualValue: indoorSqft,
			Expected:    fmt.Sprintf("<= %.0f", res.IndoorSpaceSqft),
		})
	}

	if outdoorAvail := res.OutdoorSpaceAcres * SqftPerAcre; outdoorSqft > outdoorAvail {
		r.AddWarning(Result{
			Level:       LevelAnalytical,
			Message:     fmt.Sprintf("catalog demands %.0f sqft outdoor space; only %.0f available", outdoorSqft, outdoorAvail),
			FieldPath:   "projects",
			ActualValue: outdoorSqft,
			Expected:    fmt.Sprintf("<= %.0f", outdoorAvail),
		})
	}

	if len(all) > 0 && !power.Feasible(all, res) {
		d := power.DemandFor(all)
		r.AddWarning(Result{
			Level:   LevelAnalytical,
			Message: fmt.Sprintf("full catalog exceeds the power budget (daytime %.1f/%.1f kWh, battery %.1f/%.1f kWh usable)", d.DaytimeKWh, res.DaytimePowerKWh, d.BatteryKWh, res.BatteryCapacityKWh*(1-power.BatteryDODFloor)),
			FieldPath: "projects",
			Suggestions: []string{
				"expand daytime or battery capacity with an upgrade",
				"shift any_time loads to daytime_only where possible",
			},
		})
	}

	return r
}
