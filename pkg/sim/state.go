package sim

import "github.com/BillTheMaker/life-optimizer-tools/pkg/catalog"

// Stage is a project instance's lifecycle stage within a run.
//
//	Unfunded  -> no money allocated yet
//	Funding   -> partially funded across one or more periods
//	Ramping   -> fully funded, counting down to production
//	Producing -> contributing revenue
//
// Active projects (Ramping or Producing) incur monthly and water costs;
// only Producing projects earn revenue.
type Stage string

const (
	StageUnfunded  Stage = "unfunded"
	StageFunding   Stage = "funding"
	StageRamping   Stage = "ramping"
	StageProducing Stage = "producing"
)

// ProjectState is the per-run mutable state of one catalog project.
// The definition itself is never mutated.
type ProjectState struct {
	ID                 string           `json:"id"`
	Def                *catalog.Project `json:"definition"`
	Stage              Stage            `json:"stage"`
	FundedSoFar        float64          `json:"funded_so_far"`
	MonthsToProduction int              `json:"months_to_production"`
}

// Active reports whether the project has exited its funding phase and
// participates in resource and financial calculations.
func (ps *ProjectState) Active() bool {
	return ps.Stage == StageRamping || ps.Stage == StageProducing
}

// AppliedUpgrade records a capital upgrade purchase and the period it
// happened in.
type AppliedUpgrade struct {
	ID     string           `json:"id"`
	Def    *catalog.Upgrade `json:"definition"`
	Period int              `json:"period"`
}
