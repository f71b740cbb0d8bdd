package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BillTheMaker/life-optimizer-tools/internal/config"
	"github.com/BillTheMaker/life-optimizer-tools/internal/server"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/catalog"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/scoring"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/sim"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/validation"
)

// loadAndValidate loads the farm file and runs schema validation.
func loadAndValidate(projectPath string) (*catalog.File, *validation.Report, error) {
	farm, err := catalog.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading farm file: %w", err)
	}
	return farm, validation.ValidateSchema(farm), nil
}

func runValidate(projectPath string) error {
	farm, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	report.Merge(validation.ValidateAnalytical(farm))
	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runScore(projectPath string) error {
	farm, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("farm file has validation errors; fix before scoring")
	}

	printScores(farm)
	return nil
}

func runPlan(projectPath string, months int, asJSON bool) error {
	farm, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("farm file has validation errors")
	}

	if months <= 0 {
		cfg, err := config.Load("")
		if err != nil {
			return err
		}
		months = cfg.Planner.ProjectionMonths
	}

	planner, err := sim.New(farm)
	if err != nil {
		return err
	}
	result, runErr := planner.Run(months)
	if runErr != nil && result == nil {
		return runErr
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		printPlanReport(result)
	}

	if analytical := validation.ValidateAnalytical(farm); len(analytical.Warnings) > 0 {
		fmt.Println()
		printValidationReport(analytical)
	}

	if runErr != nil {
		return fmt.Errorf("projection aborted after %d of %d periods: %w",
			result.Ledger.Periods(), months, runErr)
	}
	return nil
}

func runServe(projectPath string, port int) error {
	if port <= 0 {
		cfg, err := config.Load("")
		if err != nil {
			return err
		}
		port = cfg.Server.Port
	}
	return server.New(projectPath, port).Start()
}

// printScores ranks every project against an empty selection and every
// upgrade against the full catalog, mirroring what the first simulated
// period sees.
func printScores(farm *catalog.File) {
	res := &farm.Resources

	fmt.Println("Project Scores (candidates against an empty homestead)")
	fmt.Println("======================================================")
	for _, id := range farm.Catalog.ProjectIDs() {
		p := farm.Catalog.Projects[id]
		s := scoring.Score(id, p, nil, res)
		fmt.Printf("  %-28s %8.3f\n", p.Name, s)
	}

	all := make([]*catalog.Project, 0, len(farm.Catalog.Projects))
	for _, id := range farm.Catalog.ProjectIDs() {
		all = append(all, farm.Catalog.Projects[id])
	}

	fmt.Println()
	fmt.Printf("Upgrade ROI (12-month horizon, full catalog active)\n")
	fmt.Println("===================================================")
	for _, id := range farm.Catalog.UpgradeIDs() {
		u := farm.Catalog.Upgrades[id]
		roi := scoring.UpgradeROI(u, all, res, 12)
		fmt.Printf("  %-28s %8.3f\n", u.Name, roi)
	}
}
