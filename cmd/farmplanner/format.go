package main

import (
	"fmt"

	"github.com/BillTheMaker/life-optimizer-tools/pkg/catalog"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/market"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/sim"
	"github.com/BillTheMaker/life-optimizer-tools/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.FieldPath != "" {
				fmt.Printf("    -> %s = %v\n", e.FieldPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.FieldPath != "" {
				fmt.Printf("    -> %s = %v\n", w.FieldPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

// printPlanReport renders the projection trace: financial summary,
// monthly breakdown, and per-project seasonal revenue.
func printPlanReport(result *sim.Result) {
	ledger := result.Ledger

	fmt.Println("Homestead Investment Plan")
	fmt.Println("=========================")
	fmt.Printf("Run: %s\n\n", result.RunID)

	fmt.Println("Financial Projection Summary")
	fmt.Println("----------------------------")
	fmt.Printf("  Total months projected:          %d\n", ledger.Periods())
	fmt.Printf("  Final accumulated savings:       $%s\n", ledger.FinalSavings().StringFixed(2))
	fmt.Printf("  Total infrastructure investment: $%s\n", ledger.TotalInfraSpend().StringFixed(2))
	if target := result.Resources.TargetSavings; target > 0 {
		progress := ledger.FinalSavings().InexactFloat64() / target * 100
		fmt.Printf("  Progress toward savings target:  %.1f%%\n", progress)
	}
	fmt.Println()

	fmt.Println("Monthly Breakdown")
	fmt.Println("-----------------")
	for _, rec := range ledger.Records {
		fmt.Printf("Month %d (%s):\n", rec.Period+1, rec.Season)
		for _, action := range rec.Actions {
			fmt.Printf("  - %s\n", action)
		}
		fmt.Printf("  Profit:  $%s\n", rec.Profit.StringFixed(2))
		fmt.Printf("  Savings: $%s\n\n", rec.Savings.StringFixed(2))
	}

	if len(result.Active) == 0 {
		return
	}

	fmt.Println("Project Performance by Season")
	fmt.Println("-----------------------------")
	for _, ps := range result.Active {
		fmt.Printf("\n%s (%s)\n", ps.Def.Name, ps.Stage)
		for _, season := range catalog.Seasons() {
			revenue := market.AdjustedRevenue(ps.Def, season, result.Resources)
			fmt.Printf("   %-7s $%.2f/month\n", season+":", revenue)
		}
	}
}
