package sim

import (
	"github.com/shopspring/decimal"

	"github.com/BillTheMaker/life-optimizer-tools/pkg/catalog"
)

// PeriodRecord is one period's entry in the financial trace. Money
// fields are recorded as cent-rounded decimals; the trace is the
// artifact of record for "what happened" in a run.
type PeriodRecord struct {
	Period  int            `json:"period"`
	Season  catalog.Season `json:"season"`
	Actions []string       `json:"actions"`

	Revenue   decimal.Decimal `json:"revenue"`
	Costs     decimal.Decimal `json:"costs"`
	WaterCost decimal.Decimal `json:"water_cost"`
	Profit    decimal.Decimal `json:"profit"`
	Savings   decimal.Decimal `json:"savings"`

	LaborHoursDaily float64 `json:"labor_hours_daily"`
	IndoorSqftUsed  float64 `json:"indoor_sqft_used"`
	OutdoorSqftUsed float64 `json:"outdoor_sqft_used"`
}

// Ledger is the append-only financial projection: per-period records
// plus parallel series for profit, accumulated savings, and cumulative
// infrastructure spend. Read-only once a run ends.
type Ledger struct {
	Records    []PeriodRecord    `json:"records"`
	Profits    []decimal.Decimal `json:"profits"`
	Savings    []decimal.Decimal `json:"savings"`
	InfraSpend []decimal.Decimal `json:"infra_spend"`
}

// NewLedger creates a ledger with capacity for the given horizon.
func NewLedger(periods int) *Ledger {
	return &Ledger{
		Records:    make([]PeriodRecord, 0, periods),
		Profits:    make([]decimal.Decimal, 0, periods),
		Savings:    make([]decimal.Decimal, 0, periods),
		InfraSpend: make([]decimal.Decimal, 0, periods),
	}
}

// Append adds a period record and extends the parallel series.
func (l *Ledger) Append(rec PeriodRecord, infraSpend decimal.Decimal) {
	l.Records = append(l.Records, rec)
	l.Profits = append(l.Profits, rec.Profit)
	l.Savings = append(l.Savings, rec.Savings)
	l.InfraSpend = append(l.InfraSpend, infraSpend)
}

// Periods returns the number of recorded periods.
func (l *Ledger) Periods() int {
	return len(l.Records)
}

// FinalSavings returns the last accumulated-savings entry, or zero for
// an empty ledger.
func (l *Ledger) FinalSavings() decimal.Decimal {
	if len(l.Savings) == 0 {
		return decimal.Zero
	}
	return l.Savings[len(l.Savings)-1]
}

// TotalInfraSpend returns the last cumulative infrastructure spend
// entry, or zero for an empty ledger.
func (l *Ledger) TotalInfraSpend() decimal.Decimal {
	if len(l.InfraSpend) == 0 {
		return decimal.Zero
	}
	return l.InfraSpend[len(l.InfraSpend)-1]
}

// money converts a computed float amount to its cent-rounded decimal
// representation for the trace.
func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
