package sim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BillTheMaker/life-optimizer-tools/pkg/catalog"
)

func testResources() catalog.Resources {
	return catalog.Resources{
		SolarPowerKW:          10,
		BatteryCapacityKWh:    28,
		DaytimePowerKWh:       35,
		WaterDistanceMiles:    20,
		TruckMPG:              15,
		AvailableMoneyMonthly: 500,
		InvestmentMonths:      12,
		WorkHoursDaily:        catalog.WorkHours{Min: 8, Max: 10},
		OutdoorSpaceAcres:     0.5,
		IndoorSpaceSqft:       200,
		HasAutomationSkills:   true,
		ReinvestmentRate:      0.7,
		TargetSavings:         25000,
		WaterCostFactor:       1.0,
	}
}

func flatSeasons() map[catalog.Season]float64 {
	return map[catalog.Season]float64{
		catalog.Spring: 1.0, catalog.Summer: 1.0, catalog.Fall: 1.0, catalog.Winter: 1.0,
	}
}

func testProject(setupCost float64, startup int) *catalog.Project {
	return &catalog.Project{
		Name:                     "Plant Cloning",
		SetupCost:                setupCost,
		MonthlyCost:              20,
		MonthlyRevenue:           100,
		SpaceRequiredSqft:        30,
		IsIndoor:                 true,
		DailyHours:               1,
		WaterGallonsDaily:        0,
		Power:                    catalog.PowerUsage{KWhDaily: 0.4, TimeOfUse: catalog.AnyTime},
		StartupTimeMonths:        startup,
		ProductType:              "plants",
		BaseSalesProbability:     1.0,
		SeasonalMultipliers:      flatSeasons(),
		ClimateControlledBenefit: 1.0,
	}
}

func farmWith(projects map[string]*catalog.Project, upgrades map[string]*catalog.Upgrade) *catalog.File {
	if upgrades == nil {
		upgrades = map[string]*catalog.Upgrade{}
	}
	return &catalog.File{
		Resources: testResources(),
		Catalog:   catalog.Catalog{Projects: projects, Upgrades: upgrades},
	}
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	farm := farmWith(map[string]*catalog.Project{"p": testProject(100, 0)}, nil)
	farm.Resources.IndoorSpaceSqft = -1

	_, err := New(farm)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indoor_space_sqft")
}

func TestRunRejectsNonPositiveHorizon(t *testing.T) {
	planner, err := New(farmWith(map[string]*catalog.Project{"p": testProject(100, 0)}, nil))
	require.NoError(t, err)

	_, err = planner.Run(0)
	require.Error(t, err)
}

func TestRunTraceLengthMatchesHorizon(t *testing.T) {
	planner, err := New(farmWith(map[string]*catalog.Project{"p": testProject(100, 1)}, nil))
	require.NoError(t, err)

	result, err := planner.Run(12)
	require.NoError(t, err)

	assert.Equal(t, 12, result.Ledger.Periods())
	assert.Len(t, result.Ledger.Profits, 12)
	assert.Len(t, result.Ledger.Savings, 12)
	assert.Len(t, result.Ledger.InfraSpend, 12)
}

func TestRunIsDeterministic(t *testing.T) {
	farm := farmWith(map[string]*catalog.Project{
		"plant_cloning": testProject(300, 2),
		"microgreens": {
			Name: "Microgreens", SetupCost: 150, MonthlyCost: 25, MonthlyRevenue: 250,
			SpaceRequiredSqft: 25, IsIndoor: true, DailyHours: 0.75, WaterGallonsDaily: 3,
			Power:             catalog.PowerUsage{KWhDaily: 2, TimeOfUse: catalog.DaytimeOnly},
			StartupTimeMonths: 1, ProductType: "plants", BaseSalesProbability: 0.75,
			SeasonalMultipliers: flatSeasons(), ClimateControlledBenefit: 1.15,
			SynergyProjects: []string{"plant_cloning"},
		},
	}, map[string]*catalog.Upgrade{
		"greenhouse": {
			Name: "Greenhouse Construction", Cost: 5000, MonthlyOperatingCost: 100,
			ResourceImpacts: map[string]float64{catalog.ImpactClimateControlledSqft: 500},
			SeasonalBenefits: map[catalog.Season]float64{
				catalog.Spring: 1.2, catalog.Summer: 1.0, catalog.Fall: 1.3, catalog.Winter: 1.5,
			},
		},
	})

	planner, err := New(farm)
	require.NoError(t, err)

	first, err := planner.Run(24)
	require.NoError(t, err)
	second, err := planner.Run(24)
	require.NoError(t, err)

	// Period-by-period traces are identical; only the run id differs.
	assert.Equal(t, first.Ledger, second.Ledger)
	assert.NotEqual(t, first.RunID, second.RunID)

	require.Equal(t, len(first.Active), len(second.Active))
	for i := range first.Active {
		assert.Equal(t, first.Active[i].ID, second.Active[i].ID)
		assert.Equal(t, first.Active[i].Stage, second.Active[i].Stage)
	}
}

func TestZeroStartupEarnsRevenueInPeriodZero(t *testing.T) {
	planner, err := New(farmWith(map[string]*catalog.Project{"p": testProject(100, 0)}, nil))
	require.NoError(t, err)

	result, err := planner.Run(3)
	require.NoError(t, err)

	rec := result.Ledger.Records[0]
	assert.True(t, rec.Revenue.IsPositive(), "period 0 revenue should be nonzero, got %s", rec.Revenue)
	require.Len(t, result.Active, 1)
	assert.Equal(t, StageProducing, result.Active[0].Stage)
}

func TestStartupCountdownDelaysRevenue(t *testing.T) {
	planner, err := New(farmWith(map[string]*catalog.Project{"p": testProject(100, 2)}, nil))
	require.NoError(t, err)

	result, err := planner.Run(4)
	require.NoError(t, err)

	recs := result.Ledger.Records
	assert.True(t, recs[0].Revenue.IsZero(), "funded in period 0, still ramping")
	assert.True(t, recs[1].Revenue.IsZero(), "one month of ramp-up left")
	assert.True(t, recs[2].Revenue.IsPositive(), "production reached after 2 months")

	// Costs accrue from activation, not from production.
	assert.True(t, recs[0].Costs.IsPositive())
}

func TestPartialFundingAccumulatesAcrossPeriods(t *testing.T) {
	farm := farmWith(map[string]*catalog.Project{"barn": testProject(10000, 1)}, nil)
	farm.Resources.AvailableMoneyMonthly = 500
	farm.Resources.InvestmentMonths = 12 // 6000 initial budget, short of 10000

	planner, err := New(farm)
	require.NoError(t, err)

	result, err := planner.Run(2)
	require.NoError(t, err)

	require.Len(t, result.Active, 0)
	rec := result.Ledger.Records[0]
	require.NotEmpty(t, rec.Actions)
	assert.Contains(t, rec.Actions[0], "Allocated")
	assert.Contains(t, rec.Actions[0], "Plant Cloning")
}

func TestAtMostOneUpgradePerPeriod(t *testing.T) {
	upgrades := map[string]*catalog.Upgrade{
		"hoop_house": {
			Name: "Hoop House", Cost: 100,
			ResourceImpacts: map[string]float64{catalog.ImpactIndoorSpaceSqft: 300},
		},
		"shed": {
			Name: "Storage Shed", Cost: 100,
			ResourceImpacts: map[string]float64{catalog.ImpactIndoorSpaceSqft: 100},
		},
	}
	farm := farmWith(map[string]*catalog.Project{"p": testProject(100, 0)}, upgrades)

	planner, err := New(farm)
	require.NoError(t, err)

	result, err := planner.Run(6)
	require.NoError(t, err)

	perPeriod := map[int]int{}
	for _, a := range result.Applied {
		perPeriod[a.Period]++
	}
	for period, n := range perPeriod {
		assert.LessOrEqual(t, n, 1, "period %d applied %d upgrades", period, n)
	}
	assert.LessOrEqual(t, len(result.Applied), 6)

	// Both were affordable from the start, so they land in the first
	// two periods, one each.
	require.Len(t, result.Applied, 2)
	assert.Equal(t, 0, result.Applied[0].Period)
	assert.Equal(t, 1, result.Applied[1].Period)
}

func TestInfraSpendSeriesNonDecreasing(t *testing.T) {
	upgrades := map[string]*catalog.Upgrade{
		"hoop_house": {
			Name: "Hoop House", Cost: 2000,
			ResourceImpacts: map[string]float64{catalog.ImpactIndoorSpaceSqft: 300},
		},
	}
	planner, err := New(farmWith(map[string]*catalog.Project{"p": testProject(100, 0)}, upgrades))
	require.NoError(t, err)

	result, err := planner.Run(12)
	require.NoError(t, err)

	for i := 1; i < len(result.Ledger.InfraSpend); i++ {
		prev, cur := result.Ledger.InfraSpend[i-1], result.Ledger.InfraSpend[i]
		assert.False(t, cur.LessThan(prev), "infra spend decreased at period %d", i)
	}
}

func TestWellUpgradeZeroesWaterCostPermanently(t *testing.T) {
	p := testProject(100, 0)
	p.WaterGallonsDaily = 10

	farm := farmWith(map[string]*catalog.Project{"ducks": p}, map[string]*catalog.Upgrade{
		"well": {
			Name: "Water Well Installation", Cost: 5000, MonthlyOperatingCost: 50,
			ResourceImpacts: map[string]float64{catalog.ImpactWaterCost: -1.0},
		},
	})
	farm.Resources.AvailableMoneyMonthly = 1000 // 12000 budget, well affordable at once

	planner, err := New(farm)
	require.NoError(t, err)

	result, err := planner.Run(6)
	require.NoError(t, err)

	require.Len(t, result.Applied, 1)
	wellPeriod := result.Applied[0].Period

	recs := result.Ledger.Records
	// The upgrade lands after the period's financials, so its own
	// period still pays for hauling; every later period does not.
	assert.True(t, recs[wellPeriod].WaterCost.IsPositive())
	for i := wellPeriod + 1; i < len(recs); i++ {
		assert.True(t, recs[i].WaterCost.IsZero(), "period %d water cost = %s", i, recs[i].WaterCost)
	}
	assert.Equal(t, 0.0, result.Resources.WaterCostFactor)
}

func TestUpgradeMutatesResourcesPermanently(t *testing.T) {
	farm := farmWith(map[string]*catalog.Project{"p": testProject(100, 0)}, map[string]*catalog.Upgrade{
		"greenhouse": {
			Name: "Greenhouse Construction", Cost: 5000, MonthlyOperatingCost: 100,
			ResourceImpacts: map[string]float64{
				catalog.ImpactClimateControlledSqft: 500,
				catalog.ImpactIndoorSpaceSqft:       500,
			},
			SeasonalBenefits: map[catalog.Season]float64{
				catalog.Spring: 1.2, catalog.Summer: 1.0, catalog.Fall: 1.3, catalog.Winter: 1.5,
			},
		},
	})
	farm.Resources.AvailableMoneyMonthly = 1000

	planner, err := New(farm)
	require.NoError(t, err)

	result, err := planner.Run(6)
	require.NoError(t, err)

	require.Len(t, result.Applied, 1)
	assert.Equal(t, 500.0, result.Resources.ClimateControlledSqft)
	assert.Equal(t, 700.0, result.Resources.IndoorSpaceSqft)

	// The planner's own base snapshot is untouched: a fresh run starts
	// from scratch.
	again, err := planner.Run(6)
	require.NoError(t, err)
	assert.Equal(t, 500.0, again.Resources.ClimateControlledSqft)
}

func TestPowerOverloadIsAdvisory(t *testing.T) {
	p := testProject(100, 0)
	p.Power = catalog.PowerUsage{KWhDaily: 40, TimeOfUse: catalog.AnyTime}

	farm := farmWith(map[string]*catalog.Project{"freezer_farm": p}, nil)
	// Battery 28 kWh: usable 22.4, demand 40. Infeasible but not fatal.
	planner, err := New(farm)
	require.NoError(t, err)

	result, err := planner.Run(2)
	require.NoError(t, err)

	require.Len(t, result.Active, 1, "activation must not be blocked")
	joined := strings.Join(result.Ledger.Records[0].Actions, "\n")
	assert.Contains(t, joined, "Power budget exceeded")
}

func TestSavingsSplitFollowsReinvestmentRate(t *testing.T) {
	// One producing project, no upgrades: period pool is fully
	// determined, and the savings split must follow the rate.
	p := testProject(100, 0)
	farm := farmWith(map[string]*catalog.Project{"p": p}, nil)
	farm.Resources.ReinvestmentRate = 0.0 // bank everything

	planner, err := New(farm)
	require.NoError(t, err)

	result, err := planner.Run(2)
	require.NoError(t, err)

	recs := result.Ledger.Records
	// With nothing reinvested, period 1's pool is its profit alone.
	// profit = 100 - 20 = 80; savings grow by exactly the pool.
	expected := recs[0].Savings.Add(recs[1].Profit)
	assert.True(t, expected.Equal(recs[1].Savings),
		"savings = %s, want %s", recs[1].Savings, expected)
}
