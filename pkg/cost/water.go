// Package cost models the recurring costs a project imposes beyond its
// flat monthly cost. Today that is water hauling: projects without a
// well draw water trucked in from a fill station.
package cost

import "github.com/BillTheMaker/life-optimizer-tools/pkg/catalog"

// WaterTransport computes the monthly cost of hauling the given daily
// water demand, from round-trip distance and truck fuel economy. The
// snapshot's water cost factor scales the result, so a well upgrade
// (factor 0) eliminates the cost entirely. Zero gallons costs zero.
func WaterTransport(gallonsDaily float64, res *catalog.Resources) float64 {
	if gallonsDaily <= 0 || res.TruckMPG <= 0 {
		return 0
	}
	tripsPerMonth := gallonsDaily * DaysPerMonth / TankGallons
	milesPerMonth := tripsPerMonth * res.WaterDistanceMiles * 2
	costPerMile := FuelPricePerGallon / res.TruckMPG
	return milesPerMonth * costPerMile * res.WaterCostFactor
}
