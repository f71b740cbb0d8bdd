package cost

// Water hauling model constants.
const (
	// TankGallons is the capacity of the water tanker towed per trip.
	TankGallons = 100.0

	// DaysPerMonth is the simulation's fixed month length.
	DaysPerMonth = 30.0

	// FuelPricePerGallon is the assumed fuel price for hauling trips.
	FuelPricePerGallon = 3.50
)
