package booking

import (
	"math"
	"time"
)

// Nights returns the chargeable nights between checkin and checkout:
// max(1, calendar days between). Missing dates charge a single
// night-equivalent.
func Nights(checkin, checkout *time.Time) int {
	if checkin == nil || checkout == nil {
		return 1
	}
	days := int(checkout.Sub(*checkin).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// ComputeTotal is the pricing rule for a stay:
// room price per night * nights + flat service charges + parking fee,
// rounded to currency precision. Pure and deterministic.
func ComputeTotal(pricePerNight float64, nights int, serviceCharges []float64, parkingFee float64) float64 {
	total := pricePerNight*float64(nights) + parkingFee
	for _, c := range serviceCharges {
		total += c
	}
	return math.Round(total*100) / 100
}
