package booking

import (
	"fmt"
	"strconv"
)

// flatPriceKey marks a service with one price regardless of duration.
const flatPriceKey = "0"

// servicePrices maps service slug -> duration (minutes, as string) -> price
// in INR. A single "0" key means a flat price for any requested duration.
var servicePrices = map[string]map[string]int{
	"call-consultation":        {"30": 1999, "45": 2499, "60": 2999},
	"video-consultation":       {"30": 2499, "45": 2999, "60": 3999},
	"premium-kundli":           {"0": 4999},
	"numerology-report":        {"0": 1499},
	"vastu-consultation":       {"30": 2499, "45": 2999, "60": 3499},
	"matchmaking":              {"0": 2499},
	"astrological-consulting":  {"30": 2499, "45": 2999, "60": 3499},
	"personal-growth-coaching": {"30": 3499, "45": 3999, "60": 4999},
	"therapeutic-healing":      {"45": 4499, "60": 4999, "75": 5999},
}

// PriceFor resolves the price for a service at the requested duration.
// Unknown slugs and unsupported durations yield coded pricing errors,
// distinct from scheduling conflicts.
func PriceFor(serviceSlug string, durationMinutes int) (int, error) {
	prices, ok := servicePrices[serviceSlug]
	if !ok {
		return 0, NewPricingError(CodeUnknownService, fmt.Sprintf("unknown service: %s", serviceSlug))
	}

	if price, ok := prices[strconv.Itoa(durationMinutes)]; ok {
		return price, nil
	}
	if flat, ok := prices[flatPriceKey]; ok {
		return flat, nil
	}
	return 0, NewPricingError(CodeUnsupportedDuration,
		fmt.Sprintf("duration %d min not available for this service", durationMinutes))
}
