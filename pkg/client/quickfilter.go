package client

// QuickFilter is a preset applied to cars already fetched
type QuickFilter struct {
	Label string
	Match func(Car) bool
}

var (
	Affordable = QuickFilter{"Affordable (< €40k)", func(c Car) bool { return c.PriceEuro < 40000 }}
	LongRange  = QuickFilter{"Long Range (> 400km)", func(c Car) bool { return c.RangeKm > 400 }}
	Fast       = QuickFilter{"Fast (0-100 < 5s)", func(c Car) bool { return c.AccelSec < 5 }}
	BestValue  = QuickFilter{"Best Value (< €50k, > 350km)", func(c Car) bool { return c.PriceEuro < 50000 && c.RangeKm > 350 }}
)

// QuickFilters lists the presets in display order.
func QuickFilters() []QuickFilter {
	return []QuickFilter{Affordable, LongRange, Fast, BestValue}
}

// Apply returns the cars matched by f, keeping their order.
func (f QuickFilter) Apply(cars []Car) []Car {
	out := make([]Car, 0, len(cars))
	for _, c := range cars {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}
