package client

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrNoCars is returned when a comparison is asked for no cars.
var ErrNoCars = errors.New("no cars selected for comparison")

// Metric names a highlighted comparison row
type Metric string

const (
	MetricAccel      Metric = "accel_sec"
	MetricTopSpeed   Metric = "top_speed_kmh"
	MetricRange      Metric = "range_km"
	MetricEfficiency Metric = "efficiency_whkm"
	MetricFastCharge Metric = "fast_charge_kmh"
)

type metricRule struct {
	value  func(Car) (float64, bool)
	better func(a, b float64) bool
}

func lower(a, b float64) bool { return a < b }

func higher(a, b float64) bool { return a > b }

var metricRules = map[Metric]metricRule{
	MetricAccel:      {func(c Car) (float64, bool) { return c.AccelSec, true }, lower},
	MetricTopSpeed:   {func(c Car) (float64, bool) { return float64(c.TopSpeedKmh), true }, higher},
	MetricRange:      {func(c Car) (float64, bool) { return float64(c.RangeKm), true }, higher},
	MetricEfficiency: {func(c Car) (float64, bool) { return float64(c.EfficiencyWhKm), true }, lower},
	MetricFastCharge: {func(c Car) (float64, bool) {
		if c.FastChargeKmh == nil {
			return 0, false
		}
		return float64(*c.FastChargeKmh), true
	}, higher},
}

// Comparison holds the compared cars in request order and the best value
// of every metric. Cars without a value for a metric are ignored for it.
type Comparison struct {
	Cars []Car
	Best map[Metric]float64
}

// IsBest reports whether car holds the best value of metric.
func (c *Comparison) IsBest(metric Metric, car Car) bool {
	rule, ok := metricRules[metric]
	if !ok {
		return false
	}
	best, ok := c.Best[metric]
	if !ok {
		return false
	}
	v, ok := rule.value(car)
	return ok && v == best
}

// Compare fetches every id concurrently. Any failed fetch fails the whole
// comparison.
func (c *Client) Compare(ctx context.Context, ids []uint) (*Comparison, error) {
	if len(ids) == 0 {
		return nil, ErrNoCars
	}

	cars := make([]Car, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			car, err := c.GetCar(gctx, id)
			if err != nil {
				return err
			}
			cars[i] = *car
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Comparison{Cars: cars, Best: bestValues(cars)}, nil
}

func bestValues(cars []Car) map[Metric]float64 {
	best := make(map[Metric]float64, len(metricRules))
	for metric, rule := range metricRules {
		for _, car := range cars {
			v, ok := rule.value(car)
			if !ok {
				continue
			}
			if current, seen := best[metric]; !seen || rule.better(v, current) {
				best[metric] = v
			}
		}
	}
	return best
}
