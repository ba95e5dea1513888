package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuickFilters(t *testing.T) {
	cars := []Car{
		{ID: 1, PriceEuro: 35000, RangeKm: 300, AccelSec: 7.3},
		{ID: 2, PriceEuro: 46000, RangeKm: 450, AccelSec: 4.6},
		{ID: 3, PriceEuro: 90000, RangeKm: 500, AccelSec: 3.2},
		{ID: 4, PriceEuro: 40000, RangeKm: 400, AccelSec: 5},
	}

	ids := func(cs []Car) []uint {
		out := []uint{}
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	tests := []struct {
		filter QuickFilter
		want   []uint
	}{
		{Affordable, []uint{1}},
		{LongRange, []uint{2, 3}},
		{Fast, []uint{2, 3}},
		{BestValue, []uint{2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.filter.Label, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.filter.Apply(cars)))
		})
	}

	assert.Len(t, QuickFilters(), 4)
}
