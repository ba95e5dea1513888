package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tair/electric-cars/internal/car/domain"
)

func sampleCars() []domain.ElectricCar {
	fast := 820
	return []domain.ElectricCar{
		{
			ID: 1, Brand: "Tesla", Model: "Model 3 Long Range", AccelSec: 4.6, TopSpeedKmh: 233,
			RangeKm: 450, EfficiencyWhkm: 161, FastChargeKmh: &fast, RapidCharge: "Yes",
			PowerTrain: "AWD", PlugType: "Type 2 CCS", BodyStyle: "Sedan", Segment: "D",
			Seats: 5, PriceEuro: 55480, Date: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{ID: 2, Brand: "Renault", Model: "Twizy, Urban", Seats: 2, PriceEuro: 7990.5},
	}
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "Id", Header("id"))
	assert.Equal(t, "Price euro", Header("price_euro"))
	assert.Equal(t, "Top speed kmh", Header("top_speed_kmh"))
	assert.Equal(t, "", Header(""))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleCars()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, domain.Columns, records[0])
	assert.Equal(t, []string{
		"1", "Tesla", "Model 3 Long Range", "4.6", "233", "450", "161", "820", "Yes",
		"AWD", "Type 2 CCS", "Sedan", "D", "5", "55480", "2020-03-01",
	}, records[1])
	assert.Equal(t, "Twizy, Urban", records[2][2])
	assert.Equal(t, "", records[2][7], "missing fast charge is empty")
	assert.Equal(t, "7990.5", records[2][14])
	assert.Equal(t, "", records[2][15])
}

func TestWriteCSV_EmptyTableStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleCars()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Id", rows[0][0])
	assert.Equal(t, "Efficiency whkm", rows[0][6])
	assert.Equal(t, "Tesla", rows[1][1])

	width, err := f.GetColWidth(SheetName, "C")
	require.NoError(t, err)
	assert.Equal(t, float64(columnWidth), width)

	styleID, err := f.GetCellStyle(SheetName, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	assert.True(t, style.Font.Bold)
	assert.Equal(t, "pattern", style.Fill.Type)
}
