package dataset

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellingPrice(t *testing.T) {
	// Baseline row with every multiplicative factor neutral.
	baseRow := Row{
		Brand:           "Maruti", // reputation 1.0
		CarName:         "Maruti Swift",
		Condition:       "Good", // factor 1.00
		PresentPrice:    10.0,
		KmsDriven:       0,
		FuelType:        "Petrol",
		Transmission:    "Manual",
		Owner:           0,
		MaintenanceCost: 0,
		Accidents:       0,
		CarAge:          0,
	}

	t.Run("neutral row keeps the present price", func(t *testing.T) {
		got := SellingPrice(baseRow, 0.08, 1.0)
		assert.Equal(t, 10.0, got)
	})

	t.Run("age depreciation compounds", func(t *testing.T) {
		row := baseRow
		row.CarAge = 5
		got := SellingPrice(row, 0.08, 1.0)
		want := math.Round(10.0*math.Pow(0.92, 5)*100) / 100
		assert.Equal(t, want, got)
	})

	t.Run("kms driven cuts 0.4 per 100k", func(t *testing.T) {
		row := baseRow
		row.KmsDriven = 100000
		got := SellingPrice(row, 0.08, 1.0)
		assert.Equal(t, 6.0, got)
	})

	t.Run("each owner costs 8 percent", func(t *testing.T) {
		row := baseRow
		row.Owner = 2
		got := SellingPrice(row, 0.08, 1.0)
		want := math.Round(10.0*0.92*0.92*100) / 100
		assert.Equal(t, want, got)
	})

	t.Run("condition factors", func(t *testing.T) {
		tests := []struct {
			condition string
			want      float64
		}{
			{"Excellent", 10.5},
			{"Good", 10.0},
			{"Average", 9.0},
			{"Poor", 7.5},
		}
		for _, tt := range tests {
			row := baseRow
			row.Condition = tt.condition
			assert.Equal(t, tt.want, SellingPrice(row, 0.08, 1.0), "condition %s", tt.condition)
		}
	})

	t.Run("diesel and automatic premiums", func(t *testing.T) {
		row := baseRow
		row.FuelType = "Diesel"
		assert.Equal(t, 10.5, SellingPrice(row, 0.08, 1.0))

		row = baseRow
		row.Transmission = "Automatic"
		assert.Equal(t, 10.3, SellingPrice(row, 0.08, 1.0))
	})

	t.Run("accidents cost 5 percent each", func(t *testing.T) {
		row := baseRow
		row.Accidents = 2
		assert.Equal(t, 9.0, SellingPrice(row, 0.08, 1.0))
	})

	t.Run("brand reputation applies", func(t *testing.T) {
		row := baseRow
		row.Brand = "Toyota"
		rep := BrandReputation["Toyota"]
		want := math.Round(10.0*rep*100) / 100
		assert.Equal(t, want, SellingPrice(row, 0.08, 1.0))
	})

	t.Run("price never drops below the floor", func(t *testing.T) {
		row := baseRow
		row.PresentPrice = 2.0
		row.CarAge = 15
		row.KmsDriven = 200000
		row.Condition = "Poor"
		row.Accidents = 2
		got := SellingPrice(row, 0.10, 0.95)
		assert.Equal(t, MinSellingPriceLakhs, got)
	})

	t.Run("noise multiplies the final price", func(t *testing.T) {
		low := SellingPrice(baseRow, 0.08, 0.95)
		high := SellingPrice(baseRow, 0.08, 1.05)
		assert.Equal(t, 9.5, low)
		assert.Equal(t, 10.5, high)
	})
}

func TestSynthesizer_Generate(t *testing.T) {
	const year = 2026

	t.Run("rows stay within the catalog bounds", func(t *testing.T) {
		s := NewSynthesizer(42, year)
		rows := s.Generate(500)
		require.Len(t, rows, 500)

		for _, r := range rows {
			spec, ok := CarSpecs[r.CarName]
			require.True(t, ok, "unknown car name %q", r.CarName)
			assert.Equal(t, spec.Brand, r.Brand, "brand must match the catalog")
			assert.Contains(t, spec.Fuels, r.FuelType, "fuel must be valid for %s", r.CarName)
			assert.Contains(t, Cities, r.City)
			assert.Contains(t, Conditions, r.Condition)

			assert.GreaterOrEqual(t, r.Year, MinYear)
			assert.Less(t, r.Year, year)
			assert.Equal(t, year-r.Year, r.CarAge, "car age must match the year")

			assert.GreaterOrEqual(t, r.PresentPrice, spec.PriceMin)
			assert.LessOrEqual(t, r.PresentPrice, spec.PriceMax)
			assert.GreaterOrEqual(t, r.SellingPrice, MinSellingPriceLakhs)

			assert.GreaterOrEqual(t, r.KmsDriven, 5000)
			assert.GreaterOrEqual(t, r.Owner, 0)
			assert.LessOrEqual(t, r.Owner, 2)
			assert.GreaterOrEqual(t, r.Mileage, 12.0)
			assert.LessOrEqual(t, r.Mileage, 25.0)
			assert.GreaterOrEqual(t, r.InsuranceAge, 0)
			assert.LessOrEqual(t, r.InsuranceAge, 5)
			assert.LessOrEqual(t, r.Accidents, 2)
		}
	})

	t.Run("same seed reproduces the same rows", func(t *testing.T) {
		a := NewSynthesizer(42, year).Generate(50)
		b := NewSynthesizer(42, year).Generate(50)
		assert.True(t, reflect.DeepEqual(a, b), "generation must be deterministic per seed")
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		a := NewSynthesizer(1, year).Generate(50)
		b := NewSynthesizer(2, year).Generate(50)
		assert.False(t, reflect.DeepEqual(a, b), "different seeds should produce different rows")
	})
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.csv")
	rows := NewSynthesizer(42, 2026).Generate(10)

	require.NoError(t, WriteCSV(path, rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 11, "header plus 10 rows")

	assert.Equal(t, Columns, records[0], "header must match the fixed column order")
	for _, record := range records[1:] {
		assert.Len(t, record, len(Columns), "each row must have every column")
	}

	// Spot-check the first row round-trips
	assert.Equal(t, rows[0].Brand, records[1][0])
	assert.Equal(t, rows[0].CarName, records[1][1])
	assert.Equal(t, rows[0].Condition, records[1][5])
}

func TestCatalog(t *testing.T) {
	t.Run("car names are sorted and complete", func(t *testing.T) {
		names := CarNames()
		assert.Len(t, names, len(CarSpecs))
		for i := 1; i < len(names); i++ {
			assert.LessOrEqual(t, names[i-1], names[i], "names must be sorted")
		}
	})

	t.Run("every spec has a brand with a reputation factor", func(t *testing.T) {
		for name, spec := range CarSpecs {
			assert.NotEmpty(t, spec.Brand, "car %q must have a brand", name)
			assert.NotEmpty(t, spec.Fuels, "car %q must have fuel options", name)
			assert.Greater(t, spec.PriceMax, spec.PriceMin, "car %q price range", name)
			_, ok := BrandReputation[spec.Brand]
			assert.True(t, ok, "brand %q has no reputation factor", spec.Brand)
		}
	})

	t.Run("brand map groups models by brand", func(t *testing.T) {
		bm := BrandMap()
		total := 0
		for brand, models := range bm {
			total += len(models)
			for _, m := range models {
				assert.Equal(t, brand, CarSpecs[m].Brand)
			}
		}
		assert.Equal(t, len(CarSpecs), total, "every model appears exactly once")
	})
}
