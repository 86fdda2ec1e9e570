package dataset

import (
	"math"
	"math/rand"

	"carprice_backend/internal/feature/pricing/domain/entity"
)

const (
	// MinYear is the oldest model year generated.
	MinYear = 2010

	// MinSellingPriceLakhs is the absolute floor for a selling price.
	MinSellingPriceLakhs = 1.5

	// minKmsDriven floors the drawn odometer value.
	minKmsDriven = 5000
)

// Row is one synthetic listing with its computed selling price.
type Row struct {
	Brand           string
	CarName         string
	City            string
	Year            int
	CarAge          int
	Condition       string
	PresentPrice    float64
	SellingPrice    float64
	KmsDriven       int
	FuelType        string
	SellerType      string
	Transmission    string
	Owner           int
	Mileage         float64
	EnginePower     int
	MaintenanceCost float64
	InsuranceAge    int
	Accidents       int
}

// Synthesizer draws random listings from the catalog and prices them with
// the depreciation formula.
type Synthesizer struct {
	rng         *rand.Rand
	currentYear int
	names       []string
}

// NewSynthesizer creates a Synthesizer seeded for reproducible output.
func NewSynthesizer(seed int64, currentYear int) *Synthesizer {
	return &Synthesizer{
		rng:         rand.New(rand.NewSource(seed)),
		currentYear: currentYear,
		names:       CarNames(),
	}
}

// Generate produces n synthetic listing rows.
func (s *Synthesizer) Generate(n int) []Row {
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, s.generateRow())
	}
	return rows
}

func (s *Synthesizer) generateRow() Row {
	rng := s.rng

	carName := s.names[rng.Intn(len(s.names))]
	spec := CarSpecs[carName]
	year := MinYear + rng.Intn(s.currentYear-MinYear) // [MinYear, currentYear-1]
	carAge := s.currentYear - year

	presentPrice := round2(spec.PriceMin + rng.Float64()*(spec.PriceMax-spec.PriceMin))

	row := Row{
		Brand:           spec.Brand,
		CarName:         carName,
		City:            Cities[rng.Intn(len(Cities))],
		Year:            year,
		CarAge:          carAge,
		Condition:       weightedChoice(rng, Conditions, []float64{0.3, 0.4, 0.2, 0.1}),
		PresentPrice:    presentPrice,
		FuelType:        spec.Fuels[rng.Intn(len(spec.Fuels))],
		SellerType:      weightedChoice(rng, []string{"Dealer", "Individual"}, []float64{0.7, 0.3}),
		Transmission:    weightedChoice(rng, []string{"Manual", "Automatic"}, []float64{0.7, 0.3}),
		Owner:           weightedInt(rng, []int{0, 1, 2}, []float64{0.6, 0.3, 0.1}),
		Mileage:         round1(12 + rng.Float64()*13), // km/l in [12, 25]
		EnginePower:     []int{1000, 1200, 1500, 1800, 2000, 2500}[rng.Intn(6)],
		MaintenanceCost: round2(3000 + rng.Float64()*12000),
		InsuranceAge:    rng.Intn(6),
		Accidents:       weightedInt(rng, []int{0, 1, 2}, []float64{0.8, 0.15, 0.05}),
	}

	// Odometer: age times a random per-year usage, plus noise, floored.
	avgKmsPerYear := 10000 + rng.Intn(5001)
	kms := carAge*avgKmsPerYear + rng.Intn(10001) - 5000
	if kms < minKmsDriven {
		kms = minKmsDriven
	}
	row.KmsDriven = kms

	ageRate := 0.07 + rng.Float64()*0.03  // per-row depreciation rate in [0.07, 0.10]
	noise := 0.95 + rng.Float64()*0.10    // uniform noise multiplier in [0.95, 1.05]
	row.SellingPrice = SellingPrice(row, ageRate, noise)
	return row
}

// SellingPrice applies the multiplicative depreciation chain to the present
// price. ageRate and noise are the per-row random draws, passed in so the
// formula itself stays deterministic and testable.
func SellingPrice(row Row, ageRate, noise float64) float64 {
	price := row.PresentPrice

	// Age depreciation
	price *= math.Pow(1-ageRate, float64(row.CarAge))

	// Kms depreciation
	price *= 1 - (float64(row.KmsDriven)/100000)*0.4

	// Owner depreciation
	price *= math.Pow(1-0.08, float64(row.Owner))

	// Condition factor
	switch row.Condition {
	case "Excellent":
		price *= 1.05
	case "Good":
		price *= 1.00
	case "Average":
		price *= 0.90
	default:
		price *= 0.75
	}

	// Brand reputation
	if rep, ok := BrandReputation[row.Brand]; ok {
		price *= rep
	}

	// Fuel & transmission adjustment
	if row.FuelType == "Diesel" {
		price *= 1.05
	}
	if row.Transmission == "Automatic" {
		price *= 1.03
	}

	// Accident & maintenance penalties
	price *= 1 - 0.05*float64(row.Accidents)
	price *= 1 - 0.00001*row.MaintenanceCost

	price *= noise

	return math.Max(MinSellingPriceLakhs, round2(price))
}

// Columns is the CSV header, in the original dataset's column order.
var Columns = []string{
	entity.ColBrand,
	entity.ColCarName,
	entity.ColCity,
	entity.ColYear,
	entity.ColCarAge,
	entity.ColCondition,
	entity.ColPresentPrice,
	entity.ColSellingPrice,
	entity.ColKmsDriven,
	entity.ColFuelType,
	entity.ColSellerType,
	entity.ColTransmission,
	entity.ColOwner,
	entity.ColMileage,
	entity.ColEnginePower,
	entity.ColMaintenanceCost,
	entity.ColInsuranceAge,
	entity.ColAccidents,
}

func weightedChoice(rng *rand.Rand, values []string, weights []float64) string {
	r := rng.Float64()
	var acc float64
	for i, w := range weights {
		acc += w
		if r < acc {
			return values[i]
		}
	}
	return values[len(values)-1]
}

func weightedInt(rng *rand.Rand, values []int, weights []float64) int {
	r := rng.Float64()
	var acc float64
	for i, w := range weights {
		acc += w
		if r < acc {
			return values[i]
		}
	}
	return values[len(values)-1]
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
