// Package dataset synthesizes the labeled training data: a fixed catalog of
// car models and a hand-tuned depreciation formula over randomly drawn
// listing attributes.
package dataset

import "sort"

// CarSpec describes one catalog model: its showroom price range in lakhs,
// the fuel types it ships with, and its brand.
type CarSpec struct {
	PriceMin float64
	PriceMax float64
	Fuels    []string
	Brand    string
}

// CarSpecs is the fixed model catalog.
var CarSpecs = map[string]CarSpec{
	// --- Maruti ---
	"Maruti Swift":   {6.5, 8.0, []string{"Petrol", "Diesel"}, "Maruti"},
	"Maruti Baleno":  {7.0, 9.5, []string{"Petrol", "CNG"}, "Maruti"},
	"Maruti Wagon R": {5.5, 7.5, []string{"Petrol", "CNG"}, "Maruti"},
	"Maruti Dzire":   {7.0, 9.0, []string{"Petrol", "CNG"}, "Maruti"},
	"Maruti Brezza":  {9.0, 13.0, []string{"Petrol", "CNG"}, "Maruti"},
	"Maruti Ertiga":  {9.0, 13.5, []string{"Petrol", "CNG"}, "Maruti"},

	// --- Hyundai ---
	"Hyundai i20":       {6.8, 9.5, []string{"Petrol", "Diesel"}, "Hyundai"},
	"Hyundai Creta":     {11.0, 19.0, []string{"Petrol", "Diesel"}, "Hyundai"},
	"Hyundai Venue":     {8.0, 13.0, []string{"Petrol", "Diesel"}, "Hyundai"},
	"Hyundai Verna":     {11.0, 17.0, []string{"Petrol", "Diesel"}, "Hyundai"},
	"Hyundai Grand i10": {6.0, 8.5, []string{"Petrol", "CNG"}, "Hyundai"},

	// --- Honda ---
	"Honda Amaze": {8.0, 11.0, []string{"Petrol", "Diesel"}, "Honda"},
	"Honda City":  {9.5, 14.0, []string{"Petrol", "Diesel"}, "Honda"},
	"Honda Jazz":  {8.0, 9.5, []string{"Petrol"}, "Honda"},
	"Honda WR-V":  {9.0, 11.5, []string{"Petrol", "Diesel"}, "Honda"},

	// --- Tata ---
	"Tata Tiago":   {6.0, 8.0, []string{"Petrol", "CNG"}, "Tata"},
	"Tata Tigor":   {7.0, 9.0, []string{"Petrol", "CNG"}, "Tata"},
	"Tata Altroz":  {7.0, 10.5, []string{"Petrol", "Diesel"}, "Tata"},
	"Tata Nexon":   {10.0, 14.5, []string{"Petrol", "Diesel", "CNG"}, "Tata"},
	"Tata Harrier": {16.0, 25.0, []string{"Diesel"}, "Tata"},
	"Tata Safari":  {17.0, 28.0, []string{"Diesel"}, "Tata"},

	// --- Mahindra ---
	"Mahindra Scorpio": {12.0, 18.0, []string{"Diesel"}, "Mahindra"},
	"Mahindra XUV300":  {9.0, 13.0, []string{"Petrol", "Diesel"}, "Mahindra"},
	"Mahindra XUV700":  {14.0, 26.0, []string{"Petrol", "Diesel"}, "Mahindra"},
	"Mahindra Thar":    {14.0, 18.0, []string{"Petrol", "Diesel"}, "Mahindra"},
	"Mahindra Bolero":  {9.5, 11.5, []string{"Diesel"}, "Mahindra"},

	// --- Toyota ---
	"Toyota Innova":               {18.0, 25.0, []string{"Diesel", "Petrol"}, "Toyota"},
	"Toyota Fortuner":             {30.0, 45.0, []string{"Diesel", "Petrol"}, "Toyota"},
	"Toyota Glanza":               {7.0, 10.0, []string{"Petrol", "CNG"}, "Toyota"},
	"Toyota Urban Cruiser Hyryder": {15.0, 22.0, []string{"Petrol", "Hybrid"}, "Toyota"},

	// --- Kia ---
	"Kia Seltos": {11.0, 18.0, []string{"Petrol", "Diesel"}, "Kia"},
	"Kia Sonet":  {8.0, 14.0, []string{"Petrol", "Diesel"}, "Kia"},
	"Kia Carens": {12.0, 18.0, []string{"Petrol", "Diesel"}, "Kia"},

	// --- Volkswagen & Skoda ---
	"Volkswagen Polo":   {7.0, 10.0, []string{"Petrol"}, "Volkswagen"},
	"Volkswagen Virtus": {11.0, 17.0, []string{"Petrol"}, "Volkswagen"},
	"Skoda Kushaq":      {11.0, 17.0, []string{"Petrol"}, "Skoda"},
	"Skoda Slavia":      {11.0, 17.0, []string{"Petrol"}, "Skoda"},

	// --- Renault & Nissan ---
	"Renault Kwid":   {5.0, 7.5, []string{"Petrol"}, "Renault"},
	"Renault Triber": {6.5, 8.5, []string{"Petrol"}, "Renault"},
	"Renault Duster": {10.0, 14.0, []string{"Petrol", "Diesel"}, "Renault"},
	"Nissan Magnite": {6.5, 11.0, []string{"Petrol"}, "Nissan"},
	"Nissan Kicks":   {10.0, 15.0, []string{"Petrol"}, "Nissan"},

	// --- MG & Jeep ---
	"MG Hector":     {14.0, 20.0, []string{"Petrol", "Diesel"}, "MG"},
	"MG Astor":      {11.0, 17.0, []string{"Petrol"}, "MG"},
	"Jeep Compass":  {18.0, 26.0, []string{"Petrol", "Diesel"}, "Jeep"},
	"Jeep Meridian": {29.0, 36.0, []string{"Diesel"}, "Jeep"},
}

// Cities are the sampled listing locations.
var Cities = []string{"Delhi", "Mumbai", "Bangalore", "Chennai", "Kolkata", "Hyderabad", "Pune", "Ahmedabad"}

// Conditions are the vehicle condition grades.
var Conditions = []string{"Excellent", "Good", "Average", "Poor"}

// BrandReputation multiplies the selling price per brand.
var BrandReputation = map[string]float64{
	"Maruti":     1.00,
	"Hyundai":    1.02,
	"Honda":      1.05,
	"Ford":       0.95,
	"Tata":       1.00,
	"Toyota":     1.10,
	"Mahindra":   1.02,
	"Kia":        1.03,
	"Volkswagen": 1.04,
	"Renault":    0.97,
	"MG":         1.00,
	"Jeep":       1.06,
	"Skoda":      1.05,
	"Nissan":     0.96,
}

// CarNames returns the catalog model names in sorted order, so random draws
// over an index are reproducible under a fixed seed.
func CarNames() []string {
	names := make([]string, 0, len(CarSpecs))
	for name := range CarSpecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BrandMap groups catalog model names by brand, for the prediction form.
func BrandMap() map[string][]string {
	m := map[string][]string{}
	for name, spec := range CarSpecs {
		m[spec.Brand] = append(m[spec.Brand], name)
	}
	for brand := range m {
		sort.Strings(m[brand])
	}
	return m
}
