// Package entity defines the domain types of the pricing feature.
package entity

import (
	"fmt"
	"strconv"
)

// Column names shared by the dataset, the trained model and the wire formats.
// These match the CSV header exactly; the artifact's column order is expressed
// in these names.
const (
	ColBrand           = "Brand"
	ColCarName         = "Car_Name"
	ColCity            = "City"
	ColYear            = "Year"
	ColCarAge          = "Car_Age"
	ColCondition       = "Condition"
	ColPresentPrice    = "Present_Price(Lakhs)"
	ColSellingPrice    = "Selling_Price(Lakhs)"
	ColKmsDriven       = "Kms_Driven"
	ColFuelType        = "Fuel_Type"
	ColSellerType      = "Seller_Type"
	ColTransmission    = "Transmission"
	ColOwner           = "Owner"
	ColMileage         = "Mileage(km/l)"
	ColEnginePower     = "Engine_Power(cc)"
	ColMaintenanceCost = "Maintenance_Cost(₹/yr)"
	ColInsuranceAge    = "Insurance_Age(yrs)"
	ColAccidents       = "Accidents"
)

// CategoricalColumns is the fixed list of encoded feature columns.
var CategoricalColumns = []string{
	ColCarName, ColCity, ColCondition, ColFuelType, ColSellerType, ColTransmission,
}

// Listing is one used-car record as submitted for prediction.
type Listing struct {
	Year            int
	PresentPrice    float64
	KmsDriven       int
	Owner           int
	Mileage         float64
	EnginePower     int
	MaintenanceCost int
	InsuranceAge    int
	Accidents       int

	CarName      string
	City         string
	Condition    string
	FuelType     string
	SellerType   string
	Transmission string
}

// Categorical returns the raw value of an encoded column.
func (l *Listing) Categorical(col string) string {
	switch col {
	case ColCarName:
		return l.CarName
	case ColCity:
		return l.City
	case ColCondition:
		return l.Condition
	case ColFuelType:
		return l.FuelType
	case ColSellerType:
		return l.SellerType
	case ColTransmission:
		return l.Transmission
	}
	return ""
}

// ValueGetter looks up one raw field by its column name.
// It adapts both form lookups and flat JSON objects.
type ValueGetter func(key string) string

// ListingFromValues builds a typed Listing from flat string fields.
// The optional prefix supports the comparison form's "a_"/"b_" field sets.
// Every numeric field must parse to its declared type; a missing or malformed
// value fails the whole listing.
func ListingFromValues(get ValueGetter, prefix string) (*Listing, error) {
	l := &Listing{
		CarName:      get(prefix + ColCarName),
		City:         get(prefix + ColCity),
		Condition:    get(prefix + ColCondition),
		FuelType:     get(prefix + ColFuelType),
		SellerType:   get(prefix + ColSellerType),
		Transmission: get(prefix + ColTransmission),
	}

	var err error
	if l.Year, err = parseInt(get, prefix, ColYear); err != nil {
		return nil, err
	}
	if l.PresentPrice, err = parseFloat(get, prefix, ColPresentPrice); err != nil {
		return nil, err
	}
	if l.KmsDriven, err = parseInt(get, prefix, ColKmsDriven); err != nil {
		return nil, err
	}
	if l.Owner, err = parseInt(get, prefix, ColOwner); err != nil {
		return nil, err
	}
	if l.Mileage, err = parseFloat(get, prefix, ColMileage); err != nil {
		return nil, err
	}
	if l.EnginePower, err = parseInt(get, prefix, ColEnginePower); err != nil {
		return nil, err
	}
	if l.MaintenanceCost, err = parseInt(get, prefix, ColMaintenanceCost); err != nil {
		return nil, err
	}
	if l.InsuranceAge, err = parseInt(get, prefix, ColInsuranceAge); err != nil {
		return nil, err
	}
	if l.Accidents, err = parseInt(get, prefix, ColAccidents); err != nil {
		return nil, err
	}
	return l, nil
}

func parseInt(get ValueGetter, prefix, col string) (int, error) {
	raw := get(prefix + col)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("field %q: invalid integer %q", prefix+col, raw)
	}
	return v, nil
}

func parseFloat(get ValueGetter, prefix, col string) (float64, error) {
	raw := get(prefix + col)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("field %q: invalid number %q", prefix+col, raw)
	}
	return v, nil
}
