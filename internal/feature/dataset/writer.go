package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV writes rows to path with the fixed column header.
func WriteCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Brand,
			r.CarName,
			r.City,
			strconv.Itoa(r.Year),
			strconv.Itoa(r.CarAge),
			r.Condition,
			formatFloat(r.PresentPrice),
			formatFloat(r.SellingPrice),
			strconv.Itoa(r.KmsDriven),
			r.FuelType,
			r.SellerType,
			r.Transmission,
			strconv.Itoa(r.Owner),
			formatFloat(r.Mileage),
			strconv.Itoa(r.EnginePower),
			formatFloat(r.MaintenanceCost),
			strconv.Itoa(r.InsuranceAge),
			strconv.Itoa(r.Accidents),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Sync()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
