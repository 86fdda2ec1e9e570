// Package catalog exposes the brand-to-model map that drives the prediction
// form's cascading selects.
package catalog

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"carprice_backend/internal/feature/dataset"
	"carprice_backend/internal/feature/pricing/domain/entity"
)

// BrandMap maps a brand name to its model names, sorted.
type BrandMap map[string][]string

// LoadBrandMap builds the brand map from the dataset CSV, falling back to the
// built-in catalog when the file is missing. The dataset is the source of
// truth so the form offers exactly the models the model was trained on.
func LoadBrandMap(csvPath string) BrandMap {
	m, err := fromCSV(csvPath)
	if err != nil {
		slog.Warn("brand map falling back to built-in catalog", "path", csvPath, "error", err)
		return BrandMap(dataset.BrandMap())
	}
	return m
}

func fromCSV(path string) (BrandMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, err
	}
	brandIdx, nameIdx := -1, -1
	for i, h := range header {
		switch h {
		case entity.ColBrand:
			brandIdx = i
		case entity.ColCarName:
			nameIdx = i
		}
	}
	if brandIdx < 0 || nameIdx < 0 {
		return nil, fmt.Errorf("dataset %q lacks %s/%s columns", path, entity.ColBrand, entity.ColCarName)
	}

	seen := map[string]map[string]struct{}{}
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		brand, name := rec[brandIdx], rec[nameIdx]
		if seen[brand] == nil {
			seen[brand] = map[string]struct{}{}
		}
		seen[brand][name] = struct{}{}
	}

	m := BrandMap{}
	for brand, names := range seen {
		for name := range names {
			m[brand] = append(m[brand], name)
		}
		sort.Strings(m[brand])
	}
	return m, nil
}

// Brands returns the brand names in sorted order.
func (m BrandMap) Brands() []string {
	brands := make([]string, 0, len(m))
	for b := range m {
		brands = append(brands, b)
	}
	sort.Strings(brands)
	return brands
}
