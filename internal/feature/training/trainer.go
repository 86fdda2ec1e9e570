package training

import (
	"fmt"
	"math/rand"
	"strconv"

	"carprice_backend/internal/feature/pricing/domain/entity"
	"carprice_backend/internal/platform/ml"
)

// droppedColumns are present in the dataset but excluded from the features:
// Brand because Car_Name is more specific, Year because Car_Age is the
// engineered feature.
var droppedColumns = map[string]struct{}{
	entity.ColBrand: {},
	entity.ColYear:  {},
}

// Result summarizes a completed training run.
type Result struct {
	Artifact  *ml.Artifact
	R2        float64
	TrainRows int
	TestRows  int
}

// Train loads the dataset, fits the encoders and the boosted model, and
// returns the artifact with its test-split R². The artifact is not written
// here; the caller persists it only on success, so a failed run never leaves
// a partial model behind.
func Train(csvPath string, params ml.TrainParams) (*Result, error) {
	table, err := LoadCSV(csvPath)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(table); err != nil {
		return nil, err
	}

	categorical := make(map[string]struct{}, len(entity.CategoricalColumns))
	for _, c := range entity.CategoricalColumns {
		categorical[c] = struct{}{}
	}

	// Feature order: numeric columns in dataset order, then the categorical
	// columns. Persisted verbatim as the artifact's column order.
	var numericCols []string
	for _, h := range table.Header {
		if _, dropped := droppedColumns[h]; dropped {
			continue
		}
		if _, cat := categorical[h]; cat {
			continue
		}
		if h == entity.ColSellingPrice {
			continue
		}
		numericCols = append(numericCols, h)
	}
	columns := append(append([]string{}, numericCols...), entity.CategoricalColumns...)

	// Deterministic 80/20 split.
	rng := rand.New(rand.NewSource(params.Seed))
	perm := rng.Perm(table.Len())
	nTest := table.Len() / 5
	testRows := perm[:nTest]
	trainRows := perm[nTest:]

	// Encoders are fit on the training split only; unseen test categories
	// take the same 0 fallback the serving pipeline uses.
	mappings := make(map[string]*ml.LabelEncoder, len(entity.CategoricalColumns))
	for _, col := range entity.CategoricalColumns {
		values := make([]string, 0, len(trainRows))
		for _, r := range trainRows {
			values = append(values, table.Value(r, col))
		}
		mappings[col] = ml.FitLabelEncoder(values)
	}

	trainX, trainY, err := matrix(table, trainRows, columns, mappings)
	if err != nil {
		return nil, err
	}
	testX, testY, err := matrix(table, testRows, columns, mappings)
	if err != nil {
		return nil, err
	}

	model, err := ml.Train(trainX, trainY, testX, testY, params)
	if err != nil {
		return nil, err
	}

	pred := make([]float64, len(testX))
	for i := range testX {
		pred[i] = model.Predict(testX[i])
	}

	return &Result{
		Artifact: &ml.Artifact{
			Model:    model,
			Mappings: mappings,
			Columns:  columns,
		},
		R2:        ml.R2(testY, pred),
		TrainRows: len(trainRows),
		TestRows:  len(testRows),
	}, nil
}

// checkColumns verifies every expected dataset column is present.
func checkColumns(table *Table) error {
	expected := []string{
		entity.ColBrand, entity.ColCarName, entity.ColCity, entity.ColYear,
		entity.ColCarAge, entity.ColCondition, entity.ColPresentPrice,
		entity.ColSellingPrice, entity.ColKmsDriven, entity.ColFuelType,
		entity.ColSellerType, entity.ColTransmission, entity.ColOwner,
		entity.ColMileage, entity.ColEnginePower, entity.ColMaintenanceCost,
		entity.ColInsuranceAge, entity.ColAccidents,
	}
	var missing []string
	for _, col := range expected {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("dataset is missing expected columns: %v", missing)
	}
	return nil
}

// matrix assembles the feature matrix and target vector for the given rows.
func matrix(table *Table, rows []int, columns []string, mappings map[string]*ml.LabelEncoder) ([][]float64, []float64, error) {
	x := make([][]float64, 0, len(rows))
	y := make([]float64, 0, len(rows))
	for _, r := range rows {
		vec := make([]float64, len(columns))
		for i, col := range columns {
			if enc, ok := mappings[col]; ok {
				code, _ := enc.Transform(table.Value(r, col)) // unseen → 0
				vec[i] = float64(code)
				continue
			}
			v, err := strconv.ParseFloat(table.Value(r, col), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("row %d column %q: %w", r, col, err)
			}
			vec[i] = v
		}
		target, err := strconv.ParseFloat(table.Value(r, entity.ColSellingPrice), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d column %q: %w", r, entity.ColSellingPrice, err)
		}
		x = append(x, vec)
		y = append(y, target)
	}
	return x, y, nil
}
