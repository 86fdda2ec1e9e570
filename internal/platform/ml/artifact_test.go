package ml

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArtifact() *Artifact {
	return &Artifact{
		Model: &GBDT{
			Base:         3.5,
			LearningRate: 0.05,
			Trees: []*Tree{
				{Nodes: []TreeNode{
					{Feature: 0, Threshold: 2, Left: 1, Right: 2},
					{Left: -1, Right: -1, Value: -1},
					{Left: -1, Right: -1, Value: 1},
				}},
			},
		},
		Mappings: map[string]*LabelEncoder{
			"Fuel_Type": {Classes: []string{"CNG", "Diesel", "Petrol"}},
		},
		Columns: []string{"Car_Age", "Fuel_Type"},
	}
}

func TestArtifact_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "car_model.json")
	src := testArtifact()

	require.NoError(t, src.Save(path))

	loaded, err := LoadArtifact(path)
	require.NoError(t, err)

	assert.Equal(t, src.Columns, loaded.Columns)
	assert.Equal(t, src.Mappings["Fuel_Type"].Classes, loaded.Mappings["Fuel_Type"].Classes)
	assert.Equal(t, src.Model.Predict([]float64{1, 2}), loaded.Model.Predict([]float64{1, 2}),
		"model must round-trip exactly")
}

func TestArtifact_Validate(t *testing.T) {
	t.Run("missing model", func(t *testing.T) {
		a := testArtifact()
		a.Model = nil
		assert.Error(t, a.Validate())
	})

	t.Run("no columns", func(t *testing.T) {
		a := testArtifact()
		a.Columns = nil
		assert.Error(t, a.Validate())
	})

	t.Run("duplicate column", func(t *testing.T) {
		a := testArtifact()
		a.Columns = []string{"Car_Age", "Car_Age", "Fuel_Type"}
		assert.Error(t, a.Validate())
	})

	t.Run("encoder column missing from column order", func(t *testing.T) {
		a := testArtifact()
		a.Columns = []string{"Car_Age"}
		assert.Error(t, a.Validate())
	})
}

func TestLoadArtifact_Missing(t *testing.T) {
	_, err := LoadArtifact(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestArtifact_SaveRejectsInvalid(t *testing.T) {
	a := testArtifact()
	a.Model = nil

	path := filepath.Join(t.TempDir(), "car_model.json")
	assert.Error(t, a.Save(path))
	assert.NoFileExists(t, path, "no partial artifact may be written")
}
