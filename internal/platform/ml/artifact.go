package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact is the persisted output of a training run: the fitted model, the
// per-column label encoders, and the exact feature column order the model was
// trained on. The triple must round-trip exactly; predictions made against a
// different column order would be silently wrong, so Load validates the schema
// and fails loudly instead.
type Artifact struct {
	Model    *GBDT                    `json:"model"`
	Mappings map[string]*LabelEncoder `json:"mappings"`
	Columns  []string                 `json:"columns"`
}

// Validate checks the internal consistency of the artifact schema.
func (a *Artifact) Validate() error {
	if a.Model == nil || len(a.Model.Trees) == 0 {
		return fmt.Errorf("artifact has no trained model")
	}
	if len(a.Columns) == 0 {
		return fmt.Errorf("artifact has no feature columns")
	}
	seen := make(map[string]struct{}, len(a.Columns))
	for _, c := range a.Columns {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("duplicate feature column %q", c)
		}
		seen[c] = struct{}{}
	}
	for col := range a.Mappings {
		if _, ok := seen[col]; !ok {
			return fmt.Errorf("encoder column %q is not in the feature columns", col)
		}
	}
	return nil
}

// LoadArtifact reads and validates a model artifact from path.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact: %w", err)
	}
	return &a, nil
}

// Save writes the artifact atomically: a temp file in the same directory is
// renamed over the target, so a failed run never leaves a partial model.
func (a *Artifact) Save(path string) error {
	if err := a.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to encode model artifact: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".car_model-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
