package entity

// Prediction is the pipeline's result for one listing.
type Prediction struct {
	// Price is the estimated selling price, clamped to be non-negative and
	// rounded to two decimals.
	Price float64

	// PresentPrice echoes the listing's showroom price for display.
	PresentPrice float64

	// Fallbacks records the categorical columns whose value was unseen at
	// training time and therefore encoded as 0. The key is the column name,
	// the value the rejected input. An empty map means every category was
	// known. Degradation is deliberate: an out-of-catalog value must not fail
	// the request, but callers can observe that it happened.
	Fallbacks map[string]string
}

// Degraded reports whether any categorical value fell back to the default code.
func (p *Prediction) Degraded() bool {
	return len(p.Fallbacks) > 0
}
