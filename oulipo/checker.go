package oulipo

// BatchChecker runs an ordered list of already-constructed constraints
// against one text. Heterogeneous rules mix freely.
type BatchChecker struct {
	constraints []Constraint
}

// NewBatchChecker creates an empty batch checker.
func NewBatchChecker() *BatchChecker {
	return &BatchChecker{}
}

// Add appends a constraint to the batch.
func (b *BatchChecker) Add(c Constraint) {
	b.constraints = append(b.constraints, c)
}

// CheckAll runs every constraint against text and returns all results in
// registration order. It does not short-circuit, so partial failures stay
// fully visible.
func (b *BatchChecker) CheckAll(text string) ([]*ConstraintResult, error) {
	results := make([]*ConstraintResult, 0, len(b.constraints))
	for _, c := range b.constraints {
		result, err := c.Check(text)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// CheckAllPass reports whether text passes every constraint, returning false
// as soon as one fails.
func (b *BatchChecker) CheckAllPass(text string) (bool, error) {
	for _, c := range b.constraints {
		result, err := c.Check(text)
		if err != nil {
			return false, err
		}
		if !result.Success {
			return false, nil
		}
	}
	return true, nil
}
