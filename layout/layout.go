package layout

import "fmt"

// Spec describes a kernel layout compactly: the expected input dimensionality,
// either explicit per-dimension center coordinates or per-dimension kernel
// counts, and the scalar hyperparameters.
//
// A Spec is immutable after construction and safe for concurrent reads.
type Spec struct {
	inputDim           int
	counts             []int       // nil when centersPerDim is set
	centersPerDim      [][]float64 // nil when counts is set
	intersectionHeight float64
	regularization     float64
}

// NewFromCounts builds a Spec that places counts[d] kernels evenly over the
// domain of dimension d, once the domain is known (see CentersAndWidths).
//
// Errors:
//   - ErrInputDim           - inputDim <= 0.
//   - ErrDimensionMismatch  - len(counts) != inputDim.
//   - ErrBadCount           - some counts[d] <= 0.
//   - ErrOptionViolation    - an Option was invalid (wraps the specific sentinel).
func NewFromCounts(inputDim int, counts []int, opts ...Option) (*Spec, error) {
	if inputDim <= 0 {
		return nil, ErrInputDim
	}
	if len(counts) != inputDim {
		return nil, fmt.Errorf("NewFromCounts: %d counts for %d dims: %w", len(counts), inputDim, ErrDimensionMismatch)
	}
	for d, k := range counts {
		if k <= 0 {
			return nil, fmt.Errorf("NewFromCounts: dim %d has %d kernels: %w", d, k, ErrBadCount)
		}
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &Spec{
		inputDim:           inputDim,
		counts:             append([]int(nil), counts...),
		intersectionHeight: o.IntersectionHeight,
		regularization:     o.Regularization,
	}, nil
}

// NewFromCenters builds a Spec with explicit per-dimension center coordinates.
// Domain bounds passed to CentersAndWidths are ignored for such a Spec.
//
// Errors:
//   - ErrInputDim, ErrDimensionMismatch, ErrEmptyCenters, ErrOptionViolation.
func NewFromCenters(inputDim int, centersPerDim [][]float64, opts ...Option) (*Spec, error) {
	if inputDim <= 0 {
		return nil, ErrInputDim
	}
	if len(centersPerDim) != inputDim {
		return nil, fmt.Errorf("NewFromCenters: %d center lists for %d dims: %w", len(centersPerDim), inputDim, ErrDimensionMismatch)
	}
	for d, cs := range centersPerDim {
		if len(cs) == 0 {
			return nil, fmt.Errorf("NewFromCenters: dim %d: %w", d, ErrEmptyCenters)
		}
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &Spec{
		inputDim:           inputDim,
		centersPerDim:      copyNested(centersPerDim),
		intersectionHeight: o.IntersectionHeight,
		regularization:     o.Regularization,
	}, nil
}

// NewUniform is the one-dimensional shorthand for NewFromCounts(1, []int{nBasis}, opts...).
func NewUniform(nBasis int, opts ...Option) (*Spec, error) {
	return NewFromCounts(1, []int{nBasis}, opts...)
}

// InputDim returns the expected input dimensionality.
func (s *Spec) InputDim() int { return s.inputDim }

// IntersectionHeight returns the kernel intersection height.
func (s *Spec) IntersectionHeight() float64 { return s.intersectionHeight }

// Regularization returns the ridge term.
func (s *Spec) Regularization() float64 { return s.regularization }

// HasExplicitCenters reports whether the Spec was built from explicit centers.
func (s *Spec) HasExplicitCenters() bool { return s.centersPerDim != nil }

// Counts returns a copy of the per-dimension kernel counts. For an explicit
// centers Spec the counts are the lengths of the center lists.
func (s *Spec) Counts() []int {
	if s.counts != nil {
		return append([]int(nil), s.counts...)
	}
	out := make([]int, len(s.centersPerDim))
	for d, cs := range s.centersPerDim {
		out[d] = len(cs)
	}

	return out
}

// CentersPerDim returns a copy of the explicit center lists, or nil for a counts Spec.
func (s *Spec) CentersPerDim() [][]float64 {
	if s.centersPerDim == nil {
		return nil
	}

	return copyNested(s.centersPerDim)
}

// NumBasisFunctions returns the number of kernels in the full grid (Π counts).
func (s *Spec) NumBasisFunctions() int {
	n := 1
	for _, k := range s.Counts() {
		n *= k
	}

	return n
}

// Clone returns an independent value copy.
func (s *Spec) Clone() *Spec {
	cp := *s
	if s.counts != nil {
		cp.counts = append([]int(nil), s.counts...)
	}
	if s.centersPerDim != nil {
		cp.centersPerDim = copyNested(s.centersPerDim)
	}

	return &cp
}

// copyNested deep-copies a ragged [][]float64.
func copyNested(in [][]float64) [][]float64 {
	out := make([][]float64, len(in))
	for i, row := range in {
		out[i] = append([]float64(nil), row...)
	}

	return out
}
