package layout

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/rbfn/matrix"
)

// RecordTag identifies a layout record for foreign dynamic deserializers.
// It is written but never interpreted on read.
const RecordTag = "functionapproximators.MetaParametersRBFN.MetaParametersRBFN"

// record is the interop shape of a Spec.
type record struct {
	PyObject              string           `json:"py/object,omitempty"`
	NBasisFunctionsPerDim matrix.IntVector `json:"n_basis_functions_per_dim"`
	IntersectionHeight    float64          `json:"intersection_height"`
	Regularization        float64          `json:"regularization"`
	CentersPerDim         []matrix.Vector  `json:"centers_per_dim,omitempty"`
}

// MarshalJSON encodes the Spec as
//
//	{"py/object": RecordTag, "n_basis_functions_per_dim": {"values": [...]},
//	 "intersection_height": h, "regularization": r}
//
// An explicit-centers Spec also writes "centers_per_dim" so that it survives a round trip.
func (s *Spec) MarshalJSON() ([]byte, error) {
	rec := record{
		PyObject:              RecordTag,
		NBasisFunctionsPerDim: matrix.IntVector(s.Counts()),
		IntersectionHeight:    s.intersectionHeight,
		Regularization:        s.regularization,
	}
	for _, cs := range s.centersPerDim {
		rec.CentersPerDim = append(rec.CentersPerDim, matrix.Vector(cs))
	}

	return json.Marshal(rec)
}

// UnmarshalJSON decodes a layout record. The input dimensionality is the
// length of n_basis_functions_per_dim; "py/object" is ignored. All
// construction checks apply, so a malformed record yields the same sentinels
// as the constructors.
func (s *Spec) UnmarshalJSON(data []byte) error {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("layout: decode: %w", err)
	}
	opts := []Option{
		WithIntersectionHeight(rec.IntersectionHeight),
		WithRegularization(rec.Regularization),
	}

	var (
		dec *Spec
		err error
	)
	if len(rec.CentersPerDim) > 0 {
		centers := make([][]float64, len(rec.CentersPerDim))
		for d, cs := range rec.CentersPerDim {
			centers[d] = cs
		}
		dec, err = NewFromCenters(len(centers), centers, opts...)
	} else {
		dec, err = NewFromCounts(len(rec.NBasisFunctionsPerDim), rec.NBasisFunctionsPerDim, opts...)
	}
	if err != nil {
		return fmt.Errorf("layout: decode: %w", err)
	}
	*s = *dec

	return nil
}
