// SPDX-License-Identifier: MIT
package rbfn

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/rbfn/matrix"
)

// RecordTag identifies a model record for foreign dynamic deserializers.
// It is written but never interpreted on read.
const RecordTag = "functionapproximators.ModelParametersRBFN.ModelParametersRBFN"

// record is the interop shape of a Model. Older writers omitted the
// trailing underscore, so both spellings are read.
type record struct {
	PyObject string        `json:"py/object,omitempty"`
	Centers  *matrix.Dense `json:"centers_,omitempty"`
	Widths   *matrix.Dense `json:"widths_,omitempty"`
	Weights  *matrix.Dense `json:"weights_,omitempty"`

	LegacyCenters *matrix.Dense `json:"centers,omitempty"`
	LegacyWidths  *matrix.Dense `json:"widths,omitempty"`
	LegacyWeights *matrix.Dense `json:"weights,omitempty"`
}

// pick returns the first non-nil matrix or an ErrBadRecord naming key.
func pick(key string, cands ...*matrix.Dense) (*matrix.Dense, error) {
	for _, c := range cands {
		if c != nil {
			return c, nil
		}
	}

	return nil, fmt.Errorf("%w: missing %q", matrix.ErrBadRecord, key)
}

// MarshalJSON encodes the Model as
//
//	{"py/object": RecordTag, "centers_": ..., "widths_": ..., "weights_": ...}
//
// Runtime options (caching, hooks, logger) are not part of the record.
func (m *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(record{
		PyObject: RecordTag,
		Centers:  m.centers,
		Widths:   m.widths,
		Weights:  m.weights,
	})
}

// UnmarshalJSON decodes a model record with default options.
func (m *Model) UnmarshalJSON(data []byte) error {
	dec, err := Decode(data)
	if err != nil {
		return err
	}
	*m = *dec

	return nil
}

// Decode reads a model record and builds a Model with opts. Weights may be
// stored as a flat array. All New checks apply.
//
// Errors: matrix.ErrBadRecord for malformed or missing arrays, plus New's sentinels.
func Decode(data []byte, opts ...Option) (*Model, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("rbfn: decode: %w", err)
	}

	centers, err := pick("centers_", rec.Centers, rec.LegacyCenters)
	if err != nil {
		return nil, fmt.Errorf("rbfn: decode: %w", err)
	}
	widths, err := pick("widths_", rec.Widths, rec.LegacyWidths)
	if err != nil {
		return nil, fmt.Errorf("rbfn: decode: %w", err)
	}
	weights, err := pick("weights_", rec.Weights, rec.LegacyWeights)
	if err != nil {
		return nil, fmt.Errorf("rbfn: decode: %w", err)
	}

	m, err := New(centers, widths, weights, opts...)
	if err != nil {
		return nil, fmt.Errorf("rbfn: decode: %w", err)
	}

	return m, nil
}
