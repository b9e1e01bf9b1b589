// SPDX-License-Identifier: MIT

// Package matrix - numeric-array record codec.
//
// Purpose:
//   - Encode Dense, Vector and IntVector as the array record shared with the
//     foreign numeric-array convention: {"py/object": "numpy.ndarray", "dtype": ..., "values": ...}.
//   - Decode only "values"; the tag and dtype are write-only metadata.
//
// Behavior highlights:
//   - A Dense decodes from a 2-D array, or from a 1-D array as an n×1 column.
//   - Empty or ragged arrays are rejected (ErrInvalidDimensions / ErrDimensionMismatch).
package matrix

import (
	"encoding/json"
	"fmt"
)

// Record tags written alongside every array.
const (
	ArrayTag   = "numpy.ndarray"
	DTypeFloat = "float64"
	DTypeInt   = "int64"
)

// arrayRecord is the wire shape for encoding.
type arrayRecord struct {
	PyObject string      `json:"py/object"`
	DType    string      `json:"dtype"`
	Values   interface{} `json:"values"`
}

// arrayValues is the wire shape for decoding; everything but "values" is ignored.
type arrayValues struct {
	Values json.RawMessage `json:"values"`
}

// readValues extracts the raw "values" payload or returns ErrBadRecord.
func readValues(data []byte) (json.RawMessage, error) {
	var rec arrayValues
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	if len(rec.Values) == 0 || string(rec.Values) == "null" {
		return nil, fmt.Errorf("%w: missing \"values\"", ErrBadRecord)
	}

	return rec.Values, nil
}

// MarshalJSON encodes m as a 2-D float array record.
func (m *Dense) MarshalJSON() ([]byte, error) {
	return json.Marshal(arrayRecord{PyObject: ArrayTag, DType: DTypeFloat, Values: m.ToRows()})
}

// UnmarshalJSON decodes a 2-D (or 1-D column) float array record into m.
// The receiver adopts the default numeric policy.
func (m *Dense) UnmarshalJSON(data []byte) error {
	raw, err := readValues(data)
	if err != nil {
		return err
	}

	var rows [][]float64
	if err = json.Unmarshal(raw, &rows); err != nil {
		var flat []float64
		if errFlat := json.Unmarshal(raw, &flat); errFlat != nil {
			return fmt.Errorf("%w: %v", ErrBadRecord, err)
		}
		col, errCol := NewColumn(flat)
		if errCol != nil {
			return errCol
		}
		*m = *col

		return nil
	}

	dec, err := NewDenseFromRows(rows)
	if err != nil {
		return err
	}
	*m = *dec

	return nil
}

// Vector is a 1-D float array with record encoding.
type Vector []float64

// MarshalJSON encodes v as a 1-D float array record.
func (v Vector) MarshalJSON() ([]byte, error) {
	vals := []float64(v)
	if vals == nil {
		vals = []float64{}
	}

	return json.Marshal(arrayRecord{PyObject: ArrayTag, DType: DTypeFloat, Values: vals})
}

// UnmarshalJSON decodes a 1-D float array record.
func (v *Vector) UnmarshalJSON(data []byte) error {
	raw, err := readValues(data)
	if err != nil {
		return err
	}
	var vals []float64
	if err = json.Unmarshal(raw, &vals); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	*v = vals

	return nil
}

// IntVector is a 1-D integer array with record encoding.
type IntVector []int

// MarshalJSON encodes v as a 1-D int array record.
func (v IntVector) MarshalJSON() ([]byte, error) {
	vals := []int(v)
	if vals == nil {
		vals = []int{}
	}

	return json.Marshal(arrayRecord{PyObject: ArrayTag, DType: DTypeInt, Values: vals})
}

// UnmarshalJSON decodes a 1-D int array record.
func (v *IntVector) UnmarshalJSON(data []byte) error {
	raw, err := readValues(data)
	if err != nil {
		return err
	}
	var vals []int
	if err = json.Unmarshal(raw, &vals); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	*v = vals

	return nil
}
