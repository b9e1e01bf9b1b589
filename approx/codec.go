// SPDX-License-Identifier: MIT
package approx

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/rbfn/layout"
	"github.com/katalvlaran/rbfn/matrix"
	"github.com/katalvlaran/rbfn/rbfn"
)

// RecordTag identifies an approximator record for foreign dynamic deserializers.
const RecordTag = "functionapproximators.FunctionApproximatorRBFN.FunctionApproximatorRBFN"

// record is the interop shape of an RBFN; either part may be absent.
type record struct {
	PyObject    string          `json:"py/object,omitempty"`
	MetaParams  json.RawMessage `json:"_meta_params,omitempty"`
	ModelParams json.RawMessage `json:"_model_params,omitempty"`
}

// MarshalJSON encodes the layout under "_meta_params" and the trained model
// under "_model_params", omitting whichever is missing.
func (r *RBFN) MarshalJSON() ([]byte, error) {
	rec := record{PyObject: RecordTag}
	var err error
	if r.spec != nil {
		if rec.MetaParams, err = json.Marshal(r.spec); err != nil {
			return nil, fmt.Errorf("approx: encode: %w", err)
		}
	}
	if r.model != nil {
		if rec.ModelParams, err = json.Marshal(r.model); err != nil {
			return nil, fmt.Errorf("approx: encode: %w", err)
		}
	}

	return json.Marshal(rec)
}

// UnmarshalJSON decodes an approximator record with default options.
func (r *RBFN) UnmarshalJSON(data []byte) error {
	dec, err := Decode(data)
	if err != nil {
		return err
	}
	*r = *dec

	return nil
}

// Decode reads an approximator record. A record with "_model_params" yields a
// trained approximator.
//
// Errors: matrix.ErrBadRecord when both parts are missing, plus the layout and
// rbfn decoding errors.
func Decode(data []byte, opts ...Option) (*RBFN, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("approx: decode: %w", err)
	}
	if isAbsent(rec.MetaParams) && isAbsent(rec.ModelParams) {
		return nil, fmt.Errorf("approx: decode: %w: no \"_meta_params\" or \"_model_params\"", matrix.ErrBadRecord)
	}

	o := gatherOptions(opts...)
	r := &RBFN{logger: o.Logger, modelOpts: o.ModelOptions}
	if !isAbsent(rec.MetaParams) {
		var spec layout.Spec
		if err := json.Unmarshal(rec.MetaParams, &spec); err != nil {
			return nil, fmt.Errorf("approx: decode: %w", err)
		}
		r.spec = &spec
	}
	if !isAbsent(rec.ModelParams) {
		m, err := rbfn.Decode(rec.ModelParams, o.ModelOptions...)
		if err != nil {
			return nil, fmt.Errorf("approx: decode: %w", err)
		}
		r.setModel(m)
	}

	return r, nil
}

// isAbsent reports whether a raw field was omitted or null.
func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
