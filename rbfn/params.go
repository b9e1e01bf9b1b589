// SPDX-License-Identifier: MIT
package rbfn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/rbfn/matrix"
)

// SelectableGroups returns the parameter group labels in parameter-vector order.
func (m *Model) SelectableGroups() []string {
	return []string{GroupCenters, GroupWidths, GroupWeights}
}

// selects reports whether label is in selected.
func selects(selected []string, label string) bool {
	for _, s := range selected {
		if s == label {
			return true
		}
	}

	return false
}

// ParameterVectorMask returns one entry per parameter holding the group's mask
// id (MaskCenters, MaskWidths, MaskWeights) when the group is selected, else 0.
// Unknown labels are ignored.
func (m *Model) ParameterVectorMask(selected []string) []int {
	nc := m.centers.Rows() * m.centers.Cols()
	mask := make([]int, m.paramCount)

	fill := func(lo, hi, id int, label string) {
		if !selects(selected, label) {
			return
		}
		for i := lo; i < hi; i++ {
			mask[i] = id
		}
	}
	fill(0, nc, MaskCenters, GroupCenters)
	fill(nc, 2*nc, MaskWidths, GroupWidths)
	fill(2*nc, m.paramCount, MaskWeights, GroupWeights)

	return mask
}

// ParameterVectorAll returns all parameters as one flat vector:
// centers column by column, then widths column by column, then weights.
func (m *Model) ParameterVectorAll() []float64 {
	out := make([]float64, 0, m.paramCount)
	out = m.appendColumns(out, m.centers)
	out = m.appendColumns(out, m.widths)

	return m.appendColumns(out, m.weights)
}

// appendColumns appends d to dst column by column.
func (m *Model) appendColumns(dst []float64, d *matrix.Dense) []float64 {
	for j := 0; j < d.Cols(); j++ {
		m.colBuf, _ = d.Col(j, m.colBuf) // j is in range
		dst = append(dst, m.colBuf...)
	}

	return dst
}

// SetParameterVectorAll overwrites every parameter from values, laid out as in
// ParameterVectorAll.
//
// Cache policy: the activation cache is cleared when any centers or widths
// column actually changes value. Weight changes never clear it.
//
// Errors:
//   - ErrParameterVectorSize when len(values) != ParameterCount(). The model
//     is left unchanged and a diagnostic is logged.
func (m *Model) SetParameterVectorAll(values []float64) error {
	if len(values) != m.paramCount {
		m.logger.Printf("SetParameterVectorAll: got %d values, want %d; model unchanged", len(values), m.paramCount)

		return fmt.Errorf("rbfn.SetParameterVectorAll: got %d, want %d: %w", len(values), m.paramCount, ErrParameterVectorSize)
	}

	n := m.centers.Rows() * m.centers.Cols()
	kernelsChanged := false
	for i, d := range []*matrix.Dense{m.centers, m.widths, m.weights} {
		lo := i * n
		hi := lo + d.Rows()*d.Cols()
		changed, err := m.setColumns(d, values[lo:hi])
		if err != nil {
			return fmt.Errorf("rbfn.SetParameterVectorAll: %w", err)
		}
		if d != m.weights {
			kernelsChanged = kernelsChanged || changed
		}
	}
	if kernelsChanged {
		m.cache.Clear()
	}

	return nil
}

// setColumns writes the column-major src into d, skipping columns whose
// values are unchanged, and reports whether any column was written.
func (m *Model) setColumns(d *matrix.Dense, src []float64) (bool, error) {
	rows := d.Rows()
	changed := false
	for j := 0; j < d.Cols(); j++ {
		col := src[j*rows : (j+1)*rows]
		m.colBuf, _ = d.Col(j, m.colBuf) // j is in range
		if floats.Equal(m.colBuf, col) {
			continue
		}
		if err := d.SetCol(j, col); err != nil {
			return changed, err
		}
		changed = true
	}

	return changed, nil
}

// ParameterVectorSelected returns the parameters of the selected groups, in
// parameter-vector order.
func (m *Model) ParameterVectorSelected(selected []string) []float64 {
	all := m.ParameterVectorAll()
	mask := m.ParameterVectorMask(selected)
	out := make([]float64, 0, len(all))
	for i, id := range mask {
		if id != 0 {
			out = append(out, all[i])
		}
	}

	return out
}

// SetParameterVectorSelected overwrites only the parameters of the selected
// groups. The cache policy of SetParameterVectorAll applies.
//
// Errors:
//   - ErrParameterVectorSize when len(values) does not match the selection.
func (m *Model) SetParameterVectorSelected(selected []string, values []float64) error {
	all := m.ParameterVectorAll()
	mask := m.ParameterVectorMask(selected)

	n := 0
	for _, id := range mask {
		if id != 0 {
			n++
		}
	}
	if len(values) != n {
		m.logger.Printf("SetParameterVectorSelected: got %d values, want %d; model unchanged", len(values), n)

		return fmt.Errorf("rbfn.SetParameterVectorSelected: got %d, want %d: %w", len(values), n, ErrParameterVectorSize)
	}

	k := 0
	for i, id := range mask {
		if id != 0 {
			all[i] = values[k]
			k++
		}
	}

	return m.SetParameterVectorAll(all)
}
