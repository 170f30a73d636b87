// Package align merges independently-parsed spectra onto one shared
// wavelength axis with strict inner-join semantics.
package align

import (
	"errors"
	"fmt"

	"github.com/specplot/specplot/pkg/spectrum"
)

// ErrNoSpectra indicates an empty input set.
var ErrNoSpectra = errors.New("nothing to align")

// ErrNoOverlap indicates the key intersection became empty. This is the
// typical failure when files use different wavelength grids.
var ErrNoOverlap = errors.New("no overlapping keys across all inputs")

// Column is one value series, aligned index-for-index with Table.Keys.
type Column struct {
	Name   string
	Values []float64
}

// Table is the aligned result: one shared key column plus one value
// column per input spectrum. len(Keys) == len(c.Values) for every
// column, and every key is present in all contributing spectra.
type Table struct {
	Keys    []float64
	Columns []Column
}

// Rows returns the number of aligned rows.
func (t *Table) Rows() int {
	return len(t.Keys)
}

// Column returns the named column, or nil if absent.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// Align joins the spectra on their x-values. The key column is seeded
// from the first spectrum in its original file order; each spectrum is
// then inner-joined against the running result.
//
// Duplicate x-values are pinned first-occurrence-wins, both in the seed
// order and in each spectrum's key lookup. Derived-name collisions are
// auto-suffixed ("sample", "sample-2", ...) in input order.
//
// Align is a pure function of its input: identical spectra always
// produce an identical table.
func Align(spectra []*spectrum.Spectrum) (*Table, error) {
	if len(spectra) == 0 {
		return nil, ErrNoSpectra
	}

	keys := seedKeys(spectra[0])
	table := &Table{Columns: make([]Column, 0, len(spectra))}
	used := make(map[string]bool, len(spectra))

	for _, sp := range spectra {
		lookup := keyLookup(sp)

		// Intersect the running keys with this spectrum's keys,
		// shrinking every already-joined column in lockstep.
		kept := keys[:0]
		keptIdx := make([]int, 0, len(keys))
		for i, k := range keys {
			if _, ok := lookup[k]; ok {
				kept = append(kept, k)
				keptIdx = append(keptIdx, i)
			}
		}
		if len(kept) == 0 {
			return nil, ErrNoOverlap
		}
		if len(kept) < len(keys) {
			for ci := range table.Columns {
				table.Columns[ci].Values = pick(table.Columns[ci].Values, keptIdx)
			}
		}
		keys = kept

		values := make([]float64, len(keys))
		for i, k := range keys {
			values[i] = lookup[k]
		}
		table.Columns = append(table.Columns, Column{
			Name:   uniqueName(used, sp.Name),
			Values: values,
		})
	}

	table.Keys = keys
	return table, nil
}

// seedKeys returns the first spectrum's x-values in file order,
// deduplicated keeping the first occurrence.
func seedKeys(sp *spectrum.Spectrum) []float64 {
	keys := make([]float64, 0, len(sp.Points))
	seen := make(map[float64]bool, len(sp.Points))
	for _, pt := range sp.Points {
		if seen[pt.X] {
			continue
		}
		seen[pt.X] = true
		keys = append(keys, pt.X)
	}
	return keys
}

// keyLookup builds the x -> y map for one spectrum, first-write-wins.
func keyLookup(sp *spectrum.Spectrum) map[float64]float64 {
	lookup := make(map[float64]float64, len(sp.Points))
	for _, pt := range sp.Points {
		if _, ok := lookup[pt.X]; !ok {
			lookup[pt.X] = pt.Y
		}
	}
	return lookup
}

// pick returns the values at the given indexes, in order.
func pick(values []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = values[j]
	}
	return out
}

// uniqueName suffixes duplicate derived names so a second upload of the
// same file name does not silently overwrite the first.
func uniqueName(used map[string]bool, name string) string {
	candidate := name
	for n := 2; used[candidate]; n++ {
		candidate = fmt.Sprintf("%s-%d", name, n)
	}
	used[candidate] = true
	return candidate
}
