package keylist

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// decodeCUE evaluates a CUE key list and walks it into a document.
func decodeCUE(filename string, data []byte) (*document, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	doc := &document{}
	if name := v.LookupPath(cue.ParsePath("name")); name.Exists() {
		s, err := name.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		doc.Name = s
	}

	days := v.LookupPath(cue.ParsePath("days"))
	if !days.Exists() {
		return nil, fmt.Errorf("days is required")
	}
	iter, err := days.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for iter.Next() {
		entry, err := decodeCUEEntry(iter.Value())
		if err != nil {
			return nil, err
		}
		doc.Days = append(doc.Days, entry)
	}
	return doc, nil
}

func decodeCUEEntry(v cue.Value) (Entry, error) {
	var entry Entry

	dayVal := v.LookupPath(cue.ParsePath("day"))
	if !dayVal.Exists() {
		return entry, fmt.Errorf("%s: day is required", v.Pos())
	}
	day, err := dayVal.Int64()
	if err != nil {
		return entry, formatCUEError(err)
	}
	entry.Day = int(day)

	fields := []struct {
		name string
		dst  *string
	}{
		{"rotor_order", &entry.RotorOrder},
		{"ring_settings", &entry.RingSettings},
		{"plugboard_pairs", &entry.PlugboardPairs},
		{"rotor_positions", &entry.RotorPositions},
	}

	iter, err := v.Fields()
	if err != nil {
		return entry, formatCUEError(err)
	}
	known := map[string]bool{"day": true}
	for _, f := range fields {
		known[f.name] = true
	}
	for iter.Next() {
		if !known[iter.Label()] {
			return entry, fmt.Errorf("day %d: unknown field %q", entry.Day, iter.Label())
		}
	}

	for _, f := range fields {
		fv := v.LookupPath(cue.ParsePath(f.name))
		if !fv.Exists() {
			continue
		}
		s, err := fv.String()
		if err != nil {
			return entry, formatCUEError(err)
		}
		*f.dst = s
	}
	return entry, nil
}

// formatCUEError keeps the first error and prefixes its position.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		pos := positions[0]
		return fmt.Errorf("%s:%d:%d: %w", pos.Filename(), pos.Line(), pos.Column(), first)
	}
	return first
}
