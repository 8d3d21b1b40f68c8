package keylist

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/enigma/internal/keysheet"
)

// MinDay and MaxDay bound the day numbers a key list may contain.
const (
	MinDay = 1
	MaxDay = 31
)

// ErrDayNotFound is returned by Sheet when the list has no entry for a day.
var ErrDayNotFound = errors.New("day not in key list")

// Entry is one day's settings as written in the document.
type Entry struct {
	Day            int    `yaml:"day"`
	RotorOrder     string `yaml:"rotor_order"`
	RingSettings   string `yaml:"ring_settings"`
	PlugboardPairs string `yaml:"plugboard_pairs"`
	RotorPositions string `yaml:"rotor_positions"`
}

// Raw returns the entry as key sheet input.
func (e Entry) Raw() keysheet.Raw {
	return keysheet.Raw{
		PlugboardPairs: e.PlugboardPairs,
		RingSettings:   e.RingSettings,
		RotorOrder:     e.RotorOrder,
		RotorPositions: e.RotorPositions,
	}
}

// document is the on-disk shape shared by YAML and CUE.
type document struct {
	Name string  `yaml:"name"`
	Days []Entry `yaml:"days"`
}

// List is a loaded and validated key list.
type List struct {
	Name   string
	Source string
	sheets map[int]*keysheet.KeySheet
}

// EntryError reports a problem with one day of a key list.
type EntryError struct {
	Day int
	Err error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("day %d: %v", e.Day, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// Load reads a key list file. The format is chosen by extension: .yaml and
// .yml are YAML, .cue is CUE.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key list: %w", err)
	}

	var doc *document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		doc, err = decodeYAML(data)
	case ".cue":
		doc, err = decodeCUE(path, data)
	default:
		return nil, fmt.Errorf("key list %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("key list %s: %w", path, err)
	}

	list, err := build(doc)
	if err != nil {
		return nil, fmt.Errorf("key list %s: %w", path, err)
	}
	list.Source = path
	return list, nil
}

func decodeYAML(data []byte) (*document, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &doc, nil
}

// build validates every entry and indexes the sheets by day.
func build(doc *document) (*List, error) {
	if len(doc.Days) == 0 {
		return nil, errors.New("no days listed")
	}

	list := &List{
		Name:   doc.Name,
		sheets: make(map[int]*keysheet.KeySheet, len(doc.Days)),
	}
	for _, entry := range doc.Days {
		if entry.Day < MinDay || entry.Day > MaxDay {
			return nil, &EntryError{Day: entry.Day, Err: fmt.Errorf("day must be between %d and %d", MinDay, MaxDay)}
		}
		if _, dup := list.sheets[entry.Day]; dup {
			return nil, &EntryError{Day: entry.Day, Err: errors.New("duplicate day")}
		}
		ks, err := keysheet.Parse(entry.Raw())
		if err != nil {
			return nil, &EntryError{Day: entry.Day, Err: err}
		}
		list.sheets[entry.Day] = ks
	}
	return list, nil
}

// Sheet returns the key sheet for a day.
func (l *List) Sheet(day int) (*keysheet.KeySheet, error) {
	ks, ok := l.sheets[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrDayNotFound, day)
	}
	return ks, nil
}

// Days returns the listed days in ascending order.
func (l *List) Days() []int {
	days := make([]int, 0, len(l.sheets))
	for day := range l.sheets {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}
