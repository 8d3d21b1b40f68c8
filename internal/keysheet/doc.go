// Package keysheet turns the four raw configuration strings of a daily key
// (Steckerbrett, Ringstellung, Walzenlage, Grundstellung) into a validated,
// immutable KeySheet.
//
// Parsing is all-or-nothing: either every field validates and a KeySheet is
// returned, or a *ValidationError names the first field that failed. Nothing
// is partially applied. Validate reports one error per failing field, which
// the CLI uses to show everything wrong with a key at once.
package keysheet
