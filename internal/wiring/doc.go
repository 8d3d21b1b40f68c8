// Package wiring holds the fixed permutation tables of the Enigma I: the
// five interchangeable rotors with their turnover letters, and reflector B.
//
// Tables are built once at package initialization and exposed only through
// read-only accessors. Every table is checked to be a bijection over the
// 26-letter alphabet; a malformed table panics at init.
//
// This package imports nothing internal.
package wiring
