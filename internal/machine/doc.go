// Package machine implements the Enigma I cipher engine: three stepping
// rotors, the plugboard, reflector B, and the stepping mechanism including
// the double-stepping anomaly of the middle rotor.
//
// Each KeyPress first advances the rotors, then routes the letter
//
//	plugboard -> right -> middle -> left -> reflector -> left -> middle -> right -> plugboard
//
// Rotors are modeled as a fixed wiring table plus an offset (window position
// minus ring setting); stepping only changes the offset. Rotor positions
// and notches are read as window letters, not as letters of the wiring table.
//
// A Machine is not safe for concurrent use. Each concurrent message stream
// needs its own Machine built from the same KeySheet.
package machine
