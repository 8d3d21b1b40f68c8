// Package operator is the cipher clerk's side of the machine: it folds free
// text to the 26 machine letters, runs a freshly keyed machine over it,
// groups the result for transmission, and records the message in the
// journal when one is configured.
//
// Every Transmit builds a new Machine from the key sheet. Rotor state never
// outlives a message.
package operator
