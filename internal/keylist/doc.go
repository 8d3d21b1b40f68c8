// Package keylist loads monthly key lists: one key sheet per day of the
// month, written as YAML or CUE.
//
// A YAML key list:
//
//	name: Heeres-Maschinenschlüssel Juni
//	days:
//	  - day: 1
//	    rotor_order: II,IV,V
//	    ring_settings: 02,21,12
//	    plugboard_pairs: AV,BS,CG,DL,FU,HZ,IN,KM,OW,RX
//	    rotor_positions: BLA
//
// The CUE form has the same shape. Every entry is validated with
// keysheet.Parse when the list is loaded.
package keylist
