// Package harness runs test-vector scenarios against the cipher machine.
//
// A scenario names a key sheet, an input text, and what the machine must
// produce: the output text, optionally the final rotor window, and any
// number of assertions over the keystroke trace. Scenarios are YAML:
//
//	name: double_step
//	description: Middle rotor steps on two consecutive key presses
//	key:
//	  rotor_order: I,II,III
//	  ring_settings: 01,01,01
//	  rotor_positions: ADU
//	input: AAAA
//	expect:
//	  output: EQIB
//	  positions: BFY
//	assertions:
//	  - type: positions_at
//	    step: 2
//	    positions: AEW
//
// Every run builds a fresh machine, so scenarios are independent and can
// run in any order. The trace records one step per key press with a
// logical sequence number starting at 1; RunWithGolden compares its
// canonical JSON against testdata/golden.
package harness
