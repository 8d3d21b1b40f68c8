package ir

// Version constants recorded alongside journaled messages.
const (
	// RecordVersion is the message record schema version.
	RecordVersion = "1"

	// MachineName identifies the simulated device.
	MachineName = "Enigma I"
)
