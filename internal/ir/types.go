package ir

// KeySheetRecord is the normalized raw form of a key sheet as stored in the
// journal. Replaying a message parses it again; nothing else about the
// machine is persisted.
type KeySheetRecord struct {
	PlugboardPairs string `json:"plugboard_pairs"`
	RingSettings   string `json:"ring_settings"`
	RotorOrder     string `json:"rotor_order"`
	RotorPositions string `json:"rotor_positions"`
}

// Object returns the record as a map suitable for MarshalCanonical.
func (r KeySheetRecord) Object() map[string]any {
	return map[string]any{
		"plugboard_pairs": r.PlugboardPairs,
		"ring_settings":   r.RingSettings,
		"rotor_order":     r.RotorOrder,
		"rotor_positions": r.RotorPositions,
	}
}

// Message is one enciphered (or deciphered) text as recorded in the journal.
type Message struct {
	ID           string         `json:"id"`
	Seq          int64          `json:"seq"`
	KeySheetHash string         `json:"keysheet_hash"`
	KeySheet     KeySheetRecord `json:"keysheet"`
	Input        string         `json:"input"`
	Output       string         `json:"output"`
}

// TraceStep records one keystroke: the letter pressed, the lamp that lit,
// and the rotor window after stepping.
type TraceStep struct {
	Seq       int64  `json:"seq"`
	In        string `json:"in"`
	Out       string `json:"out"`
	Positions string `json:"positions"`
}

// Object returns the step as a map suitable for MarshalCanonical.
func (s TraceStep) Object() map[string]any {
	return map[string]any{
		"seq":       s.Seq,
		"in":        s.In,
		"out":       s.Out,
		"positions": s.Positions,
	}
}
