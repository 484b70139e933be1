package fourier

// State is the lifecycle state of a Controller.
type State int

const (
	// StateIdle means there is no path to show.
	StateIdle State = iota

	// StateRecording means pointer samples are being captured.
	StateRecording

	// StateComputing means the path is frozen and its coefficients are
	// being computed.
	StateComputing

	// StateReplaying means coefficients exist and the clock advances.
	StateReplaying
)

// String returns a lowercase name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateComputing:
		return "computing"
	case StateReplaying:
		return "replaying"
	default:
		return "unknown"
	}
}
