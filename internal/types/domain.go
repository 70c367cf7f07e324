package types

// Envelope is the dual-mode result of every endpoint call. Exactly one
// field is populated: Raw when DecodeJSON was false, Decoded otherwise.
// Decoded holds the structured value the response body parsed to
// (a mapping or an array); an unparsable body decodes to an empty
// mapping rather than an error.
type Envelope struct {
	Raw     string
	Decoded any
}

// RunStatus is the lifecycle status of a run on the remote service.
type RunStatus string

const (
	RunStatusInitialized RunStatus = "initialized"
	RunStatusQueued      RunStatus = "queued"
	RunStatusRunning     RunStatus = "running"
	RunStatusCancelled   RunStatus = "cancelled"
	RunStatusComplete    RunStatus = "complete"
	RunStatusError       RunStatus = "error"
)

// Terminal reports whether the run will make no further progress.
func (s RunStatus) Terminal() bool {
	switch s {
	case RunStatusCancelled, RunStatusComplete, RunStatusError:
		return true
	}
	return false
}

// Run is a convenience view of a decoded run envelope: the token/status
// pair every run payload carries.
type Run struct {
	RunToken string
	Status   RunStatus
}

// RunFromEnvelope extracts the token/status pair from a decoded run
// envelope. Returns nil when the envelope was not decoded or carries no
// status field.
func RunFromEnvelope(env *Envelope) *Run {
	m, ok := env.Decoded.(map[string]any)
	if !ok {
		return nil
	}
	status, ok := m["status"].(string)
	if !ok {
		return nil
	}
	run := &Run{Status: RunStatus(status)}
	if tok, ok := m["run_token"].(string); ok {
		run.RunToken = tok
	} else if tok, ok := m["token"].(string); ok {
		run.RunToken = tok
	}
	return run
}
