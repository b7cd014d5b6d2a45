package harness

// TraceEvent is one command of the sent batch and sway's reply to it.
type TraceEvent struct {
	Seq     int    `json:"seq"`
	Command string `json:"command"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true if every assertion held.
	Pass bool `json:"pass"`

	// BatchID is the history ID of the sent batch.
	BatchID string `json:"batch_id"`

	// Payload is the rendered command list exactly as sent.
	Payload string `json:"payload"`

	// Trace holds the sent commands in order, whitespace-normalized.
	Trace []TraceEvent `json:"trace"`

	// Errors contains assertion failures. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends the next sent command.
func (r *Result) AddTrace(command string, success bool, errMsg string) {
	r.Trace = append(r.Trace, TraceEvent{
		Seq:     len(r.Trace),
		Command: command,
		Success: success,
		Error:   errMsg,
	})
}
