package mail

// Recorder provides a test-friendly sender that records messages.
//
// FailAt, when positive, makes the Nth Send call (1-based, counting every
// call including the failing one) return FailErr.
type Recorder struct {
	Outbox  []Message
	FailAt  int
	FailErr error

	calls int
}

// Send records the message in memory or fails per the configured schedule.
func (r *Recorder) Send(msg Message) error {
	r.calls++
	if r.FailAt > 0 && r.calls == r.FailAt && r.FailErr != nil {
		return r.FailErr
	}
	r.Outbox = append(r.Outbox, msg)
	return nil
}

// Calls reports how many times Send was invoked, successful or not.
func (r *Recorder) Calls() int { return r.calls }
