package booking

type Status string

const (
	StatusIdle      Status = "IDLE"
	StatusPending   Status = "PENDING"
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
)

// Submission is the UI-visible outcome of the latest submit attempt. A new
// attempt implicitly resets it; Failed is terminal only until the next click.
type Submission struct {
	Status Status
	Reason string
}

func (s Submission) Terminal() bool {
	return s.Status == StatusSucceeded || s.Status == StatusFailed
}
