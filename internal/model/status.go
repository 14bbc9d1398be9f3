package model

// Status is a workload run-state as reported by the API.
type Status string

const (
	StatusRunning    Status = "running"
	StatusExited     Status = "exited"
	StatusStopped    Status = "stopped"
	StatusDead       Status = "dead"
	StatusRestarting Status = "restarting"
	StatusCreated    Status = "created"
	StatusPaused     Status = "paused"
	StatusUnknown    Status = "unknown"
)

var knownStatuses = map[Status]bool{
	StatusRunning:    true,
	StatusExited:     true,
	StatusStopped:    true,
	StatusDead:       true,
	StatusRestarting: true,
	StatusCreated:    true,
	StatusPaused:     true,
}

// ClassifyStatus maps a raw run-state string onto the known status set.
// Anything unrecognized becomes StatusUnknown rather than an error.
func ClassifyStatus(raw string) Status {
	s := Status(raw)
	if knownStatuses[s] {
		return s
	}
	return StatusUnknown
}
