package domain

import (
	"encoding/json"
	"fmt"
)

// RunStatus is the terminal status of a run
type RunStatus string

// run statuses
const (
	RunDone  RunStatus = "done"
	RunError RunStatus = "error"
)

// RunOutcome is the single message produced by a run.
// It is either {status: done, count} or {status: error, error}.
type RunOutcome struct {
	Status RunStatus `json:"status"`
	Count  int       `json:"count,omitempty"`
	Error  string    `json:"error,omitempty"`
}

// Done makes a successful outcome
func Done(count int) RunOutcome {
	return RunOutcome{Status: RunDone, Count: count}
}

// Failed makes an error outcome
func Failed(err error) RunOutcome {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return RunOutcome{Status: RunError, Error: msg}
}

// OK reports whether the run completed
func (o RunOutcome) OK() bool {
	return o.Status == RunDone
}

func (o RunOutcome) String() string {
	if o.OK() {
		return fmt.Sprintf("done, %d articles", o.Count)
	}
	return fmt.Sprintf("error, %s", o.Error)
}

// MarshalJSON keeps count in a done outcome even when it is zero and drops it from an error outcome
func (o RunOutcome) MarshalJSON() ([]byte, error) {
	if o.OK() {
		return json.Marshal(struct {
			Status RunStatus `json:"status"`
			Count  int       `json:"count"`
		}{Status: o.Status, Count: o.Count})
	}
	return json.Marshal(struct {
		Status RunStatus `json:"status"`
		Error  string    `json:"error"`
	}{Status: o.Status, Error: o.Error})
}
