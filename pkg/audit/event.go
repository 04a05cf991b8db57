// Package audit provides audit logging for network template changes.
package audit

import (
	"fmt"
	"time"
)

// Event records one auditable dashboard mutation
type Event struct {
	ID            string        `json:"id"`
	Timestamp     time.Time     `json:"timestamp"`
	User          string        `json:"user"`
	Organization  string        `json:"organization,omitempty"`
	Network       string        `json:"network"`
	NetworkName   string        `json:"network_name,omitempty"`
	Operation     string        `json:"operation"`
	FromTemplate  string        `json:"from_template,omitempty"`
	ToTemplate    string        `json:"to_template,omitempty"`
	RestoredVLANs []int         `json:"restored_vlans,omitempty"`
	Success       bool          `json:"success"`
	Error         string        `json:"error,omitempty"`
	Duration      time.Duration `json:"duration"`
}

// Filter defines criteria for querying audit events
type Filter struct {
	Organization string
	Network      string // matches network ID or name
	User         string
	Operation    string
	StartTime    time.Time
	EndTime      time.Time
	SuccessOnly  bool
	FailureOnly  bool
	Limit        int
	Offset       int
}

// NewEvent creates a new audit event
func NewEvent(user, network, operation string) *Event {
	return &Event{
		ID:        generateID(),
		Timestamp: time.Now(),
		User:      user,
		Network:   network,
		Operation: operation,
	}
}

// WithOrganization sets the organization ID
func (e *Event) WithOrganization(org string) *Event {
	e.Organization = org
	return e
}

// WithNetworkName sets the human-readable network name
func (e *Event) WithNetworkName(name string) *Event {
	e.NetworkName = name
	return e
}

// WithTemplates records the template transition
func (e *Event) WithTemplates(from, to string) *Event {
	e.FromTemplate = from
	e.ToTemplate = to
	return e
}

// WithRestoredVLANs records which VLAN IDs had addressing restored
func (e *Event) WithRestoredVLANs(ids []int) *Event {
	e.RestoredVLANs = ids
	return e
}

// WithSuccess marks the event as successful
func (e *Event) WithSuccess() *Event {
	e.Success = true
	return e
}

// WithError marks the event as failed
func (e *Event) WithError(err error) *Event {
	e.Success = false
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// WithDuration sets the operation duration
func (e *Event) WithDuration(d time.Duration) *Event {
	e.Duration = d
	return e
}

func generateID() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}
