package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityNormal: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

var priorityWeights = map[Priority]int{
	PriorityLow:    1,
	PriorityNormal: 2,
	PriorityHigh:   3,
	PriorityUrgent: 4,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func (p Priority) Weight() int {
	return priorityWeights[p]
}

func (p Priority) IsUrgent() bool {
	return p == PriorityUrgent
}

// DerivePriority maps topic flags onto a ticket priority. Users never choose
// priority directly; the topic they pick determines it.
func DerivePriority(urgent, quickAction bool) Priority {
	switch {
	case urgent:
		return PriorityUrgent
	case quickAction:
		return PriorityHigh
	default:
		return PriorityNormal
	}
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}
