package models

import "fmt"

// Order workflow statuses.
const (
	StatusDraft            = "DRAFT"
	StatusInWork           = "IN_WORK"
	StatusWaitingFitting   = "WAITING_FITTING"
	StatusOnRework         = "ON_REWORK"
	StatusReadyForTransfer = "READY_FOR_TRANSFER"
	StatusTransferred      = "TRANSFERRED_TO_WAREHOUSE"
	StatusIssued           = "ISSUED"
	StatusCanceled         = "CANCELED"
)

// ErrInvalidTransition is returned when a requested status change is not
// allowed from the record's current status. Entity names the record kind
// in the message and defaults to "order".
type ErrInvalidTransition struct {
	Entity string
	From   string
	To     string
}

func (e *ErrInvalidTransition) Error() string {
	entity := e.Entity
	if entity == "" {
		entity = "order"
	}
	return fmt.Sprintf("invalid %s status transition %s -> %s", entity, e.From, e.To)
}

// orderTransitions maps each status to the statuses reachable from it by
// a direct operator edit or a workflow event.
var orderTransitions = map[string][]string{
	StatusDraft:            {StatusInWork, StatusCanceled},
	StatusInWork:           {StatusWaitingFitting, StatusReadyForTransfer, StatusCanceled},
	StatusWaitingFitting:   {StatusOnRework, StatusReadyForTransfer, StatusCanceled},
	StatusOnRework:         {StatusWaitingFitting, StatusReadyForTransfer, StatusCanceled},
	StatusReadyForTransfer: {StatusTransferred, StatusCanceled},
	StatusTransferred:      {StatusIssued, StatusCanceled},
	StatusIssued:           {},
	StatusCanceled:         {},
}

// ValidOrderStatus reports whether s is a known workflow status.
func ValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether the workflow allows moving from one
// status to another.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates and returns the new status. Used by the manual
// status operation and, in guarded mode, by the invoice/issue workflow.
func Transition(from, to string) (string, error) {
	if !CanTransition(from, to) {
		return "", &ErrInvalidTransition{From: from, To: to}
	}
	return to, nil
}
