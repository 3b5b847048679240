package orders

import (
	"fmt"

	"github.com/mestore/mestore-backend/pkg/enums"
	pkgerrors "github.com/mestore/mestore-backend/pkg/errors"
)

// TransitionPolicy decides which status values a principal may set. Keeping
// the admin exception behind an interface makes it visible and testable
// instead of an inline role branch.
type TransitionPolicy interface {
	AllowCreateStatus(status enums.OrderStatus) error
	AllowTransition(current, requested enums.OrderStatus) error
}

// sequentialTransitions is the forward progression enforced for agents.
// Cancellation is handled separately and terminal states allow nothing.
var sequentialTransitions = map[enums.OrderStatus][]enums.OrderStatus{
	enums.OrderStatusPending:     {enums.OrderStatusCalled},
	enums.OrderStatusCalled:      {enums.OrderStatusOrderPlaced},
	enums.OrderStatusOrderPlaced: {enums.OrderStatusDelivered},
	enums.OrderStatusDelivered:   {},
	enums.OrderStatusCancelled:   {},
}

// PolicyForRole selects the transition policy for the acting principal.
func PolicyForRole(role enums.UserRole) TransitionPolicy {
	if role == enums.UserRoleAdmin {
		return adminPolicy{}
	}
	return agentPolicy{}
}

type agentPolicy struct{}

func (agentPolicy) AllowCreateStatus(status enums.OrderStatus) error {
	if status == enums.OrderStatusPending || status == enums.OrderStatusCalled {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeValidation,
		"new orders can only be created with pending or called status")
}

func (agentPolicy) AllowTransition(current, requested enums.OrderStatus) error {
	if requested == enums.OrderStatusCancelled {
		if current.IsTerminal() {
			return transitionError(current, requested,
				fmt.Sprintf("cannot cancel an order that is already %s", current))
		}
		return nil
	}

	for _, allowed := range sequentialTransitions[current] {
		if allowed == requested {
			return nil
		}
	}
	return transitionError(current, requested,
		fmt.Sprintf("cannot change status from %s to %s, status must progress sequentially", current, requested))
}

// adminPolicy trusts the operator: any valid status may be set at creation
// or update, including moves the sequential table forbids.
type adminPolicy struct{}

func (adminPolicy) AllowCreateStatus(status enums.OrderStatus) error {
	if !status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid order status %q", status))
	}
	return nil
}

func (adminPolicy) AllowTransition(current, requested enums.OrderStatus) error {
	if !requested.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid order status %q", requested))
	}
	return nil
}

func transitionError(current, requested enums.OrderStatus, message string) error {
	return pkgerrors.New(pkgerrors.CodeStateConflict, message).
		WithDetails(map[string]string{
			"current_status":   current.String(),
			"requested_status": requested.String(),
		})
}
