package domain

import "time"

// Decision is the outcome of evaluating an approver action against the
// authoritative timeline. The caller appends Record and applies NewStatus in
// the same transaction that produced the inputs.
type Decision struct {
	Record    ApprovalRecord
	NewStatus Status

	// Completed is true when this action finalized the submission
	// (all assigned approvers approved, or a rejection vetoed it).
	Completed bool
}

// EvaluateStatus computes the status a pending submission must have given its
// assigned-approver snapshot and timeline. Status is a pure function of these
// two inputs; the stored column must never drift from it.
func EvaluateStatus(assigned []Approver, timeline []ApprovalRecord) Status {
	for _, r := range timeline {
		if r.Action == ActionRejected {
			return StatusRejected
		}
	}
	if len(assigned) == 0 {
		// An empty snapshot never auto-approves; submit-time validation
		// rejects such submissions before they reach this point.
		return StatusPendingApproval
	}
	approved := ApprovedBy(timeline)
	for _, a := range assigned {
		if _, ok := approved[a.ID]; !ok {
			return StatusPendingApproval
		}
	}
	return StatusApproved
}

// DecideApproval evaluates an approval by actor against the current state.
//
// Valid only while the submission is pending, the actor is assigned, and the
// actor has no prior APPROVED record. The completion check is order
// independent: whichever assigned approver's record lands last flips the
// status, regardless of the order the others acted in.
func DecideApproval(status Status, assigned []Approver, timeline []ApprovalRecord, actor Actor, signature []byte, now time.Time) (Decision, error) {
	if status != StatusPendingApproval {
		return Decision{}, ErrStaleState
	}
	if !IsAssigned(assigned, actor.ID) {
		return Decision{}, ErrNotAuthorized
	}
	if _, dup := ApprovedBy(timeline)[actor.ID]; dup {
		return Decision{}, ErrDuplicateAction
	}

	rec := ApprovalRecord{
		Action:          ActionApproved,
		ActorID:         actor.ID,
		ActorName:       actor.Name,
		ActorPosition:   actor.Position,
		ActorDepartment: actor.Department,
		Signature:       signature,
		Timestamp:       now,
	}

	next := EvaluateStatus(assigned, append(append([]ApprovalRecord(nil), timeline...), rec))
	return Decision{
		Record:    rec,
		NewStatus: next,
		Completed: next == StatusApproved,
	}, nil
}

// DecideRejection evaluates a rejection by actor against the current state.
//
// A single rejection by any assigned approver vetoes the whole submission,
// regardless of how many approvals have accumulated.
func DecideRejection(status Status, assigned []Approver, timeline []ApprovalRecord, actor Actor, signature []byte, now time.Time) (Decision, error) {
	if status != StatusPendingApproval {
		return Decision{}, ErrStaleState
	}
	if !IsAssigned(assigned, actor.ID) {
		return Decision{}, ErrNotAuthorized
	}

	rec := ApprovalRecord{
		Action:          ActionRejected,
		ActorID:         actor.ID,
		ActorName:       actor.Name,
		ActorPosition:   actor.Position,
		ActorDepartment: actor.Department,
		Signature:       signature,
		Timestamp:       now,
	}
	return Decision{
		Record:    rec,
		NewStatus: StatusRejected,
		Completed: true,
	}, nil
}
