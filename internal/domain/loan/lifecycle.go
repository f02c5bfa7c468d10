package loan

// Action is a lifecycle command applied to a loan.
type Action string

const (
	ActionApprove       Action = "approve"
	ActionReject        Action = "reject"
	ActionAssignLender  Action = "assign-lender"
	ActionDisburse      Action = "disburse"
	ActionRecordPayment Action = "record-payment"
)

// IsTerminal reports whether no further action may change the status.
func IsTerminal(s Status) bool {
	return s == StatusRejected || s == StatusCompleted
}

// Transition is the pure lifecycle state machine: given the current status,
// an action, and whether a lender is bound, it returns the next status or an
// error. Invalid transitions are never silent.
//
//	pending → {approved, rejected}
//	pending/approved → assigned (lender binding)
//	assigned → disbursed
//	disbursed → completed (resolved separately, once all installments are paid)
func Transition(cur Status, act Action, lenderBound bool) (Status, error) {
	if IsTerminal(cur) {
		return cur, ErrTerminalStatus
	}

	switch act {
	case ActionApprove:
		if cur != StatusPending {
			return cur, ErrInvalidTransition
		}
		return StatusApproved, nil

	case ActionReject:
		if cur != StatusPending {
			return cur, ErrInvalidTransition
		}
		return StatusRejected, nil

	case ActionAssignLender:
		if lenderBound {
			return cur, ErrLenderAlreadyAssigned
		}
		if cur != StatusPending && cur != StatusApproved {
			return cur, ErrInvalidTransition
		}
		return StatusAssigned, nil

	case ActionDisburse:
		if !lenderBound {
			return cur, ErrLenderRequired
		}
		if cur == StatusDisbursed {
			return cur, ErrInvalidTransition
		}
		return StatusDisbursed, nil

	case ActionRecordPayment:
		if cur != StatusDisbursed {
			return cur, ErrInvalidTransition
		}
		// status unchanged here; completion is resolved by ResolveCompletion
		return cur, nil
	}

	return cur, ErrInvalidTransition
}

// ResolveCompletion returns the status a disbursed loan should hold given
// its schedule: completed iff every installment is paid, else unchanged.
func ResolveCompletion(l *Loan) Status {
	if l.Status == StatusDisbursed && l.AllRepaymentsPaid() {
		return StatusCompleted
	}
	return l.Status
}
