package leave

import "go-hrm/internal/employee"

// CanTransition decides whether an actor may move a request between two
// review statuses. It is deliberately free of any HTTP or storage concern
// so the state machine can be tested in isolation.
//
// Rules:
//   - terminal statuses accept nothing
//   - a manager acts only inside the department they manage, may grant the
//     pre-approval or reject, never final approval, and never reviews their
//     own request
//   - an admin grants final approval only after the manager pre-approval,
//     and may reject any non-terminal request
//   - every other role reviews nothing
func CanTransition(role, from, to string, owns, managesDept bool) bool {
	if Terminal(from) {
		return false
	}

	switch role {
	case employee.RoleManager:
		if !managesDept || owns {
			return false
		}
		switch {
		case from == StatusPending && to == StatusManagerApproved:
			return true
		case from == StatusPending && to == StatusRejected:
			return true
		case from == StatusManagerApproved && to == StatusRejected:
			return true
		default:
			return false
		}
	case employee.RoleAdmin:
		switch {
		case from == StatusManagerApproved && to == StatusApproved:
			return true
		case from == StatusPending && to == StatusRejected:
			return true
		case from == StatusManagerApproved && to == StatusRejected:
			return true
		default:
			return false
		}
	default:
		return false
	}
}

// CanEdit decides whether an actor may amend a request's type, dates or
// justification. Admins may edit at any status as a correction escape
// hatch; owners only while the request is still pending.
func CanEdit(role, status string, owns bool) bool {
	if role == employee.RoleAdmin {
		return true
	}
	return owns && status == StatusPending
}

// CanCancel decides whether an actor may cancel a request outright.
func CanCancel(role string, owns bool) bool {
	return role == employee.RoleAdmin || owns
}
