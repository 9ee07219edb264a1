package events

import "time"

const NotificationTopic = "hr.notification.v1"

const (
	KindLeaveRequested       = "leave_requested"
	KindLeaveManagerApproved = "leave_manager_approved"
	KindLeaveApproved        = "leave_approved"
	KindLeaveRejected        = "leave_rejected"
	KindLeaveCancelled       = "leave_cancelled"
	KindLeavePendingReview   = "leave_pending_admin_approval"
)

type LeaveStatusEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}
