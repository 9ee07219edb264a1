package leave

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type UpdateLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type ReviewLeaveRequest struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment"`
}

type ListLeaveFilter struct {
	Status       string `form:"status"`
	DepartmentID string `form:"department_id"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	WorkingDays     int     `json:"working_days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ReviewedBy      *string `json:"reviewed_by,omitempty"`
	ReviewComment   *string `json:"review_comment,omitempty"`
	ReviewedAt      *string `json:"reviewed_at,omitempty"`
	CalendarEventID *string `json:"calendar_event_id,omitempty"`
}

// BalanceShortfall is the detail payload attached to an insufficient
// balance failure so callers can show the gap.
type BalanceShortfall struct {
	CurrentBalance int `json:"current_balance"`
	RequestedDays  int `json:"requested_days"`
}
