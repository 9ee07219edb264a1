package employee

type EmployeeResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	DepartmentID   *string `json:"department_id,omitempty"`
	Position       string  `json:"position,omitempty"`
	LeaveBalance   int     `json:"leave_balance"`
	Active         bool    `json:"active"`
	CalendarLinked bool    `json:"calendar_linked"`
}

type BalanceResponse struct {
	EmployeeID   string `json:"employee_id"`
	LeaveBalance int    `json:"leave_balance"`
}
