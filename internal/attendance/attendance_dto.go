package attendance

type RecordAttendanceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Note       string  `json:"note"`
}

type ListAttendanceFilter struct {
	Date         string `form:"date"`
	Status       string `form:"status"`
	DepartmentID string `form:"department_id"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	AttendanceDate string  `json:"attendance_date"`
	CheckIn        *string `json:"check_in,omitempty"`
	CheckOut       *string `json:"check_out,omitempty"`
	Status         string  `json:"status"`
	Note           *string `json:"note,omitempty"`
	RecordedBy     *string `json:"recorded_by,omitempty"`
}
