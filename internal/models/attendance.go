package models

// AttendanceStatus enumerates the marks a teacher can record.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "Present"
	AttendanceStatusAbsent  AttendanceStatus = "Absent"
	AttendanceStatusLate    AttendanceStatus = "Late"
	AttendanceStatusExcused AttendanceStatus = "Excused"
)

// AttendanceRecord represents one student's mark for one day.
type AttendanceRecord struct {
	ID          string           `json:"id"`
	StudentName string           `json:"student_name"`
	RollNumber  string           `json:"roll_number"`
	ClassName   string           `json:"class_name"`
	Date        string           `json:"date"`
	Status      AttendanceStatus `json:"status"`
}
