package models

import "time"

// Attendance status codes seeded at startup. Statuses live in a master table
// so deployments can add custom ones without a release.
const (
	StatusAbsent      = "ABSENT"
	StatusPresent     = "PRESENT"
	StatusHalfDay     = "HALF_DAY"
	StatusPaidLeave   = "PAID_LEAVE"
	StatusUnpaidLeave = "UNPAID_LEAVE"
)

// AttendanceStatus is a master-table entry describing one attendance code.
type AttendanceStatus struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Label    string `json:"label"`
	IsActive bool   `json:"is_active"`
}

// TableName returns the name of the database table associated with the
// AttendanceStatus model.
func (s AttendanceStatus) TableName() string {
	return "attendance_statuses"
}

// Attendance is one user's status on one date. The (UserID, Date) pair is
// unique; marking twice updates the existing row.
type Attendance struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	// Date is the civil date the entry covers, normalized to midnight UTC.
	Date time.Time `json:"date"`

	// StatusID references the attendance_statuses master table.
	StatusID int64 `json:"status_id"`

	// StatusCode is the joined code for the referenced status. Populated on
	// reads.
	StatusCode string `json:"status_code,omitempty"`

	// MarkedBy is the account that recorded the entry. Zero when the
	// autofill worker wrote it.
	MarkedBy int64 `json:"marked_by,omitempty"`

	Reason string `json:"reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with the
// Attendance model.
func (a Attendance) TableName() string {
	return "attendance"
}

// AttendanceMark is the request payload for recording one user's status on
// one date.
type AttendanceMark struct {
	UserID int64     `json:"user_id"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
	Reason string    `json:"reason,omitempty"`
}

// AttendanceFilter narrows attendance listings. Zero values mean "no
// constraint".
type AttendanceFilter struct {
	UserID  int64
	OwnerID int64
	Status  string

	// From and To bound Date when non-zero.
	From time.Time
	To   time.Time
}

// AttendanceSummary aggregates one user's entries over a period into the
// counts payroll consumes. PayableDays weighs PRESENT and PAID_LEAVE as full
// days and HALF_DAY as half a day.
type AttendanceSummary struct {
	UserID int64     `json:"user_id"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`

	Present     int `json:"present"`
	HalfDays    int `json:"half_days"`
	Absent      int `json:"absent"`
	PaidLeave   int `json:"paid_leave"`
	UnpaidLeave int `json:"unpaid_leave"`

	PayableDays float64 `json:"payable_days"`
}
