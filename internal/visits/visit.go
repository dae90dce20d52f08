package visits

import (
	"time"
)

const (
	DesignationStudent   = "Student"
	DesignationProfessor = "Professor"
	DesignationEmployee  = "Employee"
	DesignationOther     = "Other"
)

var Designations = []string{
	DesignationStudent,
	DesignationProfessor,
	DesignationEmployee,
	DesignationOther,
}

func IsValidDesignation(designation string) bool {
	for _, d := range Designations {
		if d == designation {
			return true
		}
	}
	return false
}

// Visit is one blog visitor survey submission. Visits are append only.
type Visit struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Designation string    `json:"designation"`
	CreatedAt   time.Time `json:"createdAt"`
}
