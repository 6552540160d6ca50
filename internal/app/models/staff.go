package models

import "time"

type StaffRole string

const (
	RolePhysician     StaffRole = "physician"
	RoleResident      StaffRole = "resident"
	RoleNurse         StaffRole = "nurse"
	RoleAdministrator StaffRole = "administrator"
)

type StaffMember struct {
	ID            string    `bson:"_id,omitempty"`
	Email         string    `bson:"email"`
	FullName      string    `bson:"fullName"`
	Role          StaffRole `bson:"role"`
	Specialty     string    `bson:"specialty,omitempty"`
	LicenseNumber string    `bson:"licenseNumber"`
	Password      string    `bson:"password"`
	Active        bool      `bson:"active"`
	CreatedAt     time.Time `bson:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}

// IsMedical reports whether the member can hold guard shifts.
func (s *StaffMember) IsMedical() bool {
	return s.Role == RolePhysician || s.Role == RoleResident
}
