package requests

type RegisterStaff struct {
	Email         string `json:"email" validate:"required,email"`
	FullName      string `json:"full_name" validate:"required,min=2"`
	Role          string `json:"role" validate:"required,staff_role"`
	Specialty     string `json:"specialty,omitempty"`
	LicenseNumber string `json:"license_number" validate:"required"`
	Password      string `json:"password" validate:"password"`
}

type SetStaffActive struct {
	Active *bool `json:"active"`
}

type LoginStaff struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
