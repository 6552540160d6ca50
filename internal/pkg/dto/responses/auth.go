package responses

type Staff struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	Specialty string `json:"specialty,omitempty"`
	Active    bool   `json:"active"`
}

type Login struct {
	Token string `json:"token"`
	Staff Staff  `json:"staff"`
}
