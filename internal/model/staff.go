package model

// Staff is a cafeteria employee who can log in with a PIN.
// The PIN is stored in plaintext; this is a demo credential only.
type Staff struct {
	BaseModel
	Name     string `json:"name"`
	Role     string `json:"role"`
	PIN      string `json:"-"`
	IsActive bool   `json:"is_active"`
}

// StaffResponse is the login payload.
type StaffResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

func (s *Staff) ToResponse() StaffResponse {
	return StaffResponse{
		ID:   s.ID,
		Name: s.Name,
		Role: s.Role,
	}
}
