package request

// UpdateServerRequest is the body of partial updates. Absent fields stay
// untouched.
type UpdateServerRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1,max=255"`
	IPAddress      *string `json:"ip_address" binding:"omitempty,ip"`
	Description    *string `json:"description" binding:"omitempty,max=255"`
	ServerIsActive *bool   `json:"server_is_active"`
}
