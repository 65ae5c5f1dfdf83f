package request

// ServerRequest is the body of create and full-update requests. Only the
// name is mandatory; the other fields fall back to the model defaults.
type ServerRequest struct {
	Name           string `json:"name" binding:"required,max=255"`
	IPAddress      string `json:"ip_address" binding:"omitempty,ip"`
	Description    string `json:"description" binding:"omitempty,max=255"`
	ServerIsActive *bool  `json:"server_is_active"`
}
