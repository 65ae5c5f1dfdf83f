package response

// ServerStatusResponse is the limited serialization used by the status
// review endpoint.
type ServerStatusResponse struct {
	IPAddress      string `json:"ip_address"`
	ServerIsActive bool   `json:"server_is_active"`
}
