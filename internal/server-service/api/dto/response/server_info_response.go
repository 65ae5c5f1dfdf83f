package response

import "time"

type ServerInfoResponse struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	IPAddress      string    `json:"ip_address"`
	Description    string    `json:"description"`
	ServerIsActive bool      `json:"server_is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
