package model

import "time"

const (
	ServerEventCreated = "server_created"
	ServerEventUpdated = "server_updated"
	ServerEventDeleted = "server_deleted"
)

type ServerEvent struct {
	EventID        string    `json:"event_id"`
	Type           string    `json:"type"`
	ServerID       int       `json:"server_id"`
	Name           string    `json:"name"`
	IPAddress      string    `json:"ip_address"`
	ServerIsActive bool      `json:"server_is_active"`
	Timestamp      time.Time `json:"timestamp"`
}
