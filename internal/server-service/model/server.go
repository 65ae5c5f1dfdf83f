package model

import "time"

const (
	DefaultIPAddress   = "0.0.0.0"
	DefaultDescription = "no_description"
)

type Server struct {
	ID             int `gorm:"primaryKey"`
	Name           string
	IPAddress      string
	Description    string
	ServerIsActive bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ServerUpdate carries the fields of an update. Nil means the field is left
// untouched.
type ServerUpdate struct {
	Name           *string
	IPAddress      *string
	Description    *string
	ServerIsActive *bool
}

func (u ServerUpdate) IsEmpty() bool {
	return u.Name == nil && u.IPAddress == nil && u.Description == nil && u.ServerIsActive == nil
}

// ServerStatus is the limited projection served by the status review endpoint.
type ServerStatus struct {
	IPAddress      string
	ServerIsActive bool
}
