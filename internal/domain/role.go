package domain

import "time"

// RoleName identifies an access role.
type RoleName string

const (
	RoleAdmin    RoleName = "Admin"
	RoleCustomer RoleName = "Customer"
)

// Role is a named access role persisted in the store.
type Role struct {
	ID        string
	Name      RoleName
	CreatedAt time.Time
}
