package user

import "time"

type Role string

const (
	RoleMember Role = "Member"
	RoleAdmin  Role = "Admin"
)

type User struct {
	UserID       int64     `json:"UserID"`
	Username     string    `json:"Username"`
	Email        string    `json:"Email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"FullName"`
	Phone        string    `json:"Phone"`
	Address      string    `json:"Address"`
	Role         Role      `json:"Role"`
	IsActive     bool      `json:"IsActive"`
	CreatedAt    time.Time `json:"CreatedAt"`
}

type RegisterParams struct {
	Username string
	Password string
	Email    string
	FullName string
	Phone    string
	Address  string
}

type UpdateCustomerParams struct {
	FullName string
	Phone    string
	Address  string
	Email    string
}
