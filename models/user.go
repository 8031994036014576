package models

import "github.com/uptrace/bun"

// User is a stable-book account with bcrypt-hashed password, created via
// cmd/adduser. The API is shared by a small fixed group; there is no
// self-service registration.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID       int    `bun:"id,pk,autoincrement" json:"id"`
	Username string `bun:"username,notnull,unique" json:"username"`
	Password string `bun:"password,notnull" json:"-"`
}
