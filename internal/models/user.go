package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleUser     Role = "USER"
	RoleProducer Role = "PRODUCER"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	ID        string    `bun:"id,pk" json:"id"`
	Email     string    `bun:"email,unique,notnull" json:"email"`
	Name      string    `bun:"name,notnull" json:"name"`
	Password  string    `bun:"password,nullzero" json:"-"`
	Image     string    `bun:"image,nullzero" json:"image,omitempty"`
	CPFCNPJ   string    `bun:"cpf_cnpj,nullzero" json:"cpf_cnpj,omitempty"`
	Phone     string    `bun:"phone,nullzero" json:"phone,omitempty"`
	Role      Role      `bun:"role" json:"role"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,nullzero" json:"updatedAt"`
}
