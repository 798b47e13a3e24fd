package entity

import (
	"github.com/google/uuid"
)

// Job is owned by the surrounding renovation CRUD; this core only reads its
// quote list and owner email, and flips the posted flag on acceptance.
type Job struct {
	Id                 uuid.UUID `json:"id" db:"id"`
	Title              string    `json:"title" db:"title"`
	Posted             bool      `json:"posted" db:"posted"`
	RenovationRecordId uuid.UUID `json:"renovationRecordId" db:"renovation_record_id"`
	OwnerEmail         string    `json:"ownerEmail" db:"owner_email"`
}

type User struct {
	Id    uuid.UUID `json:"id" db:"id"`
	Name  string    `json:"name" db:"name"`
	Email string    `json:"email" db:"email"`
}

// controller model
type UserOutputModel struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
