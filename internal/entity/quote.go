package entity

import (
	"github.com/google/uuid"
)

// QuoteStatus is a closed set. Transitions are checked through CanTransitionTo
// so an illegal move is a typed failure instead of a string mismatch.
type QuoteStatus string

const (
	StatusPending  QuoteStatus = "Pending"
	StatusAccepted QuoteStatus = "Accepted"
	StatusRejected QuoteStatus = "Rejected"
)

// Pending is the sole initial state; Accepted and Rejected are terminal.
// Retraction deletes the row and is only allowed from Pending.
var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	StatusPending:  {StatusAccepted, StatusRejected},
	StatusAccepted: {},
	StatusRejected: {},
}

func (s QuoteStatus) IsTerminal() bool {
	return len(quoteTransitions[s]) == 0
}

func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	for _, allowed := range quoteTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// CanRetract reports whether a quote in this status may still be deleted by
// its sender.
func (s QuoteStatus) CanRetract() bool {
	return s == StatusPending
}

// db model
type Quote struct {
	Id          uuid.UUID   `json:"id" db:"id"`
	Price       string      `json:"price" db:"price"`
	WorkTime    int         `json:"workTime" db:"work_time"`
	Email       string      `json:"email" db:"email"`
	PhoneNumber string      `json:"phoneNumber" db:"phone_number"`
	Description string      `json:"description" db:"description"`
	Status      QuoteStatus `json:"status" db:"status"`
	Rated       bool        `json:"rated" db:"rated"`
	JobId       uuid.UUID   `json:"jobId" db:"job_id"`
	UserId      uuid.UUID   `json:"userId" db:"user_id"`
	CreatedAt   string      `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateQuoteInput struct {
	Price       string // given, decimal as string
	WorkTime    string // given, whole days as string
	Email       string // given, may be empty when phone is set
	PhoneNumber string // given, may be empty when email is set
	Description string // given
	JobId       string // given
	UserId      string // given, the sending tradie
	// Status always starts as Pending
	// Id and CreatedAt set automatically
}

// controller model for paginated listings
type QuoteListOutputModel struct {
	Quotes      []QuoteOutputModel `json:"quotes"`
	Page        int                `json:"page"`
	TotalPages  int                `json:"totalPages"`
	PageNumbers []int              `json:"pageNumbers"`
}

// controller model
type QuoteOutputModel struct {
	Id          string `json:"id"`
	Price       string `json:"price"`
	WorkTime    int    `json:"workTime"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Rated       bool   `json:"rated"`
	JobId       string `json:"jobId"`
	UserId      string `json:"userId"`
	CreatedAt   string `json:"createdAt"`
}
