package review

import (
	"time"

	"github.com/campushare/campushare/core"
)

// FileReview is an append-only rating row; users may review the same file
// more than once.
type FileReview struct {
	ID        string    `json:"id"`
	FileID    string    `json:"file_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"` // 1..5
	Text      string    `json:"review_text,omitempty"`
	CreatedAt time.Time `json:"created_at"` // UTC

	// resolved on read
	ReviewerName string `json:"reviewer_name,omitempty"`
}

// FileReport flags a file as wrong, incomplete or corrupt. Anonymous
// reports are permitted; there is no resolution workflow.
type FileReport struct {
	ID        string    `json:"id"`
	FileID    string    `json:"file_id"`
	UserID    string    `json:"user_id,omitempty"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

type NewReview struct {
	FileID string `json:"file_id" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"review_text"`
}

func (nr *NewReview) Validate() error {
	nr.FileID = core.CleanString(nr.FileID)
	nr.Text = core.CleanString(nr.Text)
	return core.Validate.Struct(nr)
}

type NewReport struct {
	FileID string `json:"file_id" validate:"required"`
	Reason string `json:"reason" validate:"required"`
}

func (nr *NewReport) Validate() error {
	nr.FileID = core.CleanString(nr.FileID)
	nr.Reason = core.CleanString(nr.Reason)
	return core.Validate.Struct(nr)
}
