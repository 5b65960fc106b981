package entities

import "time"

// SessionRecord is the sqlite snapshot of a composer session. Data holds
// the full session state (form, cards, ledger) as JSON so a restart can
// re-open in-progress drafts.
type SessionRecord struct {
	SessionID string `gorm:"primaryKey" json:"session_id"`
	OrgID     string `gorm:"index" json:"org_id"`
	UserID    string `gorm:"index" json:"user_id"`
	State     string `json:"state"`
	Data      string `json:"-"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
