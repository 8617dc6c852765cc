package models

import (
	"time"

	"gorm.io/gorm"
)

// Session is one logged-in device. A user may hold several at once; expired
// rows are ignored by every read path and swept opportunistically.
type Session struct {
	gorm.Model
	UserID    uint      `json:"userId" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	UserAgent string    `json:"userAgent"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null;index"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired() bool {
	return !s.ExpiresAt.After(time.Now())
}

// SessionView is what session listings return; IsCurrent marks the session
// backing the request's own token.
type SessionView struct {
	ID        uint      `json:"id"`
	UserAgent string    `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
	IsCurrent bool      `json:"isCurrent,omitempty"`
}

func (s *Session) View(currentSessionID uint) SessionView {
	return SessionView{
		ID:        s.ID,
		UserAgent: s.UserAgent,
		CreatedAt: s.CreatedAt,
		IsCurrent: s.ID == currentSessionID,
	}
}
