package models

import "time"

// BlogView is an append-only view log; rows are never updated or deleted.
type BlogView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlogID    uint      `gorm:"index" json:"blog_id"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	IPAddress string    `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent string    `gorm:"type:text" json:"user_agent,omitempty"`
	SessionID string    `gorm:"size:255" json:"session_id,omitempty"`
	ViewedAt  time.Time `json:"viewed_at"`
}
