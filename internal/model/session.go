package model

import "time"

// Session is a server-side login session.
type Session struct {
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	ID        int64     `json:"id,string"`
	UserID    int64     `json:"user_id,string"`
}
