package model

import "time"

// User is a local record of an identity-provider account. Email comes from
// the provider and is verified there.
type User struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	WorkOSID  *string   `json:"-"`
	ID        int64     `json:"id,string"`
}
