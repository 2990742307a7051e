package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	UserID           string    `bson:"user_id" json:"uid"`
	DisplayName      string    `bson:"display_name" json:"displayName"`
	Email            string    `bson:"email" json:"email" validate:"required,email"`
	Password         string    `bson:"password,omitempty" json:"-"`
	PhotoURL         string    `bson:"photo_url,omitempty" json:"photoURL,omitempty"`
	Role             string    `bson:"role" json:"role"`
	Provider         string    `bson:"provider,omitempty" json:"provider,omitempty"` // password | google
	GoogleID         string    `bson:"google_id,omitempty" json:"-"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	LastLogin        time.Time `bson:"last_login" json:"lastLogin"`
	LastLoginDevice  string    `bson:"last_login_device,omitempty" json:"lastLoginDevice,omitempty"`
	TwoFactorSecret  string    `bson:"two_factor_secret,omitempty" json:"-"`
	TwoFactorEnabled bool      `bson:"two_factor_enabled,omitempty" json:"twoFactorEnabled,omitempty"`
	// Users are never hard-deleted; the flag hides them from every listing.
	Deleted   bool      `bson:"deleted,omitempty" json:"deleted,omitempty"`
	DeletedAt time.Time `bson:"deleted_at,omitempty" json:"deletedAt,omitempty"`
	// Set by the admin sync that mirrors auth accounts into profiles.
	SyncedFromAuth bool      `bson:"synced_from_auth,omitempty" json:"-"`
	SyncedAt       time.Time `bson:"synced_at,omitempty" json:"-"`
}
