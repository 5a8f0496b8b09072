// Package sessions tracks which accounts are currently logged in. The
// authorization middleware rejects otherwise-valid bearer tokens whose
// session has been removed, which is how server-side logout works without a
// token-revocation store.
package sessions

import (
	"context"
	"time"
)

// Session marks a bearer token's subject as currently logged in.
type Session struct {
	UserID     uint      `json:"userId"`
	Email      string    `json:"email"`
	IsAdmin    bool      `json:"isAdmin"`
	LoggedInAt time.Time `json:"loggedInAt"`
}

// Registry is the active-session store. Find returns (nil, nil) when no
// session exists for the account.
type Registry interface {
	Add(ctx context.Context, session Session) error
	Remove(ctx context.Context, userID uint) error
	Find(ctx context.Context, userID uint) (*Session, error)
	All(ctx context.Context) ([]Session, error)
}
