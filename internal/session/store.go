// Package session keeps server-side login state and flash notices for
// browser sessions. The cookie only carries a signed pointer to the record.
package session

import (
	"context"
	"time"
)

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

type Identity struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type Data struct {
	Identity *Identity `json:"identity,omitempty"`
	Flashes  []Flash   `json:"flashes,omitempty"`
}

type Store interface {
	Load(ctx context.Context, id string) (*Data, bool, error)
	Save(ctx context.Context, id string, data *Data, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
