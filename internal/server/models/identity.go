// Package models holds the records kept by the verifier's in-memory stores.
package models

import "time"

// Identity binds a username to the public commitment pair
// y1 = G^x mod P, y2 = H^x mod P. The secret x is never stored.
type Identity struct {
	UserName     string
	Y1           uint64
	Y2           uint64
	RegisteredAt time.Time
}
