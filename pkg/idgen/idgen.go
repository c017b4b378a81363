// Package idgen generates the time-ordered identifiers used for ledger rows.
package idgen

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// New returns a unique identifier built from the current millisecond clock
// plus a random suffix, so two ids created within the same millisecond
// cannot collide.
func New() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
