package services

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOrderNumber builds the human-readable order number shown on
// tickets: yymmdd-<tableID>-<3-digit suffix>. The suffix is random, so
// collisions within one table and day are possible but unlikely for
// realistic volumes (1000 values per table per day).
func GenerateOrderNumber(tableID uint, now time.Time) string {
	return fmt.Sprintf("%s-%d-%03d", now.Format("060102"), tableID, rand.Intn(1000))
}
