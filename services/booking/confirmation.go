package booking

import (
	"fmt"
	"math/rand"
	"time"
)

// ConfirmationPrefix is the issuer prefix carried by every confirmation number.
const ConfirmationPrefix = "ROOMI"

// GenerateConfirmationNumber returns an identifier of the form
// PREFIX-YYYYMMDD-NNNN with a 4-digit random suffix. Uniqueness is enforced
// at insert time by the store's unique index, not here.
func GenerateConfirmationNumber(prefix string) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, time.Now().Format("20060102"), rand.Intn(10000))
}

// GenerateCancellationReference derives the cancellation reference from a
// confirmation number. Deterministic and idempotent.
func GenerateCancellationReference(confirmationNumber string) string {
	return "CXL-" + confirmationNumber
}
