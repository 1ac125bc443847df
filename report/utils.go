package report

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// encode UUID with base64 for shorter report IDs
func newBase64UUID() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}
