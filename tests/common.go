package tests

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

// RandomMID returns a unique user id shaped like the platform's mids.
func RandomMID(t *testing.T) string {
	t.Helper()
	return "u" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
