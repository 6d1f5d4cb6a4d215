package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vytor/leetrecall/internal/clock"
	"github.com/vytor/leetrecall/internal/db"
	"github.com/vytor/leetrecall/internal/models"
)

// NewTestDB opens an in-memory sqlite database with all migrations applied.
// It is closed when the test ends.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { MustClose(t, database) })
	return database
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// Day0 is the reference "today" used across tests.
var Day0 = models.NewDate(2025, time.January, 1)

// NewClock returns a fixed clock set to Day0.
func NewClock() *clock.Fixed {
	return clock.NewFixed(Day0)
}

func IntPtr(v int) *int { return &v }
