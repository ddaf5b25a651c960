package budget

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manjussha/promptcost/internal/db"
)

func TestZoneFor(t *testing.T) {
	assert.Equal(t, ZoneGreen, ZoneFor(0, 10))
	assert.Equal(t, ZoneGreen, ZoneFor(5.9, 10))
	assert.Equal(t, ZoneYellow, ZoneFor(6, 10))
	assert.Equal(t, ZoneOrange, ZoneFor(8, 10))
	assert.Equal(t, ZoneRed, ZoneFor(9, 10))
	assert.Equal(t, ZoneRed, ZoneFor(25, 10))
	// No budget configured reads as green.
	assert.Equal(t, ZoneGreen, ZoneFor(100, 0))
}

func TestZoneString(t *testing.T) {
	assert.Equal(t, "GREEN", ZoneGreen.String())
	assert.Equal(t, "YELLOW", ZoneYellow.String())
	assert.Equal(t, "ORANGE", ZoneOrange.String())
	assert.Equal(t, "RED", ZoneRed.String())
}

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate())
	t.Cleanup(func() { database.Close() })
	return database
}

func TestLedgerRecordAndToday(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(openTestDB(t), 1.0)

	require.NoError(t, ledger.Record(ctx, "gpt-4o", 1000, 500, 0.0125))
	require.NoError(t, ledger.Record(ctx, "claude-sonnet-4", 2000, 500, 0.6))

	p, err := ledger.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Entries)
	assert.InDelta(t, 0.6125, p.Spent, 1e-9)
	assert.InDelta(t, 61.25, p.Percent, 1e-9)
	assert.Equal(t, ZoneYellow, p.Zone)
}

func TestLedgerEmptyDay(t *testing.T) {
	ledger := NewLedger(openTestDB(t), 1.0)
	p, err := ledger.Today(context.Background())
	require.NoError(t, err)
	assert.Zero(t, p.Entries)
	assert.Zero(t, p.Spent)
	assert.Equal(t, ZoneGreen, p.Zone)
}
