package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/pay-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func typeRecord(typ, category string) sqlite.TypeConfigRecord {
	return sqlite.TypeConfigRecord{
		Type:       typ,
		Category:   category,
		ConfigJSON: fmt.Sprintf(`{"type":%q,"category":%q}`, typ, category),
	}
}

// =============================================================================
// CATALOG TESTS
// =============================================================================

func TestSeedTypeConfigs_OnlyWhenEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seeded, err := store.SeedTypeConfigs(ctx, []sqlite.TypeConfigRecord{
		typeRecord("Night", "essential"),
		typeRecord("Weekend", "essential"),
	})
	require.NoError(t, err)
	assert.True(t, seeded)

	// Second seed is a no-op
	seeded, err = store.SeedTypeConfigs(ctx, []sqlite.TypeConfigRecord{typeRecord("Other", "rare")})
	require.NoError(t, err)
	assert.False(t, seeded)

	recs, err := store.ListTypeConfigs(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Night", recs[0].Type)
	assert.Equal(t, "Weekend", recs[1].Type)
}

func TestSaveTypeConfig_AppendsAndKeepsPosition(t *testing.T) {
	// GIVEN: A catalog with Night, Weekend
	store := newTestStore(t)
	ctx := context.Background()
	_, err := store.SeedTypeConfigs(ctx, []sqlite.TypeConfigRecord{
		typeRecord("Night", "essential"),
		typeRecord("Weekend", "essential"),
	})
	require.NoError(t, err)

	// WHEN: Adding a new type and updating the first one
	require.NoError(t, store.SaveTypeConfig(ctx, typeRecord("Preceptor", "common")))
	require.NoError(t, store.SaveTypeConfig(ctx, typeRecord("Night", "common")))

	// THEN: New type is last, updated type keeps its slot
	recs, err := store.ListTypeConfigs(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, []string{"Night", "Weekend", "Preceptor"}, []string{recs[0].Type, recs[1].Type, recs[2].Type})
	assert.Equal(t, "common", recs[0].Category)
	assert.Contains(t, recs[0].ConfigJSON, `"common"`)
}

func TestSaveTypeConfig_EmptyCatalog(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTypeConfig(ctx, typeRecord("Night", "essential")))

	rec, err := store.GetTypeConfig(ctx, "Night")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 0, rec.Position)
	assert.False(t, rec.UpdatedAt.IsZero())
}

func TestGetTypeConfig_Missing(t *testing.T) {
	store := newTestStore(t)

	rec, err := store.GetTypeConfig(context.Background(), "Nope")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestDeleteTypeConfig(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveTypeConfig(ctx, typeRecord("Night", "essential")))

	require.NoError(t, store.DeleteTypeConfig(ctx, "Night"))
	assert.ErrorIs(t, store.DeleteTypeConfig(ctx, "Night"), sqlite.ErrNotFound)

	recs, err := store.ListTypeConfigs(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

// =============================================================================
// CALCULATION TESTS
// =============================================================================

func TestSaveCalculation_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)
	calc := sqlite.CalculationRecord{
		ID:              "calc-1",
		AnnualSalary:    decimal.NewFromInt(93600),
		ShiftHours:      12,
		BaseMonthly:     decimal.RequireFromString("7800"),
		TotalMonthly:    decimal.RequireFromString("8493.32"),
		AnnualTotal:     decimal.RequireFromString("101919.84"),
		EffectiveHourly: decimal.RequireFromString("54.444358974"),
		Confidence:      "HIGH",
		ResultJSON:      `{"items":{}}`,
		CreatedAt:       created,
	}
	require.NoError(t, store.SaveCalculation(ctx, calc))

	got, err := store.GetCalculation(ctx, "calc-1")
	require.NoError(t, err)
	assert.True(t, got.AnnualSalary.Equal(decimal.NewFromInt(93600)))
	assert.Equal(t, "7800.00", got.BaseMonthly.StringFixed(2))
	assert.Equal(t, "8493.32", got.TotalMonthly.StringFixed(2))
	assert.Equal(t, "54.44", got.EffectiveHourly.String(), "stored rounded to cents")
	assert.Equal(t, "HIGH", got.Confidence)
	assert.Equal(t, `{"items":{}}`, got.ResultJSON)
	assert.True(t, got.CreatedAt.Equal(created))

	// Same ID again is rejected
	assert.Error(t, store.SaveCalculation(ctx, calc))
}

func TestGetCalculation_Missing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetCalculation(context.Background(), "missing")
	assert.ErrorIs(t, err, sqlite.ErrNotFound)
}

func TestListCalculations_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, store.SaveCalculation(ctx, sqlite.CalculationRecord{
			ID:         fmt.Sprintf("calc-%d", i),
			Confidence: "LOW",
			ResultJSON: "{}",
			CreatedAt:  base.Add(time.Duration(i) * 500 * time.Millisecond),
		}))
	}

	recs, err := store.ListCalculations(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "calc-2", recs[0].ID)
	assert.Equal(t, "calc-1", recs[1].ID)
}

func TestReset(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveTypeConfig(ctx, typeRecord("Night", "essential")))
	require.NoError(t, store.SaveCalculation(ctx, sqlite.CalculationRecord{ID: "c", ResultJSON: "{}", Confidence: "LOW"}))

	require.NoError(t, store.Reset(ctx))

	recs, err := store.ListTypeConfigs(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)
	calcs, err := store.ListCalculations(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, calcs)
}
