package differential_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/pay-engine/differential"
)

func testCatalog() *differential.Catalog {
	night := config("Night", "$/hour", "yes")
	night.Category = differential.CategoryEssential
	night.DisplayName = "Night Shift"

	weekend := config("Weekend", "$/hour", "days/month")
	weekend.Category = differential.CategoryEssential

	bonus := config("Sign_On_Bonus", "$ fixed", "yes")
	bonus.Category = differential.CategoryBonus

	return differential.NewCatalog([]differential.TypeConfig{*night, *weekend, *bonus})
}

func TestCatalog_Get(t *testing.T) {
	c := testCatalog()

	cfg, ok := c.Get("Night")
	require.True(t, ok)
	assert.Equal(t, "$/hour", cfg.ValueRange.Unit)

	_, ok = c.Get("Unknown")
	assert.False(t, ok)
	assert.Nil(t, c.Lookup("Unknown"))
	assert.NotNil(t, c.Lookup("Weekend"))
}

func TestCatalog_ListByCategoryPreservesOrder(t *testing.T) {
	c := testCatalog()

	assert.Equal(t, []string{"Night", "Weekend"}, c.ListByCategory(differential.CategoryEssential))
	assert.Equal(t, []string{"Sign_On_Bonus"}, c.ListByCategory(differential.CategoryBonus))
	assert.Empty(t, c.ListByCategory(differential.CategoryRare))
}

func TestCatalog_TypesAndAll(t *testing.T) {
	c := testCatalog()

	assert.Equal(t, []string{"Night", "Weekend", "Sign_On_Bonus"}, c.Types())
	assert.Equal(t, 3, c.Len())
	all := c.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Sign_On_Bonus", all[2].Type)

	// Returned slices are copies
	types := c.Types()
	types[0] = "Mutated"
	assert.Equal(t, "Night", c.Types()[0])
}

func TestCatalog_RepeatedTypeKeepsFirstPositionAndLastConfig(t *testing.T) {
	first := config("Night", "$/hour", "yes")
	other := config("Weekend", "$/hour", "days/month")
	second := config("Night", "$/hour", "days/week")

	c := differential.NewCatalog([]differential.TypeConfig{*first, *other, *second})

	assert.Equal(t, []string{"Night", "Weekend"}, c.Types())
	cfg, _ := c.Get("Night")
	assert.Equal(t, "days/week", cfg.FrequencyRange.Unit)
}

func TestCatalog_DisplayName(t *testing.T) {
	c := testCatalog()

	assert.Equal(t, "Night Shift", c.DisplayName("Night"))
	assert.Equal(t, "Sign On Bonus", c.DisplayName("Sign_On_Bonus"))
	assert.Equal(t, "Charge Nurse", c.DisplayName("Charge_Nurse"))
}

func TestCatalog_NilIsEmpty(t *testing.T) {
	var c *differential.Catalog

	assert.NotPanics(t, func() {
		_, ok := c.Get("Night")
		assert.False(t, ok)
		assert.Zero(t, c.Len())
		assert.Empty(t, c.Types())
		assert.Empty(t, c.All())
		assert.Empty(t, c.ListByCategory(differential.CategoryEssential))
	})
}
