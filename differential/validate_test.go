package differential_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/pay-engine/differential"
)

func TestValidateValueAndFrequency(t *testing.T) {
	r := differential.Range{Min: 1, Max: 3, Unit: "multiplier"}

	assert.True(t, differential.ValidateValue(1, r))
	assert.True(t, differential.ValidateValue(3, r))
	assert.False(t, differential.ValidateValue(0.5, r))
	assert.True(t, differential.ValidateFrequency(2, r))
	assert.False(t, differential.ValidateFrequency(4, r))
}

func TestValidateItem_Clean(t *testing.T) {
	cfg := config("Night", "$/hour", "yes")
	cfg.ValueRange.Max = 15
	cfg.FrequencyRange.Max = 1

	assert.Empty(t, differential.ValidateItem(item("Night", 4, 1), cfg))
}

func TestValidateItem_UnknownType(t *testing.T) {
	issues := differential.ValidateItem(item("Mystery", 4, 1), nil)

	require.Len(t, issues, 1)
	assert.Equal(t, differential.IssueUnknownType, issues[0].Code)
	assert.Equal(t, "Mystery", issues[0].Type)
}

func TestValidateItem_OutOfRange(t *testing.T) {
	// GIVEN: Night is $0-15/hour, yes/no
	cfg := config("Night", "$/hour", "yes")
	cfg.ValueRange.Max = 15
	cfg.FrequencyRange.Max = 1

	// WHEN: Reporting $20/hour with frequency 2
	issues := differential.ValidateItem(item("Night", 20, 2), cfg)

	// THEN: Both ranges are flagged, advisory only
	require.Len(t, issues, 2)
	assert.Equal(t, differential.IssueValueOutOfRange, issues[0].Code)
	assert.Contains(t, issues[0].Message, "value 20 outside [0, 15]")
	assert.Equal(t, differential.IssueFrequencyOutRange, issues[1].Code)
}

func TestValidateItem_UncoveredUnits(t *testing.T) {
	cfg := config("Degree", "per level", "degree_level")

	issues := differential.ValidateItem(item("Degree", 1, 2), cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, differential.IssueUncoveredUnits, issues[0].Code)

	// Not flagged when the differential does not occur
	assert.Empty(t, differential.ValidateItem(item("Degree", 1, 0), cfg))
}
