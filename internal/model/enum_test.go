package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValid(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
		got   bool
	}{
		{"roast light", true, RoastLight.Valid()},
		{"roast full city", true, RoastFullCity.Valid()},
		{"roast lowercase", false, RoastLevel("light").Valid()},
		{"roast empty", false, RoastLevel("").Valid()},
		{"process washed", true, ProcessWashed.Valid()},
		{"process unknown", false, Process("WET_HULLED").Valid()},
		{"size 01", true, DripperSize01.Valid()},
		{"size other", true, DripperSizeOther.Valid()},
		{"size 05", false, DripperSize("SIZE_05").Valid()},
		{"filter paper", true, FilterPaper.Valid()},
		{"filter cloth", true, FilterCloth.Valid()},
		{"filter plastic", false, FilterType("PLASTIC").Valid()},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.got, tt.name)
	}
}

func TestEnumSetsAreClosed(t *testing.T) {
	assert.Len(t, RoastLevels, 8)
	assert.Len(t, Processes, 7)
	assert.Equal(t, []DripperSize{"SIZE_01", "SIZE_02", "SIZE_03", "SIZE_04", "OTHER"}, DripperSizes)
	assert.Equal(t, []FilterType{"PAPER", "METAL", "CLOTH"}, FilterTypes)
}

func TestParseEnums(t *testing.T) {
	roast, err := ParseRoastLevel("CITY")
	require.NoError(t, err)
	assert.Equal(t, RoastCity, roast)

	_, err = ParseProcess("washed")
	assert.ErrorIs(t, err, ErrInvalidEnum)

	size, err := ParseDripperSize("SIZE_02")
	require.NoError(t, err)
	assert.Equal(t, DripperSize02, size)

	_, err = ParseFilterType("PLASTIC")
	assert.ErrorIs(t, err, ErrInvalidEnum)
}
