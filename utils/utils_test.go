package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(13)
	b := GenerateRandomString(13)

	assert.Len(t, a, 13)
	assert.Len(t, b, 13)
	assert.NotEqual(t, a, b)
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("traveler@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.co"))

	assert.False(t, ValidateEmail(""))
	assert.False(t, ValidateEmail("no-at-sign"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail("@example.com"))
}

func TestValidateIATACode(t *testing.T) {
	assert.True(t, ValidateIATACode("NYC"))
	assert.True(t, ValidateIATACode("CDG"))

	assert.False(t, ValidateIATACode("nyc"))
	assert.False(t, ValidateIATACode("NEWY"))
	assert.False(t, ValidateIATACode("NY"))
	assert.False(t, ValidateIATACode(""))
}

func TestNormalizeDestination(t *testing.T) {
	assert.Equal(t, "paris, france", NormalizeDestination("Paris, France"))
	assert.Equal(t, "paris, france", NormalizeDestination("  PARIS,   France! "))
	assert.Equal(t, "rome, italy", NormalizeDestination("Rome,\tItaly"))
	assert.Equal(t, "", NormalizeDestination("   "))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45m", FormatDuration(45))
	assert.Equal(t, "1h", FormatDuration(60))
	assert.Equal(t, "2h 30m", FormatDuration(150))
	assert.Equal(t, "0m", FormatDuration(0))
}
