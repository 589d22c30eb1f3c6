package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 0.88, RoundWithTwoDecimalPlace(0.876))
	assert.Equal(t, 0.72, RoundWithTwoDecimalPlace(0.7249))
}

func TestGenerateReportID(t *testing.T) {
	first, err := GenerateReportID()
	require.NoError(t, err)
	second, err := GenerateReportID()
	require.NoError(t, err)

	assert.Len(t, first, 16)
	assert.NotEqual(t, first, second)
	assert.Regexp(t, "^[A-Za-z0-9]+$", first)
}
