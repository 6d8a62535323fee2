package cmdutil

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPageOptions(t *testing.T) {
	flags := pflag.NewFlagSet("candle", pflag.ContinueOnError)
	PageFlags(flags)
	TimeRangeFlags(flags)

	require.NoError(t, flags.Parse([]string{"--page", "3", "--sort", "asc", "--pages", "0", "--from", "2024-01-01"}))

	opts, err := GetPageOptions(flags)
	require.NoError(t, err)
	assert.Equal(t, PageOptions{Page: 3, Limit: 1000, Sort: "asc", Pages: 0}, opts)

	r, err := GetTimeRange(flags)
	require.NoError(t, err)
	assert.Equal(t, TimeRange{From: "2024-01-01"}, r)
}

func TestGetPageOptions_Undefined(t *testing.T) {
	flags := pflag.NewFlagSet("ticker", pflag.ContinueOnError)

	_, err := GetPageOptions(flags)
	assert.Error(t, err)
}
