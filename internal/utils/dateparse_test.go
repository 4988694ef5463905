package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay_NaturalWords(t *testing.T) {
	loc := time.UTC
	now := time.Now().In(loc)

	got, err := ParseDay("today", loc)
	require.NoError(t, err)
	assert.Equal(t, now.Format("2006-01-02"), got.Format("2006-01-02"))
	assert.Equal(t, 0, got.Hour())

	got, err = ParseDay("yesterday", loc)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -1).Format("2006-01-02"), got.Format("2006-01-02"))
}

func TestParseDay_DaysAgo(t *testing.T) {
	loc := time.UTC
	got, err := ParseDay("3 days ago", loc)
	require.NoError(t, err)
	want := time.Now().In(loc).AddDate(0, 0, -3)
	assert.Equal(t, want.Format("2006-01-02"), got.Format("2006-01-02"))

	_, err = ParseDay("some days ago", loc)
	assert.Error(t, err)
}

func TestParseDay_Layouts(t *testing.T) {
	loc := time.UTC
	for _, in := range []string{"2026-06-01", "2026/06/01", "jun 1, 2026", "1 jun 2026"} {
		got, err := ParseDay(in, loc)
		require.NoError(t, err, in)
		assert.Equal(t, "2026-06-01", got.Format("2006-01-02"), in)
	}
}

func TestParseDay_Invalid(t *testing.T) {
	_, err := ParseDay("", time.UTC)
	assert.Error(t, err)
	_, err = ParseDay("not a date", time.UTC)
	assert.Error(t, err)
}
