package texts

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatResponseBody(t *testing.T) {
	t.Run("json pretty printed", func(t *testing.T) {
		got := FormatResponseBody([]byte(`{"a":1,"b":"two"}`))
		assert.Contains(t, got, "\"a\": 1")
		assert.Contains(t, got, "\"b\": \"two\"")
	})

	t.Run("non-json passed through", func(t *testing.T) {
		got := FormatResponseBody([]byte("plain text reply"))
		assert.Equal(t, "plain text reply", got)
	})

	t.Run("long payload truncated", func(t *testing.T) {
		raw := strings.Repeat("x", maxResponseLength+100)
		got := FormatResponseBody([]byte(raw))
		assert.True(t, strings.HasSuffix(got, "\n... (truncated)"))
		assert.Len(t, got, maxResponseLength+len("\n... (truncated)"))
	})
}

func TestFormatBanNotice(t *testing.T) {
	banDate := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	got := FormatBanNotice("spamming", &banDate)
	assert.Contains(t, got, "Reason: spamming")
	assert.Contains(t, got, "2025-03-14 09:30:00")

	got = FormatBanNotice("", nil)
	assert.Contains(t, got, "No reason provided")
	assert.Contains(t, got, "Banned on: Unknown")
}

func TestFormatCreditsLowBalanceWarning(t *testing.T) {
	assert.Contains(t, FormatCredits("Test", 4), "Low Balance")
	assert.NotContains(t, FormatCredits("Test", 5), "Low Balance")
}
