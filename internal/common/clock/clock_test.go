package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowIsUTCWithoutMonotonic(t *testing.T) {
	now := New().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.True(t, now.Equal(now.Round(0)))
	assert.Equal(t, now, now.Round(0))
}
