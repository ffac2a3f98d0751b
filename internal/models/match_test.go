package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchOutcome(t *testing.T) {
	radiantWin := &Match{PlayerSlot: 2, RadiantWin: true}
	assert.True(t, radiantWin.Won())

	direLoss := &Match{PlayerSlot: 7, RadiantWin: true}
	assert.False(t, direLoss.Won())

	direWin := &Match{PlayerSlot: 130, RadiantWin: false}
	assert.True(t, direWin.Won())
}

func TestMatchDurationMinutesTruncates(t *testing.T) {
	m := &Match{Duration: 754}
	assert.Equal(t, int64(12), m.DurationMinutes())

	m.Duration = 59
	assert.Equal(t, int64(0), m.DurationMinutes())
}

func TestParsePlayerStatus(t *testing.T) {
	assert.Equal(t, PlayerStatusIdle, ParsePlayerStatus("idle"))
	assert.Equal(t, PlayerStatusDoNotDisturb, ParsePlayerStatus("dnd"))
	assert.Equal(t, PlayerStatusUnknown, ParsePlayerStatus("streaming"))
	assert.Equal(t, PlayerStatus(""), ParsePlayerStatus(""))
}
