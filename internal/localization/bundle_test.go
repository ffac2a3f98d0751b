package localization

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/spyglass/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBundle = `{
	"bot_activity": "watching",
	"plays": "playing",
	"won": "won",
	"lost": "lost",
	"played_on": "Played on",
	"with_score": "with score",
	"match_duration": "Match lasted",
	"minutes": "minutes",
	"target_name": "Gaben",
	"offline": "is now Offline",
	"idle": "is now Idle",
	"invisible": "is now Invisible",
	"online": "is now Online",
	"donotdisturb": "is now Busy",
	"unknown": "is now Unknown",
	"from_mobile": " from mobile"
}`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "localization.json")
	require.NoError(t, os.WriteFile(path, []byte(validBundle), 0o600))

	b, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Gaben", b.TargetName)
	assert.Equal(t, "is now Busy", b.Status(models.PlayerStatusDoNotDisturb))
	assert.Equal(t, "is now Unknown", b.Status(models.PlayerStatusUnknown))
	assert.Equal(t, " from mobile", b.Device(models.DeviceMobile))
	assert.Empty(t, b.Device(models.DeviceWeb))
	assert.Empty(t, b.OnSteam)
	assert.Equal(t, "won", b.Outcome(true))
	assert.Equal(t, "lost", b.Outcome(false))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"plays": `))
	assert.Error(t, err)
}

func TestParseRejectsMissingKeys(t *testing.T) {
	_, err := Parse([]byte(`{"plays": "playing"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target_name")
}

func TestExampleBundleIsValid(t *testing.T) {
	b, err := Load(filepath.Join("..", "..", "localization.example.json"))
	require.NoError(t, err)
	assert.Equal(t, "on Steam", b.OnSteam)
}

func TestFixtureIsValid(t *testing.T) {
	assert.NoError(t, Fixture().Validate())
}
