package discord

import (
	"testing"

	"github.com/KirkDiggler/spyglass/internal/models"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestPresenceFromUpdate(t *testing.T) {
	update := &discordgo.PresenceUpdate{
		GuildID: "1",
		Presence: discordgo.Presence{
			User:   &discordgo.User{ID: "2"},
			Status: discordgo.StatusOnline,
			ClientStatus: discordgo.ClientStatus{
				Desktop: discordgo.StatusOnline,
				Mobile:  discordgo.StatusIdle,
				Web:     discordgo.StatusOffline,
			},
			Activities: []*discordgo.Activity{
				nil,
				{
					Name:    "Dota 2",
					Type:    discordgo.ActivityTypeGame,
					Details: "Ranked",
					Assets:  discordgo.Assets{LargeText: "Pudge", SmallText: "Level 25"},
				},
				{
					Name:  "Custom Status",
					Type:  discordgo.ActivityTypeCustom,
					State: "afk",
				},
			},
		},
	}

	got := PresenceFromUpdate(update)

	assert.Equal(t, &models.Presence{
		GuildID: "1",
		UserID:  "2",
		Status:  models.PlayerStatusOnline,
		ClientStatus: &models.ClientStatus{
			Mobile:  models.PlayerStatusIdle,
			Desktop: models.PlayerStatusOnline,
		},
		Activities: []models.Activity{
			{
				Name:      "Dota 2",
				Type:      models.ActivityTypeGame,
				Details:   "Ranked",
				LargeText: "Pudge",
				SmallText: "Level 25",
			},
			{
				Name:  "Custom Status",
				Type:  models.ActivityTypeCustom,
				State: "afk",
			},
		},
	}, got)
}

func TestPresenceFromUpdateWithoutClientStatus(t *testing.T) {
	got := PresenceFromUpdate(&discordgo.PresenceUpdate{
		Presence: discordgo.Presence{
			User:   &discordgo.User{ID: "2"},
			Status: discordgo.StatusDoNotDisturb,
		},
	})

	assert.Nil(t, got.ClientStatus)
	assert.Equal(t, models.PlayerStatusDoNotDisturb, got.Status)
	assert.Empty(t, got.Activities)
}

func TestPresenceFromUpdateWithoutUser(t *testing.T) {
	assert.Nil(t, PresenceFromUpdate(&discordgo.PresenceUpdate{}))
	assert.Nil(t, PresenceFromUpdate(nil))
}
