package discord

import (
	"github.com/KirkDiggler/spyglass/internal/models"
	"github.com/bwmarrin/discordgo"
)

// PresenceFromUpdate converts a gateway presence update. It returns nil when
// the update carries no user.
func PresenceFromUpdate(p *discordgo.PresenceUpdate) *models.Presence {
	if p == nil || p.User == nil {
		return nil
	}

	out := &models.Presence{
		GuildID: p.GuildID,
		UserID:  p.User.ID,
		Status:  models.ParsePlayerStatus(string(p.Status)),
	}

	cs := p.ClientStatus
	if cs.Mobile != "" || cs.Web != "" || cs.Desktop != "" {
		out.ClientStatus = &models.ClientStatus{
			Mobile:  deviceStatus(cs.Mobile),
			Web:     deviceStatus(cs.Web),
			Desktop: deviceStatus(cs.Desktop),
		}
	}

	for _, a := range p.Activities {
		if a == nil {
			continue
		}
		out.Activities = append(out.Activities, models.Activity{
			Name:      a.Name,
			Type:      models.ActivityType(a.Type),
			Details:   a.Details,
			State:     a.State,
			LargeText: a.Assets.LargeText,
			SmallText: a.Assets.SmallText,
		})
	}

	return out
}

// deviceStatus treats offline on a device as not connected there
func deviceStatus(s discordgo.Status) models.PlayerStatus {
	if s == discordgo.StatusOffline {
		return ""
	}
	return models.ParsePlayerStatus(string(s))
}
