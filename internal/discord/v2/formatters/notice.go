package formatters

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/builders"
)

// UnderConstructionMessage is the placeholder for commands without real pages yet
const UnderConstructionMessage = "Command under construction"

// UnderConstruction is the single notice page returned for info and skills
func UnderConstruction() []*discordgo.MessageEmbed {
	return []*discordgo.MessageEmbed{builders.InfoEmbed(UnderConstructionMessage).Build()}
}
