package formatters

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/builders"
	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
	"github.com/KirkDiggler/arknights-bot-discord/internal/gamedata"
	"github.com/KirkDiggler/arknights-bot-discord/internal/markup"
)

const (
	// NoDescription replaces an empty skin description
	NoDescription = "No description available"

	// amiyaModel owns the portraits whose '#' marks a variant instead of being noise
	amiyaModel = "Amiya"
)

// ThumbnailID maps a skin portrait id to its portrait file name: '+' becomes
// 'a', and '#' becomes 'b' for Amiya or is dropped for everyone else.
func ThumbnailID(portraitID string, modelName *string) string {
	hash := ""
	if modelName != nil && *modelName == amiyaModel {
		hash = "b"
	}

	id := strings.ReplaceAll(portraitID, "+", "a")
	return strings.ReplaceAll(id, "#", hash)
}

// SkinEmbeds renders one page per skin in the order received
func (f *Formatter) SkinEmbeds(skins []*gamedata.Skin) ([]*discordgo.MessageEmbed, error) {
	pages := make([]*discordgo.MessageEmbed, 0, len(skins))
	for i, skin := range skins {
		if skin == nil || skin.Display == nil {
			return nil, apperr.Formatf("skin %d is missing its display data", i)
		}
		pages = append(pages, f.skinEmbed(skin))
	}

	return pages, nil
}

func (f *Formatter) skinEmbed(skin *gamedata.Skin) *discordgo.MessageEmbed {
	display := skin.Display
	extracted := markup.Extract(display.Content)

	description := extracted.Text
	if description == "" {
		description = NoDescription
	}

	page := builders.NewEmbed().
		Title(skinTitle(display)).
		Description(description).
		Color(extracted.Color).
		Image(f.assets.SkinArt(skin.PortraitID)).
		Thumbnail(f.assets.SkinPortrait(ThumbnailID(skin.PortraitID, display.ModelName)))

	if details := skinDetails(display, extracted.Text); details != "" {
		page.Field("Details", details, false)
	}

	return page.Build()
}

func skinTitle(display *gamedata.DisplaySkin) string {
	name := deref(display.SkinName)
	if name == "" {
		name = deref(display.ModelName)
	}
	return fmt.Sprintf("%s (%s)", name, deref(display.SkinGroupName))
}

// skinDetails lists the present attributes in a fixed order. The dialog line is
// skipped when the description already quotes it.
func skinDetails(display *gamedata.DisplaySkin, text string) string {
	var details strings.Builder
	line := func(label string, value *string) {
		if value != nil {
			details.WriteString("• " + label + " : " + *value + "\n")
		}
	}

	line("Model", display.ModelName)
	line("Design", display.DrawerName)
	if display.Dialog != nil && !strings.Contains(text, *display.Dialog) {
		line("Dialog", display.Dialog)
	}
	line("Usage", display.Usage)
	line("Description", display.Description)
	line("How to obtain", display.ObtainApproach)

	return details.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
