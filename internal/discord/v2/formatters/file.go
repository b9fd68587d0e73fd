package formatters

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/builders"
	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
	"github.com/KirkDiggler/arknights-bot-discord/internal/gamedata"
)

// Formatter renders gamedata records with a fixed set of asset links
type Formatter struct {
	assets Assets
}

// New creates a formatter; empty base urls fall back to the defaults
func New(assets Assets) *Formatter {
	defaults := DefaultAssets()
	if assets.ImageBaseURL == "" {
		assets.ImageBaseURL = defaults.ImageBaseURL
	}
	if assets.AudioBaseURL == "" {
		assets.AudioBaseURL = defaults.AudioBaseURL
	}
	return &Formatter{assets: assets}
}

// credits is the painter and voice actor header shared by file and audio pages
func credits(file *gamedata.OperatorFile) string {
	return fmt.Sprintf("Painter : %s\nCV : %s", file.DrawName, file.InfoName)
}

// FileEmbeds renders one page per story of an operator file. Every page shares
// the operator name as title and the operator portrait as thumbnail.
func (f *Formatter) FileEmbeds(file *gamedata.OperatorFile) ([]*discordgo.MessageEmbed, error) {
	if file == nil {
		return nil, apperr.Formatf("operator file is missing")
	}
	if len(file.Stories) == 0 {
		return nil, apperr.Formatf("operator file of %s has no stories", file.Name).WithMeta("char_id", file.CharID)
	}

	header := credits(file)
	thumbnail := f.assets.OperatorPortrait(file.CharID)

	pages := make([]*discordgo.MessageEmbed, 0, len(file.Stories))
	for i, story := range file.Stories {
		if story == nil {
			return nil, apperr.Formatf("story %d of %s is missing", i, file.Name).WithMeta("char_id", file.CharID)
		}

		description := fmt.Sprintf("%s\n\n**%s**\n%s", header, story.Title, strings.Join(story.Segments, "\n"))
		pages = append(pages, builders.NewEmbed().
			Title(file.Name).
			Description(description).
			Thumbnail(thumbnail).
			Build())
	}

	return pages, nil
}
