package formatters

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/builders"
	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
	"github.com/KirkDiggler/arknights-bot-discord/internal/gamedata"
)

const (
	// AudioPageCount is how many pages voice lines are spread over
	AudioPageCount = 3

	// AudioFooter is shown on every audio page
	AudioFooter = "In case you didn't notice, you can click on the icon ▶️ to listen to the audio records !"

	nicknamePlaceholder = "{@nickname}"
	nicknameRedacted    = "???"
	enQuad              = "\u2000"
)

// Bounds is a half-open index range [Start, End)
type Bounds struct {
	Start int
	End   int
}

// Partition splits n items into parts contiguous groups. Group i starts at
// n*i/parts and the last group always ends at n, absorbing the remainder.
func Partition(n, parts int) []Bounds {
	if parts <= 0 {
		return nil
	}

	groups := make([]Bounds, parts)
	for i := range groups {
		groups[i].Start = n * i / parts
		groups[i].End = n * (i + 1) / parts
	}
	groups[parts-1].End = n
	return groups
}

// AudioEmbeds renders voice lines over AudioPageCount pages. The file supplies
// the painter and voice actor credits.
func (f *Formatter) AudioEmbeds(audio *gamedata.OperatorAudio, file *gamedata.OperatorFile) ([]*discordgo.MessageEmbed, error) {
	if audio == nil {
		return nil, apperr.Formatf("operator audio is missing")
	}
	if file == nil {
		return nil, apperr.Formatf("operator file of %s is missing", audio.Name)
	}
	if len(audio.Lines) == 0 || audio.Lines[0] == nil {
		return nil, apperr.Formatf("operator %s has no voice lines", audio.Name)
	}

	header := credits(file)
	thumbnail := f.assets.OperatorPortrait(audio.Lines[0].CharID)

	pages := make([]*discordgo.MessageEmbed, 0, AudioPageCount)
	for _, group := range Partition(len(audio.Lines), AudioPageCount) {
		page := builders.NewEmbed().
			Title(audio.Name).
			Description(header).
			Footer(AudioFooter).
			Thumbnail(thumbnail)

		for i, line := range audio.Lines[group.Start:group.End] {
			if line == nil {
				return nil, apperr.Formatf("voice line %d of %s is missing", group.Start+i, audio.Name)
			}
			page.Field(line.Title, f.voiceValue(line), false)
		}

		pages = append(pages, page.Build())
	}

	return pages, nil
}

func (f *Formatter) voiceValue(line *gamedata.VoiceLine) string {
	text := strings.ReplaceAll(line.Text, nicknamePlaceholder, nicknameRedacted)
	return "[▶️](" + f.assets.VoiceLine(line.Asset) + ")" + enQuad + text
}
