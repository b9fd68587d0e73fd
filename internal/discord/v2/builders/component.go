package builders

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/core"
)

// ComponentBuilder builds Discord message components
type ComponentBuilder struct {
	rows            []discordgo.MessageComponent
	currentRow      []discordgo.MessageComponent
	customIDBuilder *core.CustomIDBuilder
}

// NewComponentBuilder creates a new component builder
func NewComponentBuilder(customIDBuilder *core.CustomIDBuilder) *ComponentBuilder {
	return &ComponentBuilder{
		rows:            make([]discordgo.MessageComponent, 0),
		currentRow:      make([]discordgo.MessageComponent, 0, 5), // Max 5 per row
		customIDBuilder: customIDBuilder,
	}
}

// EmojiButton adds a button with emoji; disabled buttons keep their custom id
// because Discord rejects duplicate ids within a message
func (b *ComponentBuilder) EmojiButton(emoji string, style discordgo.ButtonStyle, disabled bool, action, target string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Style:    style,
		CustomID: b.customIDBuilder.Button(action, target),
		Disabled: disabled,
		Emoji: &discordgo.ComponentEmoji{
			Name: emoji,
		},
	})
	return b
}

// LabelButton adds a disabled label-only button, e.g. a page counter
func (b *ComponentBuilder) LabelButton(label, action, target string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    discordgo.SecondaryButton,
		CustomID: b.customIDBuilder.Button(action, target),
		Disabled: true,
	})
	return b
}

// NewRow starts a new action row
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{
			Components: b.currentRow,
		})
		b.currentRow = make([]discordgo.MessageComponent, 0, 5)
	}
	return b
}

// Build returns the built components
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{
			Components: b.currentRow,
		})
		b.currentRow = make([]discordgo.MessageComponent, 0, 5)
	}

	return b.rows
}

func (b *ComponentBuilder) addComponent(component discordgo.MessageComponent) {
	if len(b.currentRow) >= 5 {
		b.NewRow()
	}

	b.currentRow = append(b.currentRow, component)
}

// Pager actions carried in component custom ids
const (
	PagerFirst = "first"
	PagerPrev  = "prev"
	PagerPage  = "page"
	PagerNext  = "next"
	PagerLast  = "last"
	PagerStop  = "stop"
)

// PagerButtons adds the navigation row for page current (0-based) of total
func (b *ComponentBuilder) PagerButtons(sessionID string, current, total int) *ComponentBuilder {
	atStart := current <= 0
	atEnd := current >= total-1

	b.EmojiButton("⏮️", discordgo.SecondaryButton, atStart, PagerFirst, sessionID)
	b.EmojiButton("◀️", discordgo.PrimaryButton, atStart, PagerPrev, sessionID)
	b.LabelButton(fmt.Sprintf("%d/%d", current+1, total), PagerPage, sessionID)
	b.EmojiButton("▶️", discordgo.PrimaryButton, atEnd, PagerNext, sessionID)
	b.EmojiButton("⏭️", discordgo.SecondaryButton, atEnd, PagerLast, sessionID)
	b.NewRow()
	b.EmojiButton("⏹️", discordgo.DangerButton, false, PagerStop, sessionID)
	return b
}
