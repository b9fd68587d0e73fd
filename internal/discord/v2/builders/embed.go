package builders

import (
	"github.com/bwmarrin/discordgo"
)

// EmbedBuilder provides a fluent API for building Discord embeds
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: make([]*discordgo.MessageEmbedField, 0),
		},
	}
}

// Title sets the embed title
func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

// Description sets the embed description
func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = description
	return b
}

// Color sets the embed color
func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

// Footer sets the embed footer
func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	b.embed.Footer = &discordgo.MessageEmbedFooter{
		Text: text,
	}
	return b
}

// Image sets the embed image
func (b *EmbedBuilder) Image(url string) *EmbedBuilder {
	b.embed.Image = &discordgo.MessageEmbedImage{
		URL: url,
	}
	return b
}

// Thumbnail sets the embed thumbnail
func (b *EmbedBuilder) Thumbnail(url string) *EmbedBuilder {
	b.embed.Thumbnail = &discordgo.MessageEmbedThumbnail{
		URL: url,
	}
	return b
}

// Field adds a field to the embed
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return b
}

// Build returns the constructed embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

// Common embed colors
const (
	ColorError = 0xff0000 // Red
	ColorInfo  = 0x0099ff // Blue
)

// InfoEmbed is the simple informational notice used for user-facing messages
func InfoEmbed(description string) *EmbedBuilder {
	return NewEmbed().
		Description("ℹ️ " + description).
		Color(ColorInfo)
}

// ErrorEmbed is the notice shown when a command could not complete
func ErrorEmbed(description string) *EmbedBuilder {
	return NewEmbed().
		Description("❌ " + description).
		Color(ColorError)
}

// CopyEmbed returns a shallow copy of embed with its own footer, so page decorations
// never leak into the stored page
func CopyEmbed(embed *discordgo.MessageEmbed) *discordgo.MessageEmbed {
	copied := *embed
	if embed.Footer != nil {
		footer := *embed.Footer
		copied.Footer = &footer
	}
	return &copied
}
