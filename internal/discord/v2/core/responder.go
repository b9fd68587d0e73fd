package core

import (
	"github.com/bwmarrin/discordgo"

	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
)

// InteractionResponder provides an abstraction over Discord's interaction response API
type InteractionResponder interface {
	// Defer sends a deferred response, optionally ephemeral
	Defer(ephemeral bool) error

	// DeferUpdate acknowledges a component interaction without a new message
	DeferUpdate() error

	// Respond sends an immediate response
	Respond(response *Response) error

	// Edit updates a previous response (after defer or respond)
	Edit(response *Response) error

	// HasResponded reports whether an initial response was sent
	HasResponded() bool

	// IsDeferred reports whether the initial response was a deferral
	IsDeferred() bool
}

// InteractionAPI is the part of *discordgo.Session the responder needs
type InteractionAPI interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordResponder implements InteractionResponder using Discord's API
type DiscordResponder struct {
	api         InteractionAPI
	interaction *discordgo.InteractionCreate
	responded   bool
	deferred    bool
}

// NewDiscordResponder creates a new Discord responder
func NewDiscordResponder(api InteractionAPI, i *discordgo.InteractionCreate) *DiscordResponder {
	return &DiscordResponder{
		api:         api,
		interaction: i,
	}
}

// Defer sends a deferred response
func (r *DiscordResponder) Defer(ephemeral bool) error {
	if r.responded {
		return apperr.Internalf("interaction already responded to")
	}

	flags := discordgo.MessageFlags(0)
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	return r.ack(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: flags,
		},
	})
}

// DeferUpdate acknowledges a component interaction; the message is edited later
func (r *DiscordResponder) DeferUpdate() error {
	if r.responded {
		return apperr.Internalf("interaction already responded to")
	}

	return r.ack(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
}

func (r *DiscordResponder) ack(resp *discordgo.InteractionResponse) error {
	if err := r.api.InteractionRespond(r.interaction.Interaction, resp); err != nil {
		return apperr.Transport(err, "failed to defer interaction")
	}
	r.deferred = true
	r.responded = true
	return nil
}

// Respond sends an immediate response
func (r *DiscordResponder) Respond(response *Response) error {
	if r.responded {
		// If we've already responded, edit instead
		return r.Edit(response)
	}

	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if response.Update && r.interaction.Type == discordgo.InteractionMessageComponent {
		responseType = discordgo.InteractionResponseUpdateMessage
	}

	err := r.api.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: buildResponseData(response),
	})
	if err != nil {
		return apperr.Transport(err, "failed to respond to interaction")
	}

	r.responded = true
	return nil
}

// Edit updates a previous response
func (r *DiscordResponder) Edit(response *Response) error {
	if !r.responded {
		return apperr.Internalf("cannot edit before responding")
	}

	embeds := response.Embeds
	if embeds == nil {
		embeds = []*discordgo.MessageEmbed{}
	}
	components := response.Components
	if components == nil {
		components = []discordgo.MessageComponent{}
	}

	webhook := &discordgo.WebhookEdit{
		Content:    &response.Content,
		Embeds:     &embeds,
		Components: &components,
	}

	if _, err := r.api.InteractionResponseEdit(r.interaction.Interaction, webhook); err != nil {
		return apperr.Transport(err, "failed to edit interaction response")
	}
	return nil
}

// buildResponseData converts our Response to Discord's InteractionResponseData
func buildResponseData(response *Response) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Content:    response.Content,
		Embeds:     response.Embeds,
		Components: response.Components,
	}

	if response.Update && data.Components == nil {
		// an update without components clears the existing buttons
		data.Components = []discordgo.MessageComponent{}
	}

	if response.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return data
}

// HasResponded returns whether this responder has already sent a response
func (r *DiscordResponder) HasResponded() bool {
	return r.responded
}

// IsDeferred returns whether this responder has sent a deferred response
func (r *DiscordResponder) IsDeferred() bool {
	return r.deferred
}
