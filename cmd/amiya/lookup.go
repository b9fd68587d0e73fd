package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/formatters"
	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/routers"
	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
	"github.com/KirkDiggler/arknights-bot-discord/internal/gamedata"
)

func newLookupCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <info|file|audio|skins|skills> [name...]",
		Short: "Print an operator command's pages without connecting to Discord",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.gamedataClient(gamedata.NewInMemoryTableStore())
			if err != nil {
				return err
			}

			operators, err := routers.NewOperatorRouter(nil, &routers.OperatorRouterConfig{
				Client: client,
				Formatter: formatters.New(formatters.Assets{
					ImageBaseURL: a.cfg.Assets.ImageBaseURL,
					AudioBaseURL: a.cfg.Assets.AudioBaseURL,
				}),
				Logger: a.logger,
			})
			if err != nil {
				return err
			}

			return lookup(cmd, operators, args[0], strings.Join(args[1:], " "))
		},
	}
}

func lookup(cmd *cobra.Command, operators *routers.OperatorRouter, sub, name string) error {
	out := cmd.OutOrStdout()

	if !routers.IsSubcommand(sub) {
		writePage(out, routers.HelpEmbed("amiya lookup"))
		return nil
	}

	pages, err := operators.Dispatch(cmd.Context(), sub, name)
	if err != nil {
		if apperr.IsValidation(err) {
			fmt.Fprintln(out, apperr.GetMessage(err))
			return nil
		}
		return err
	}

	writePages(out, pages)
	return nil
}

// writePages prints pages as plain text separated by a rule
func writePages(w io.Writer, pages []*discordgo.MessageEmbed) {
	for i, page := range pages {
		if i > 0 {
			fmt.Fprintln(w, strings.Repeat("-", 40))
		}
		fmt.Fprintf(w, "[%d/%d] ", i+1, len(pages))
		writePage(w, page)
	}
}

func writePage(w io.Writer, page *discordgo.MessageEmbed) {
	fmt.Fprintln(w, page.Title)
	if page.Description != "" {
		fmt.Fprintln(w, page.Description)
	}
	for _, field := range page.Fields {
		fmt.Fprintf(w, "%s: %s\n", field.Name, field.Value)
	}
	if page.Image != nil {
		fmt.Fprintf(w, "image: %s\n", page.Image.URL)
	}
	if page.Thumbnail != nil {
		fmt.Fprintf(w, "thumbnail: %s\n", page.Thumbnail.URL)
	}
	if page.Footer != nil && page.Footer.Text != "" {
		fmt.Fprintln(w, page.Footer.Text)
	}
}
