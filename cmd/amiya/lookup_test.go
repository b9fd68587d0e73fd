package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/arknights-bot-discord/internal/discord/v2/routers"
	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
	"github.com/KirkDiggler/arknights-bot-discord/internal/gamedata"
	mockgamedata "github.com/KirkDiggler/arknights-bot-discord/internal/gamedata/mock"
)

func lookupFixture(t *testing.T) (*cobra.Command, *bytes.Buffer, *mockgamedata.MockClient, *routers.OperatorRouter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mockgamedata.NewMockClient(ctrl)
	logger, _ := test.NewNullLogger()

	operators, err := routers.NewOperatorRouter(nil, &routers.OperatorRouterConfig{Client: client, Logger: logger})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetContext(context.Background())

	return cmd, out, client, operators
}

func TestLookup_File(t *testing.T) {
	cmd, out, client, operators := lookupFixture(t)

	client.EXPECT().GetOperatorFile(gomock.Any(), "Angelina").Return(&gamedata.OperatorFile{
		Name:     "Angelina",
		CharID:   "char_291_aglina",
		DrawName: "Skade",
		InfoName: "Yuuki Aoi",
		Stories: []*gamedata.Story{
			{Title: "Basic Info", Segments: []string{"[Code Name] Angelina"}},
			{Title: "Physical Exam", Segments: []string{"[Mobility] Standard"}},
		},
	}, nil)

	require.NoError(t, lookup(cmd, operators, routers.SubFile, "Angelina"))

	text := out.String()
	assert.Contains(t, text, "[1/2] Angelina")
	assert.Contains(t, text, "[2/2] Angelina")
	assert.Contains(t, text, "Painter : Skade")
	assert.Contains(t, text, "thumbnail: https://raw.githubusercontent.com/Aceship/AN-EN-Tags/master/img/portraits/char_291_aglina_1.png")
}

func TestLookup_MissingName(t *testing.T) {
	cmd, out, _, operators := lookupFixture(t)

	require.NoError(t, lookup(cmd, operators, routers.SubAudio, ""))
	assert.Equal(t, routers.MissingNameMessage+"\n", out.String())
}

func TestLookup_UnknownSubcommandPrintsHelp(t *testing.T) {
	cmd, out, _, operators := lookupFixture(t)

	require.NoError(t, lookup(cmd, operators, "recruit", "Angelina"))
	assert.Contains(t, out.String(), "`amiya lookup skins <name>`")
}

func TestLookup_ErrorsReturned(t *testing.T) {
	cmd, _, client, operators := lookupFixture(t)
	transport := apperr.Transport(errors.New("timeout"), "gamedata unreachable")

	client.EXPECT().GetOperatorSkins(gomock.Any(), "Amiya").Return(nil, transport)

	err := lookup(cmd, operators, routers.SubSkins, "Amiya")
	assert.True(t, apperr.IsTransport(err))
}

func TestWritePages(t *testing.T) {
	out := &bytes.Buffer{}
	writePages(out, []*discordgo.MessageEmbed{
		{
			Title:  "Angelina",
			Fields: []*discordgo.MessageEmbedField{{Name: "Greeting", Value: "Hello"}},
			Footer: &discordgo.MessageEmbedFooter{Text: "footer"},
		},
		{Title: "Second", Image: &discordgo.MessageEmbedImage{URL: "http://img"}},
	})

	assert.Equal(t, "[1/2] Angelina\nGreeting: Hello\nfooter\n"+
		"----------------------------------------\n"+
		"[2/2] Second\nimage: http://img\n", out.String())
}

func TestRootCommand_LookupRequiresSubcommand(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"lookup", "--env-file", "testdata-missing.env"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	assert.Error(t, root.Execute())
}
