package gamedata_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
	"github.com/KirkDiggler/arknights-bot-discord/internal/gamedata"
)

var fixtures = map[string]string{
	"character_table": `{
		"token_10000_silent_healrb": {"name": "Medical Drone", "appellation": "Drone"},
		"char_291_aglina": {
			"name": "Angelina", "appellation": "Angelina", "description": "Slows enemies",
			"profession": "SUPPORT", "position": "RANGED",
			"skills": [{"skillId": "skchr_aglina_1"}, {"skillId": "skchr_aglina_2"}]
		},
		"char_002_amiya": {"name": "Amiya", "appellation": "Amiya", "skills": []}
	}`,
	"handbook_info_table": `{"handbookDict": {
		"char_291_aglina": {
			"charID": "char_291_aglina", "drawName": "Ask", "infoName": "Ayane Sakura",
			"storyTextAudio": [
				{"storyTitle": "Basic Info", "stories": [{"storyText": "[Code Name] Angelina"}]},
				{"storyTitle": "Archive File 1", "stories": [{"storyText": "first"}, {"storyText": "second"}]}
			]
		}
	}}`,
	"charword_table": `{"charWords": {
		"char_291_aglina_CN_001": {"charId": "char_291_aglina", "voiceTitle": "Appointed as Assistant", "voiceText": "Hello {@nickname}", "voiceAsset": "char_291_aglina/CN_001"},
		"char_002_amiya_CN_001": {"charId": "char_002_amiya", "voiceTitle": "Appointed as Assistant", "voiceText": "Doctor", "voiceAsset": "char_002_amiya/CN_001"},
		"char_291_aglina_CN_002": {"charId": "char_291_aglina", "voiceTitle": "Conversation 1", "voiceText": "Mail!", "voiceAsset": "char_291_aglina/CN_002"}
	}}`,
	"skin_table": `{"charSkins": {
		"char_291_aglina#1": {"skinId": "char_291_aglina#1", "charId": "char_291_aglina", "portraitId": "char_291_aglina_1",
			"displaySkin": {"skinName": null, "modelName": "Angelina", "drawerName": "Ask", "skinGroupName": "Default Outfit",
				"content": null, "dialog": null, "usage": null, "description": null, "obtainApproach": null}},
		"char_291_aglina@summer#1": {"skinId": "char_291_aglina@summer#1", "charId": "char_291_aglina", "portraitId": "char_291_aglina_summer#1",
			"displaySkin": {"skinName": "Summer Flowers", "modelName": "Angelina", "drawerList": ["Ask", "Someone"], "skinGroupName": "Summer Flowers",
				"content": "<color name=#d8d769>Sunshine</color>", "dialog": "Sunshine", "usage": "Beach", "description": "Light", "obtainApproach": "Store"}}
	}}`,
	"skill_table": `{
		"skchr_aglina_1": {"skillId": "skchr_aglina_1", "levels": [{"name": "Gravity Mode", "description": "lvl1"}, {"name": "Gravity Mode", "description": "lvl2"}]},
		"skchr_aglina_2": {"skillId": "skchr_aglina_2", "levels": [{"name": "Anti-Gravity", "description": "lvl1"}]}
	}`,
}

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	requests map[string]*int32
	client   gamedata.Client
	logs     *test.Hook
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.requests = make(map[string]*int32)
	for name := range fixtures {
		s.requests[name] = new(int32)
	}

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), ".json")
		body, ok := fixtures[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		atomic.AddInt32(s.requests[name], 1)
		_, _ = w.Write([]byte(body))
	}))

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s.logs = hook

	client, err := gamedata.New(&gamedata.Config{
		BaseURL:    s.server.URL,
		HttpClient: s.server.Client(),
		Logger:     logger,
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestGetOperatorInfo_CaseInsensitive() {
	character, err := s.client.GetOperatorInfo(context.Background(), "  angelina ")
	s.Require().NoError(err)

	s.Equal("char_291_aglina", character.ID)
	s.Equal("Angelina", character.Name)
	s.Equal([]string{"skchr_aglina_1", "skchr_aglina_2"}, character.SkillIDs)
}

func (s *ClientTestSuite) TestGetOperatorInfo_SkipsTokens() {
	_, err := s.client.GetOperatorInfo(context.Background(), "Medical Drone")
	s.True(apperr.IsNotFound(err))
}

func (s *ClientTestSuite) TestGetOperatorInfo_NotFound() {
	_, err := s.client.GetOperatorInfo(context.Background(), "Nobody")
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
	s.Equal("Nobody", apperr.GetMeta(err)["name"])
}

func (s *ClientTestSuite) TestGetOperatorFile() {
	file, err := s.client.GetOperatorFile(context.Background(), "Angelina")
	s.Require().NoError(err)

	s.Equal("Angelina", file.Name)
	s.Equal("char_291_aglina", file.CharID)
	s.Equal("Ask", file.DrawName)
	s.Equal("Ayane Sakura", file.InfoName)
	s.Require().Len(file.Stories, 2)
	s.Equal("Archive File 1", file.Stories[1].Title)
	s.Equal([]string{"first", "second"}, file.Stories[1].Segments)
}

func (s *ClientTestSuite) TestGetOperatorFile_Missing() {
	_, err := s.client.GetOperatorFile(context.Background(), "Amiya")
	s.True(apperr.IsNotFound(err))
}

func (s *ClientTestSuite) TestGetOperatorAudio_TableOrder() {
	audio, err := s.client.GetOperatorAudio(context.Background(), "Angelina")
	s.Require().NoError(err)

	s.Require().Len(audio.Lines, 2)
	s.Equal("Appointed as Assistant", audio.Lines[0].Title)
	s.Equal("char_291_aglina/CN_002", audio.Lines[1].Asset)
}

func (s *ClientTestSuite) TestGetOperatorSkins() {
	skins, err := s.client.GetOperatorSkins(context.Background(), "Angelina")
	s.Require().NoError(err)

	s.Require().Len(skins, 2)
	s.Nil(skins[0].Display.SkinName)
	s.Equal("char_291_aglina_summer#1", skins[1].PortraitID)
	s.Require().NotNil(skins[1].Display.DrawerName)
	s.Equal("Ask, Someone", *skins[1].Display.DrawerName)
}

func (s *ClientTestSuite) TestGetOperatorSkills() {
	skills, err := s.client.GetOperatorSkills(context.Background(), "Angelina")
	s.Require().NoError(err)

	s.Require().Len(skills, 2)
	s.Equal("Gravity Mode", skills[0].Name)
	s.Equal(2, skills[0].Levels)
}

func (s *ClientTestSuite) TestTablesAreCached() {
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := s.client.GetOperatorFile(ctx, "Angelina")
		s.Require().NoError(err)
	}

	s.Equal(int32(1), atomic.LoadInt32(s.requests["character_table"]))
	s.Equal(int32(1), atomic.LoadInt32(s.requests["handbook_info_table"]))
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	logger, _ := test.NewNullLogger()
	client, err := gamedata.New(&gamedata.Config{BaseURL: server.URL, Logger: logger})
	require.NoError(t, err)

	_, err = client.GetOperatorFile(context.Background(), "Angelina")
	require.Error(t, err)
	assert.True(t, apperr.IsTransport(err))
}

func TestClient_SharedLoadSurvivesCallerCancel(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&requests, 1) == 1 {
			close(started)
		}
		<-release
		_, _ = w.Write([]byte(fixtures["character_table"]))
	}))
	defer server.Close()

	logger, _ := test.NewNullLogger()
	client, err := gamedata.New(&gamedata.Config{BaseURL: server.URL, Logger: logger})
	require.NoError(t, err)

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := client.GetOperatorInfo(ctxA, "Angelina")
		errA <- err
	}()
	<-started

	resultB := make(chan error, 1)
	go func() {
		_, err := client.GetOperatorInfo(context.Background(), "Amiya")
		resultB <- err
	}()
	// let the second caller join the load in flight
	time.Sleep(50 * time.Millisecond)

	cancelA()
	err = <-errA
	require.Error(t, err)
	assert.True(t, apperr.IsTransport(err))

	close(release)
	assert.NoError(t, <-resultB)
	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
}

func TestClient_MalformedRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"char_291_aglina": {"name": "Angelina", "skills": [{"level": 1}]}}`))
	}))
	defer server.Close()

	logger, _ := test.NewNullLogger()
	client, err := gamedata.New(&gamedata.Config{BaseURL: server.URL, Logger: logger})
	require.NoError(t, err)

	_, err = client.GetOperatorInfo(context.Background(), "Angelina")
	require.Error(t, err)
	assert.True(t, apperr.IsFormat(err))
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := gamedata.New(nil)
	assert.Error(t, err)

	_, err = gamedata.New(&gamedata.Config{})
	assert.Error(t, err)
}
