package gamedata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"

	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
)

// DefaultBaseURL serves the English gamedata excel tables
const DefaultBaseURL = "https://raw.githubusercontent.com/Aceship/AN-EN-Tags/master/json/gamedata/en_US/gamedata/excel"

const (
	tableCharacter = "character_table"
	tableHandbook  = "handbook_info_table"
	tableCharword  = "charword_table"
	tableSkin      = "skin_table"
	tableSkill     = "skill_table"
)

type client struct {
	baseURL    string
	httpClient *http.Client
	store      TableStore
	cacheTTL   time.Duration
	logger     logrus.FieldLogger
	loads      singleflight.Group
}

type Config struct {
	BaseURL    string
	HttpClient *http.Client
	Store      TableStore
	CacheTTL   time.Duration
	Logger     logrus.FieldLogger
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperr.Internalf("gamedata config is required")
	}
	if cfg.Logger == nil {
		return nil, apperr.Internalf("gamedata logger is required")
	}

	c := &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HttpClient,
		store:      cfg.Store,
		cacheTTL:   cfg.CacheTTL,
		logger:     cfg.Logger.WithField("component", "gamedata"),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if c.store == nil {
		c.store = NewInMemoryTableStore()
	}

	return c, nil
}

func (c *client) GetOperatorInfo(ctx context.Context, name string) (*Character, error) {
	id, raw, err := c.resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	return decodeCharacter(id, raw)
}

func (c *client) GetOperatorFile(ctx context.Context, name string) (*OperatorFile, error) {
	character, err := c.GetOperatorInfo(ctx, name)
	if err != nil {
		return nil, err
	}

	table, err := c.table(ctx, tableHandbook)
	if err != nil {
		return nil, err
	}

	entry := table.Get("handbookDict." + character.ID)
	if !entry.Exists() {
		return nil, apperr.NotFoundf("no file found for operator %s", character.Name).
			WithMeta("char_id", character.ID)
	}

	return decodeHandbook(character.Name, []byte(entry.Raw))
}

func (c *client) GetOperatorAudio(ctx context.Context, name string) (*OperatorAudio, error) {
	character, err := c.GetOperatorInfo(ctx, name)
	if err != nil {
		return nil, err
	}

	table, err := c.table(ctx, tableCharword)
	if err != nil {
		return nil, err
	}

	// Newer dumps nest the words under charWords
	words := table.Get("charWords")
	if !words.Exists() {
		words = table
	}

	lines := make([]*VoiceLine, 0)
	var decodeErr error
	words.ForEach(func(key, value gjson.Result) bool {
		if value.Get("charId").String() != character.ID {
			return true
		}
		line, err := decodeVoiceLine(key.String(), []byte(value.Raw))
		if err != nil {
			decodeErr = err
			return false
		}
		lines = append(lines, line)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	if len(lines) == 0 {
		return nil, apperr.NotFoundf("no voice lines found for operator %s", character.Name).
			WithMeta("char_id", character.ID)
	}

	return &OperatorAudio{
		Name:  character.Name,
		Lines: lines,
	}, nil
}

func (c *client) GetOperatorSkins(ctx context.Context, name string) ([]*Skin, error) {
	character, err := c.GetOperatorInfo(ctx, name)
	if err != nil {
		return nil, err
	}

	table, err := c.table(ctx, tableSkin)
	if err != nil {
		return nil, err
	}

	skins := make([]*Skin, 0)
	var decodeErr error
	table.Get("charSkins").ForEach(func(key, value gjson.Result) bool {
		if value.Get("charId").String() != character.ID {
			return true
		}
		skin, err := decodeSkin(key.String(), []byte(value.Raw))
		if err != nil {
			decodeErr = err
			return false
		}
		skins = append(skins, skin)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}

	return skins, nil
}

func (c *client) GetOperatorSkills(ctx context.Context, name string) ([]*Skill, error) {
	character, err := c.GetOperatorInfo(ctx, name)
	if err != nil {
		return nil, err
	}

	table, err := c.table(ctx, tableSkill)
	if err != nil {
		return nil, err
	}

	skills := make([]*Skill, 0, len(character.SkillIDs))
	for _, id := range character.SkillIDs {
		entry := table.Get(id)
		if !entry.Exists() {
			return nil, apperr.Formatf("skill %s of %s missing from %s", id, character.Name, tableSkill)
		}
		skill, err := decodeSkill(id, []byte(entry.Raw))
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}

	return skills, nil
}

// resolve finds the character_table entry whose name or appellation matches, ignoring case
func (c *client) resolve(ctx context.Context, name string) (string, []byte, error) {
	table, err := c.table(ctx, tableCharacter)
	if err != nil {
		return "", nil, err
	}

	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(name))

	var id, raw string
	table.ForEach(func(key, value gjson.Result) bool {
		// Tokens, traps and summons share the table
		if !strings.HasPrefix(key.String(), "char_") {
			return true
		}
		if fold.String(value.Get("name").String()) == want ||
			fold.String(value.Get("appellation").String()) == want {
			id, raw = key.String(), value.Raw
			return false
		}
		return true
	})

	if id == "" {
		return "", nil, apperr.NotFoundf("operator %q not found", name).WithMeta("name", name)
	}

	return id, []byte(raw), nil
}

// table returns a parsed table, from the store when cached
func (c *client) table(ctx context.Context, name string) (gjson.Result, error) {
	data, ok, err := c.store.Get(ctx, name)
	if err != nil {
		c.logger.WithError(err).WithField("table", name).Warn("table store read failed, fetching")
	}
	if ok {
		return gjson.ParseBytes(data), nil
	}

	// The load is shared, so it must outlive any single caller; the http
	// client timeout bounds it and each caller stops waiting on its own ctx.
	loadCtx := context.WithoutCancel(ctx)
	loads := c.loads.DoChan(name, func() (interface{}, error) {
		return c.fetch(loadCtx, name)
	})

	select {
	case <-ctx.Done():
		return gjson.Result{}, apperr.Transport(ctx.Err(), "waiting for "+name)
	case result := <-loads:
		if result.Err != nil {
			return gjson.Result{}, result.Err
		}
		return gjson.ParseBytes(result.Val.([]byte)), nil
	}
}

func (c *client) fetch(ctx context.Context, name string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s.json", c.baseURL, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperr.Transport(err, "building request for "+name)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Transport(err, "fetching "+name)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.Transportf("fetching %s: unexpected status %d", name, resp.StatusCode).
			WithMeta("url", url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Transport(err, "reading "+name)
	}
	if !gjson.ValidBytes(data) {
		return nil, apperr.Formatf("table %s is not valid JSON", name)
	}

	c.logger.WithFields(logrus.Fields{
		"table":    name,
		"bytes":    len(data),
		"duration": time.Since(start),
	}).Debug("fetched gamedata table")

	if err := c.store.Set(ctx, name, data, c.cacheTTL); err != nil {
		c.logger.WithError(err).WithField("table", name).Warn("failed to cache table")
	}

	return data, nil
}
