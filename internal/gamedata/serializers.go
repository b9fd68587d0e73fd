package gamedata

import (
	"encoding/json"
	"strings"

	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
)

type apiCharacter struct {
	Name        *string `json:"name"`
	Appellation string  `json:"appellation"`
	Description string  `json:"description"`
	Profession  string  `json:"profession"`
	Position    string  `json:"position"`
	Skills      []struct {
		SkillID *string `json:"skillId"`
	} `json:"skills"`
}

type apiHandbook struct {
	CharID         *string `json:"charID"`
	DrawName       string  `json:"drawName"`
	InfoName       string  `json:"infoName"`
	StoryTextAudio []struct {
		StoryTitle string `json:"storyTitle"`
		Stories    []struct {
			StoryText string `json:"storyText"`
		} `json:"stories"`
	} `json:"storyTextAudio"`
}

type apiVoiceLine struct {
	CharID     *string `json:"charId"`
	VoiceTitle string  `json:"voiceTitle"`
	VoiceText  string  `json:"voiceText"`
	VoiceAsset *string `json:"voiceAsset"`
}

type apiSkin struct {
	SkinID      string          `json:"skinId"`
	CharID      string          `json:"charId"`
	PortraitID  *string         `json:"portraitId"`
	DisplaySkin *apiDisplaySkin `json:"displaySkin"`
}

type apiDisplaySkin struct {
	SkinName       *string  `json:"skinName"`
	ModelName      *string  `json:"modelName"`
	DrawerName     *string  `json:"drawerName"`
	DrawerList     []string `json:"drawerList"`
	SkinGroupName  *string  `json:"skinGroupName"`
	Content        *string  `json:"content"`
	Dialog         *string  `json:"dialog"`
	Usage          *string  `json:"usage"`
	Description    *string  `json:"description"`
	ObtainApproach *string  `json:"obtainApproach"`
}

type apiSkill struct {
	SkillID *string `json:"skillId"`
	Levels  []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"levels"`
}

func decodeCharacter(id string, raw []byte) (*Character, error) {
	var input apiCharacter
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeFormat, "decoding character "+id)
	}
	if input.Name == nil {
		return nil, apperr.Formatf("character %s has no name", id)
	}

	skillIDs := make([]string, 0, len(input.Skills))
	for _, skill := range input.Skills {
		if skill.SkillID == nil {
			return nil, apperr.Formatf("character %s has a skill without skillId", id)
		}
		skillIDs = append(skillIDs, *skill.SkillID)
	}

	return &Character{
		ID:          id,
		Name:        *input.Name,
		Appellation: input.Appellation,
		Description: input.Description,
		Profession:  input.Profession,
		Position:    input.Position,
		SkillIDs:    skillIDs,
	}, nil
}

func decodeHandbook(name string, raw []byte) (*OperatorFile, error) {
	var input apiHandbook
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeFormat, "decoding handbook of "+name)
	}
	if input.CharID == nil {
		return nil, apperr.Formatf("handbook of %s has no charID", name)
	}

	stories := make([]*Story, len(input.StoryTextAudio))
	for i, entry := range input.StoryTextAudio {
		segments := make([]string, len(entry.Stories))
		for j, story := range entry.Stories {
			segments[j] = story.StoryText
		}
		stories[i] = &Story{
			Title:    entry.StoryTitle,
			Segments: segments,
		}
	}

	return &OperatorFile{
		Name:     name,
		CharID:   *input.CharID,
		DrawName: input.DrawName,
		InfoName: input.InfoName,
		Stories:  stories,
	}, nil
}

func decodeVoiceLine(id string, raw []byte) (*VoiceLine, error) {
	var input apiVoiceLine
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeFormat, "decoding voice line "+id)
	}
	if input.CharID == nil || input.VoiceAsset == nil {
		return nil, apperr.Formatf("voice line %s is missing charId or voiceAsset", id)
	}

	return &VoiceLine{
		CharID: *input.CharID,
		Title:  input.VoiceTitle,
		Text:   input.VoiceText,
		Asset:  *input.VoiceAsset,
	}, nil
}

func decodeSkin(id string, raw []byte) (*Skin, error) {
	var input apiSkin
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeFormat, "decoding skin "+id)
	}
	if input.PortraitID == nil || input.DisplaySkin == nil {
		return nil, apperr.Formatf("skin %s is missing portraitId or displaySkin", id)
	}

	return &Skin{
		SkinID:     input.SkinID,
		CharID:     input.CharID,
		PortraitID: *input.PortraitID,
		Display:    apiDisplaySkinToDisplaySkin(input.DisplaySkin),
	}, nil
}

// apiDisplaySkinToDisplaySkin folds the newer drawerList into the single drawer name
func apiDisplaySkinToDisplaySkin(input *apiDisplaySkin) *DisplaySkin {
	drawer := input.DrawerName
	if drawer == nil && len(input.DrawerList) > 0 {
		joined := strings.Join(input.DrawerList, ", ")
		drawer = &joined
	}

	return &DisplaySkin{
		SkinName:       input.SkinName,
		ModelName:      input.ModelName,
		DrawerName:     drawer,
		SkinGroupName:  input.SkinGroupName,
		Content:        input.Content,
		Dialog:         input.Dialog,
		Usage:          input.Usage,
		Description:    input.Description,
		ObtainApproach: input.ObtainApproach,
	}
}

func decodeSkill(id string, raw []byte) (*Skill, error) {
	var input apiSkill
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeFormat, "decoding skill "+id)
	}
	if input.SkillID == nil || len(input.Levels) == 0 {
		return nil, apperr.Formatf("skill %s is missing skillId or levels", id)
	}

	return &Skill{
		ID:          *input.SkillID,
		Name:        input.Levels[0].Name,
		Description: input.Levels[0].Description,
		Levels:      len(input.Levels),
	}, nil
}
