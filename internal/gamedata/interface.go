package gamedata

//go:generate mockgen -destination=mock/mock_client.go -package=mockgamedata . Client

import (
	"context"
)

// Client resolves an operator name to the records behind each operator command.
// Unknown names fail with a not_found error, malformed tables with a format error
// and unreachable sources with a transport error.
type Client interface {
	GetOperatorInfo(ctx context.Context, name string) (*Character, error)
	GetOperatorFile(ctx context.Context, name string) (*OperatorFile, error)
	GetOperatorAudio(ctx context.Context, name string) (*OperatorAudio, error)
	GetOperatorSkins(ctx context.Context, name string) ([]*Skin, error)
	GetOperatorSkills(ctx context.Context, name string) ([]*Skill, error)
}
