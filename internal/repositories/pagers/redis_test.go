package pagers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	apperr "github.com/KirkDiggler/arknights-bot-discord/internal/errors"
	"github.com/KirkDiggler/arknights-bot-discord/internal/repositories/pagers/mocks"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	repo         Repository
	mockCtrl     *gomock.Controller
	timeProvider *mocks.MockTimeProvider
	now          time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocks.NewMockTimeProvider(s.mockCtrl)
	s.repo = NewRedis(s.mockClient, s.timeProvider, time.Minute)
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) expectedJSON() string {
	session := testSession()
	session.CreatedAt = s.now
	session.UpdatedAt = s.now
	session.ExpiresAt = s.now.Add(time.Minute)

	data, err := json.Marshal(toData(session))
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestSave() {
	ctx := context.Background()
	expected := s.expectedJSON()

	s.timeProvider.EXPECT().Now().Return(s.now)
	s.mock.ExpectSet("pager:pager-1", expected, time.Minute).SetVal("OK")

	session := testSession()
	s.NoError(s.repo.Save(ctx, session))
	s.Equal(s.now.Add(time.Minute), session.ExpiresAt)
}

func (s *RedisRepoTestSuite) TestSave_RedisError() {
	ctx := context.Background()
	expected := s.expectedJSON()

	s.timeProvider.EXPECT().Now().Return(s.now)
	s.mock.ExpectSet("pager:pager-1", expected, time.Minute).SetErr(errors.New("redis error"))

	err := s.repo.Save(ctx, testSession())
	s.Error(err)
	s.Contains(err.Error(), "failed to save pager session pager-1")
}

func (s *RedisRepoTestSuite) TestSave_Invalid() {
	s.Error(s.repo.Save(context.Background(), nil))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	s.mock.ExpectGet("pager:pager-1").SetVal(s.expectedJSON())

	session, err := s.repo.Get(ctx, "pager-1")
	s.Require().NoError(err)
	s.Equal("doctor", session.OwnerID)
	s.Len(session.Pages, 2)
	s.Equal("Amiya (Epoque)", session.Pages[1].Title)
	s.True(session.CreatedAt.Equal(s.now))
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("pager:missing").RedisNil()

	_, err := s.repo.Get(context.Background(), "missing")
	s.True(apperr.IsNotFound(err))
	s.Equal("missing", apperr.GetMeta(err)["session_id"])
}

func (s *RedisRepoTestSuite) TestGet_Corrupt() {
	s.mock.ExpectGet("pager:pager-1").SetVal("{not json")

	_, err := s.repo.Get(context.Background(), "pager-1")
	s.Error(err)
	s.False(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	s.mock.ExpectDel("pager:pager-1").SetVal(1)
	s.NoError(s.repo.Delete(ctx, "pager-1"))

	s.mock.ExpectDel("pager:pager-1").SetErr(errors.New("redis error"))
	s.Error(s.repo.Delete(ctx, "pager-1"))
}
