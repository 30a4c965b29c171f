package roster

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/trenirovka/rosterbot/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&RedisConfig{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&RedisConfig{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestLoadMissingKeySeedsEmptyRoster() {
	roster, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)

	s.Empty(roster.Participants)
	s.Empty(roster.Waitlist)
	s.Nil(roster.Title)

	// the key is seeded so later loads see a valid value
	s.True(s.mr.Exists(rosterKey))
}

func (s *RedisRepositoryTestSuite) TestLoadCorruptValueFallsBackToEmpty() {
	s.Require().NoError(s.mr.Set(rosterKey, "{broken"))

	roster, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)

	s.Empty(roster.Participants)
	s.Empty(roster.Waitlist)
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoadRoundTrip() {
	roster := models.NewRoster()
	roster.Signup(10, "Alice")
	roster.Maybe(20, "Bob")
	roster.MarkPaid(10)
	roster.SetTitle("Sunday game")
	msgID := 42
	roster.MessageID = &msgID

	s.Require().NoError(s.repo.Save(s.ctx, roster))

	loaded, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)

	s.Equal(roster.Participants, loaded.Participants)
	s.Equal(roster.Waitlist, loaded.Waitlist)
	s.True(loaded.IsPaid(10))
	s.Require().NotNil(loaded.Title)
	s.Equal("Sunday game", *loaded.Title)
	s.Require().NotNil(loaded.MessageID)
	s.Equal(42, *loaded.MessageID)
}
