package layout_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-layout/internal/errors"
	"github.com/KirkDiggler/dungeon-layout/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-layout/internal/repositories/layout"
	"github.com/KirkDiggler/dungeon-layout/internal/testutils"
)

type RedisLayoutTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo layout.Repository
	ctx  context.Context
	now  time.Time
}

func (s *RedisLayoutTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedis(s.T())
	s.mr = mr
	s.ctx = context.Background()
	s.now = testutils.TestCreatedAt

	repo, err := layout.NewRedis(&layout.RedisConfig{
		Client: client,
		Clock:  clock.Fixed{At: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisLayoutTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *layout.RedisConfig
	}{
		{name: "nil config", config: nil},
		{name: "nil client", config: &layout.RedisConfig{Clock: clock.New()}},
		{name: "nil clock", config: &layout.RedisConfig{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := layout.NewRedis(tc.config)
			s.Error(err)
			s.Nil(repo)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisLayoutTestSuite) TestCreateAndGet() {
	input := testutils.CreateTestLayout(testutils.TestLayoutID)

	created, err := s.repo.Create(s.ctx, layout.CreateInput{Layout: input, TTL: time.Hour})
	s.Require().NoError(err)
	s.Equal(s.now.Add(time.Hour), created.Layout.ExpiresAt)
	s.True(input.ExpiresAt.IsZero(), "input must not be modified")

	s.True(s.mr.Exists("layout:" + testutils.TestLayoutID))
	s.Equal(time.Hour, s.mr.TTL("layout:"+testutils.TestLayoutID))

	got, err := s.repo.Get(s.ctx, layout.GetInput{ID: testutils.TestLayoutID})
	s.Require().NoError(err)
	s.Equal(created.Layout, got.Layout)
}

func (s *RedisLayoutTestSuite) TestCreate_DefaultTTL() {
	_, err := s.repo.Create(s.ctx, layout.CreateInput{Layout: testutils.CreateTestLayout("a")})
	s.Require().NoError(err)
	s.Equal(layout.DefaultTTL, s.mr.TTL("layout:a"))
}

func (s *RedisLayoutTestSuite) TestCreate_DuplicateID() {
	_, err := s.repo.Create(s.ctx, layout.CreateInput{Layout: testutils.CreateTestLayout("a")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, layout.CreateInput{Layout: testutils.CreateTestLayout("a")})
	s.True(errors.IsAlreadyExists(err), "got %v", err)
}

func (s *RedisLayoutTestSuite) TestCreate_InvalidInput() {
	testCases := []struct {
		name  string
		input layout.CreateInput
	}{
		{name: "nil layout", input: layout.CreateInput{}},
		{name: "missing id", input: layout.CreateInput{Layout: testutils.CreateTestLayout("")}},
		{name: "negative ttl", input: layout.CreateInput{Layout: testutils.CreateTestLayout("a"), TTL: -time.Second}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *RedisLayoutTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, layout.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
	s.Equal("missing", errors.GetMeta(err)["layout_id"])

	_, err = s.repo.Get(s.ctx, layout.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisLayoutTestSuite) TestGet_Expired() {
	_, err := s.repo.Create(s.ctx, layout.CreateInput{Layout: testutils.CreateTestLayout("a"), TTL: time.Minute})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, layout.GetInput{ID: "a"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisLayoutTestSuite) TestGet_CorruptData() {
	s.Require().NoError(s.mr.Set("layout:bad", "{not json"))

	_, err := s.repo.Get(s.ctx, layout.GetInput{ID: "bad"})
	s.True(errors.IsDataLoss(err), "got %v", err)
}

func (s *RedisLayoutTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, layout.CreateInput{Layout: testutils.CreateTestLayout("a")})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, layout.DeleteInput{ID: "a"})
	s.Require().NoError(err)
	s.True(out.Deleted)
	s.False(s.mr.Exists("layout:a"))

	_, err = s.repo.Delete(s.ctx, layout.DeleteInput{ID: "a"})
	s.True(errors.IsNotFound(err))
}

func TestRedisLayoutTestSuite(t *testing.T) {
	suite.Run(t, new(RedisLayoutTestSuite))
}
