package layout_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dungeon-layout/internal/errors"
	mockclock "github.com/KirkDiggler/dungeon-layout/internal/pkg/clock/mock"
	"github.com/KirkDiggler/dungeon-layout/internal/repositories/layout"
	"github.com/KirkDiggler/dungeon-layout/internal/testutils"
)

type InMemoryLayoutTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	repo      *layout.InMemoryRepository
	ctx       context.Context
	now       time.Time
}

func (s *InMemoryLayoutTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.repo = layout.NewInMemory(s.mockClock)
	s.ctx = context.Background()
	s.now = testutils.TestCreatedAt
}

func (s *InMemoryLayoutTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InMemoryLayoutTestSuite) TestCreateAndGet() {
	s.mockClock.EXPECT().Now().Return(s.now).Times(2)

	created, err := s.repo.Create(s.ctx, layout.CreateInput{
		Layout: testutils.CreateTestLayout("a"),
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.Equal(s.now.Add(time.Hour), created.Layout.ExpiresAt)

	got, err := s.repo.Get(s.ctx, layout.GetInput{ID: "a"})
	s.Require().NoError(err)
	s.Equal(created.Layout, got.Layout)

	// mutating the result does not reach the store
	got.Layout.Rooms[0].Position.X = 99
	s.mockClock.EXPECT().Now().Return(s.now)
	again, err := s.repo.Get(s.ctx, layout.GetInput{ID: "a"})
	s.Require().NoError(err)
	s.Equal(1, again.Layout.Rooms[0].Position.X)
}

func (s *InMemoryLayoutTestSuite) TestGet_Expired() {
	s.mockClock.EXPECT().Now().Return(s.now)
	_, err := s.repo.Create(s.ctx, layout.CreateInput{Layout: testutils.CreateTestLayout("a"), TTL: time.Minute})
	s.Require().NoError(err)

	s.mockClock.EXPECT().Now().Return(s.now.Add(time.Minute))
	_, err = s.repo.Get(s.ctx, layout.GetInput{ID: "a"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryLayoutTestSuite) TestCreate_DuplicateID() {
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	_, err := s.repo.Create(s.ctx, layout.CreateInput{Layout: testutils.CreateTestLayout("a")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, layout.CreateInput{Layout: testutils.CreateTestLayout("a")})
	s.True(errors.IsAlreadyExists(err))
}

func (s *InMemoryLayoutTestSuite) TestCreate_ReplacesExpired() {
	s.mockClock.EXPECT().Now().Return(s.now)
	_, err := s.repo.Create(s.ctx, layout.CreateInput{Layout: testutils.CreateTestLayout("a"), TTL: time.Minute})
	s.Require().NoError(err)

	s.mockClock.EXPECT().Now().Return(s.now.Add(time.Hour)).Times(2)
	_, err = s.repo.Create(s.ctx, layout.CreateInput{Layout: testutils.CreateTestLayout("a")})
	s.NoError(err)
}

func (s *InMemoryLayoutTestSuite) TestDelete() {
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	_, err := s.repo.Create(s.ctx, layout.CreateInput{Layout: testutils.CreateTestLayout("a")})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, layout.DeleteInput{ID: "a"})
	s.Require().NoError(err)
	s.True(out.Deleted)

	_, err = s.repo.Get(s.ctx, layout.GetInput{ID: "a"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, layout.DeleteInput{ID: "a"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, layout.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestInMemoryLayoutTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryLayoutTestSuite))
}
