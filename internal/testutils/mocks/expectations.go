// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dungeon-layout/internal/engine"
	enginemock "github.com/KirkDiggler/dungeon-layout/internal/engine/mock"
	"github.com/KirkDiggler/dungeon-layout/internal/entities"
	layoutrepo "github.com/KirkDiggler/dungeon-layout/internal/repositories/layout"
	layoutrepomock "github.com/KirkDiggler/dungeon-layout/internal/repositories/layout/mock"
)

// ExpectGenerate sets up the engine to return layout for any input with the
// given seed
func ExpectGenerate(ctx context.Context, mockEngine *enginemock.MockEngine, seed string, layout *entities.Layout) {
	mockEngine.EXPECT().
		Generate(ctx, SeedIs(seed)).
		Return(&engine.GenerateOutput{Layout: layout}, nil)
}

// SeedIs matches an *engine.GenerateInput by seed
func SeedIs(seed string) gomock.Matcher {
	return seedMatcher(seed)
}

type seedMatcher string

func (m seedMatcher) Matches(x any) bool {
	input, ok := x.(*engine.GenerateInput)
	return ok && input.Seed == string(m)
}

func (m seedMatcher) String() string {
	return "has seed " + string(m)
}

// ExpectLayoutCreate sets up a repository create that stamps ExpiresAt the way
// the real implementations do
func ExpectLayoutCreate(ctx context.Context, mockRepo *layoutrepomock.MockRepository, now time.Time) {
	mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input layoutrepo.CreateInput) (*layoutrepo.CreateOutput, error) {
			stored := *input.Layout
			effective := input.TTL
			if effective == 0 {
				effective = layoutrepo.DefaultTTL
			}
			stored.ExpiresAt = now.Add(effective)
			return &layoutrepo.CreateOutput{Layout: &stored}, nil
		})
}

// ExpectLayoutGet sets up a mock expectation for getting a layout from the repository
func ExpectLayoutGet(
	ctx context.Context, mockRepo *layoutrepomock.MockRepository,
	layoutID string, layout *entities.Layout, err error,
) {
	if err != nil {
		mockRepo.EXPECT().
			Get(ctx, layoutrepo.GetInput{ID: layoutID}).
			Return(nil, err)
		return
	}

	mockRepo.EXPECT().
		Get(ctx, layoutrepo.GetInput{ID: layoutID}).
		Return(&layoutrepo.GetOutput{Layout: layout}, nil)
}
