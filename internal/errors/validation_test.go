package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-layout/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderCollectsFields() {
	err := errors.NewValidationBuilder().
		RequiredField("zones").
		Fieldf("zones[1].width", "zone %d must have positive dimensions", 1).
		Field("options.cell_size", "must be positive").
		Build()

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Equal([]string{"is required"}, fields["zones"])
	s.Equal([]string{"zone 1 must have positive dimensions"}, fields["zones[1].width"])
	s.Equal([]string{"must be positive"}, fields["options.cell_size"])
}

func (s *ValidationTestSuite) TestBuilderAppendsPerField() {
	err := errors.NewValidationBuilder().
		Field("rooms[0]", "duplicate room \"hall\"").
		Field("rooms[0]", "room \"hall\" needs at least one entrance").
		Build()

	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Len(fields["rooms[0]"], 2)
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestErrorMessageIsSortedByField() {
	err := errors.NewValidationBuilder().
		Field("zones", "is required").
		Field("seed", "is invalid").
		Field("cell_size", "must be positive").
		Build()

	s.Require().Error(err)
	s.Contains(err.Error(), "cell_size: must be positive; seed: is invalid; zones: is required")
}

func (s *ValidationTestSuite) TestEmptyValidationError() {
	var v errors.ValidationError
	s.Equal("validation failed", v.Error())
	s.Nil(v.ToError())
}
