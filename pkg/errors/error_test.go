package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNewError() {
	err := New(ErrCodeInvalidPrice, "price must be positive")
	suite.NotNil(err)
	suite.Equal(ErrCodeInvalidPrice, err.Code)
	suite.Equal("price must be positive", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestNewfError() {
	err := Newf(ErrCodeInvalidVolatility, "iv out of range: %f", 1500.0)
	suite.NotNil(err)
	suite.Equal(ErrCodeInvalidVolatility, err.Code)
	suite.Equal("iv out of range: 1500.000000", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestWrapError() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeStrategyExecution, "strategy failed", cause)
	suite.NotNil(err)
	suite.Equal(ErrCodeStrategyExecution, err.Code)
	suite.Equal("strategy failed", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestWrapfError() {
	cause := errors.New("underlying error")
	err := Wrapf(ErrCodeInsufficientCash, cause, "cannot fund trade for %s", "ETH")
	suite.NotNil(err)
	suite.Equal(ErrCodeInsufficientCash, err.Code)
	suite.Equal("cannot fund trade for ETH", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestErrorString() {
	err := New(ErrCodeInvalidPrice, "price must be positive")
	suite.Equal("[100] price must be positive", err.Error())
}

func (suite *ErrorTestSuite) TestErrorStringWithCause() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodePositionNotFound, "position not found", cause)
	suite.Equal("[400] position not found: underlying error", err.Error())
}

func (suite *ErrorTestSuite) TestUnwrap() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodePositionNotFound, "position not found", cause)
	suite.Equal(cause, err.Unwrap())
}

func (suite *ErrorTestSuite) TestGetCode() {
	err := New(ErrCodeInvalidAmount, "bad amount")
	suite.Equal(ErrCodeInvalidAmount, GetCode(err))
}

func (suite *ErrorTestSuite) TestGetCodeFromWrapped() {
	inner := New(ErrCodeDataGap, "tick missing iv")
	wrapped := fmt.Errorf("while processing: %w", inner)
	suite.Equal(ErrCodeDataGap, GetCode(wrapped))
}

func (suite *ErrorTestSuite) TestGetCodeFromPlainError() {
	suite.Equal(ErrCodeUnknown, GetCode(errors.New("plain")))
}

func (suite *ErrorTestSuite) TestHasCode() {
	err := New(ErrCodeDivisionByZero, "divide by zero")
	suite.True(HasCode(err, ErrCodeDivisionByZero))
	suite.False(HasCode(err, ErrCodeInvalidPrice))
}

func (suite *ErrorTestSuite) TestCodeFamilies() {
	suite.True(IsValidation(New(ErrCodeInvalidPrice, "p")))
	suite.False(IsValidation(New(ErrCodeInvalidEngineConfig, "c")))
	suite.True(IsConfig(New(ErrCodeStrategyConfigInvalid, "c")))
	suite.False(IsConfig(New(ErrCodeRunAborted, "a")))
}

func (suite *ErrorTestSuite) TestDataGapError() {
	gap := NewDataGapError(12, []string{"iv"}, "tick 12 missing iv")
	suite.Equal("tick 12 missing iv", gap.Error())
	suite.Equal(12, gap.TickIndex)
	suite.True(IsDataGapError(fmt.Errorf("wrapped: %w", gap)))
	suite.False(IsDataGapError(errors.New("plain")))
}
