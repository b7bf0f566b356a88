package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{name: "Validation General", code: ValidationGeneral, expected: "Validation failed"},
		{name: "User Not Found", code: UserNotFound, expected: "User not found"},
		{name: "Category Invalid Name", code: CategoryInvalidName, expected: "Category name must be between 1 and 100 characters"},
		{name: "Transaction Invalid Amount", code: TransactionInvalidAmount, expected: "Amount must be greater than zero"},
		{name: "Budget Invalid Period", code: BudgetInvalidPeriod, expected: "Budget period must be daily, weekly or monthly"},
		{name: "System Database Error", code: SystemDatabaseError, expected: "Database operation failed"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for code := range errorMessages {
		s.True(IsValidErrorCode(code), string(code))
	}

	s.False(IsValidErrorCode("AUTH_001"))
	s.False(IsValidErrorCode(""))
}

// Every registered code must map to a kind consistent with its prefix.
func (s *CodesTestSuite) TestEveryCodeHasConsistentKind() {
	for code := range errorMessages {
		kind := kindForCode(code)
		switch {
		case code == SystemDatabaseError:
			s.Equal(KindStore, kind, string(code))
		case len(code) >= 6 && code[:6] == "SYSTEM":
			s.Equal(KindInternal, kind, string(code))
		default:
			s.NotEqual(KindInternal, kind, string(code))
		}
	}
}
