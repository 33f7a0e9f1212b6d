package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ReportRequest {
	return ReportRequest{
		Project: "acme",
		Year:    2026,
		Week:    7,
		NumDays: 7,
	}
}

func TestReportRequestValidator_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*ReportRequest)
		expectedError string
	}{
		{
			name:   "valid request with project scope",
			mutate: func(r *ReportRequest) {},
		},
		{
			name: "valid request with user scope only",
			mutate: func(r *ReportRequest) {
				r.Project = ""
				r.User = "alice"
			},
		},
		{
			name: "no scope criterion is rejected before any network activity",
			mutate: func(r *ReportRequest) {
				r.Project = ""
			},
			expectedError: "scope filter",
		},
		{
			name: "whitespace-only scope does not count",
			mutate: func(r *ReportRequest) {
				r.Project = "   "
			},
			expectedError: "scope filter",
		},
		{
			name: "week zero is out of range",
			mutate: func(r *ReportRequest) {
				r.Week = 0
			},
			expectedError: "week",
		},
		{
			name: "week 54 is out of range",
			mutate: func(r *ReportRequest) {
				r.Week = 54
			},
			expectedError: "week",
		},
		{
			name: "implausible year is rejected",
			mutate: func(r *ReportRequest) {
				r.Year = 1802
			},
			expectedError: "year",
		},
		{
			name: "zero-day window is rejected",
			mutate: func(r *ReportRequest) {
				r.NumDays = 0
			},
			expectedError: "num_days",
		},
	}

	validator := NewReportRequestValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.Validate(req)

			if tt.expectedError == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestReportRequestValidator_MultipleErrorsAggregate(t *testing.T) {
	validator := NewReportRequestValidator()

	err := validator.Validate(ReportRequest{Week: 99, Year: 2026, NumDays: 7})

	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, validationErr.Errors, 2)
	assert.Contains(t, validationErr.GetUserFriendlyMessage(), "-")
}
