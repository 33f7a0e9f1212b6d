package domain

import (
	"testing"

	"timereport/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOne(t *testing.T) {
	customers := []Customer{
		{ID: 1, Name: "Acme Corp"},
		{ID: 2, Name: "Acme Industries"},
		{ID: 3, Name: "Globex"},
	}

	tests := []struct {
		name         string
		query        string
		expectedID   int64
		expectedCode string
	}{
		{
			name:       "single term resolving to one entity",
			query:      "globex",
			expectedID: 3,
		},
		{
			name:       "all comma-separated terms must match",
			query:      "acme,corp",
			expectedID: 1,
		},
		{
			name:       "terms are trimmed",
			query:      " acme , industries ",
			expectedID: 2,
		},
		{
			name:         "zero matches is a lookup error naming the query",
			query:        "initech",
			expectedCode: "LOOKUP_FAILED",
		},
		{
			name:         "a term matched by only some entities narrows the result",
			query:        "acme,globex",
			expectedCode: "LOOKUP_FAILED",
		},
		{
			name:         "multiple matches are rejected as ambiguous",
			query:        "acme",
			expectedCode: "AMBIGUOUS_MATCH",
		},
		{
			name:         "empty query is invalid input",
			query:        " , ",
			expectedCode: "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer, err := SelectOne(customers, tt.query, "customer")

			if tt.expectedCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, errors.GetErrorCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, customer.ID)
		})
	}
}

func TestSelectOne_LookupErrorCarriesQuery(t *testing.T) {
	_, err := SelectOne([]Project{{Name: "Relaunch"}}, "intranet", "project")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "intranet")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeLookup))
}
