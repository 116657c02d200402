// Package testutil contains table test helpers shared by the pgtype tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/jackc/pgtext/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RoundTripTestCase parses Args and expects the canonical text String.
type RoundTripTestCase struct {
	Args   []any
	String string
}

// RunRoundTripTests checks that each case parses to String and that String parses back to an equal value.
func RunRoundTripTests[T pgtype.Value](t *testing.T, codec pgtype.Codec[T], tests []RoundTripTestCase) {
	t.Helper()

	for i, tt := range tests {
		t.Run(fmt.Sprintf("%d %v", i, tt.Args), func(t *testing.T) {
			r := codec.SafeFrom(tt.Args...)
			require.Truef(t, r.Success(), "unexpected issue: %#v", r.Issue())
			assert.Equal(t, tt.String, r.Value().String())

			again := codec.SafeFrom(r.Value().String())
			require.Truef(t, again.Success(), "canonical text did not parse: %#v", again.Issue())
			assert.Equal(t, r.Value().String(), again.Value().String())
		})
	}
}

// IssueTestCase parses Args and expects Issue.
type IssueTestCase struct {
	Args  []any
	Issue pgtype.Issue
}

// RunIssueTests checks that each case fails with exactly the expected issue.
func RunIssueTests[T pgtype.Value](t *testing.T, codec pgtype.Codec[T], tests []IssueTestCase) {
	t.Helper()

	for i, tt := range tests {
		t.Run(fmt.Sprintf("%d %v", i, tt.Args), func(t *testing.T) {
			r := codec.SafeFrom(tt.Args...)
			require.False(t, r.Success(), "expected issue, got %v", r.Value())
			assert.Equal(t, tt.Issue, r.Issue())
			assert.NotPanics(t, func() { pgtype.Message(r.Issue()) })
		})
	}
}
