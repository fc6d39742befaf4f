package serr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Error(t *testing.T) {
	dbFail := errors.New("disk full")

	testCases := []struct {
		name      string
		err       error
		expectMsg string
		expectIs  []error
		expectNot []error
	}{
		{
			name:      "message only",
			err:       New("bad thing"),
			expectMsg: "bad thing",
			expectNot: []error{ErrNotFound},
		},
		{
			name:      "message and cause",
			err:       New("could not get query", ErrNotFound),
			expectMsg: "could not get query: " + ErrNotFound.Error(),
			expectIs:  []error{ErrNotFound},
			expectNot: []error{ErrDB},
		},
		{
			name:      "cause only",
			err:       New("", ErrBadArgument, ErrPermissions),
			expectMsg: ErrBadArgument.Error(),
			expectIs:  []error{ErrBadArgument, ErrPermissions},
		},
		{
			name:      "WrapDB keeps message",
			err:       WrapDB("could not save query", dbFail),
			expectMsg: "could not save query: disk full",
			expectIs:  []error{ErrDB, dbFail},
		},
		{
			name:      "found through fmt wrapping",
			err:       fmt.Errorf("outer: %w", WrapDB("", dbFail)),
			expectMsg: "outer: disk full",
			expectIs:  []error{ErrDB, dbFail},
			expectNot: []error{ErrNotFound},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expectMsg, tc.err.Error())
			for _, target := range tc.expectIs {
				assert.ErrorIs(tc.err, target)
			}
			for _, target := range tc.expectNot {
				assert.NotErrorIs(tc.err, target)
			}
		})
	}
}
