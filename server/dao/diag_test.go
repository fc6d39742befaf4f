package dao

import (
	"testing"

	"github.com/dekarrin/rezi"
	"github.com/stretchr/testify/assert"
)

func Test_DiagnosticList_binary(t *testing.T) {
	testCases := []struct {
		name  string
		input DiagnosticList
	}{
		{
			name:  "empty",
			input: DiagnosticList{},
		},
		{
			name: "several",
			input: DiagnosticList{
				{Message: "expected '}'", Found: "end of input", Start: 17, End: 17},
				{Message: "expected VerbPath or VerbSimple", Found: `"}"`, Start: 11, End: 12},
			},
		},
		{
			name: "non-ascii text",
			input: DiagnosticList{
				{Message: "expected end of input", Found: `"é"`, Start: 0, End: 2},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			data := rezi.EncBinary(tc.input)

			var actual DiagnosticList
			_, err := rezi.DecBinary(data, &actual)

			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.input, actual)
		})
	}
}

func Test_DiagnosticList_UnmarshalBinary_badCount(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{
			name: "negative",
			data: rezi.EncInt(-1),
		},
		{
			name: "larger than the data",
			data: rezi.EncInt(1 << 30),
		},
		{
			name: "one more than encoded",
			data: append(rezi.EncInt(2), rezi.EncBinary(Diagnostic{Message: "expected '}'"})...),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			var actual DiagnosticList
			err := actual.UnmarshalBinary(tc.data)

			assert.Error(err)
			assert.Nil(actual)
		})
	}
}

func Test_ParseRole(t *testing.T) {
	testCases := []struct {
		input     string
		expect    Role
		expectErr bool
	}{
		{input: "admin", expect: Admin},
		{input: "NORMAL", expect: Normal},
		{input: "Unverified", expect: Unverified},
		{input: "guest", expect: Guest},
		{input: "root", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := ParseRole(tc.input)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal(tc.expect, actual)
		})
	}
}
