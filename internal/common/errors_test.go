package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	inner := fmt.Errorf("%w: types.xml", ErrSourceNotFound)
	err := NewUserError("Nothing to split", inner)

	assert.Equal(t, "Nothing to split: source document not found: types.xml", err.Error())
	assert.True(t, errors.Is(err, ErrSourceNotFound))
	assert.Equal(t, "Nothing to split", Describe(err))

	bare := &UserError{UserMessage: "plain"}
	assert.Equal(t, "plain", bare.Error())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want string
	}{
		{name: "source", err: fmt.Errorf("read: %w", ErrSourceNotFound), want: "The types document could not be found"},
		{name: "parse", err: fmt.Errorf("x: %w", ErrParse), want: "A document is not well-formed XML"},
		{name: "structure", err: ErrStructure, want: "The economy manifest is missing a required section"},
		{name: "write", err: ErrWriteFailure, want: "An output file could not be written"},
		{name: "rules", err: ErrInvalidRules, want: "The rule table is invalid"},
		{name: "config", err: ErrInvalidConfig, want: "The configuration is invalid"},
		{name: "other", err: errors.New("boom"), want: "Unexpected error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.err))
		})
	}
}
