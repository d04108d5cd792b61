package domain_test

import (
	"testing"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseManualRating(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValue int
		wantClear bool
		wantErr   error
	}{
		{name: "Lower bound", input: "1", wantValue: 1},
		{name: "Upper bound", input: "10", wantValue: 10},
		{name: "Surrounding space", input: " 7 ", wantValue: 7},
		{name: "Empty clears", input: "", wantClear: true},
		{name: "Whitespace clears", input: "   ", wantClear: true},
		{name: "Eleven is rejected", input: "11", wantErr: domain.ErrRatingOutOfRange},
		{name: "Zero is rejected", input: "0", wantErr: domain.ErrRatingOutOfRange},
		{name: "Negative is rejected", input: "-3", wantErr: domain.ErrRatingOutOfRange},
		{name: "Fraction is rejected", input: "7.5", wantErr: domain.ErrRatingInvalid},
		{name: "Text is rejected", input: "great", wantErr: domain.ErrRatingInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, clear, err := domain.ParseManualRating(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, clear)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantClear, clear)
			assert.Equal(t, tt.wantValue, v)
		})
	}
}
