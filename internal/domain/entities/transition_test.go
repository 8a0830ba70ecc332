package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransition(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Transition
		wantErr bool
	}{
		{
			name:  "empty means none",
			input: "",
			want:  NoTransition(),
		},
		{
			name:  "none keyword",
			input: "none",
			want:  NoTransition(),
		},
		{
			name:  "none keyword case insensitive",
			input: "NONE",
			want:  NoTransition(),
		},
		{
			name:  "flash with count",
			input: "flash 3",
			want:  FlashTransition(3),
		},
		{
			name:  "bare integer is a flash count",
			input: "2",
			want:  FlashTransition(2),
		},
		{
			name:  "zero flash count degrades to none",
			input: "flash 0",
			want:  NoTransition(),
		},
		{
			name:  "bare zero degrades to none",
			input: "0",
			want:  NoTransition(),
		},
		{
			name:  "wipe with glyph",
			input: "wipe *",
			want:  WipeTransition('*'),
		},
		{
			name:  "bare glyph is a wipe",
			input: "%",
			want:  WipeTransition('%'),
		},
		{
			name:  "surrounding whitespace",
			input: "  flash 5  ",
			want:  FlashTransition(5),
		},
		{
			name:    "flash without count",
			input:   "flash",
			wantErr: true,
		},
		{
			name:    "wipe with multi-character glyph",
			input:   "wipe **",
			wantErr: true,
		},
		{
			name:    "unrecognized declaration",
			input:   "slide left",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTransition(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransition_String(t *testing.T) {
	assert.Equal(t, "none", NoTransition().String())
	assert.Equal(t, "flash 3", FlashTransition(3).String())
	assert.Equal(t, "wipe *", WipeTransition('*').String())
}

func TestTransition_StringRoundTrip(t *testing.T) {
	for _, tr := range []Transition{NoTransition(), FlashTransition(7), WipeTransition('#')} {
		parsed, err := ParseTransition(tr.String())
		require.NoError(t, err)
		assert.Equal(t, tr, parsed)
	}
}
