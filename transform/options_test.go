package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionsDefaults(t *testing.T) {
	t.Parallel()

	opts, err := ParseOptions(nil)
	require.NoError(t, err)

	assert.Equal(t, "const", opts.Declaration)
	assert.True(t, opts.Extract.All)
	assert.Equal(t, "react", opts.Source)
}

func TestParseOptionsOverlay(t *testing.T) {
	t.Parallel()

	opts, err := ParseOptions(map[string]any{
		"declaration": "var",
		"extract":     2,
		"unknown":     true,
	})
	require.NoError(t, err)

	assert.Equal(t, "var", opts.Declaration)
	assert.Equal(t, ExtractAtLeast(2), opts.Extract)
}

func TestParseExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   any
		want    Extract
		wantErr bool
	}{
		{input: "all", want: ExtractAll},
		{input: "ALL", want: ExtractAll},
		{input: "3", want: ExtractAtLeast(3)},
		{input: 0, want: ExtractAtLeast(0)},
		{input: int64(4), want: ExtractAtLeast(4)},
		{input: 2.0, want: ExtractAtLeast(2)},
		{input: 2.5, wantErr: true},
		{input: -1, wantErr: true},
		{input: "many", wantErr: true},
		{input: true, wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseExtract(tt.input)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInvalidExtract, "input %v", tt.input)
			continue
		}
		require.NoError(t, err, "input %v", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseOptionsRejectsBadDeclaration(t *testing.T) {
	t.Parallel()

	_, err := ParseOptions(map[string]any{"declaration": "function"})
	require.ErrorIs(t, err, ErrInvalidDeclaration)

	_, err = ParseOptions(map[string]any{"declaration": 1})
	require.ErrorIs(t, err, ErrInvalidDeclaration)
}

func TestParseOptionsRejectsEmptySource(t *testing.T) {
	t.Parallel()

	_, err := ParseOptions(map[string]any{"source": ""})
	require.ErrorIs(t, err, ErrInvalidSource)
}

func TestExtractString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "all", ExtractAll.String())
	assert.Equal(t, "3", ExtractAtLeast(3).String())
}
