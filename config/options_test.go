package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobbieVerdurme/truncate.js/truncate"
)

func TestDefault(t *testing.T) {
	opts := Default()

	assert.Equal(t, "…", opts.Ellipsis)
	assert.Equal(t, truncate.End, opts.Position)
	assert.Equal(t, 1, opts.Lines)
	assert.Zero(t, opts.LineHeight)
	assert.Nil(t, opts.MaxHeight)
	assert.NoError(t, opts.Validate())
}

func TestOptions_Merge(t *testing.T) {
	base := Default().WithShowMore("<a>more</a>")
	merged := base.Merge(Options{Lines: 3, Position: "START"})

	assert.Equal(t, 3, merged.Lines)
	assert.Equal(t, truncate.Start, merged.Position)
	assert.Equal(t, "…", merged.Ellipsis, "zero fields keep the previous value")
	assert.Equal(t, "<a>more</a>", merged.ShowMore)
	assert.Equal(t, 1, base.Lines, "merge must not modify the receiver")
}

func TestOptions_MergeCopiesMaxHeight(t *testing.T) {
	h := 36.0
	merged := Default().Merge(Options{MaxHeight: &h})
	h = 99

	require.NotNil(t, merged.MaxHeight)
	assert.Equal(t, 36.0, *merged.MaxHeight)
}

func TestOptions_Builders(t *testing.T) {
	opts := Default().
		WithLines(2).
		WithPosition("middle").
		WithEllipsis("...").
		WithShowLess("<a>less</a>").
		WithMaxHeight(50)

	assert.Equal(t, 2, opts.Lines)
	assert.Equal(t, truncate.Middle, opts.Position)
	assert.Equal(t, "...", opts.Ellipsis)
	assert.Equal(t, "<a>less</a>", opts.ShowLess)
	require.NotNil(t, opts.MaxHeight)
	assert.Equal(t, 50.0, *opts.MaxHeight)

	assert.Nil(t, opts.WithDerivedHeight().MaxHeight)
	assert.NotNil(t, opts.MaxHeight, "builders return copies")
}

func TestOptions_Validate(t *testing.T) {
	neg := -1.0
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "defaults", opts: Default(), wantErr: false},
		{name: "zero lines", opts: Default().WithLines(0), wantErr: true},
		{name: "negative line height", opts: Options{Lines: 1, LineHeight: -2}, wantErr: true},
		{name: "negative max height", opts: Options{Lines: 1, MaxHeight: &neg}, wantErr: true},
		{name: "zero max height", opts: Default().WithMaxHeight(0), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOptions_Budget(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		lineHeight func() float64
		want       float64
	}{
		{name: "explicit line height", opts: Options{Lines: 2, LineHeight: 20}, want: 40},
		{name: "auto from oracle", opts: Options{Lines: 3}, lineHeight: func() float64 { return 10 }, want: 30},
		{name: "auto fallback", opts: Options{Lines: 2}, want: 36},
		{name: "oracle unknown", opts: Options{Lines: 1}, lineHeight: func() float64 { return 0 }, want: 18},
		{name: "explicit max wins", opts: Options{Lines: 5, LineHeight: 20}.WithMaxHeight(7), want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Budget(tt.lineHeight).Max())
		})
	}
}

func TestOptions_BudgetSkipsOracleWithExplicitMax(t *testing.T) {
	called := false
	Default().WithMaxHeight(10).Budget(func() float64 {
		called = true
		return 1
	})
	assert.False(t, called)
}

func TestOptions_LoadFromEnv(t *testing.T) {
	t.Setenv("TRUNCATE_ELLIPSIS", " [...]")
	t.Setenv("TRUNCATE_POSITION", "Start")
	t.Setenv("TRUNCATE_LINES", "4")
	t.Setenv("TRUNCATE_LINE_HEIGHT", "12.5")
	t.Setenv("TRUNCATE_MAX_HEIGHT", "40")
	t.Setenv("TRUNCATE_SHOW_MORE", "<a>more</a>")
	t.Setenv("TRUNCATE_SHOW_LESS", "<a>less</a>")

	opts := FromEnv()

	assert.Equal(t, " [...]", opts.Ellipsis)
	assert.Equal(t, truncate.Start, opts.Position)
	assert.Equal(t, 4, opts.Lines)
	assert.Equal(t, 12.5, opts.LineHeight)
	require.NotNil(t, opts.MaxHeight)
	assert.Equal(t, 40.0, *opts.MaxHeight)
	assert.Equal(t, "<a>more</a>", opts.ShowMore)
	assert.Equal(t, "<a>less</a>", opts.ShowLess)
}

func TestOptions_LoadFromEnvIgnoresBadNumbers(t *testing.T) {
	t.Setenv("TRUNCATE_LINES", "many")
	t.Setenv("TRUNCATE_MAX_HEIGHT", "tall")

	opts := Default()
	opts.LoadFromEnv()

	assert.Equal(t, 1, opts.Lines)
	assert.Nil(t, opts.MaxHeight)
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "truncate.yaml",
			content: `lines: 3
position: start
ellipsis: "..."
max_height: 54
show_more: <a class="more">more</a>
`,
		},
		{
			name: "toml",
			file: "truncate.toml",
			content: `lines = 3
position = "start"
ellipsis = "..."
max_height = 54
show_more = '<a class="more">more</a>'
`,
		},
		{
			name:    "json",
			file:    "truncate.json",
			content: `{"lines": 3, "position": "start", "ellipsis": "...", "max_height": 54, "show_more": "<a class=\"more\">more</a>"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			opts, err := LoadFile(path)
			require.NoError(t, err)

			assert.Equal(t, 3, opts.Lines)
			assert.Equal(t, truncate.Start, opts.Position)
			assert.Equal(t, "...", opts.Ellipsis)
			require.NotNil(t, opts.MaxHeight)
			assert.Equal(t, 54.0, *opts.MaxHeight)
			assert.Equal(t, `<a class="more">more</a>`, opts.ShowMore)
			assert.Empty(t, opts.ShowLess)
		})
	}
}

func TestLoadFile_KeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yml")
	require.NoError(t, os.WriteFile(path, []byte("lines: 2\n"), 0o600))

	opts, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2, opts.Lines)
	assert.Equal(t, "…", opts.Ellipsis)
	assert.Equal(t, truncate.End, opts.Position)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	ini := filepath.Join(dir, "truncate.ini")
	require.NoError(t, os.WriteFile(ini, []byte("lines=1"), 0o600))
	_, err = LoadFile(ini)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = LoadFile(bad)
	assert.Error(t, err)
}

func TestDecode_UnknownPosition(t *testing.T) {
	opts, err := Decode([]byte("position: sideways\n"), ".yaml")
	require.NoError(t, err)
	assert.Equal(t, truncate.End, opts.Position)

	opts, err = Decode([]byte("lines: 2\n"), ".yaml")
	require.NoError(t, err)
	assert.Empty(t, opts.Position, "absent position stays unset so Merge keeps the previous one")
}
