package mcp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfinePath(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "relative file", path: "subs.csv", want: filepath.Join(base, "subs.csv")},
		{name: "nested file", path: "in/subs.csv", want: filepath.Join(base, "in", "subs.csv")},
		{name: "absolute inside", path: filepath.Join(base, "x.csv"), want: filepath.Join(base, "x.csv")},
		{name: "dot dot inside", path: "in/../subs.csv", want: filepath.Join(base, "subs.csv")},
		{name: "escapes base", path: "../subs.csv", wantErr: true},
		{name: "absolute outside", path: "/etc/passwd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := confinePath(base, tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRunPath(t *testing.T) {
	base := t.TempDir()

	got, err := resolveRunPath(base, "pack_20260101-000000_abcdef12")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "pack_20260101-000000_abcdef12"), got)

	for _, bad := range []string{"", "  ", ".", "..", "a/b", `a\b`} {
		_, err := resolveRunPath(base, bad)
		assert.Error(t, err, bad)
	}
}
