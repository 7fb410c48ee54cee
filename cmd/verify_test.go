package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/catalog"
	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/testutil"
)

func TestVerifyEmbeddedPacks(t *testing.T) {
	names, err := catalog.List("")
	require.NoError(t, err)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			pack, err := catalog.Load(name, "")
			require.NoError(t, err)

			var buf bytes.Buffer
			failed, err := verifyPack(&buf, pack)
			require.NoError(t, err)
			assert.Zero(t, failed, buf.String())
		})
	}
}

func TestVerifyReportsFailingSolution(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePack(t, dir, "weak", "", `exercises:
  - id: weak
    title: Weak solution
    prompt: Write something.
    criteria:
      - Mentions the budget
    solution: too short
  - id: nosolution
    title: No solution
    prompt: Write something else.
    criteria:
      - Anything
`)

	pack, err := catalog.Load("weak", dir)
	require.NoError(t, err)

	var buf bytes.Buffer
	failed, err := verifyPack(&buf, pack)
	require.NoError(t, err)

	assert.Equal(t, 1, failed)
	assert.Contains(t, buf.String(), "FAIL  weak (0/1 criteria)")
	assert.Contains(t, buf.String(), "skip  nosolution (no reference solution)")
}
