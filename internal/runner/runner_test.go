package runner

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/catalog"
)

func loadPack(t *testing.T) *catalog.Pack {
	t.Helper()
	pack, err := catalog.Load("prompt-basics", "")
	require.NoError(t, err)
	return pack
}

func TestRunSolutions(t *testing.T) {
	pack := loadPack(t)
	outputDir := t.TempDir()

	r := NewRunner(outputDir)
	run, err := r.Run(context.Background(), pack, SolutionSubmissions(pack))
	require.NoError(t, err)

	assert.Equal(t, "prompt-basics", run.Pack)
	assert.Empty(t, run.Skipped)
	assert.False(t, run.Cancelled)
	require.Len(t, run.Results, len(pack.Exercises))

	for _, res := range run.Results {
		assert.True(t, res.Evaluation.Passed(), "solution for %s should pass its own criteria", res.ExerciseID)
	}

	assert.Equal(t, len(pack.Exercises), run.Summary.Evaluated)
	assert.Equal(t, len(pack.Exercises), run.Summary.FullyPassed)
	require.NotNil(t, run.Summary.MeanScore)
	assert.Equal(t, 100.0, *run.Summary.MeanScore)
}

func TestRunWritesResultFiles(t *testing.T) {
	pack := loadPack(t)
	outputDir := t.TempDir()

	r := NewRunner(outputDir)
	run, err := r.Run(context.Background(), pack, []Submission{
		{ExerciseID: "role-prompting", Text: "too short"},
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outputDir, run.ID, ResultsFileName), run.ResultsFile)

	out, err := ReadResults(run.ResultsFile)
	require.NoError(t, err)
	assert.Equal(t, run.ID, out.RunID)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "role-prompting", out.Results[0].ExerciseID)
	assert.Equal(t, 0.0, out.Results[0].Evaluation.OverallScore)
	assert.Equal(t, 0, out.Summary.FullyPassed)

	data, err := os.ReadFile(filepath.Join(outputDir, run.ID, MetadataFileName))
	require.NoError(t, err)

	var metadata map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &metadata))
	assert.Equal(t, run.ID, metadata["id"])
	assert.Equal(t, "prompt-basics", metadata["pack"])
	assert.EqualValues(t, 1, metadata["evaluated"])
}

func TestRunSkipsUnknownExercises(t *testing.T) {
	pack := loadPack(t)

	r := NewRunner(t.TempDir())
	run, err := r.Run(context.Background(), pack, []Submission{
		{ExerciseID: "does-not-exist", Text: "anything"},
		{ExerciseID: "chain-of-thought", Text: "short"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"does-not-exist"}, run.Skipped)
	require.Len(t, run.Results, 1)
	assert.Equal(t, "chain-of-thought", run.Results[0].ExerciseID)
}

func TestRunReportsProgress(t *testing.T) {
	pack := loadPack(t)
	subs := SolutionSubmissions(pack)

	var calls []int
	r := NewRunner(t.TempDir())
	r.SetProgressFunc(func(name string, index, total int) {
		assert.Equal(t, "prompt-basics", name)
		assert.Equal(t, len(subs), total)
		calls = append(calls, index)
	})

	_, err := r.Run(context.Background(), pack, subs)
	require.NoError(t, err)

	require.Len(t, calls, len(subs))
	assert.Equal(t, 1, calls[0])
	assert.Equal(t, len(subs), calls[len(calls)-1])
}

func TestRunCancelled(t *testing.T) {
	pack := loadPack(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(t.TempDir())
	run, err := r.Run(ctx, pack, SolutionSubmissions(pack))
	require.NoError(t, err)

	assert.True(t, run.Cancelled)
	assert.Empty(t, run.Results)
	assert.Nil(t, run.Summary.MeanScore)
	assert.FileExists(t, run.ResultsFile)
}

func TestRunRequiresInput(t *testing.T) {
	r := NewRunner(t.TempDir())

	_, err := r.Run(context.Background(), nil, []Submission{{ExerciseID: "x", Text: "y"}})
	require.Error(t, err)

	_, err = r.Run(context.Background(), loadPack(t), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no submissions")
}

func TestRunID(t *testing.T) {
	pack := loadPack(t)
	pack.Name = "my pack/v2"

	r := NewRunner(t.TempDir())
	r.now = func() time.Time { return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC) }

	run, err := r.Run(context.Background(), pack, []Submission{{ExerciseID: "role-prompting", Text: "x"}})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^my_pack_v2_20260314-092653_[0-9a-f]{8}$`), run.ID)
}

func TestRunIDsAreUnique(t *testing.T) {
	pack := loadPack(t)
	r := NewRunner(t.TempDir())
	r.now = func() time.Time { return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC) }

	subs := []Submission{{ExerciseID: "role-prompting", Text: "x"}}
	first, err := r.Run(context.Background(), pack, subs)
	require.NoError(t, err)
	second, err := r.Run(context.Background(), pack, subs)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"prompt-basics", "prompt-basics"},
		{"team/pack", "team_pack"},
		{"a:b*c?d", "a_b_c_d"},
		{`x"y<z>w|v\u`, "x_y_z_w_v_u"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeFilename(tt.input))
		})
	}
}
