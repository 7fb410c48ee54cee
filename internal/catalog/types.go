package catalog

import "github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/evaluator"

// Difficulty is the self-declared level of an exercise.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Pack is a named collection of exercises loaded from a catalog directory.
type Pack struct {
	Name          string     `yaml:"name" validate:"required,notblank"`
	Description   string     `yaml:"description"`
	Version       string     `yaml:"version"`
	Locale        string     `yaml:"locale" validate:"oneof=en nl"`
	ExercisesFile string     `yaml:"exercises_file"`
	Exercises     []Exercise `yaml:"-" validate:"min=1,unique=ID,dive"` // loaded from ExercisesFile
}

// Exercise is a single interactive prompt-engineering exercise.
// Solution may contain display markup such as <role> tags; use PlainText before
// treating it as a submission.
type Exercise struct {
	ID         string     `yaml:"id" validate:"required,notblank"`
	Title      string     `yaml:"title" validate:"required"`
	Category   string     `yaml:"category"`
	Difficulty Difficulty `yaml:"difficulty" validate:"oneof=beginner intermediate advanced"`
	Prompt     string     `yaml:"prompt" validate:"required,notblank"`
	Criteria   []string   `yaml:"criteria" validate:"min=1,unique,dive,notblank"`
	Hints      []string   `yaml:"hints"`
	Solution   string     `yaml:"solution"`
	Tags       []string   `yaml:"tags"`
}

// Exercise returns the exercise with the given ID.
func (p *Pack) Exercise(id string) (*Exercise, bool) {
	for i := range p.Exercises {
		if p.Exercises[i].ID == id {
			return &p.Exercises[i], true
		}
	}
	return nil, false
}

// ToEvaluator converts the catalog record into the engine's input type.
func (e *Exercise) ToEvaluator() *evaluator.Exercise {
	criteria := make([]string, len(e.Criteria))
	copy(criteria, e.Criteria)

	return &evaluator.Exercise{
		ID:         e.ID,
		Prompt:     e.Prompt,
		Criteria:   criteria,
		Difficulty: string(e.Difficulty),
		Hints:      e.Hints,
		Solution:   e.Solution,
	}
}
