package quiz

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MinOptions is the smallest option list a question may have.
const MinOptions = 2

// Question is a single multiple-choice item. Answer is the index of the
// correct entry in Options.
type Question struct {
	Prompt  string   `yaml:"prompt"`
	Options []string `yaml:"options"`
	Answer  int      `yaml:"answer"`
}

// Validate checks the question's own invariants.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return ErrEmptyPrompt
	}
	if len(q.Options) < MinOptions {
		return ErrTooFewOptions
	}
	if q.Answer < 0 || q.Answer >= len(q.Options) {
		return ErrAnswerRange
	}
	return nil
}

// IsCorrect reports whether option i is the correct answer.
func (q Question) IsCorrect(i int) bool {
	return i == q.Answer
}

func (q Question) clone() Question {
	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	return Question{Prompt: q.Prompt, Options: opts, Answer: q.Answer}
}

// Validate checks a whole question set. The returned error is a
// *QuestionError for per-question problems.
func Validate(questions []Question) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return &QuestionError{Index: i, Wrapped: err}
		}
	}
	return nil
}

type questionFile struct {
	Questions []Question `yaml:"questions"`
}

// ParseQuestions decodes and validates a YAML question document of the form
//
//	questions:
//	  - prompt: HTML stands for?
//	    options: [HyperText Markup Language, ...]
//	    answer: 0
func ParseQuestions(data []byte) ([]Question, error) {
	var f questionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("quiz: decode questions: %w", err)
	}
	if err := Validate(f.Questions); err != nil {
		return nil, err
	}
	return f.Questions, nil
}

// LoadQuestions reads a question file from disk.
func LoadQuestions(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseQuestions(data)
}

// SaveQuestions writes questions in the format LoadQuestions reads.
func SaveQuestions(path string, questions []Question) error {
	data, err := yaml.Marshal(questionFile{Questions: questions})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
