package config

import (
	"sort"

	"github.com/san-kum/bootquiz/internal/quiz"
)

// Banks holds the built-in question sets by name.
var Banks = map[string][]quiz.Question{
	"web": {
		{
			Prompt:  "Which programming language powers the web?",
			Options: []string{"Python", "Rust", "JavaScript", "Go"},
			Answer:  2,
		},
		{
			Prompt:  "Tailwind CSS is primarily used for?",
			Options: []string{"Data Science", "UI Styling", "Backend APIs", "Networking"},
			Answer:  1,
		},
		{
			Prompt: "HTML stands for?",
			Options: []string{
				"HyperText Markup Language",
				"HyperTool Multi Language",
				"Hyperlink Machine Logic",
				"Hybrid Text Markdown Language",
			},
			Answer: 0,
		},
		{
			Prompt:  "Which year was JavaScript invented?",
			Options: []string{"1992", "1995", "2000", "1998"},
			Answer:  1,
		},
	},
	"golang": {
		{
			Prompt:  "Which keyword starts a goroutine?",
			Options: []string{"async", "go", "spawn", "thread"},
			Answer:  1,
		},
		{
			Prompt:  "What does a receive from a closed, empty channel return?",
			Options: []string{"It panics", "It blocks forever", "The zero value", "An error"},
			Answer:  2,
		},
		{
			Prompt:  "Which statement runs a call when the surrounding function returns?",
			Options: []string{"finally", "defer", "ensure", "after"},
			Answer:  1,
		},
		{
			Prompt:  "How are identifiers exported from a package?",
			Options: []string{"The export keyword", "A leading capital letter", "A public modifier", "Listing them in go.mod"},
			Answer:  1,
		},
		{
			Prompt:  "Which tool formats Go source code?",
			Options: []string{"gofmt", "golint", "go vet", "prettier"},
			Answer:  0,
		},
	},
}

// GetBank returns a copy of the named bank, or nil.
func GetBank(name string) []quiz.Question {
	bank, ok := Banks[name]
	if !ok {
		return nil
	}
	out := make([]quiz.Question, len(bank))
	for i, q := range bank {
		opts := make([]string, len(q.Options))
		copy(opts, q.Options)
		out[i] = quiz.Question{Prompt: q.Prompt, Options: opts, Answer: q.Answer}
	}
	return out
}

// ListBanks returns bank names in sorted order.
func ListBanks() []string {
	names := make([]string, 0, len(Banks))
	for name := range Banks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
