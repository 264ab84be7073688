package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/bootquiz/internal/quiz"
)

const (
	progressWidth = 40
	titleText     = "BOOTQUIZ"
)

func renderBoot(lines []string, ready bool, th Theme) string {
	text := lipgloss.NewStyle().Foreground(th.Accent)
	var b strings.Builder
	b.WriteString(GradientText(titleText, th.Accent, th.Head) + "\n")
	b.WriteString(Separator(panelWidth-4, th) + "\n\n")
	for _, line := range lines {
		b.WriteString(text.Render("> "+line) + "\n")
	}
	if !ready {
		b.WriteString(text.Render("_"))
		return panelStyle(th).Render(b.String())
	}
	button := lipgloss.NewStyle().
		Foreground(th.Head).
		Background(th.Muted).
		Bold(true).
		Padding(0, 2).
		Render("START")
	b.WriteString("\n" + button + "\n\n")
	b.WriteString(keyHint(th, "enter", "start", "t", "theme", "q", "quit"))
	return panelStyle(th).Render(b.String())
}

func renderQuiz(snap quiz.Snapshot, cursor int, th Theme) string {
	muted := lipgloss.NewStyle().Foreground(th.Muted)
	prompt := lipgloss.NewStyle().Foreground(th.Text).Bold(true).Width(panelWidth - 4)

	var b strings.Builder
	b.WriteString(muted.Render(fmt.Sprintf("QUESTION %d/%d", snap.Index+1, snap.Total)) + "\n")
	b.WriteString(ProgressBar(snap.Progress, progressWidth, th) + "\n\n")
	b.WriteString(prompt.Render(snap.Question.Prompt) + "\n\n")

	for i, opt := range snap.Question.Options {
		b.WriteString(renderOption(snap, i, opt, cursor, th) + "\n")
	}
	b.WriteString("\n")

	if snap.Selectable() {
		b.WriteString(keyHint(th, fmt.Sprintf("1-%d", len(snap.Question.Options)), "answer", "j/k", "move", "enter", "select"))
	} else {
		b.WriteString(keyHint(th, "n", "next", "q", "quit"))
	}
	return panelStyle(th).Render(b.String())
}

func renderOption(snap quiz.Snapshot, i int, opt string, cursor int, th Theme) string {
	label := fmt.Sprintf("[%d] %s", i+1, opt)
	switch snap.Mark(i) {
	case quiz.MarkCorrect:
		return lipgloss.NewStyle().Foreground(th.Success).Bold(true).Render("✔ " + label)
	case quiz.MarkWrong:
		return lipgloss.NewStyle().Foreground(th.Error).Bold(true).Render("✘ " + label)
	}
	if !snap.Selectable() {
		return lipgloss.NewStyle().Foreground(th.Muted).Render("  " + label)
	}
	if i == cursor {
		return lipgloss.NewStyle().Foreground(th.Accent).Bold(true).Render("▸ " + label)
	}
	return lipgloss.NewStyle().Foreground(th.Text).Render("  " + label)
}

func renderResult(r quiz.Result, th Theme) string {
	title, color := "ACCESS DENIED", th.Error
	if r.Passed {
		title, color = "ACCESS GRANTED", th.Success
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render(title) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(th.Text).Render("Your Score: "+r.ScoreLine()) + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(th.Muted).Render(fmt.Sprintf("pass mark %d", r.Threshold)) + "\n")
	b.WriteString(ProgressBar(r.Ratio(), progressWidth, th) + "\n\n")
	b.WriteString(keyHint(th, "r", "restart", "q", "quit"))
	return panelStyle(th).Render(b.String())
}
