package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Veraticus/spend/internal/model"
)

// maxAttempts bounds how often a choice is re-asked before giving up.
const maxAttempts = 3

// ErrTooManyAttempts is returned when a prompt keeps receiving invalid input.
var ErrTooManyAttempts = errors.New("too many invalid answers")

// Prompter asks questions on a line-oriented terminal.
type Prompter struct {
	writer io.Writer
	reader *lineReader
}

// NewPrompter creates a prompter. Nil arguments default to stdin/stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{
		writer: writer,
		reader: newLineReader(reader),
	}
}

// Confirm asks a yes/no question that defaults to no. Reaching the end of
// input counts as a decline.
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt+" [y/N]")); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	answer, err := p.reader.ReadLine(ctx)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Ask reads a free-form answer. An empty answer returns def.
func (p *Prompter) Ask(ctx context.Context, label, def string) (string, error) {
	prompt := label
	if def != "" {
		prompt += " [" + def + "]"
	}
	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	answer, err := p.reader.ReadLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrInputCancelled
		}
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// ChooseCategory lists the categories and reads a choice by number or
// name. An empty answer keeps def.
func (p *Prompter) ChooseCategory(ctx context.Context, def model.Category) (model.Category, error) {
	categories := model.Categories()
	for i, c := range categories {
		marker := "  "
		if c == def {
			marker = "→ "
		}
		if _, err := fmt.Fprintf(p.writer, "%s[%d] %s\n", marker, i+1, c); err != nil {
			return "", fmt.Errorf("failed to write category options: %w", err)
		}
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		answer, err := p.Ask(ctx, "Category", def.String())
		if err != nil {
			return "", err
		}
		if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(categories) {
			return categories[n-1], nil
		}
		if c, ok := model.ParseCategory(answer); ok {
			return c, nil
		}
		if _, err := fmt.Fprintln(p.writer, FormatError(fmt.Sprintf("%q is not a category", answer))); err != nil {
			return "", fmt.Errorf("failed to write error: %w", err)
		}
	}
	return "", ErrTooManyAttempts
}
