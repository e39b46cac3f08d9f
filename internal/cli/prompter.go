package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter asks yes/no questions on a terminal.
type Prompter struct {
	reader *NonBlockingReader
	writer io.Writer
}

// NewCLIPrompter creates a prompter reading answers from reader.
func NewCLIPrompter(reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{
		reader: NewNonBlockingReader(reader),
		writer: writer,
	}
}

// Confirm prints question and waits for y or n. An empty answer or end of
// input means no. Other answers repeat the question.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		if _, err := fmt.Fprintf(p.writer, "%s %s ", FormatPrompt(question), SubtleStyle.Render("[y/N]")); err != nil {
			return false, fmt.Errorf("failed to write prompt: %w", err)
		}

		answer, err := p.reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		default:
			if _, err := fmt.Fprintln(p.writer, FormatWarning("Please answer y or n")); err != nil {
				return false, fmt.Errorf("failed to write prompt: %w", err)
			}
		}
	}
}

// ConfirmFresh describes what a fresh split will remove and asks to proceed.
func (p *Prompter) ConfirmFresh(ctx context.Context, outputDir string, stale []string) (bool, error) {
	var b strings.Builder
	b.WriteString(FormatWarning("Fresh mode rebuilds " + outputDir + " from scratch."))
	if len(stale) > 0 {
		b.WriteString("\n" + FormatInfo("Existing category files that may be removed:"))
		for _, name := range stale {
			b.WriteString("\n  • " + name)
		}
	}
	if _, err := fmt.Fprintln(p.writer, b.String()); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	return p.Confirm(ctx, "Continue?")
}
