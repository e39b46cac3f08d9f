package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/typesplit/internal/model"
	"github.com/schollz/progressbar/v3"
)

// WriteProgress shows a progress bar while category files are written.
// It implements writer.Progress.
type WriteProgress struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
	done   int
}

// NewWriteProgress creates a progress reporter writing to w.
func NewWriteProgress(w io.Writer) *WriteProgress {
	return &WriteProgress{writer: w}
}

// Start creates the bar for total files.
func (p *WriteProgress) Start(total int) {
	p.done = 0
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Writing category files...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(p.writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// Advance records one written file.
func (p *WriteProgress) Advance(category model.Category, _ string) {
	p.done++
	if p.bar == nil {
		return
	}
	p.bar.Describe(fmt.Sprintf("[cyan][bold]Wrote %s[reset]", category.FileName()))
	if err := p.bar.Add(1); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

// Done returns the number of files reported so far.
func (p *WriteProgress) Done() int {
	return p.done
}
