package render

import (
	"fmt"
	"io"
	"time"

	"github.com/rios0rios0/extcheck/internal/domain/entities"
	"github.com/rios0rios0/extcheck/internal/domain/repositories"
)

// MarkdownRenderer writes the structured markdown report.
type MarkdownRenderer struct {
	now func() time.Time
}

// NewMarkdownRenderer creates the markdown renderer.
func NewMarkdownRenderer() repositories.ReportRenderer {
	return &MarkdownRenderer{now: time.Now}
}

func (r *MarkdownRenderer) Name() string { return "markdown" }

func (r *MarkdownRenderer) Render(report *entities.Report, sink io.Writer) error {
	if _, err := io.WriteString(sink, BuildMarkdown(report, r.now())); err != nil {
		return fmt.Errorf("failed to write markdown report: %w", err)
	}
	return nil
}
