package render

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/rios0rios0/extcheck/internal/domain/entities"
	"github.com/rios0rios0/extcheck/internal/domain/repositories"
)

const prettyWordWrap = 100

// PrettyRenderer renders the markdown report styled for a terminal.
type PrettyRenderer struct {
	now func() time.Time
}

// NewPrettyRenderer creates the glamour-backed terminal renderer.
func NewPrettyRenderer() repositories.ReportRenderer {
	return &PrettyRenderer{now: time.Now}
}

func (r *PrettyRenderer) Name() string { return "pretty" }

func (r *PrettyRenderer) Render(report *entities.Report, sink io.Writer) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(prettyWordWrap),
	)
	if err != nil {
		return fmt.Errorf("failed to build terminal renderer: %w", err)
	}

	styled, err := renderer.Render(BuildMarkdown(report, r.now()))
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if _, writeErr := io.WriteString(sink, styled); writeErr != nil {
		return fmt.Errorf("failed to write report: %w", writeErr)
	}
	return nil
}
