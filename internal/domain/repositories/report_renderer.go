package repositories

import (
	"io"

	"github.com/rios0rios0/extcheck/internal/domain/entities"
)

// ReportRenderer writes one report to a sink. Implementations decide the
// format; the engine hands over the report exactly once.
type ReportRenderer interface {
	Name() string
	Render(report *entities.Report, sink io.Writer) error
}
