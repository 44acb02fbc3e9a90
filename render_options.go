package wdf

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	costs       Costs
	marker      string
	markerSet   bool
	lineNumbers bool
	width       int
}

// DefaultDeletionMarker is the glyph printed where left-document content was
// removed (U+2038 CARET, the proofreader's omission mark).
const DefaultDeletionMarker = "‸"

// WithCostModel selects the scoring policy used by Render. The default is
// IndentSensitive.
func WithCostModel(c Costs) RenderOption {
	return func(cfg *renderConfig) {
		cfg.costs = c
	}
}

// WithDeletionMarker sets the glyph printed at deletion points. An empty
// string suppresses deletion marks entirely.
func WithDeletionMarker(marker string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.marker = marker
		cfg.markerSet = true
	}
}

// WithLineNumbers prefixes each output line with its right-document line
// number.
func WithLineNumbers(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.lineNumbers = enabled
	}
}

// WithWidth truncates output lines longer than width columns. Zero disables
// truncation.
func WithWidth(width int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.width = width
	}
}
