// Package output provides output formatting interfaces.
// This package produces human and machine-readable quotes.
package output

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"premium-quote/core/explanation"
	"premium-quote/core/quote"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal summary
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown summary
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given quote
	Render(w io.Writer, out *QuoteOutput) error
}

// Labeler turns label and note keys into display text
type Labeler interface {
	T(key string) string
	Label(key string) string
	Money(amount decimal.Decimal) string
}

// QuoteOutput contains everything a formatter renders
type QuoteOutput struct {
	// Request is the priced request
	Request *quote.Request `json:"request"`

	// Result is the calculator output
	Result quote.Result `json:"result"`

	// Explanation holds per-line explanations when details are requested
	Explanation *explanation.ExplanationResponse `json:"explanation,omitempty"`

	// Metadata contains execution context
	Metadata QuoteMetadata `json:"metadata"`
}

// QuoteMetadata contains execution context
type QuoteMetadata struct {
	// Timestamp is when the quote was computed
	Timestamp string `json:"timestamp"`

	// TariffVersion identifies the tariff used
	TariffVersion string `json:"tariffVersion"`

	// Currency of every amount
	Currency string `json:"currency"`

	// Language of the rendered labels
	Language string `json:"language"`

	// Version is the tool version
	Version string `json:"version"`
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// DefaultRegistry returns a registry with the cli, json and markdown formatters
func DefaultRegistry(labels Labeler, showDetails bool) *Registry {
	r := NewRegistry()
	_ = r.Register(NewCLIFormatter(labels, showDetails))
	_ = r.Register(NewJSONFormatter(true))
	_ = r.Register(NewMarkdownFormatter(labels, showDetails))
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.formatters[f.Format()]; exists {
		return fmt.Errorf("formatter %q already registered", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns the formatter for a format type
func (r *Registry) Get(format Format) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formatters[format]
	return f, ok
}

// Formats returns the registered format names, sorted
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()
	formats := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
