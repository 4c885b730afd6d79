package output

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownFormatter renders the quote as a markdown document
type MarkdownFormatter struct {
	labels      Labeler
	showDetails bool
}

// NewMarkdownFormatter creates a markdown formatter
func NewMarkdownFormatter(labels Labeler, showDetails bool) *MarkdownFormatter {
	return &MarkdownFormatter{labels: labels, showDetails: showDetails}
}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the markdown summary to w
func (f *MarkdownFormatter) Render(w io.Writer, out *QuoteOutput) error {
	res := out.Result
	cur := out.Metadata.Currency
	var sb strings.Builder

	sb.WriteString("## " + f.labels.T("summary.title") + "\n\n")

	sb.WriteString(fmt.Sprintf("| %s | %s |\n|---|---:|\n", f.labels.T("summary.breakdown"), cur))
	for _, item := range res.Breakdown {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", f.labels.Label(item.Label), f.labels.Money(item.Amount)))
	}
	sb.WriteString(fmt.Sprintf("| **%s** | **%s** |\n", f.labels.T("summary.annualPremium"), f.labels.Money(res.Annual)))
	sb.WriteString(fmt.Sprintf("| %s | %s |\n\n", f.labels.T("summary.monthlyPremium"), f.labels.Money(res.Monthly)))

	if len(res.Notes) > 0 {
		sb.WriteString("### " + f.labels.T("summary.notes") + "\n\n")
		for _, note := range res.Notes {
			sb.WriteString("- " + f.labels.T(note) + "\n")
		}
		sb.WriteString("\n")
	}

	if f.showDetails {
		sb.WriteString("### " + f.labels.T("summary.calculationDetails") + "\n\n")
		for _, kv := range detailRows(f.labels, res.Details) {
			sb.WriteString(fmt.Sprintf("- **%s**: %s\n", kv[0], kv[1]))
		}
		if out.Explanation != nil {
			sb.WriteString("\n")
			for _, line := range out.Explanation.Lines {
				if line.Formula != "" {
					sb.WriteString(fmt.Sprintf("- `%s`: %s\n", f.labels.Label(line.Label), line.Formula))
				}
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("_" + f.labels.T("summary.disclaimer") + "_\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
