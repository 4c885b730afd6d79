package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"premium-quote/core/quote"
)

var (
	primaryColor = lipgloss.Color("#4F7CAC")
	warningColor = lipgloss.Color("#FFE66D")
	subtleColor  = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Width(52)

	amountStyle = lipgloss.NewStyle().
			Width(12).
			Align(lipgloss.Right)

	totalStyle = lipgloss.NewStyle().
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	subtleStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)
)

// CLIFormatter renders a boxed terminal summary
type CLIFormatter struct {
	labels      Labeler
	showDetails bool
}

// NewCLIFormatter creates a terminal formatter
func NewCLIFormatter(labels Labeler, showDetails bool) *CLIFormatter {
	return &CLIFormatter{labels: labels, showDetails: showDetails}
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the summary to w
func (f *CLIFormatter) Render(w io.Writer, out *QuoteOutput) error {
	res := out.Result
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(f.labels.T("summary.title")))
	sb.WriteString("\n")

	sb.WriteString(subtleStyle.Render(f.labels.T("summary.breakdown")))
	sb.WriteString("\n")
	for _, item := range res.Breakdown {
		sb.WriteString(f.line(f.labels.Label(item.Label), f.labels.Money(item.Amount), out.Metadata.Currency))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(totalStyle.Render(f.line(f.labels.T("summary.annualPremium"), f.labels.Money(res.Annual), out.Metadata.Currency)))
	sb.WriteString("\n")
	sb.WriteString(f.line(f.labels.T("summary.monthlyPremium"), f.labels.Money(res.Monthly), out.Metadata.Currency))
	sb.WriteString("\n")

	if len(res.Notes) > 0 {
		sb.WriteString("\n")
		for _, note := range res.Notes {
			sb.WriteString(noteStyle.Render("! " + f.labels.T(note)))
			sb.WriteString("\n")
		}
	}

	if f.showDetails {
		sb.WriteString("\n")
		sb.WriteString(subtleStyle.Render(f.labels.T("summary.calculationDetails")))
		sb.WriteString("\n")
		for _, kv := range detailRows(f.labels, res.Details) {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", kv[0], kv[1]))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(subtleStyle.Render(f.labels.T("summary.disclaimer")))

	_, err := fmt.Fprintln(w, boxStyle.Render(sb.String()))
	return err
}

func (f *CLIFormatter) line(label, amount, currency string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render(label),
		amountStyle.Render(amount+" "+currency),
	)
}

// detailRows lists the audit facts as translated label/value pairs
func detailRows(labels Labeler, d quote.Details) [][2]string {
	var rows [][2]string
	if rc := d.RC; rc != nil {
		rows = append(rows,
			[2]string{labels.T("summary.details.category"), fmt.Sprintf("%d", rc.Category)},
			[2]string{labels.T("summary.details.vehicleAge"), fmt.Sprintf("%d %s", rc.VehicleAge, labels.T("summary.details.years"))},
			[2]string{labels.T("summary.details.rank"), rc.Rank},
		)
		if rc.AgeGroup != "" {
			rows = append(rows, [2]string{labels.T("summary.details.ageGroup"), rc.AgeGroup})
		}
		if rc.Rule != "" {
			rows = append(rows, [2]string{labels.T("summary.details.rule"), rc.Rule})
		}
		if rc.Condition != "" {
			rows = append(rows, [2]string{labels.T("summary.details.condition"), rc.Condition})
		}
		if rc.Power != nil {
			rows = append(rows, [2]string{labels.T("summary.details.power"), rc.Power.String() + " kW"})
		}
	}
	if om := d.Omnium; om != nil {
		rows = append(rows,
			[2]string{labels.T("summary.details.omniumType"), labels.Label("coverages.omniumType." + string(om.Type))},
			[2]string{labels.T("summary.details.vehicleValue"), labels.Money(om.Value)},
			[2]string{labels.T("summary.details.rule"), om.Rule},
		)
	}
	return rows
}
