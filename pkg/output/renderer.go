package output

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/dusklight/pixelpipe/pkg/pipeline"
	"github.com/dusklight/pixelpipe/pkg/types"
)

// Renderer formats documents and audit outcomes as terminal text.
type Renderer struct {
	color bool

	headerStyle lipgloss.Style
	fenceStyle  lipgloss.Style
	okStyle     lipgloss.Style
	failStyle   lipgloss.Style
	dimStyle    lipgloss.Style
}

// NewRenderer resolves the color mode: "always", "never", or "auto" which
// enables color only on a capable TTY.
func NewRenderer(colorMode string) *Renderer {
	color := false
	switch colorMode {
	case "always":
		color = true
	case "never":
		color = false
	default:
		color = isatty.IsTerminal(os.Stdout.Fd()) &&
			termenv.EnvColorProfile() != termenv.Ascii
	}

	r := &Renderer{color: color}
	if color {
		r.headerStyle = lipgloss.NewStyle().Bold(true)
		r.fenceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
		r.okStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
		r.failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
		r.dimStyle = lipgloss.NewStyle().Faint(true)
	}
	return r
}

// OrderTable renders the document's live pipeline as a table, one row per
// module in rank order.
func (r *Renderer) OrderTable(doc *pipeline.Document) (string, error) {
	data := pterm.TableData{
		{"RANK", "OPERATION", "INSTANCE", "NAME", "ENABLED", "FENCE"},
	}
	for _, m := range doc.ModulesByRank() {
		fence := ""
		if m.Fence {
			fence = r.fenceStyle.Render("fence")
		}
		enabled := "yes"
		if !m.Enabled {
			enabled = r.dimStyle.Render("no")
		}
		data = append(data, []string{
			strconv.Itoa(m.Rank),
			m.Operation,
			strconv.Itoa(m.Instance),
			m.Name,
			enabled,
			fence,
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	return table, nil
}

// OrderSummary renders a one-line description of the document's order.
func (r *Renderer) OrderSummary(doc *pipeline.Document, version types.Version) string {
	var b strings.Builder
	b.WriteString(r.headerStyle.Render(fmt.Sprintf("image %d", doc.ImageID)))
	b.WriteString(fmt.Sprintf(": %d entries, %s order", doc.Order.Len(), version))
	if doc.Order.HasMultipleInstances() {
		b.WriteString(", multiple instances")
	}
	return b.String()
}

// AuditResult renders the auditor's verdict.
func (r *Renderer) AuditResult(ok bool) string {
	if ok {
		return r.okStyle.Render("order consistent")
	}
	return r.failStyle.Render("order inconsistent, see log")
}

// MoveResult renders a move outcome.
func (r *Renderer) MoveResult(changed bool) string {
	if changed {
		return r.okStyle.Render("moved")
	}
	return r.dimStyle.Render("not moved")
}
