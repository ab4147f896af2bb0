package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitby/rolodex/internal/directory"
	"github.com/mwhitby/rolodex/internal/query"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the title line with the load state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	title := styles.Header.Render("ROLODEX")

	var status string
	switch m.collection.Status {
	case directory.StatusPending:
		status = styles.WarningText.Render(m.spin.View() + "loading directory...")
	case directory.StatusFailed:
		status = styles.DangerText.Render("directory unavailable")
	default:
		status = styles.MutedText.Render(fmt.Sprintf("%d contacts", len(m.collection.Items)))
	}

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + status
}

func (m Model) renderSearchBar() string {
	return m.searchInput.View()
}

// renderContent renders the record pane or a centered placeholder for
// the pending and failed states.
func (m Model) renderContent() string {
	styles := m.theme.Styles()
	contentHeight := max(m.height-chromeHeight, 1)

	if m.help.ShowAll {
		// Full help replaces the record pane rather than growing the
		// footer past the window height.
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center,
			m.help.View(m.keys))
	}

	switch m.collection.Status {
	case directory.StatusPending:
		msg := styles.MutedText.Render(m.spin.View() + "Fetching the directory...")
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, msg)

	case directory.StatusFailed:
		// Terminal for the session: the directory is fetched exactly
		// once and there is no retry.
		lines := []string{
			styles.DangerText.Render("Could not load the directory."),
			styles.MutedText.Render(errorText(m.collection.Err)),
			styles.FaintText.Render("Restart rolodex to try again."),
		}
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center,
			strings.Join(lines, "\n"))
	}

	return m.pane.View()
}

// renderRecords builds the scrollable content for the current page.
func (m Model) renderRecords() string {
	styles := m.theme.Styles()

	if len(m.view.PageItems) == 0 {
		return styles.MutedText.Render("No matching contacts.")
	}

	var b strings.Builder
	for i, r := range m.view.PageItems {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.Text.Bold(true).Render(r.Name))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(r.Email + "  ·  " + r.Phone))
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Render(r.Company.Name))
		b.WriteString("\n")
	}
	return b.String()
}

// renderFooter renders the query summary line plus the help line.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	company := m.qry.Company
	if company == "" {
		company = "All"
	}

	arrow := "↑"
	if m.qry.Sort == query.Descending {
		arrow = "↓"
	}

	parts := []string{
		fmt.Sprintf("Company: %s", company),
		fmt.Sprintf("Name %s", arrow),
		fmt.Sprintf("Page %d/%d", m.qry.Page, max(m.view.PageCount, 1)),
	}

	pager := m.pager
	pager.ActiveDot = styles.AccentText.Render("•")
	pager.InactiveDot = styles.FaintText.Render("•")

	// The footer always shows the short help; the full listing is an
	// overlay in the content area.
	short := m.help
	short.ShowAll = false

	status := styles.Footer.Render(strings.Join(parts, "  •  ") + "  " + pager.View())
	return status + "\n" + short.View(m.keys)
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
