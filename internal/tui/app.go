// Package tui provides the interactive Bubble Tea dashboard for finsprint.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finsprint/internal/cli"
	"github.com/theirongolddev/finsprint/internal/config"
	"github.com/theirongolddev/finsprint/internal/metrics"
	"github.com/theirongolddev/finsprint/internal/model"
	"github.com/theirongolddev/finsprint/internal/query"
	"github.com/theirongolddev/finsprint/internal/tracker"
	"github.com/theirongolddev/finsprint/internal/tui/components"
	"github.com/theirongolddev/finsprint/internal/tui/theme"
)

const (
	tabOverview = iota
	tabExpenses
	tabTasks
	tabSprints
	tabBills
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5
)

// App is the root Bubble Tea model. Collections live in the tracker; the
// app holds the filtered and sorted views each tab renders, recomputed
// after every mutation.
type App struct {
	tr       *tracker.Tracker
	currency string

	// Pre-computed per recompute()
	overview  metrics.Overview
	catTotals []metrics.CategoryTotal
	expenses  []model.Expense
	tasks     []model.Task
	sprints   []model.FinancialSprint
	bills     []model.BillReminder

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	statusMsg string

	// Per-tab cursors
	taskCursor int
	billCursor int
}

// NewApp creates the dashboard model over an already-loaded tracker.
func NewApp(tr *tracker.Tracker, cfg config.Config) App {
	a := App{
		tr:       tr,
		currency: cfg.General.Currency,
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

func (a *App) recompute() {
	now := time.Now()

	expenses := a.tr.Expenses()
	tasks := a.tr.Tasks()
	sprints := a.tr.Sprints()
	bills := a.tr.Bills()

	a.overview = metrics.Summarize(expenses, tasks, sprints, bills, now)
	a.catTotals = metrics.CategoryTotals(expenses)
	a.expenses = query.FilterExpenses(expenses, query.ExpenseFilter{})
	a.tasks = query.FilterTasks(tasks, query.TaskFilter{})
	a.sprints = metrics.ActiveSprints(sprints, now)
	a.bills = query.FilterBills(bills, query.BillsAll, now)

	if a.taskCursor >= len(a.tasks) {
		a.taskCursor = len(a.tasks) - 1
	}
	if a.taskCursor < 0 {
		a.taskCursor = 0
	}
	if a.billCursor >= len(a.bills) {
		a.billCursor = len(a.bills) - 1
	}
	if a.billCursor < 0 {
		a.billCursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.MouseMsg:
		if a.showHelp {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return a.moveCursor(-1), nil
		case tea.MouseButtonWheelDown:
			return a.moveCursor(1), nil
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
					a.statusMsg = ""
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}

	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == "q" {
		return a, tea.Quit
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "o", "e", "t", "s", "b":
		if tab := components.TabIdxByKey(rune(key[0])); tab >= 0 {
			a.activeTab = tab
			a.statusMsg = ""
		}
		return a, nil
	case "left", "h":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		a.statusMsg = ""
		return a, nil
	case "right", "l":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		a.statusMsg = ""
		return a, nil
	case "j", "down":
		return a.moveCursor(1), nil
	case "k", "up":
		return a.moveCursor(-1), nil
	case "enter", " ", "space":
		return a.activateSelection(), nil
	}

	return a, nil
}

// moveCursor shifts the active tab's cursor by delta, clamped to bounds.
func (a App) moveCursor(delta int) App {
	switch a.activeTab {
	case tabTasks:
		a.taskCursor = clamp(a.taskCursor+delta, len(a.tasks))
	case tabBills:
		a.billCursor = clamp(a.billCursor+delta, len(a.bills))
	}
	return a
}

// activateSelection performs the tab's primary action on the selected row:
// toggling a task or paying a bill. Mutations persist through the tracker.
func (a App) activateSelection() App {
	switch a.activeTab {
	case tabTasks:
		if a.taskCursor >= len(a.tasks) {
			return a
		}
		task := a.tasks[a.taskCursor]
		toggled, err := a.tr.ToggleTask(task.ID)
		if err != nil {
			a.statusMsg = err.Error()
			return a
		}
		if toggled.IsCompleted {
			a.statusMsg = fmt.Sprintf("Completed %q", toggled.Title)
		} else {
			a.statusMsg = fmt.Sprintf("Reopened %q", toggled.Title)
		}
		a.recompute()

	case tabBills:
		if a.billCursor >= len(a.bills) {
			return a
		}
		bill := a.bills[a.billCursor]
		if bill.IsPaid {
			a.statusMsg = fmt.Sprintf("%q is already paid", bill.Title)
			return a
		}
		paid, err := a.tr.PayBill(bill.ID)
		if err != nil {
			a.statusMsg = err.Error()
			return a
		}
		a.statusMsg = fmt.Sprintf("Paid %q (%s)", paid.Title, cli.FormatMoney(paid.Amount, a.currency))
		a.recompute()
	}
	return a
}

func clamp(v, n int) int {
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  finsprint needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o e t s b", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"Enter", "Toggle task / Pay bill"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab) + "\n"
	statusBar := components.RenderStatusBar(w, a.statusMsg)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabExpenses:
		content = a.renderExpensesTab(cw)
	case tabTasks:
		content = a.renderTasksTab(cw, contentH)
	case tabSprints:
		content = a.renderSprintsTab(cw)
	case tabBills:
		content = a.renderBillsTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator
	}
	return -1
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
