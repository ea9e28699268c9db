package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/service"
	"github.com/jeremy-dai/hi-time-sub000/internal/syncer"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

type tab int

const (
	tabToday tab = iota
	tabLog
	tabGoals
	tabCount
)

var tabNames = [tabCount]string{"Today", "Shipping log", "Goals"}

type editTarget int

const (
	editNone editTarget = iota
	editShipped
	editGoalTitle
)

const (
	refreshInterval = 2 * time.Second
	statusTTL       = 3 * time.Second
)

var clipboardWriteAll = clipboard.WriteAll

// writeClipboard is replaced in tests.
var writeClipboard = clipboardWriteAll

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	logger   *logger.Logger
	today    time.Time

	tab tab

	entry       *syncer.Engine[models.ShippingEntry]
	snapshot    syncer.Snapshot[models.ShippingEntry]
	updates     chan syncer.Snapshot[models.ShippingEntry]
	unsubscribe func()

	entries  []models.ShippingEntry
	logIdx   int
	goals    []models.Goal
	goalIdx  int
	loading  bool
	syncing  bool
	editing  editTarget
	editor   textinput.Model
	status   string
	errMsg   string
	logout   bool
	quitting bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, now time.Time, logger *logger.Logger) *mainLoopModel {
	editor := textinput.New()
	editor.CharLimit = 500
	editor.Width = 60

	return &mainLoopModel{
		ctx:      ctx,
		services: services,
		logger:   logger,
		today:    now,
		editor:   editor,
		loading:  true,
		updates:  make(chan syncer.Snapshot[models.ShippingEntry], 16),
	}
}

func (m *mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdOpenEntry(), m.cmdLoadEntries(), m.cmdLoadGoals(), cmdTick())
}

func (m *mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entryOpenedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.watch(msg.engine)
		return m, waitForSnapshot(m.updates)

	case entrySnapshotMsg:
		if m.entry != nil {
			m.snapshot = m.entry.Snapshot()
		} else {
			m.snapshot = msg.snapshot
		}
		return m, waitForSnapshot(m.updates)

	case entriesLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.entries = msg.entries
		m.logIdx = clampIndex(m.logIdx, len(m.entries))
		return m, nil

	case goalsLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.goals = msg.goals
		m.goalIdx = clampIndex(m.goalIdx, len(m.goals))
		return m, nil

	case goalSavedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, tea.Batch(m.cmdLoadGoals(), m.flash("Goals saved"))

	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, tea.Batch(m.cmdLoadEntries(), m.flash("Synced"))

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, m.flash("Copied " + msg.what + " to clipboard")

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, cmdTick()

	case tea.KeyMsg:
		if m.editing != editNone {
			return m.updateEditor(msg)
		}
		return m.updateKeys(msg)
	}

	// cursor blink and other input internals
	if m.editing != editNone {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *mainLoopModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.tab):
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		return m, m.cmdSyncAll()
	case key.Matches(msg, keys.copyPlan):
		return m, m.cmdCopyPlan()
	case key.Matches(msg, keys.reload):
		return m, tea.Batch(m.cmdLoadEntries(), m.cmdLoadGoals())
	}

	switch m.tab {
	case tabToday:
		return m.updateToday(msg)
	case tabLog:
		return m.updateLog(msg)
	case tabGoals:
		return m.updateGoals(msg)
	}
	return m, nil
}

func (m *mainLoopModel) updateToday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.entry == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.edit), key.Matches(msg, keys.enter):
		return m, m.startEditing(editShipped, m.snapshot.Value.Shipped)
	case key.Matches(msg, keys.toggle):
		return m, m.cmdUpdateEntry(func(e models.ShippingEntry) models.ShippingEntry {
			e.Completed = !e.Completed
			return e
		})
	case key.Matches(msg, keys.delete):
		return m, m.cmdUpdateEntry(func(e models.ShippingEntry) models.ShippingEntry {
			return models.ShippingEntry{Date: e.Date}
		})
	case key.Matches(msg, keys.copy):
		return m, cmdCopy("today's entry", formatEntry(m.snapshot.Value))
	}
	return m, nil
}

func (m *mainLoopModel) updateLog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.logIdx > 0 {
			m.logIdx--
		}
	case key.Matches(msg, keys.down):
		if m.logIdx < len(m.entries)-1 {
			m.logIdx++
		}
	case key.Matches(msg, keys.copy):
		if len(m.entries) > 0 {
			entry := m.entries[m.logIdx]
			return m, cmdCopy(entry.Date, formatEntry(entry))
		}
	}
	return m, nil
}

func (m *mainLoopModel) updateGoals(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.goalIdx > 0 {
			m.goalIdx--
		}
	case key.Matches(msg, keys.down):
		if m.goalIdx < len(m.goals)-1 {
			m.goalIdx++
		}
	case key.Matches(msg, keys.newItem):
		return m, m.startEditing(editGoalTitle, "")
	case key.Matches(msg, keys.toggle):
		if len(m.goals) > 0 {
			goal := m.goals[m.goalIdx]
			goal.Completed = !goal.Completed
			if goal.Completed {
				goal.Progress = 100
			}
			return m, m.cmdSaveGoal(goal)
		}
	case key.Matches(msg, keys.delete):
		if len(m.goals) > 0 {
			return m, m.cmdDeleteGoal(m.goals[m.goalIdx].ID)
		}
	}
	return m, nil
}

func (m *mainLoopModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.stopEditing()
		return m, nil
	case key.Matches(msg, keys.enter):
		value := strings.TrimSpace(m.editor.Value())
		target := m.editing
		m.stopEditing()

		switch target {
		case editShipped:
			return m, m.cmdUpdateEntry(func(e models.ShippingEntry) models.ShippingEntry {
				e.Shipped = value
				return e
			})
		case editGoalTitle:
			if value == "" {
				return m, nil
			}
			return m, m.cmdCreateGoal(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *mainLoopModel) startEditing(target editTarget, value string) tea.Cmd {
	m.editing = target
	m.editor.SetValue(value)
	m.editor.CursorEnd()
	return m.editor.Focus()
}

func (m *mainLoopModel) stopEditing() {
	m.editing = editNone
	m.editor.Blur()
	m.editor.Reset()
}

// watch forwards engine snapshots to the program through m.updates.
func (m *mainLoopModel) watch(engine *syncer.Engine[models.ShippingEntry]) {
	m.entry = engine
	m.snapshot = engine.Snapshot()

	updates := m.updates
	m.unsubscribe = engine.Subscribe(func(s syncer.Snapshot[models.ShippingEntry]) {
		select {
		case updates <- s:
		default:
			// the next message reads the latest snapshot anyway
		}
	})
}

func (m *mainLoopModel) close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *mainLoopModel) flash(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// ── Commands ────────────────────────────────────────────────────────────────

func waitForSnapshot(updates <-chan syncer.Snapshot[models.ShippingEntry]) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return nil
		}
		return entrySnapshotMsg{snapshot: s}
	}
}

func cmdTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *mainLoopModel) cmdOpenEntry() tea.Cmd {
	ctx, shipping, date := m.ctx, m.services.ShippingService, models.ShippingKey(m.today)
	return func() tea.Msg {
		engine, err := shipping.Open(ctx, date)
		return entryOpenedMsg{engine: engine, err: err}
	}
}

func (m *mainLoopModel) cmdLoadEntries() tea.Cmd {
	ctx, shipping, year := m.ctx, m.services.ShippingService, m.today.Year()
	return func() tea.Msg {
		entries, err := shipping.List(ctx, year)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m *mainLoopModel) cmdLoadGoals() tea.Cmd {
	ctx, goals := m.ctx, m.services.GoalService
	return func() tea.Msg {
		list, err := goals.List(ctx)
		return goalsLoadedMsg{goals: list, err: err}
	}
}

// cmdUpdateEntry edits today's entry. In write-through mode Update calls
// the server, so it runs off the UI goroutine.
func (m *mainLoopModel) cmdUpdateEntry(fn func(models.ShippingEntry) models.ShippingEntry) tea.Cmd {
	ctx, engine := m.ctx, m.entry
	return func() tea.Msg {
		if err := engine.Update(ctx, fn); err != nil {
			return syncDoneMsg{err: err}
		}
		return nil
	}
}

func (m *mainLoopModel) cmdSyncAll() tea.Cmd {
	ctx, registry := m.ctx, m.services.Registry
	return func() tea.Msg {
		return syncDoneMsg{err: registry.FlushAll(ctx)}
	}
}

func (m *mainLoopModel) cmdCreateGoal(title string) tea.Cmd {
	ctx, goals, quarter := m.ctx, m.services.GoalService, models.QuarterID(m.today)
	return func() tea.Msg {
		_, err := goals.Create(ctx, models.Goal{Title: title, Quarter: quarter})
		return goalSavedMsg{err: err}
	}
}

func (m *mainLoopModel) cmdSaveGoal(goal models.Goal) tea.Cmd {
	ctx, goals := m.ctx, m.services.GoalService
	return func() tea.Msg {
		_, err := goals.Update(ctx, goal)
		return goalSavedMsg{err: err}
	}
}

func (m *mainLoopModel) cmdDeleteGoal(id string) tea.Cmd {
	ctx, goals := m.ctx, m.services.GoalService
	return func() tea.Msg {
		return goalSavedMsg{err: goals.Delete(ctx, id)}
	}
}

func (m *mainLoopModel) cmdCopyPlan() tea.Cmd {
	ctx, plans, id := m.ctx, m.services.PlanService, models.QuarterID(m.today)
	return func() tea.Msg {
		data, err := plans.Export(ctx, id)
		if err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{what: "plan " + id, err: writeClipboard(string(data))}
	}
}

func cmdCopy(what, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: writeClipboard(text)}
	}
}

// ── View ────────────────────────────────────────────────────────────────────

func (m *mainLoopModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case tabToday:
		b.WriteString(m.renderToday())
	case tabLog:
		b.WriteString(m.renderLog())
	case tabGoals:
		b.WriteString(m.renderGoals())
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(okStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("HI-TIME", b.String(), m.hotKeys())
}

func (m *mainLoopModel) renderHeader() string {
	server := "offline"
	if info, ok := m.services.HealthJob.ServerInfo(); ok {
		server = "online (" + valueOrNA(info.Version) + ")"
	}

	counts := m.services.Registry.Counts()
	unsynced := counts[models.StatusPending] + counts[models.StatusError] + counts[models.StatusSyncing]

	header := fmt.Sprintf("Server: %s │ Sync: %s │ Unsynced: %d", server, renderStatus(m.services.Registry.Status()), unsynced)
	if m.syncing {
		header += " │ syncing..."
	}
	return header
}

func (m *mainLoopModel) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if tab(i) == m.tab {
			parts = append(parts, activeTab.Render(name))
			continue
		}
		parts = append(parts, tabStyle.Render(name))
	}
	return strings.Join(parts, "│")
}

func (m *mainLoopModel) renderToday() string {
	if m.loading {
		return "Loading " + models.ShippingKey(m.today) + "..."
	}
	if m.entry == nil {
		return "Today's entry is not available"
	}

	entry := m.snapshot.Value
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Date       │ %s   %s\n", models.ShippingKey(m.today), renderStatus(m.snapshot.Status)))

	b.WriteString("Shipped    │ ")
	if m.editing == editShipped {
		b.WriteString("[" + m.editor.View() + "]")
	} else {
		b.WriteString(valueOrDash(entry.Shipped))
	}
	b.WriteString("\n")

	b.WriteString("Completed  │ " + checkbox(entry.Completed) + "\n")

	synced := "never"
	if !m.snapshot.LastSyncedAt.IsZero() {
		synced = m.snapshot.LastSyncedAt.Local().Format("15:04:05")
	}
	b.WriteString("Synced at  │ " + synced)

	if m.snapshot.Err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Last sync failed: " + humanizeError(m.snapshot.Err)))
	}
	return b.String()
}

func (m *mainLoopModel) renderLog() string {
	if len(m.entries) == 0 {
		return fmt.Sprintf("Nothing shipped in %d yet", m.today.Year())
	}

	var b strings.Builder
	b.WriteString("  Date        │ Done │ Shipped\n")
	b.WriteString("──────────────┼──────┼" + strings.Repeat("─", 40) + "\n")
	for i, e := range m.entries {
		cursor := " "
		if i == m.logIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-11s │ %-4s │ %s\n", cursor, e.Date, checkbox(e.Completed), fitText(e.Shipped, 40)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *mainLoopModel) renderGoals() string {
	var b strings.Builder

	if m.editing == editGoalTitle {
		b.WriteString("New goal for " + models.QuarterID(m.today) + ": [" + m.editor.View() + "]\n\n")
	}

	if len(m.goals) == 0 {
		b.WriteString("No goals yet")
		return b.String()
	}

	for i, g := range m.goals {
		cursor := " "
		if i == m.goalIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %-8s %3d%%  %s\n", cursor, checkbox(g.Completed), g.Quarter, g.Progress, fitText(g.Title, 40)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *mainLoopModel) hotKeys() string {
	if m.editing != editNone {
		return "enter: save │ esc: cancel"
	}

	common := "tab: next │ s: sync now │ p: copy plan │ r: reload │ L: sign out │ q: quit"
	switch m.tab {
	case tabToday:
		return "e: edit │ x: done │ d: clear │ c: copy │ " + common
	case tabLog:
		return "↑/↓: move │ c: copy │ " + common
	case tabGoals:
		return "n: new │ x: done │ d: delete │ " + common
	}
	return common
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func formatEntry(e models.ShippingEntry) string {
	return fmt.Sprintf("%s %s %s", e.Date, checkbox(e.Completed), e.Shipped)
}

func clampIndex(idx, n int) int {
	if n == 0 || idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
