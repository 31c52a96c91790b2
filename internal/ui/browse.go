package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aferro/curator/internal/resource"
)

// column describes one list column.
type column struct {
	title string
	width int
}

// browseConfig parameterizes the generic management screen for one
// resource kind.
type browseConfig[T any] struct {
	kind    string
	title   string
	adapter resource.Adapter[T]
	backend resource.Backend[T]
	rules   resource.Rules

	columns []column
	row     func(T) []string
	detail  func(T) []string

	// form is nil for kinds without a create/edit form (contacts).
	form *formConfig[T]

	// statusOptions enables an extra cycling visibility filter; the empty
	// option means "all". statusOf extracts a record's status.
	statusOptions []string
	statusOf      func(T) string

	// onDetailLoaded runs after the view modal loads a record (the
	// contacts screen marks the message read).
	onDetailLoaded func(sh *shell, rec T) tea.Cmd
}

// browseModel is the list/detail screen for one resource kind. A fresh
// instance is created on every visit, so the collection is reloaded and
// nothing leaks across navigations.
type browseModel[T any] struct {
	sh   *shell
	cfg  browseConfig[T]
	ctrl *resource.Controller[T]

	search    textinput.Model
	searching bool
	cursor    int
	statusIdx int

	confirm   *resource.PendingDelete
	busy      bool
	actionErr error

	form *formModel[T]
}

func newBrowse[T any](sh *shell, cfg browseConfig[T]) *browseModel[T] {
	search := textinput.New()
	search.Placeholder = "search " + cfg.kind + "..."
	search.CharLimit = 64
	search.Width = 32

	return &browseModel[T]{
		sh:     sh,
		cfg:    cfg,
		ctrl:   resource.NewController(cfg.adapter, cfg.backend, cfg.rules),
		search: search,
	}
}

func (b *browseModel[T]) init() tea.Cmd {
	return b.loadCmd()
}

func (b *browseModel[T]) capturesInput() bool {
	return b.searching || b.form != nil || b.confirm != nil ||
		b.ctrl.Detail.Phase() != resource.PhaseIdle
}

func (b *browseModel[T]) loadCmd() tea.Cmd {
	gen := b.ctrl.BeginLoad()
	ctx := b.sh.ctx
	backend := b.cfg.backend
	kind := b.cfg.kind
	return func() tea.Msg {
		items, err := backend.List(ctx)
		return listLoadedMsg[T]{kind: kind, gen: gen, items: items, err: err}
	}
}

func (b *browseModel[T]) openDetailCmd(id resource.ID) tea.Cmd {
	token := b.ctrl.Detail.Open(id)
	ctx := b.sh.ctx
	backend := b.cfg.backend
	kind := b.cfg.kind
	return func() tea.Msg {
		rec, err := backend.Get(ctx, id)
		return detailLoadedMsg[T]{kind: kind, token: token, rec: rec, err: err}
	}
}

// deleteCmd issues the confirmed delete. Single deletes use the item
// endpoint; anything larger goes through the batched endpoint.
func (b *browseModel[T]) deleteCmd(pending resource.PendingDelete) tea.Cmd {
	ctx := b.sh.ctx
	exec := b.ctrl.Exec
	kind := b.cfg.kind
	ids := pending.IDs
	return func() tea.Msg {
		var err error
		if pending.Bulk() {
			err = exec.DeleteMany(ctx, ids)
		} else {
			err = exec.DeleteOne(ctx, ids[0])
		}
		return deleteDoneMsg{kind: kind, ids: ids, err: err}
	}
}

func (b *browseModel[T]) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case listLoadedMsg[T]:
		if msg.kind != b.cfg.kind {
			return nil
		}
		b.ctrl.ResolveLoad(msg.gen, msg.items, msg.err)
		b.clampCursor()
		return nil

	case detailLoadedMsg[T]:
		if msg.kind != b.cfg.kind {
			return nil
		}
		applied := b.ctrl.Detail.Resolve(msg.token, msg.rec, msg.err)
		if applied && msg.err == nil && b.cfg.onDetailLoaded != nil {
			return b.cfg.onDetailLoaded(b.sh, msg.rec)
		}
		return nil

	case recordReplacedMsg[T]:
		if msg.kind != b.cfg.kind {
			return nil
		}
		if msg.err != nil {
			b.sh.logger.Warn("record refresh failed", "kind", b.cfg.kind, "err", msg.err)
			return nil
		}
		b.ctrl.ApplyReplace(msg.rec)
		return nil

	case deleteDoneMsg:
		if msg.kind != b.cfg.kind {
			return nil
		}
		b.busy = false
		if msg.err != nil {
			b.actionErr = msg.err
			return nil
		}
		b.actionErr = nil
		if len(msg.ids) == 1 {
			b.ctrl.ApplyRemove(msg.ids[0])
		} else {
			b.ctrl.ApplyRemoveMany(msg.ids)
		}
		b.clampCursor()
		return nil

	case populateLoadedMsg[T]:
		if msg.kind != b.cfg.kind || b.form == nil {
			return nil
		}
		b.form.handlePopulate(msg)
		return nil

	case saveDoneMsg[T]:
		if msg.kind != b.cfg.kind || b.form == nil {
			return nil
		}
		b.form.sess.ResolveSubmit(msg.err)
		if b.form.sess.Phase() != resource.FormDone {
			return nil
		}
		// Reconcile locally and return to the list; no refetch.
		if msg.editing {
			b.ctrl.ApplyReplace(msg.rec)
		} else {
			b.ctrl.ApplyInsert(msg.rec)
		}
		b.form = nil
		b.clampCursor()
		return nil

	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	return nil
}

func (b *browseModel[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	if b.form != nil {
		return b.handleFormKey(msg)
	}

	if b.ctrl.Detail.Phase() != resource.PhaseIdle {
		switch msg.String() {
		case "esc", "q", "enter":
			b.ctrl.Detail.Close()
		}
		return nil
	}

	if b.confirm != nil {
		switch msg.String() {
		case "y", "enter":
			pending := *b.confirm
			b.confirm = nil
			b.busy = true
			return b.deleteCmd(pending)
		case "n", "esc":
			b.confirm = nil
		}
		return nil
	}

	if b.searching {
		switch msg.String() {
		case "enter":
			b.searching = false
			b.search.Blur()
			return nil
		case "esc":
			b.searching = false
			b.search.Blur()
			b.search.SetValue("")
			b.ctrl.SetFilter("")
			b.clampCursor()
			return nil
		}
		var cmd tea.Cmd
		b.search, cmd = b.search.Update(msg)
		b.ctrl.SetFilter(b.search.Value())
		b.clampCursor()
		return cmd
	}

	switch msg.String() {
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		b.cursor++
		b.clampCursor()
	case "g":
		b.cursor = 0
	case "G":
		b.cursor = len(b.ctrl.List.Visible()) - 1
		b.clampCursor()

	case "/":
		b.searching = true
		return b.search.Focus()

	case "esc":
		if b.search.Value() != "" {
			b.search.SetValue("")
			b.ctrl.SetFilter("")
			b.clampCursor()
		}

	case "f":
		if len(b.cfg.statusOptions) > 0 {
			b.cycleStatusFilter()
		}

	case " ":
		if rec, ok := b.cursorRecord(); ok {
			b.ctrl.Toggle(b.cfg.adapter.ID(rec))
		}

	case "a":
		b.ctrl.ToggleAll()

	case "r":
		return b.loadCmd()

	case "enter", "v":
		if rec, ok := b.cursorRecord(); ok {
			return b.openDetailCmd(b.cfg.adapter.ID(rec))
		}

	case "n":
		if b.cfg.form != nil {
			b.form = newCreateForm(b.sh, b.cfg)
			return nil
		}

	case "e":
		if b.cfg.form == nil {
			return nil
		}
		if rec, ok := b.cursorRecord(); ok {
			var cmd tea.Cmd
			b.form, cmd = newEditForm(b.sh, b.cfg, b.cfg.adapter.ID(rec))
			return cmd
		}

	case "d":
		if b.busy {
			return nil
		}
		if rec, ok := b.cursorRecord(); ok {
			b.confirm = &resource.PendingDelete{IDs: []resource.ID{b.cfg.adapter.ID(rec)}}
		}

	case "D":
		if b.busy {
			return nil
		}
		if ids := b.ctrl.Sel.IDs(); len(ids) > 0 {
			b.confirm = &resource.PendingDelete{IDs: ids}
		}
	}
	return nil
}

func (b *browseModel[T]) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	done, cmd := b.form.handleKey(msg)
	if done {
		// Cancelled; the detail copy backing the form is discarded.
		b.form = nil
		return nil
	}
	return cmd
}

func (b *browseModel[T]) cycleStatusFilter() {
	b.statusIdx = (b.statusIdx + 1) % len(b.cfg.statusOptions)
	want := b.cfg.statusOptions[b.statusIdx]
	if want == "" {
		b.ctrl.SetPredicate(nil)
	} else {
		statusOf := b.cfg.statusOf
		b.ctrl.SetPredicate(func(rec T) bool { return statusOf(rec) == want })
	}
	b.clampCursor()
}

func (b *browseModel[T]) cursorRecord() (T, bool) {
	visible := b.ctrl.List.Visible()
	if b.cursor < 0 || b.cursor >= len(visible) {
		var zero T
		return zero, false
	}
	return visible[b.cursor], true
}

func (b *browseModel[T]) clampCursor() {
	max := len(b.ctrl.List.Visible()) - 1
	if b.cursor > max {
		b.cursor = max
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
}

func (b *browseModel[T]) view(width, height int, th Theme) string {
	styles := th.Styles()

	if b.form != nil {
		return b.form.view(width, height, th)
	}
	if b.ctrl.Detail.Phase() != resource.PhaseIdle {
		return b.renderDetail(width, height, th)
	}
	if b.confirm != nil {
		return b.renderConfirm(width, height, th)
	}

	var lines []string
	lines = append(lines, b.renderToolbar(styles))
	lines = append(lines, "")

	switch {
	case b.ctrl.List.Phase() == resource.PhaseLoading && !b.ctrl.List.HasData():
		lines = append(lines, styles.Muted.Render("Loading "+b.cfg.kind+"..."))
	case b.ctrl.List.Phase() == resource.PhaseLoadError && !b.ctrl.List.HasData():
		lines = append(lines,
			styles.Danger.Render("Could not load "+b.cfg.kind),
			styles.Muted.Render(b.ctrl.List.Err().Error()),
			styles.Faint.Render("press r to retry"))
	default:
		if b.ctrl.List.Phase() == resource.PhaseLoadError {
			lines = append(lines,
				styles.Warning.Render("refresh failed, showing previous data: ")+
					styles.Muted.Render(b.ctrl.List.Err().Error()))
		}
		lines = append(lines, b.renderTable(styles, height-len(lines)-2)...)
	}

	lines = append(lines, "", b.renderStatusLine(styles))
	return strings.Join(lines, "\n")
}

func (b *browseModel[T]) renderToolbar(styles Styles) string {
	parts := []string{styles.Title.Render(b.cfg.title)}
	if b.searching || b.search.Value() != "" {
		parts = append(parts, b.search.View())
	} else {
		parts = append(parts, styles.Faint.Render("/ search"))
	}
	if len(b.cfg.statusOptions) > 0 {
		label := b.cfg.statusOptions[b.statusIdx]
		if label == "" {
			label = "all"
		}
		parts = append(parts, styles.Muted.Render("filter: ")+styles.Accent.Render(label))
	}
	return strings.Join(parts, "   ")
}

func (b *browseModel[T]) renderTable(styles Styles, maxRows int) []string {
	visible := b.ctrl.List.Visible()

	header := "    "
	for _, col := range b.cfg.columns {
		header += pad(col.title, col.width) + " "
	}
	out := []string{styles.TableHeader.Render(header)}

	if len(visible) == 0 {
		out = append(out, styles.Faint.Render("no "+b.cfg.kind+" found"))
		return out
	}

	start := 0
	if maxRows > 0 && b.cursor >= maxRows {
		start = b.cursor - maxRows + 1
	}
	for i := start; i < len(visible); i++ {
		if maxRows > 0 && i-start >= maxRows {
			break
		}
		rec := visible[i]
		id := b.cfg.adapter.ID(rec)

		marker := "[ ] "
		if b.ctrl.Sel.Has(id) {
			marker = "[x] "
		}
		line := marker
		cells := b.cfg.row(rec)
		for c, col := range b.cfg.columns {
			cell := ""
			if c < len(cells) {
				cell = cells[c]
			}
			line += pad(cell, col.width) + " "
		}

		switch {
		case i == b.cursor:
			out = append(out, styles.RowCursor.Render(line))
		case b.ctrl.Sel.Has(id):
			out = append(out, styles.Accent.Render(line))
		default:
			out = append(out, styles.Text.Render(line))
		}
	}
	return out
}

func (b *browseModel[T]) renderStatusLine(styles Styles) string {
	visible := len(b.ctrl.List.Visible())
	total := b.ctrl.List.Len()

	parts := []string{fmt.Sprintf("%d of %d %s", visible, total, b.cfg.kind)}
	if n := b.ctrl.Sel.Count(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if b.busy {
		parts = append(parts, "working...")
	}
	line := styles.Muted.Render(strings.Join(parts, " · "))

	hints := "space select · a all · v view · d delete · D delete selected · r reload"
	if b.cfg.form != nil {
		hints = "n new · e edit · " + hints
	}
	line += "\n" + styles.Faint.Render(hints)

	if b.actionErr != nil {
		line += "\n" + styles.Danger.Render("operation failed: ") + styles.Muted.Render(b.actionErr.Error())
	}
	return line
}

func (b *browseModel[T]) renderDetail(width, height int, th Theme) string {
	styles := th.Styles()

	var body string
	switch b.ctrl.Detail.Phase() {
	case resource.PhaseLoading:
		body = styles.Muted.Render("Loading record...")
	case resource.PhaseLoadError:
		body = styles.Danger.Render("Could not load record") + "\n" +
			styles.Muted.Render(b.ctrl.Detail.Err().Error())
	case resource.PhaseLoaded:
		body = strings.Join(b.cfg.detail(b.ctrl.Detail.Record()), "\n")
	}

	card := styles.Panel.Render(
		styles.Title.Render(b.cfg.title+" detail") + "\n\n" +
			body + "\n\n" +
			styles.Faint.Render("esc close"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (b *browseModel[T]) renderConfirm(width, height int, th Theme) string {
	styles := th.Styles()

	prompt := fmt.Sprintf("Delete this %s record?", strings.TrimSuffix(b.cfg.kind, "s"))
	if b.confirm.Bulk() {
		prompt = fmt.Sprintf("Delete %d selected %s?", len(b.confirm.IDs), b.cfg.kind)
	}
	card := styles.Panel.Render(
		styles.Danger.Render(prompt) + "\n\n" +
			styles.Muted.Render("this cannot be undone") + "\n\n" +
			styles.Text.Render("y confirm · n cancel"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
