package ui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aferro/curator/internal/resource"
)

// formField describes one input on the create/edit form.
type formField[T any] struct {
	name  string
	label string

	// options switches the field from free text to a fixed set cycled
	// with left/right (the service status field).
	options []string

	// fromRecord pre-fills the field when editing.
	fromRecord func(T) string
}

// formConfig describes the create/edit form for a resource kind.
type formConfig[T any] struct {
	fields []formField[T]

	// assetLabel names the upload field when the kind carries one.
	assetLabel string
}

// formModel is the create-or-edit form. Field contents live here; the
// edit session owns the lifecycle.
type formModel[T any] struct {
	sh  *shell
	cfg browseConfig[T]

	sess   *resource.EditSession[T]
	inputs []textinput.Model
	choice []int
	asset  textinput.Model
	focus  int
}

func newCreateForm[T any](sh *shell, cfg browseConfig[T]) *formModel[T] {
	f := buildForm(sh, cfg)
	f.sess = resource.NewCreateSession[T]()
	return f
}

// newEditForm opens the form in edit mode and kicks off the prefetch of
// the current field values.
func newEditForm[T any](sh *shell, cfg browseConfig[T], id resource.ID) (*formModel[T], tea.Cmd) {
	f := buildForm(sh, cfg)
	f.sess = resource.NewEditSession[T](id)
	return f, f.populateCmd(f.sess.Token())
}

func buildForm[T any](sh *shell, cfg browseConfig[T]) *formModel[T] {
	f := &formModel[T]{sh: sh, cfg: cfg}
	for _, spec := range cfg.form.fields {
		in := textinput.New()
		in.Placeholder = spec.label
		in.CharLimit = 512
		in.Width = 48
		f.inputs = append(f.inputs, in)
		f.choice = append(f.choice, 0)
	}
	if cfg.rules.AssetField != "" {
		f.asset = textinput.New()
		f.asset.Placeholder = "path to file"
		f.asset.CharLimit = 512
		f.asset.Width = 48
	}
	f.applyFocus()
	return f
}

// fieldCount returns the number of focusable inputs including the asset
// path when the kind has one.
func (f *formModel[T]) fieldCount() int {
	n := len(f.inputs)
	if f.cfg.rules.AssetField != "" {
		n++
	}
	return n
}

func (f *formModel[T]) applyFocus() {
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	if f.cfg.rules.AssetField != "" {
		if f.focus == len(f.inputs) {
			f.asset.Focus()
		} else {
			f.asset.Blur()
		}
	}
}

func (f *formModel[T]) populateCmd(token uint64) tea.Cmd {
	ctx := f.sh.ctx
	backend := f.cfg.backend
	kind := f.cfg.kind
	id := f.sess.ID()
	return func() tea.Msg {
		rec, err := backend.Get(ctx, id)
		return populateLoadedMsg[T]{kind: kind, token: token, rec: rec, err: err}
	}
}

// handlePopulate applies the prefetch result and fills the inputs.
func (f *formModel[T]) handlePopulate(msg populateLoadedMsg[T]) {
	if !f.sess.ResolvePopulate(msg.token, msg.rec, msg.err) {
		return
	}
	if f.sess.Phase() != resource.FormPopulated {
		return
	}
	rec := f.sess.Record()
	for i, spec := range f.cfg.form.fields {
		if spec.fromRecord == nil {
			continue
		}
		value := spec.fromRecord(rec)
		if len(spec.options) > 0 {
			for c, opt := range spec.options {
				if opt == value {
					f.choice[i] = c
				}
			}
			continue
		}
		f.inputs[i].SetValue(value)
	}
}

// handleKey processes a key press. It returns true when the user cancels
// out of the form.
func (f *formModel[T]) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch f.sess.Phase() {
	case resource.FormLoading:
		return msg.String() == "esc", nil

	case resource.FormLoadError:
		switch msg.String() {
		case "esc":
			return true, nil
		case "r":
			if token := f.sess.RetryPopulate(); token != 0 {
				return false, f.populateCmd(token)
			}
		}
		return false, nil

	case resource.FormSubmitting:
		// The save is in flight; keys wait for the outcome.
		return false, nil
	}

	switch msg.String() {
	case "esc":
		return true, nil

	case "tab", "down":
		f.focus = (f.focus + 1) % f.fieldCount()
		f.applyFocus()
		return false, nil

	case "shift+tab", "up":
		f.focus = (f.focus + f.fieldCount() - 1) % f.fieldCount()
		f.applyFocus()
		return false, nil

	case "enter":
		return false, f.submitCmd()
	}

	if f.focus < len(f.inputs) {
		spec := f.cfg.form.fields[f.focus]
		if len(spec.options) > 0 {
			switch msg.String() {
			case "left", "h":
				f.choice[f.focus] = (f.choice[f.focus] + len(spec.options) - 1) % len(spec.options)
			case "right", "l", " ":
				f.choice[f.focus] = (f.choice[f.focus] + 1) % len(spec.options)
			}
			return false, nil
		}
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return false, cmd
	}

	var cmd tea.Cmd
	f.asset, cmd = f.asset.Update(msg)
	return false, cmd
}

// submitCmd snapshots the field values, moves the session into
// FormSubmitting and issues the save. The attachment file is read inside
// the command so a bad path surfaces as a submit error, not a panic.
func (f *formModel[T]) submitCmd() tea.Cmd {
	if !f.sess.BeginSubmit() {
		return nil
	}

	fields := make(map[string]string, len(f.cfg.form.fields))
	for i, spec := range f.cfg.form.fields {
		if len(spec.options) > 0 {
			fields[spec.name] = spec.options[f.choice[i]]
			continue
		}
		fields[spec.name] = strings.TrimSpace(f.inputs[i].Value())
	}

	ctx := f.sh.ctx
	exec := resource.NewExecutor(f.cfg.backend, f.cfg.rules)
	kind := f.cfg.kind
	assetField := f.cfg.rules.AssetField
	path := strings.TrimSpace(f.asset.Value())
	editing := f.sess.Editing()
	id := f.sess.ID()

	return func() tea.Msg {
		draft := resource.Draft{Fields: fields}
		if assetField != "" && path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				var zero T
				return saveDoneMsg[T]{kind: kind, editing: editing, rec: zero, err: err}
			}
			draft.Attachment = &resource.Attachment{
				Field: assetField,
				Name:  filepath.Base(path),
				Data:  data,
			}
		}

		var rec T
		var err error
		if editing {
			rec, err = exec.Update(ctx, id, draft)
		} else {
			rec, err = exec.Create(ctx, draft)
		}
		return saveDoneMsg[T]{kind: kind, editing: editing, rec: rec, err: err}
	}
}

func (f *formModel[T]) view(width, height int, th Theme) string {
	styles := th.Styles()

	title := "New " + strings.TrimSuffix(f.cfg.kind, "s")
	if f.sess.Editing() {
		title = "Edit " + strings.TrimSuffix(f.cfg.kind, "s")
	}
	lines := []string{styles.Title.Render(title), ""}

	switch f.sess.Phase() {
	case resource.FormLoading:
		lines = append(lines, styles.Muted.Render("Loading current values..."))

	case resource.FormLoadError:
		lines = append(lines,
			styles.Danger.Render("Could not load the record"),
			styles.Muted.Render(f.sess.Err().Error()),
			"",
			styles.Faint.Render("r retry · esc cancel"))

	default:
		for i, spec := range f.cfg.form.fields {
			label := pad(spec.label, 14)
			var value string
			if len(spec.options) > 0 {
				value = "< " + spec.options[f.choice[i]] + " >"
				if i == f.focus {
					value = styles.Accent.Render(value)
				} else {
					value = styles.Text.Render(value)
				}
			} else {
				value = f.inputs[i].View()
			}
			lines = append(lines, styles.Muted.Render(label)+value)
		}
		if f.cfg.rules.AssetField != "" {
			label := f.cfg.form.assetLabel
			if f.sess.Editing() {
				label += " (blank keeps current)"
			}
			lines = append(lines, styles.Muted.Render(pad(label, 14))+f.asset.View())
		}

		lines = append(lines, "")
		switch f.sess.Phase() {
		case resource.FormSubmitting:
			lines = append(lines, styles.Warning.Render("Saving..."))
		case resource.FormSubmitError:
			lines = append(lines, styles.Danger.Render("Save failed: ")+styles.Muted.Render(f.sess.Err().Error()))
		}
		lines = append(lines, styles.Faint.Render("enter save · tab next field · esc cancel"))
	}

	card := styles.Panel.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
