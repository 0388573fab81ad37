package tui

import (
	"encoding/json"
	"strings"

	"github.com/dshills/goterm"
	"github.com/tidwall/gjson"

	"github.com/dshills/flowcanvas/pkg/dialog"
	"github.com/dshills/flowcanvas/pkg/editor"
	"github.com/dshills/flowcanvas/pkg/flow"
)

// fieldKind controls how a form field's text is encoded into the payload.
type fieldKind int

const (
	fieldText fieldKind = iota
	// fieldList encodes comma-separated text as a string array.
	fieldList
	// fieldReadOnly renders but never encodes.
	fieldReadOnly
)

// formField is one editable line in a configuration form.
type formField struct {
	name  string // payload key, dotted for nested values
	label string
	kind  fieldKind
	value string
}

// kindFields returns the field layout for a dialog kind.
func kindFields(kind editor.ModalKind) []formField {
	switch kind {
	case editor.ModalKindInput:
		return []formField{
			{name: "source", label: "Source"},
			{name: "description", label: "Description"},
		}
	case editor.ModalKindProcess:
		return []formField{
			{name: "description", label: "Description"},
		}
	case editor.ModalKindOutput:
		return []formField{
			{name: "destination", label: "Destination"},
			{name: "description", label: "Description"},
		}
	case editor.ModalKindApproval:
		return []formField{
			{name: "approvers", label: "Approvers", kind: fieldList},
			{name: "description", label: "Description"},
		}
	case editor.ModalKindEmail:
		return []formField{
			{name: "label", label: "Label"},
			{name: "recipients", label: "Recipients", kind: fieldList},
			{name: "subject", label: "Subject"},
			{name: "body", label: "Body"},
			{name: "credentialKey", label: "Credential Key"},
		}
	case editor.ModalKindSign:
		return []formField{
			{name: "signer", label: "Signer"},
			{name: "description", label: "Description"},
		}
	case editor.ModalKindTeamApproval:
		return []formField{
			{name: "teamMembers", label: "Team Members", kind: fieldList},
			{name: "description", label: "Description"},
			{name: "outcomes.approve", label: "Approve Outcome"},
			{name: "outcomes.deny", label: "Deny Outcome"},
		}
	case editor.ModalKindCondition:
		return []formField{
			{name: "condition", label: "Condition"},
			{name: "description", label: "Description"},
		}
	case editor.ModalKindBranch:
		return []formField{
			{name: "branches", label: "Branch Labels", kind: fieldList},
		}
	case editor.ModalKindPDF:
		return []formField{
			{name: "fileName", label: "File", kind: fieldReadOnly},
			{name: "description", label: "Description", kind: fieldReadOnly},
		}
	default:
		return nil
	}
}

// ConfigForm is the keyboard-driven configuration dialog for one node. It
// edits the fields for the node's dialog kind and submits the encoded payload
// through the dispatcher, after validation. The dialog never touches the
// graph itself.
type ConfigForm struct {
	session    *editor.ModalSession
	dispatcher *editor.Dispatcher
	validator  *dialog.Validator
	branches   []flow.Branch
	fields     []formField
	focused    int
	errText    string
	visible    bool
}

// NewConfigForm opens a form for a modal session, prefilled from the node's
// current configuration.
func NewConfigForm(session *editor.ModalSession, dispatcher *editor.Dispatcher, validator *dialog.Validator) *ConfigForm {
	f := &ConfigForm{
		session:    session,
		dispatcher: dispatcher,
		validator:  validator,
		fields:     kindFields(session.Kind),
		visible:    true,
	}
	f.prefill()
	return f
}

// prefill seeds field values from the node's stored configuration.
func (f *ConfigForm) prefill() {
	current := gjson.ParseBytes(f.session.Current)
	for i := range f.fields {
		field := &f.fields[i]
		if f.session.Kind == editor.ModalKindBranch && field.name == "branches" {
			f.branches = decodeFormBranches(f.session.Current)
			field.value = branchLabels(f.branches)
			continue
		}
		raw := current.Get(field.name)
		if field.kind == fieldList && raw.IsArray() {
			var parts []string
			for _, item := range raw.Array() {
				parts = append(parts, item.String())
			}
			field.value = strings.Join(parts, ", ")
			continue
		}
		field.value = raw.String()
	}
}

func decodeFormBranches(data []byte) []flow.Branch {
	raw := gjson.GetBytes(data, "branches")
	if !raw.IsArray() {
		return flow.DefaultBranches()
	}
	var branches []flow.Branch
	if err := json.Unmarshal([]byte(raw.Raw), &branches); err != nil || len(branches) == 0 {
		return flow.DefaultBranches()
	}
	return branches
}

func branchLabels(branches []flow.Branch) string {
	labels := make([]string, len(branches))
	for i, b := range branches {
		labels[i] = b.Label
	}
	return strings.Join(labels, ", ")
}

// IsVisible returns whether the form is open.
func (f *ConfigForm) IsVisible() bool {
	return f.visible
}

// payload encodes the current field values as the dialog payload.
func (f *ConfigForm) payload() (json.RawMessage, error) {
	values := map[string]any{}
	for _, field := range f.fields {
		if field.kind == fieldReadOnly {
			continue
		}
		if f.session.Kind == editor.ModalKindBranch && field.name == "branches" {
			values["branches"] = f.editedBranches(field.value)
			continue
		}
		switch field.kind {
		case fieldList:
			values[field.name] = splitList(field.value)
		default:
			setNested(values, field.name, field.value)
		}
	}
	return json.Marshal(values)
}

// editedBranches maps the comma-separated labels back onto the branch list.
// Existing branches keep their IDs positionally; added labels get fresh ones.
func (f *ConfigForm) editedBranches(text string) []flow.Branch {
	labels := splitList(text)
	branches := f.branches
	result := make([]flow.Branch, 0, len(labels))
	for i, label := range labels {
		if i < len(branches) {
			result = append(result, flow.Branch{ID: branches[i].ID, Label: label})
			continue
		}
		result = flow.AddBranch(result)
		result[len(result)-1].Label = label
	}
	if len(result) == 0 {
		result = flow.DefaultBranches()
	}
	return result
}

func splitList(text string) []string {
	var parts []string
	for _, p := range strings.Split(text, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// setNested stores a value under a dotted key path.
func setNested(values map[string]any, name, value string) {
	parts := strings.Split(name, ".")
	for len(parts) > 1 {
		child, ok := values[parts[0]].(map[string]any)
		if !ok {
			child = map[string]any{}
			values[parts[0]] = child
		}
		values = child
		parts = parts[1:]
	}
	values[parts[0]] = value
}

// Save validates and submits the form. On success the form closes; on
// validation failure it stays open showing the error.
func (f *ConfigForm) Save() bool {
	data, err := f.payload()
	if err != nil {
		f.errText = err.Error()
		return false
	}
	if f.validator != nil {
		if err := f.validator.Validate(f.session.Kind, data); err != nil {
			f.errText = err.Error()
			return false
		}
	}
	if !f.dispatcher.SaveRaw(f.session.Ticket, data) {
		// Session replaced while the form was open; nothing to keep alive.
		f.visible = false
		return false
	}
	f.visible = false
	return true
}

// Cancel closes the form without saving.
func (f *ConfigForm) Cancel() {
	f.dispatcher.Cancel(f.session.Ticket)
	f.visible = false
}

// HandleKey handles keyboard input for the form.
// Returns true if the key was handled.
func (f *ConfigForm) HandleKey(key string) bool {
	if !f.visible {
		return false
	}

	switch key {
	case "Esc", "Escape":
		f.Cancel()
		return true
	case "Enter":
		f.Save()
		return true
	case "Tab", "Down":
		f.focused = (f.focused + 1) % len(f.fields)
		return true
	case "Up":
		f.focused--
		if f.focused < 0 {
			f.focused = len(f.fields) - 1
		}
		return true
	case "Backspace":
		field := &f.fields[f.focused]
		if field.kind != fieldReadOnly && field.value != "" {
			field.value = field.value[:len(field.value)-1]
		}
		return true
	}

	if len(key) == 1 {
		field := &f.fields[f.focused]
		if field.kind != fieldReadOnly {
			field.value += key
			f.errText = ""
		}
		return true
	}
	return false
}

// Render draws the form centered on the screen.
func (f *ConfigForm) Render(screen *goterm.Screen) {
	if !f.visible || screen == nil {
		return
	}

	width := 60
	height := len(f.fields)*2 + 6
	sw, sh := screen.Size()
	x := (sw - width) / 2
	y := (sh - height) / 2

	fg := goterm.ColorRGB(220, 220, 220)
	bg := goterm.ColorRGB(30, 30, 30)
	borderFg := goterm.ColorRGB(150, 150, 200)
	focusBg := goterm.ColorRGB(58, 58, 58)
	errFg := goterm.ColorRGB(239, 68, 68)

	drawBox(screen, x, y, width, height, borderFg, bg)

	title := " Configure " + string(f.session.NodeType) + " "
	for i, ch := range title {
		if 2+i < width-1 {
			screen.SetCell(x+2+i, y, goterm.NewCell(ch, fg, goterm.ColorRGB(40, 80, 120), goterm.StyleBold))
		}
	}

	row := y + 2
	for i, field := range f.fields {
		lineBg := bg
		if i == f.focused {
			lineBg = focusBg
		}
		line := field.label + ": " + field.value
		if field.kind == fieldReadOnly {
			line = field.label + ": " + field.value + " (read-only)"
		}
		if len(line) > width-4 {
			line = line[:width-7] + "..."
		}
		for j := 1; j < width-1; j++ {
			ch := ' '
			if j-2 >= 0 && j-2 < len(line) {
				ch = rune(line[j-2])
			}
			screen.SetCell(x+j, row, goterm.NewCell(ch, fg, lineBg, goterm.StyleNone))
		}
		row += 2
	}

	if f.errText != "" {
		msg := f.errText
		if len(msg) > width-4 {
			msg = msg[:width-7] + "..."
		}
		for j, ch := range msg {
			screen.SetCell(x+2+j, y+height-2, goterm.NewCell(ch, errFg, bg, goterm.StyleNone))
		}
	}
}
