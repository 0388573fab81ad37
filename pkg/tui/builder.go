package tui

import (
	"encoding/json"
	"fmt"

	"github.com/dshills/goterm"

	"github.com/dshills/flowcanvas/pkg/dialog"
	"github.com/dshills/flowcanvas/pkg/editor"
	"github.com/dshills/flowcanvas/pkg/flow"
)

// builderMode tracks which input layer owns the keyboard.
type builderMode int

const (
	modeNormal builderMode = iota
	modePalette
	modeConnect
)

// Builder is the canvas editing view: the node palette on demand, the canvas
// in the middle, live statistics on the right, and the dialogs layered on
// top. All gestures are translated into editing-session operations; the view
// renders whatever the session's graph holds.
type Builder struct {
	session   *editor.Editor
	validator *dialog.Validator
	canvas    *Canvas
	palette   *Palette
	stats     *StatsPanel

	mode          builderMode
	cursor        flow.Position
	connectSource string
	form          *ConfigForm
	modal         interface {
		Render(*goterm.Screen)
		HandleKey(string) bool
		IsVisible() bool
	}
	status string
}

// NewBuilder creates the builder view around an editing session.
func NewBuilder(session *editor.Editor, validator *dialog.Validator) *Builder {
	b := &Builder{
		session:   session,
		validator: validator,
		palette:   NewPalette(session.Registry()),
		stats:     NewStatsPanel(),
		cursor:    flow.Position{X: 250, Y: 100},
	}
	b.canvas = NewCanvas(session.Graph(), session.Viewport)
	session.OnStats(b.stats.Update)
	return b
}

// Session returns the underlying editing session.
func (b *Builder) Session() *editor.Editor {
	return b.session
}

// Status returns the current status line text.
func (b *Builder) Status() string {
	return b.status
}

// Render draws the full view.
func (b *Builder) Render(screen *goterm.Screen) error {
	width, height := screen.Size()

	statsWidth := 24
	canvasWidth := width - statsWidth
	b.canvas.Render(screen, 0, 0, canvasWidth, height-1)
	b.stats.Render(screen, canvasWidth, 0, statsWidth, height-1)

	if b.palette.IsVisible() {
		b.palette.Render(screen, 2, 1, 50, 16)
	}
	if b.form != nil && b.form.IsVisible() {
		b.form.Render(screen)
	}
	if b.modal != nil && b.modal.IsVisible() {
		b.modal.Render(screen)
	}

	b.renderStatusBar(screen, width, height)
	return nil
}

func (b *Builder) renderStatusBar(screen *goterm.Screen, width, height int) {
	text := b.status
	if text == "" {
		text = "a:add step  c:connect  Enter:configure  x:clear  Tab:select  q:quit"
	}
	fg := goterm.ColorRGB(180, 180, 180)
	bg := goterm.ColorRGB(30, 30, 30)
	for i := 0; i < width; i++ {
		ch := ' '
		if i < len(text) {
			ch = rune(text[i])
		}
		screen.SetCell(i, height-1, goterm.NewCell(ch, fg, bg, goterm.StyleNone))
	}
}

// HandleKey routes a key press to the active input layer.
func (b *Builder) HandleKey(key string) error {
	if b.modal != nil && b.modal.IsVisible() {
		b.modal.HandleKey(key)
		return nil
	}
	if b.form != nil && b.form.IsVisible() {
		b.form.HandleKey(key)
		return nil
	}

	switch b.mode {
	case modePalette:
		return b.handlePaletteKey(key)
	case modeConnect:
		return b.handleConnectKey(key)
	default:
		return b.handleNormalKey(key)
	}
}

func (b *Builder) handleNormalKey(key string) error {
	switch key {
	case "a":
		b.palette.Show()
		b.mode = modePalette
	case "c":
		if b.canvas.Selected() == "" {
			b.status = "select a source node first (Tab)"
			return nil
		}
		b.connectSource = b.canvas.Selected()
		b.mode = modeConnect
		b.status = "connect: Tab to pick target, Enter to connect, Esc to cancel"
	case "x":
		b.requestClear()
	case "Enter":
		b.openConfig()
	case "Tab":
		b.selectNext()
	case "Left":
		b.session.SetViewport(b.session.Viewport().Pan(-cellScaleX, 0))
	case "Right":
		b.session.SetViewport(b.session.Viewport().Pan(cellScaleX, 0))
	case "Up":
		b.session.SetViewport(b.session.Viewport().Pan(0, -cellScaleY))
	case "Down":
		b.session.SetViewport(b.session.Viewport().Pan(0, cellScaleY))
	}
	return nil
}

func (b *Builder) handlePaletteKey(key string) error {
	switch key {
	case "Esc", "Escape":
		b.palette.Hide()
		b.mode = modeNormal
	case "Up":
		b.palette.Previous()
	case "Down":
		b.palette.Next()
	case "Backspace":
		b.palette.BackspaceFilter()
	case "Enter":
		b.dropSelected()
	default:
		if len(key) == 1 {
			b.palette.AppendFilter(rune(key[0]))
		}
	}
	return nil
}

// dropSelected places the palette's highlighted type at the drop cursor,
// going through the same drag-drop path a pointer gesture would.
func (b *Builder) dropSelected() {
	cfg, ok := b.palette.Selected()
	if !ok {
		return
	}

	ev := editor.DragOverEvent{}
	b.session.Bridge().OnDragOver(&ev)
	if !ev.Accepted {
		return
	}

	node := b.session.Bridge().OnDrop(string(cfg.Type), b.cursor)
	b.palette.Hide()
	b.mode = modeNormal
	if node == nil {
		b.status = "could not add step"
		return
	}
	b.canvas.Select(node.ID)
	b.cursor.X += 40
	b.cursor.Y += 120
	b.status = fmt.Sprintf("added %s", node.Data.Label)
}

func (b *Builder) handleConnectKey(key string) error {
	switch key {
	case "Esc", "Escape":
		b.mode = modeNormal
		b.status = ""
	case "Tab":
		b.selectNext()
	case "Enter":
		target := b.canvas.Selected()
		b.mode = modeNormal
		b.status = ""
		b.session.Connector().Connect(editor.Connection{
			Source: b.connectSource,
			Target: target,
		})
		if b.session.Connector().State() == editor.StateAwaitingLabel {
			b.promptEdgeLabel()
		}
	}
	return nil
}

// promptEdgeLabel opens the Approval/Deny choice for a pending team-approval
// connection.
func (b *Builder) promptEdgeLabel() {
	b.modal = newEdgeLabelModal(func(confirmed bool, label string) {
		b.modal = nil
		if !confirmed {
			b.session.Connector().CancelLabel()
			return
		}
		if err := dialog.ValidateEdgeLabel(label); err != nil {
			b.session.Connector().CancelLabel()
			b.status = err.Error()
			return
		}
		b.session.Connector().ChooseLabel(label)
	})
}

// selectNext cycles the canvas selection through the graph's nodes.
func (b *Builder) selectNext() {
	nodes := b.session.Graph().Nodes()
	if len(nodes) == 0 {
		return
	}
	current := b.canvas.Selected()
	for i, n := range nodes {
		if n.ID == current {
			b.canvas.Select(nodes[(i+1)%len(nodes)].ID)
			return
		}
	}
	b.canvas.Select(nodes[0].ID)
}

// openConfig opens the configuration dialog for the selected node.
func (b *Builder) openConfig() {
	nodeID := b.canvas.Selected()
	if nodeID == "" {
		return
	}
	session, ok := b.session.NodeClick(nodeID)
	if !ok {
		return
	}
	b.form = NewConfigForm(session, b.session.Dispatcher(), b.validator)
}

// requestClear opens the clear-canvas confirmation.
func (b *Builder) requestClear() {
	b.session.RequestClear()
	b.modal = newClearModal(func(confirmed bool) {
		b.modal = nil
		if confirmed {
			b.session.ConfirmClear()
			b.canvas.Select("")
			b.status = "canvas cleared"
			return
		}
		b.session.CancelClear()
	})
}

// ExportGraph returns the graph serialized as JSON, for saving or debugging.
func (b *Builder) ExportGraph() ([]byte, error) {
	snapshot := struct {
		Nodes []*flow.GraphNode `json:"nodes"`
		Edges []*flow.GraphEdge `json:"edges"`
	}{
		Nodes: b.session.Graph().Nodes(),
		Edges: b.session.Graph().Edges(),
	}
	return json.MarshalIndent(snapshot, "", "  ")
}
