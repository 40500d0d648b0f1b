// Package tui is a tcell/tview pipeline inspector: load a C source file
// and see its token count, AST, three-address code, and generated
// assembly side by side, refreshed every time a new file is loaded.
//
// The panel layout — a grid of bordered TextViews plus a command input
// wired through SetDoneFunc, with F-key and Ctrl shortcuts installed via
// Application.SetInputCapture — follows
// lookbusy1344-arm_emulator/debugger/tui.go's TUI almost panel-for-panel,
// with the emulator's live register/memory/stack views replaced by
// Cleric's four pipeline stages and no running VM to single-step.
package tui

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"cleric/arena"
	"cleric/compiler"
	"cleric/driver"
)

// Inspector is the pipeline inspector's top-level state.
type Inspector struct {
	App   *tview.Application
	Pages *tview.Pages

	MainLayout *tview.Flex
	LeftPanel  *tview.Flex
	RightPanel *tview.Flex

	TokensView   *tview.TextView
	ASTView      *tview.TextView
	TACView      *tview.TextView
	AssemblyView *tview.TextView
	OutputView   *tview.TextView
	CommandInput *tview.InputField

	CurrentFile string
}

// NewInspector builds an Inspector ready to Run. It performs no I/O; call
// LoadFile (directly, or by typing a path into the command field and
// pressing Enter) to populate the panes.
func NewInspector() *Inspector {
	insp := &Inspector{App: tview.NewApplication()}
	insp.initializeViews()
	insp.buildLayout()
	insp.setupKeyBindings()
	return insp
}

func (insp *Inspector) initializeViews() {
	insp.TokensView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	insp.TokensView.SetBorder(true).SetTitle(" Tokens ")

	insp.ASTView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	insp.ASTView.SetBorder(true).SetTitle(" AST ")

	insp.TACView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	insp.TACView.SetBorder(true).SetTitle(" TAC ")

	insp.AssemblyView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	insp.AssemblyView.SetBorder(true).SetTitle(" Assembly ")

	insp.OutputView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(true)
	insp.OutputView.SetBorder(true).SetTitle(" Output ")

	insp.CommandInput = tview.NewInputField().SetLabel("file> ").SetFieldWidth(0)
	insp.CommandInput.SetBorder(true).SetTitle(" Load ")
	insp.CommandInput.SetDoneFunc(insp.handleCommand)
}

func (insp *Inspector) buildLayout() {
	insp.LeftPanel = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(insp.TokensView, 3, 0, false).
		AddItem(insp.ASTView, 0, 1, false)

	insp.RightPanel = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(insp.TACView, 0, 1, false).
		AddItem(insp.AssemblyView, 0, 1, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(insp.LeftPanel, 0, 1, false).
		AddItem(insp.RightPanel, 0, 1, false)

	insp.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 4, false).
		AddItem(insp.OutputView, 6, 0, false).
		AddItem(insp.CommandInput, 3, 0, true)

	insp.Pages = tview.NewPages().AddPage("main", insp.MainLayout, true, true)
}

func (insp *Inspector) setupKeyBindings() {
	insp.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF5:
			insp.LoadFile(insp.CurrentFile)
			return nil
		case tcell.KeyCtrlC:
			insp.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			insp.App.Draw()
			return nil
		}
		return event
	})
}

func (insp *Inspector) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	path := insp.CommandInput.GetText()
	if path != "" {
		insp.LoadFile(path)
	}
}

// LoadFile preprocesses path and runs it through each pipeline stop point
// independently, so a failure partway through (say, a semantic error)
// still leaves the earlier panes — tokens, AST — populated.
func (insp *Inspector) LoadFile(path string) {
	insp.OutputView.Clear()
	if path == "" {
		return
	}
	insp.CurrentFile = path

	iPath, err := driver.RunPreprocessor(path)
	if err != nil {
		insp.writeOutput(fmt.Sprintf("[red]preprocess error:[white] %v\n", err))
		return
	}
	defer os.Remove(iPath)

	src, err := os.ReadFile(iPath)
	if err != nil {
		insp.writeOutput(fmt.Sprintf("[red]read error:[white] %v\n", err))
		return
	}
	source := string(src)

	insp.TokensView.SetText(insp.phaseText(source, compiler.Options{LexOnly: true}, func(res compiler.Result) string {
		return fmt.Sprintf("%d tokens", res.Tokens)
	}))
	insp.ASTView.SetText(insp.phaseText(source, compiler.Options{ParseOnly: true}, func(res compiler.Result) string {
		s, err := driver.ASTDump(res)
		if err != nil {
			return err.Error()
		}
		return s
	}))
	insp.TACView.SetText(insp.phaseText(source, compiler.Options{TACOnly: true}, driver.TACDump))
	insp.AssemblyView.SetText(insp.phaseText(source, compiler.Options{}, func(res compiler.Result) string {
		return res.Asm
	}))
}

// phaseText runs source through the pipeline up to opts's stop point in a
// scratch arena, rendering the result with render, or reporting the
// failure to the output pane and returning a placeholder.
func (insp *Inspector) phaseText(source string, opts compiler.Options, render func(compiler.Result) string) string {
	a := arena.New(4 << 20)
	defer a.Destroy()

	res, err := compiler.Compile(source, opts, a)
	if err != nil {
		insp.writeOutput(fmt.Sprintf("[red]%v[white]\n", err))
		return "(failed)"
	}
	return render(res)
}

func (insp *Inspector) writeOutput(text string) {
	fmt.Fprint(insp.OutputView, text)
	insp.OutputView.ScrollToEnd()
}

// Run starts the tview event loop, focused on the command input so a file
// path can be typed immediately.
func (insp *Inspector) Run() error {
	return insp.App.SetRoot(insp.Pages, true).SetFocus(insp.CommandInput).Run()
}
