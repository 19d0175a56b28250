package cli

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/virtkbd/internal/command"
	"github.com/dshills/virtkbd/internal/engine"
	"github.com/dshills/virtkbd/internal/keymap"
	"github.com/dshills/virtkbd/internal/logging"
)

// recentHandler keeps the tail of the session log for the status view.
type recentHandler struct {
	max   int
	lines []string
}

func (h *recentHandler) Handle(text string) error {
	h.lines = append(h.lines, text)
	if len(h.lines) > h.max {
		h.lines = h.lines[len(h.lines)-h.max:]
	}
	return nil
}

func interactiveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Drive the simulated keyboard from the terminal",
		Long: `Open a terminal session where every typed key is dispatched
through the configured bindings. Ctrl+Z undoes, Ctrl+Y redoes,
Esc quits. External edits to the binding document are picked up live.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}

			// The console sink would fight the terminal UI; log to the
			// status view instead, keeping the durable sink if any.
			recent := &recentHandler{max: 12}
			log := logging.New(nil, recent)
			if a.cfg.Logging.File != "" {
				log.AddHandler(&logging.FilteredHandler{
					Filters: fileFilters(a.cfg.Logging),
					Handler: logging.NewFileHandler(a.cfg.Logging.File),
				})
			}

			registry := command.NewRegistry()
			command.RegisterDefaults(registry)
			store := keymap.NewStore(a.cfg.Paths.Bindings)
			kb := engine.New(store, registry, log)

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initializing screen: %w", err)
			}
			defer screen.Fini()

			// Reloads are funneled through the event loop so the engine
			// stays single-threaded.
			watcher, err := store.Watch(func(map[string]command.Descriptor, error) {
				_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
			})
			if err != nil {
				log.Logf("error: %v", err)
			} else {
				defer watcher.Close()
			}

			for {
				drawSession(screen, kb, recent.lines)

				switch ev := screen.PollEvent().(type) {
				case *tcell.EventKey:
					switch {
					case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
						return nil
					case ev.Key() == tcell.KeyCtrlZ:
						kb.Undo()
					case ev.Key() == tcell.KeyCtrlY:
						kb.Redo()
					case ev.Key() == tcell.KeyRune:
						kb.Press(string(ev.Rune()))
					default:
						kb.Press(ev.Name())
					}
				case *tcell.EventInterrupt:
					kb.Reload()
				case *tcell.EventResize:
					screen.Sync()
				}
			}
		},
	}
}

func drawSession(screen tcell.Screen, kb *engine.Keyboard, tail []string) {
	screen.Clear()
	st := kb.State()

	bold := tcell.StyleDefault.Bold(true)
	plain := tcell.StyleDefault
	dim := tcell.StyleDefault.Dim(true)

	drawLine(screen, 0, 0, bold, "virtkbd  (Ctrl+Z undo, Ctrl+Y redo, Esc quit)")
	drawLine(screen, 0, 2, plain, fmt.Sprintf("output: %q  cursor: %d", st.Text, st.Cursor))
	drawLine(screen, 0, 3, plain, fmt.Sprintf("volume: %d%%  media: %v", st.Volume, st.MediaRunning))
	drawLine(screen, 0, 4, plain, fmt.Sprintf("history: %d undo / %d redo", kb.UndoCount(), kb.RedoCount()))

	drawLine(screen, 0, 6, bold, "log")
	for i, line := range tail {
		drawLine(screen, 0, 7+i, dim, line)
	}
	screen.Show()
}

func drawLine(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
