package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravelworks/grumble-cli/internal/adapters/driving/tui/components/input"
	"github.com/gravelworks/grumble-cli/internal/adapters/driving/tui/messages"
	"github.com/gravelworks/grumble-cli/internal/adapters/driving/tui/styles"
	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driving"
)

// App is the REPL application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the REPL styles.
	styles *styles.Styles

	// prompt is the text input at the bottom of the screen.
	prompt *input.PromptInput

	// transcript shows past lines and scrolls.
	transcript viewport.Model

	// lines is the transcript content.
	lines []string

	// Session overrides layered on top of the persisted settings. They
	// last until the REPL exits and are never written back.
	seed   *int64
	tempo  *float64
	engine string
	voice  string

	// verbose shows per-stage timings after each utterance.
	verbose bool

	// speaking is true while a speak request is in flight.
	speaking bool

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new REPL application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		prompt:     input.NewPromptInput(s),
		transcript: viewport.New(80, 20),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.prompt.Init(),
		tea.SetWindowTitle("grumble"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.transcript.Width = msg.Width
		a.transcript.Height = max(msg.Height-6, 3)
		a.prompt.SetWidth(msg.Width)
		a.ready = true
		a.refreshTranscript()
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(a.prompt.Value())
			a.prompt.Reset()
			return a, a.submit(line)
		}

	case messages.SpeakCompleted:
		a.speaking = false
		if msg.Err != nil {
			a.appendLine(a.styles.Error.Render("error: " + msg.Err.Error()))
			return a, nil
		}
		if a.verbose {
			a.appendLine(a.styles.Muted.Render("  " + timingsLine(msg.Result.Timings)))
		}
		return a, nil

	case messages.HistoryLoaded:
		if msg.Err != nil {
			a.appendLine(a.styles.Error.Render("error: " + msg.Err.Error()))
			return a, nil
		}
		if len(msg.Utterances) == 0 {
			a.appendLine(a.styles.Muted.Render("no history"))
			return a, nil
		}
		for _, u := range msg.Utterances {
			a.appendLine(a.styles.Muted.Render(fmt.Sprintf("  %s -> %s", u.Input, u.Output)))
		}
		return a, nil

	case messages.HistoryCleared:
		if msg.Err != nil {
			a.appendLine(a.styles.Error.Render("error: " + msg.Err.Error()))
		} else {
			a.appendLine(a.styles.Muted.Render("history cleared"))
		}
		return a, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	a.prompt, cmd = a.prompt.Update(msg)
	cmds = append(cmds, cmd)

	a.transcript, cmd = a.transcript.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("grumble"))
	b.WriteString(a.styles.Muted.Render("  type text to speak it, 'help' for commands"))
	b.WriteString("\n\n")
	b.WriteString(a.transcript.View())
	b.WriteString("\n")
	b.WriteString(a.prompt.View())
	b.WriteString("\n")
	b.WriteString(a.statusBar())
	return b.String()
}

// submit handles one entered line: either a session command or text to
// speak.
func (a *App) submit(line string) tea.Cmd {
	if line == "" {
		return nil
	}

	fields := strings.Fields(line)
	keyword := strings.ToLower(fields[0])

	switch keyword {
	case "quit", "exit", "q":
		return tea.Quit

	case "help", "?":
		a.appendHelp()
		return nil

	case "seed":
		return a.setSeed(fields)

	case "tempo":
		return a.setTempo(fields)

	case "engine":
		if len(fields) != 2 {
			a.appendLine(a.styles.Error.Render("usage: engine <name>"))
			return nil
		}
		a.engine = fields[1]
		a.appendLine(a.styles.Muted.Render("engine = " + a.engine))
		return nil

	case "voice":
		if len(fields) != 2 {
			a.appendLine(a.styles.Error.Render("usage: voice <name>"))
			return nil
		}
		a.voice = fields[1]
		a.appendLine(a.styles.Muted.Render("voice = " + a.voice))
		return nil

	case "verbose":
		if len(fields) != 2 || (fields[1] != "on" && fields[1] != "off") {
			a.appendLine(a.styles.Error.Render("usage: verbose on|off"))
			return nil
		}
		a.verbose = fields[1] == "on"
		a.appendLine(a.styles.Muted.Render("verbose = " + fields[1]))
		return nil

	case "history":
		if len(fields) == 2 && fields[1] == "clear" {
			return a.clearHistoryCmd()
		}
		return a.loadHistoryCmd()
	}

	return a.speak(line)
}

// speak shows the instant rewrite preview and kicks off asynchronous
// synthesis and playback.
func (a *App) speak(text string) tea.Cmd {
	settings, err := a.sessionSettings()
	if err != nil {
		a.appendLine(a.styles.Error.Render("error: " + err.Error()))
		return nil
	}

	a.appendLine(a.styles.Normal.Render(text))
	a.appendLine(a.styles.Success.Render("  " + a.ports.Rewriter.Rewrite(text, settings.Rewrite)))
	a.speaking = true

	return func() tea.Msg {
		result, err := a.ports.Speech.Speak(a.ctx, text, driving.SpeakOptions{
			Play:     true,
			Settings: settings,
		})
		return messages.SpeakCompleted{Input: text, Result: result, Err: err}
	}
}

// sessionSettings returns the persisted settings with the session
// overrides applied. Re-reading each time picks up config file changes
// made while the REPL is running.
func (a *App) sessionSettings() (*domain.AppSettings, error) {
	settings, err := a.ports.Settings.Get()
	if err != nil {
		return nil, err
	}
	if a.seed != nil {
		settings.Rewrite.Seed = *a.seed
	}
	if a.tempo != nil {
		settings.Effects.Tempo = *a.tempo
	}
	if a.engine != "" {
		settings.Engine = a.engine
	}
	if a.voice != "" {
		settings.Voice = a.voice
	}
	return settings, nil
}

func (a *App) setSeed(fields []string) tea.Cmd {
	if len(fields) != 2 {
		a.appendLine(a.styles.Error.Render("usage: seed <number>"))
		return nil
	}
	seed, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		a.appendLine(a.styles.Error.Render("seed must be an integer"))
		return nil
	}
	a.seed = &seed
	a.appendLine(a.styles.Muted.Render("seed = " + fields[1]))
	return nil
}

func (a *App) setTempo(fields []string) tea.Cmd {
	if len(fields) != 2 {
		a.appendLine(a.styles.Error.Render("usage: tempo <multiplier>"))
		return nil
	}
	tempo, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || tempo <= 0 {
		a.appendLine(a.styles.Error.Render("tempo must be a positive number"))
		return nil
	}
	a.tempo = &tempo
	a.appendLine(a.styles.Muted.Render("tempo = " + fields[1]))
	return nil
}

func (a *App) loadHistoryCmd() tea.Cmd {
	if a.ports.History == nil {
		a.appendLine(a.styles.Muted.Render("no history"))
		return nil
	}
	return func() tea.Msg {
		utterances, err := a.ports.History.Recent(a.ctx, domain.HistoryCap)
		return messages.HistoryLoaded{Utterances: utterances, Err: err}
	}
}

func (a *App) clearHistoryCmd() tea.Cmd {
	if a.ports.History == nil {
		a.appendLine(a.styles.Muted.Render("no history"))
		return nil
	}
	return func() tea.Msg {
		return messages.HistoryCleared{Err: a.ports.History.Clear(a.ctx)}
	}
}

func (a *App) appendHelp() {
	a.appendLine(a.styles.Subtitle.Render("commands"))
	for _, line := range []string{
		"seed N          set the rewrite seed",
		"tempo X         set the speed multiplier",
		"engine NAME     switch synthesis engine",
		"voice NAME      set the engine voice",
		"verbose on|off  toggle step timings",
		"history [clear] show or clear recent utterances",
		"quit            exit",
	} {
		a.appendLine(a.styles.Help.Render("  " + line))
	}
}

// appendLine adds a line to the transcript and scrolls to the bottom.
func (a *App) appendLine(line string) {
	a.lines = append(a.lines, line)
	a.refreshTranscript()
}

func (a *App) refreshTranscript() {
	a.transcript.SetContent(strings.Join(a.lines, "\n"))
	a.transcript.GotoBottom()
}

// statusBar renders the bottom status line.
func (a *App) statusBar() string {
	parts := []string{}
	if a.engine != "" {
		parts = append(parts, "engine "+a.engine)
	}
	if a.seed != nil {
		parts = append(parts, fmt.Sprintf("seed %d", *a.seed))
	}
	if a.tempo != nil {
		parts = append(parts, fmt.Sprintf("tempo %g", *a.tempo))
	}
	if a.verbose {
		parts = append(parts, "verbose")
	}
	if a.speaking {
		parts = append(parts, "speaking...")
	}
	if len(parts) == 0 {
		parts = append(parts, "ready")
	}
	return a.styles.StatusBar.Render(strings.Join(parts, " | "))
}

// timeRound is the display precision for stage timings.
const timeRound = time.Millisecond

// timingsLine formats per-stage durations for verbose mode.
func timingsLine(t driving.StageTimings) string {
	return fmt.Sprintf("rewrite %s | synth %s | effects %s | play %s",
		t.Rewrite.Round(timeRound),
		t.Synth.Round(timeRound),
		t.Effects.Round(timeRound),
		t.Play.Round(timeRound))
}
