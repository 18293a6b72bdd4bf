// Package tui is the terminal transport: a chat-style Bubble Tea program
// that turns keystrokes into engine events and renders outcomes as a
// tutor conversation.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pytutor/internal/certificate"
	"github.com/abhisek/pytutor/internal/coach"
	"github.com/abhisek/pytutor/internal/curriculum"
	"github.com/abhisek/pytutor/internal/dispatch"
	"github.com/abhisek/pytutor/internal/engine"
)

// Deps are the collaborators the chat model drives.
type Deps struct {
	Dispatcher  *dispatch.Dispatcher
	Catalog     *curriculum.Catalog
	Coach       *coach.Service
	Issuer      *certificate.Issuer
	UserID      string
	DisplayName string
}

type role int

const (
	roleTutor role = iota
	roleStudent
	roleSystem
)

type chatLine struct {
	role role
	text string
}

// outcomeMsg carries the engine's response back into the update loop.
// submitted is the answer text when the event was a quiz submission.
type outcomeMsg struct {
	out       engine.Outcome
	submitted string
	err       error
}

// coachMsg carries asynchronous coach prose.
type coachMsg struct {
	text string
	err  error
}

// Model is the root Bubble Tea model.
type Model struct {
	deps Deps

	input      textinput.Model
	transcript []chatLine
	choices    []engine.Choice
	state      engine.State
	waiting    bool

	width  int
	height int
	scroll int
}

// New creates the chat model.
func New(deps Deps) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a number, an answer, or a question..."
	ti.Focus()

	return Model{
		deps:  deps,
		input: ti,
		state: engine.StateNotStarted,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.input.Focus(),
		m.dispatch(engine.Begin{DisplayName: m.deps.DisplayName}, ""),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case outcomeMsg:
		return m.handleOutcome(msg)

	case coachMsg:
		m.waiting = false
		if msg.err != nil {
			m.transcript = append(m.transcript, chatLine{roleSystem, "The coach is unavailable right now. Try again in a moment."})
			return m, nil
		}
		m.transcript = append(m.transcript, chatLine{roleTutor, msg.text})
		m.scroll = 0
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			return m.handleSubmit()
		case "pgup":
			m.scroll++
			return m, nil
		case "pgdown":
			if m.scroll > 0 {
				m.scroll--
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSubmit routes the input line: a number picks a choice, other text
// becomes an answer while a quiz is open and a coach question otherwise.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.waiting {
		return m, nil
	}
	m.input.SetValue("")
	m.transcript = append(m.transcript, chatLine{roleStudent, text})
	m.scroll = 0

	if ev, ok := parseCommand(text); ok {
		return m, m.dispatch(ev, "")
	}

	if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(m.choices) {
		chosen := m.choices[n-1].Event
		submitted := ""
		if sa, ok := chosen.(engine.SubmitAnswer); ok {
			submitted = sa.Text
		}
		return m, m.dispatch(chosen, submitted)
	}

	if m.state == engine.StateAwaitingAnswer {
		return m, m.dispatch(engine.SubmitAnswer{Text: text}, text)
	}

	return m, m.ask(text)
}

func (m Model) handleOutcome(msg outcomeMsg) (tea.Model, tea.Cmd) {
	m.waiting = false

	if msg.err != nil {
		m.transcript = append(m.transcript, chatLine{roleSystem, adviseError(msg.err)})
		return m, nil
	}
	out := msg.out

	m.transcript = append(m.transcript, chatLine{roleTutor, out.Text})
	m.state = out.State
	m.choices = out.Choices
	m.scroll = 0

	if out.Artifact != nil && m.deps.Issuer != nil {
		cert := m.deps.Issuer.Issue(*out.Artifact)
		m.transcript = append(m.transcript, chatLine{roleSystem, certificate.Render(cert)})
	}

	// A graded, incorrect submission gets a coach explanation on top of
	// the engine's canned feedback.
	if msg.submitted != "" && out.Rejection == engine.RejectNone && out.State == engine.StateViewingLesson {
		return m, m.explain(out.LessonID, msg.submitted)
	}
	return m, nil
}

// dispatch runs one engine event off the update loop.
func (m Model) dispatch(ev engine.Event, submitted string) tea.Cmd {
	d := m.deps.Dispatcher
	userID := m.deps.UserID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		out, err := d.Handle(ctx, userID, ev)
		return outcomeMsg{out: out, submitted: submitted, err: err}
	}
}

func (m Model) ask(question string) tea.Cmd {
	c := m.deps.Coach
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		text, err := c.Ask(ctx, question)
		return coachMsg{text: text, err: err}
	}
}

func (m Model) explain(lessonID, submitted string) tea.Cmd {
	unit, err := m.deps.Catalog.Get(lessonID)
	if err != nil {
		return nil
	}
	c := m.deps.Coach
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		text, err := c.Explain(ctx, coach.ExplainInput{Lesson: unit, Submitted: submitted})
		return coachMsg{text: text, err: err}
	}
}

// parseCommand maps slash commands onto engine events.
func parseCommand(text string) (engine.Event, bool) {
	switch strings.ToLower(text) {
	case "/restart":
		return engine.Begin{}, true
	case "/quiz":
		return engine.StartQuiz{}, true
	case "/prev":
		return engine.ViewPrevious{}, true
	case "/stats":
		return engine.RequestStats{}, true
	case "/certificate":
		return engine.RequestCertificate{}, true
	default:
		return nil, false
	}
}

// adviseError turns infrastructure errors into advisory chat text.
func adviseError(err error) string {
	switch {
	case errors.Is(err, engine.ErrBusy):
		return "One moment — I'm still working on your last request."
	case errors.Is(err, engine.ErrStorageUnavailable):
		return "I couldn't save your progress just now. Nothing was lost; please try that again."
	default:
		return fmt.Sprintf("Something went wrong: %v", err)
	}
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(New(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
