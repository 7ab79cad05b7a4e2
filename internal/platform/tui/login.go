package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazechase/internal/auth"
)

const authTimeout = 5 * time.Second

var (
	loginBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
	loginErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	loginInfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

type loginMode int

const (
	modeLogin loginMode = iota
	modeRegister
)

func (m loginMode) String() string {
	if m == modeRegister {
		return "Register"
	}
	return "Log in"
}

// LoginKeyMap defines the key bindings for the login screen.
type LoginKeyMap struct {
	Next   key.Binding
	Submit key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LoginKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LoginKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultLoginKeyMap returns default key bindings.
func DefaultLoginKeyMap() LoginKeyMap {
	return LoginKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "up", "down"),
			key.WithHelp("tab", "switch field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "log in/register"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// authResultMsg carries the outcome of a register or login attempt.
type authResultMsg struct {
	mode    loginMode
	session auth.Session
	err     error
}

// LoginModel is the credential gate shown before the game.
type LoginModel struct {
	service  *auth.Service
	inputs   []textinput.Model // username, password
	focus    int
	mode     loginMode
	busy     bool
	errMsg   string
	info     string
	session  *auth.Session
	quitting bool
	keys     LoginKeyMap
	help     help.Model
	width    int
	height   int
}

// NewLoginModel creates the login screen over service.
func NewLoginModel(service *auth.Service, width, height int) LoginModel {
	user := textinput.New()
	user.Placeholder = "username"
	user.Prompt = "User:     "
	user.CharLimit = 32
	user.Width = 24
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.Prompt = "Password: "
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	pass.CharLimit = 64
	pass.Width = 24

	return LoginModel{
		service: service,
		inputs:  []textinput.Model{user, pass},
		keys:    DefaultLoginKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
}

// Init starts the cursor blink.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the login screen.
func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case authResultMsg:
		return m.handleResult(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case m.busy:
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			m.mode = 1 - m.mode
			m.errMsg, m.info = "", ""
			return m, nil
		case key.Matches(msg, m.keys.Next):
			cmd := m.setFocus(1 - m.focus)
			return m, cmd
		case key.Matches(msg, m.keys.Submit):
			if m.focus == 0 {
				cmd := m.setFocus(1)
				return m, cmd
			}
			m.busy = true
			m.errMsg, m.info = "", ""
			cmd := m.submit()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) setFocus(i int) tea.Cmd {
	m.focus = i
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	return m.inputs[i].Focus()
}

// submit runs the auth call off the UI loop.
func (m LoginModel) submit() tea.Cmd {
	service, mode := m.service, m.mode
	user, pass := m.inputs[0].Value(), m.inputs[1].Value()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		defer cancel()
		if mode == modeRegister {
			return authResultMsg{mode: mode, err: service.Register(ctx, user, pass)}
		}
		sess, err := service.Login(ctx, user, pass)
		return authResultMsg{mode: mode, session: sess, err: err}
	}
}

func (m LoginModel) handleResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.errMsg = describeAuthError(msg.err)
		m.inputs[1].SetValue("")
		cmd := m.setFocus(1)
		return m, cmd
	}

	if msg.mode == modeRegister {
		m.mode = modeLogin
		m.info = "Account created. Log in to play."
		m.inputs[1].SetValue("")
		cmd := m.setFocus(1)
		return m, cmd
	}

	sess := msg.session
	m.session = &sess
	return m, tea.Quit
}

func describeAuthError(err error) string {
	switch {
	case errors.Is(err, auth.ErrEmptyCredentials):
		return "Username and password are required."
	case errors.Is(err, auth.ErrNotFound), errors.Is(err, auth.ErrMismatch):
		return "Invalid username or password."
	case errors.Is(err, auth.ErrAlreadyExists):
		return "That username is already taken."
	default:
		return "Could not reach the account store: " + err.Error()
	}
}

// View renders the login screen.
func (m LoginModel) View() string {
	if m.quitting || m.session != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("M A Z E C H A S E"))
	b.WriteString("\n")
	b.WriteString(menuMutedStyle.Render(m.mode.String()))
	b.WriteString("\n\n")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n\n")

	switch {
	case m.busy:
		b.WriteString(menuMutedStyle.Render("Checking..."))
	case m.errMsg != "":
		b.WriteString(loginErrStyle.Render(m.errMsg))
	case m.info != "":
		b.WriteString(loginInfoStyle.Render(m.info))
	}

	box := loginBoxStyle.Render(b.String())
	body := lipgloss.JoinVertical(lipgloss.Center, box, "", menuMutedStyle.Render(m.help.View(m.keys)))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Session returns the issued session, or nil if the user quit.
func (m LoginModel) Session() *auth.Session {
	return m.session
}

// RunLogin shows the login screen until the user logs in or quits.
// A nil session with a nil error means the user quit.
func RunLogin(service *auth.Service, width, height int) (*auth.Session, error) {
	p := tea.NewProgram(
		NewLoginModel(service, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LoginModel)
	if !ok {
		return nil, nil
	}
	return m.Session(), nil
}
