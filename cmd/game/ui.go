package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/room-engine/pkg/state"
)

const PlaceHolderText = "Enter an action word..."

// awaiting tracks what kind of input the engine is parked on.
type awaiting int

const (
	awaitNone awaiting = iota
	awaitLine          // engine wants a command line
	awaitAck           // engine wants an empty line (press Enter)
)

// GameUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type GameUI struct {
	pres         *teaPresenter
	title        string
	gameViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int

	transcript []string // raw, unwrapped lines; re-wrapped on resize
	gs         *state.GameState
	sceneRef   string
	awaiting   awaiting
	finished   bool

	// Quit confirmation state
	showQuitModal bool
}

var (
	gamePanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

func newGameUI(pres *teaPresenter, title string) GameUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	gameVp := viewport.New(50, 20)
	gameVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return GameUI{
		pres:         pres,
		title:        title,
		textarea:     ta,
		gameViewport: gameVp,
		metaViewport: metaVp,
	}
}

func (m GameUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m GameUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.gameViewport, vpCmd = m.gameViewport.Update(msg)
		m.textarea, tiCmd = m.textarea.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		gameWidth := int(float64(m.width)*0.75) - 4
		metaWidth := m.width - gameWidth - 6

		m.gameViewport.Width = gameWidth - 2
		m.gameViewport.Height = m.height - 7
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(gameWidth - 4)

		m.ready = true
		m.writeGameContent()
		m.writeMetadata()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			if m.finished {
				return m, tea.Quit
			}
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			return m.handleEnter()
		}

	case displayMsg:
		m.transcript = append(m.transcript, msg.lines...)
		m.writeGameContent()

	case imageMsg:
		m.sceneRef = msg.ref
		m.writeMetadata()

	case promptMsg:
		m.awaiting = awaitLine

	case ackMsg:
		m.awaiting = awaitAck
		m.transcript = append(m.transcript, promptRender("[Press the Enter key to continue.]"), "")
		m.writeGameContent()

	case stateChangedMsg:
		gs := msg.gs
		m.gs = &gs
		m.writeMetadata()

	case engineDoneMsg:
		m.finished = true
		m.awaiting = awaitNone
		m.transcript = append(m.transcript, "", promptRender("[The story has ended. Press Enter to leave.]"))
		m.writeGameContent()
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.gameViewport, vpCmd = m.gameViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m GameUI) handleEnter() (tea.Model, tea.Cmd) {
	if m.finished {
		return m, tea.Quit
	}

	input := strings.TrimSpace(m.textarea.Value())

	if strings.HasPrefix(input, "/") {
		return m.handleCommand(input)
	}

	switch m.awaiting {
	case awaitAck:
		m.textarea.Reset()
		if input == "" {
			m.awaiting = awaitNone
			m.pres.ackCh <- struct{}{}
			return m, nil
		}
		m.transcript = append(m.transcript, promptRender("[Invalid entry, please press the Enter key to continue.]"), "")
		m.writeGameContent()
		return m, nil

	case awaitLine:
		if input == "" {
			return m, nil
		}
		m.textarea.Reset()
		m.awaiting = awaitNone
		m.transcript = append(m.transcript, playerStyle.Render("> "+input), "")
		m.writeGameContent()
		m.pres.inputCh <- input
		return m, nil
	}

	return m, nil
}

func (m GameUI) handleCommand(input string) (tea.Model, tea.Cmd) {
	cmd := strings.ToLower(strings.TrimSpace(input))

	switch cmd {
	case "/help":
		helpText := `
Commands:
• /help - Show this help
• /copy - Copy the transcript to the clipboard
• Ctrl+C - Quit game

How to play:
• Type an action word and press Enter
• GO <direction> moves between rooms
• MENU lists your available actions
`
		m.transcript = append(m.transcript, titleStyle.Render("Help:")+helpText)
		m.writeGameContent()

	case "/copy":
		if err := clipboard.WriteAll(strings.Join(m.transcript, "\n")); err != nil {
			m.transcript = append(m.transcript, noticeStyle.Render(fmt.Sprintf("Copy failed: %v", err)), "")
		} else {
			m.transcript = append(m.transcript, noticeStyle.Render("Transcript copied to clipboard."), "")
		}
		m.writeGameContent()
	}

	m.textarea.Reset()
	return m, nil
}

// writeGameContent re-renders the transcript for the current viewport
// width. Raw lines are kept unwrapped so a resize can reflow everything.
func (m *GameUI) writeGameContent() {
	gameWidth := m.gameViewport.Width - 6

	var content strings.Builder
	content.WriteString(titleStyle.Render(strings.ToUpper(m.title)) + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(gameWidth-6, 1))) + "\n\n")

	for _, line := range m.transcript {
		content.WriteString(wordwrap.String(line, max(gameWidth-2, 10)) + "\n")
	}

	m.gameViewport.SetContent(content.String())
	m.gameViewport.GotoBottom()
}

func (m *GameUI) writeMetadata() {
	var content strings.Builder
	content.WriteString(titleStyle.Render("GAME STATE") + "\n\n")

	if m.gs == nil {
		content.WriteString("Waking up...\n")
		m.metaViewport.SetContent(content.String())
		return
	}

	content.WriteString("Session:\n")
	content.WriteString(m.gs.ID.String()[:8] + "...\n\n")

	content.WriteString("World:\n")
	content.WriteString(m.gs.World + "\n\n")

	content.WriteString("Location:\n")
	content.WriteString(m.gs.Location + "\n\n")

	content.WriteString("Turns:\n")
	content.WriteString(fmt.Sprintf("%d\n\n", m.gs.Turns))

	content.WriteString("Inventory:\n")
	if len(m.gs.Inventory) == 0 {
		content.WriteString("Empty\n")
	} else {
		for _, it := range m.gs.Inventory {
			content.WriteString("• " + it + "\n")
		}
	}
	content.WriteString("\n")

	content.WriteString("Storage box:\n")
	if len(m.gs.Stored) == 0 {
		content.WriteString("Empty\n")
	} else {
		for _, it := range m.gs.Stored {
			content.WriteString("• " + it + "\n")
		}
	}
	content.WriteString("\n")

	if m.sceneRef != "" {
		content.WriteString("Scene:\n")
		content.WriteString(narratorStyle.Render(m.sceneRef) + "\n\n")
	}

	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• /help: Help\n")
	content.WriteString("• /copy: Copy transcript\n")

	m.metaViewport.SetContent(content.String())
}

func (m GameUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			m.pres.release()
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				m.pres.release()
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m GameUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to abandon your escape?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m GameUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	gameWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - gameWidth - 6

	gamePanel := gamePanelStyle.Width(gameWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.gameViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(gameWidth-4, 1))),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, gamePanel, metaPanel)
}

func promptRender(s string) string {
	return promptStyle.Render(s)
}
