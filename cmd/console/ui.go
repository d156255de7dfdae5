package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/ventureworks/hustle-engine/pkg/state"
)

const PlaceHolderText = "Type a command (help for a list)..."

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config       *ConsoleConfig
	client       *http.Client
	gameState    *state.GameState
	logViewport  viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error
	loading      bool

	// transcript holds every narration line of this session; the server
	// only returns the messages for the last command.
	transcript []string

	showQuitModal bool
}

type commandResultMsg struct {
	response *CommandResponse
	err      error
}

type gameStateMsg struct {
	gameState *state.GameState
	err       error
}

type clipboardDoneMsg struct {
	err error
}

var (
	logPanelStyle = lipgloss.NewStyle().
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

	narrationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
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

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client, gs *state.GameState) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	logVp := viewport.New(50, 20)
	logVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:       cfg,
		client:       client,
		gameState:    gs,
		textarea:     ta,
		logViewport:  logVp,
		metaViewport: metaVp,
		ready:        false,
		transcript: []string{
			fmt.Sprintf("你带着 %d 元现金和 %d 元债务来到了%s。", gs.Cash, gs.Debt, gs.CurrentCity),
			"在市场上低买高卖，在时间用完之前还清债务、攒下家底。",
		},
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

// writeLogContent reformats the transcript for the current viewport width.
func (m *ConsoleUI) writeLogContent() {
	logWidth := m.logViewport.Width - 6 // left(3) + right(3) padding
	if logWidth < 10 {
		logWidth = 10
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("HUSTLE ENGINE") + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", logWidth)) + "\n\n")

	for _, line := range m.transcript {
		content.WriteString(wordwrap.String(line, logWidth) + "\n")
	}

	if m.loading {
		content.WriteString("\n" + promptStyle.Render("..."))
	}

	m.logViewport.SetContent(content.String())
	m.logViewport.GotoBottom()
}

func writeStatus(gs *state.GameState) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("STATUS") + "\n\n")

	content.WriteString(fmt.Sprintf("城市: %s\n", gs.CurrentCity))
	content.WriteString(fmt.Sprintf("剩余时间: %d 周\n\n", gs.TimeLeft))

	content.WriteString(fmt.Sprintf("现金: %d\n", gs.Cash))
	content.WriteString(fmt.Sprintf("存款: %d\n", gs.BankSavings))
	content.WriteString(fmt.Sprintf("债务: %d\n\n", gs.Debt))

	content.WriteString(fmt.Sprintf("健康: %d\n", gs.Health))
	content.WriteString(fmt.Sprintf("体力: %d/%d\n", gs.Stamina, gs.MaxStamina))
	content.WriteString(fmt.Sprintf("名声: %d\n\n", gs.Fame))

	content.WriteString(fmt.Sprintf("仓库: %d/%d\n", gs.TotalGoods, gs.EffectiveCapacity()))
	if len(gs.RentedHouses) > 0 {
		content.WriteString("租房:\n")
		for city, house := range gs.RentedHouses {
			content.WriteString(fmt.Sprintf("• %s: %s\n", city, house))
		}
	}

	if stats := gs.Prediction.Statistics; stats.TotalPredictions > 0 {
		content.WriteString(fmt.Sprintf("\n预测市场: %d 注, 净利 %d\n", stats.TotalPredictions, stats.NetProfit))
	}

	if gs.IsGameOver && gs.GameResult != nil {
		content.WriteString("\n" + titleStyle.Render("GAME OVER") + "\n")
		content.WriteString(fmt.Sprintf("得分: %d\n", gs.GameResult.FinalScore))
		content.WriteString(gs.GameResult.Evaluation + "\n")
	}

	content.WriteString("\n")
	content.WriteString("Keys:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Ctrl+Y: Copy log\n")
	content.WriteString("• help: Commands\n")

	return content.String()
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		m.logViewport, vpCmd = m.logViewport.Update(msg)
		m.textarea, tiCmd = m.textarea.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		logWidth := int(float64(m.width)*0.72) - 4
		metaWidth := m.width - logWidth - 6

		m.logViewport.Width = logWidth - 2
		m.logViewport.Height = m.height - 6
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(logWidth - 4)

		m.ready = true
		m.writeLogContent()
		m.metaViewport.SetContent(writeStatus(m.gameState))

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyCtrlY:
			return m, m.copyTranscript()
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()

			switch strings.ToLower(strings.Fields(input)[0]) {
			case "help":
				m.transcript = append(m.transcript, helpText)
				m.writeLogContent()
				return m, nil
			case "market":
				m.transcript = append(m.transcript, marketText(m.gameState))
				m.writeLogContent()
				return m, nil
			case "bets":
				m.transcript = append(m.transcript, betsText(m.gameState))
				m.writeLogContent()
				return m, nil
			case "refresh":
				m.loading = true
				m.writeLogContent()
				return m, m.refreshGameState()
			}

			cmd, parseErr := parseCommand(input)
			if parseErr != "" {
				m.transcript = append(m.transcript, errorStyle.Render(parseErr))
				m.writeLogContent()
				return m, nil
			}

			m.transcript = append(m.transcript, userStyle.Render("> "+input))
			m.loading = true
			m.writeLogContent()
			return m, m.sendCommand(cmd)
		}

	case commandResultMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.transcript = append(m.transcript, errorStyle.Render("Error: "+msg.err.Error()))
		} else {
			for _, line := range msg.response.Messages {
				m.transcript = append(m.transcript, narrationStyle.Render(line))
			}
			if !msg.response.OK && len(msg.response.Messages) == 0 {
				m.transcript = append(m.transcript, errorStyle.Render("无法执行该操作。"))
			}
			if msg.response.State != nil {
				m.gameState = msg.response.State
				m.metaViewport.SetContent(writeStatus(m.gameState))
			}
		}
		m.writeLogContent()
		return m, nil

	case gameStateMsg:
		m.loading = false
		if msg.err != nil {
			m.transcript = append(m.transcript, errorStyle.Render("Error: "+msg.err.Error()))
		} else if msg.gameState != nil {
			m.gameState = msg.gameState
			m.metaViewport.SetContent(writeStatus(m.gameState))
			m.transcript = append(m.transcript, promptStyle.Render("State refreshed."))
		}
		m.writeLogContent()
		return m, nil

	case clipboardDoneMsg:
		if msg.err != nil {
			m.transcript = append(m.transcript, errorStyle.Render("Copy failed: "+msg.err.Error()))
		} else {
			m.transcript = append(m.transcript, promptStyle.Render("Transcript copied to clipboard."))
		}
		m.writeLogContent()
		return m, nil
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.logViewport, vpCmd = m.logViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

const helpText = `Commands:
• buy <goods_id> <qty> / sell <goods_id> <qty>
• market - List local prices
• next - End the week
• hospital <points> - Buy treatment
• work <work_type> - Do a job
• eat - Restaurant meal
• rent <house_type> - Lease a house here
• go <city> [train|plane|tunnel] - Travel
• subway <location_id> - Move within the city
• deposit <amount> / withdraw <amount> / repay <amount>
• bet <event_id> <option_id> <amount> - Prediction market
• bets - List open prediction events
• refresh - Re-fetch state from the server`

func marketText(gs *state.GameState) string {
	var b strings.Builder
	b.WriteString("本地行情:\n")
	listed := 0
	for i := range gs.Goods {
		g := &gs.Goods[i]
		if g.Price <= 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("• [%d] %s %d 元 (持有 %d)\n", g.ID, g.Name, g.Price, g.Owned))
		listed++
	}
	if listed == 0 {
		b.WriteString("本周没有商品上市。\n")
	}
	return b.String()
}

// parseCommand turns a console input line into an API command. The second
// return value is a user-facing error string, empty on success.
func parseCommand(input string) (CommandRequest, string) {
	fields := strings.Fields(input)
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	atoi := func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil
	}

	switch verb {
	case "buy", "sell":
		if len(args) != 2 {
			return CommandRequest{}, "usage: " + verb + " <goods_id> <qty>"
		}
		id, ok1 := atoi(args[0])
		qty, ok2 := atoi(args[1])
		if !ok1 || !ok2 {
			return CommandRequest{}, "usage: " + verb + " <goods_id> <qty>"
		}
		return CommandRequest{Action: verb, GoodsID: id, Quantity: qty}, ""

	case "next":
		return CommandRequest{Action: "next"}, ""

	case "hospital":
		if len(args) != 1 {
			return CommandRequest{}, "usage: hospital <points>"
		}
		points, ok := atoi(args[0])
		if !ok {
			return CommandRequest{}, "usage: hospital <points>"
		}
		return CommandRequest{Action: "hospital", Points: points}, ""

	case "work":
		if len(args) != 1 {
			return CommandRequest{}, "usage: work <work_type>"
		}
		return CommandRequest{Action: "work", WorkTypeID: args[0]}, ""

	case "eat":
		return CommandRequest{Action: "restaurant"}, ""

	case "rent":
		if len(args) != 1 {
			return CommandRequest{}, "usage: rent <house_type>"
		}
		return CommandRequest{Action: "rent_house", HouseType: args[0]}, ""

	case "go":
		if len(args) < 1 || len(args) > 2 {
			return CommandRequest{}, "usage: go <city> [train|plane|tunnel]"
		}
		mode := "train"
		if len(args) == 2 {
			mode = strings.ToLower(args[1])
		}
		return CommandRequest{Action: "switch_city", City: args[0], Mode: mode}, ""

	case "subway":
		if len(args) != 1 {
			return CommandRequest{}, "usage: subway <location_id>"
		}
		loc, ok := atoi(args[0])
		if !ok {
			return CommandRequest{}, "usage: subway <location_id>"
		}
		return CommandRequest{Action: "subway", LocationID: loc}, ""

	case "deposit", "withdraw":
		if len(args) != 1 {
			return CommandRequest{}, "usage: " + verb + " <amount>"
		}
		amount, ok := atoi(args[0])
		if !ok {
			return CommandRequest{}, "usage: " + verb + " <amount>"
		}
		return CommandRequest{Action: verb, Amount: amount}, ""

	case "repay":
		if len(args) != 1 {
			return CommandRequest{}, "usage: repay <amount>"
		}
		amount, ok := atoi(args[0])
		if !ok {
			return CommandRequest{}, "usage: repay <amount>"
		}
		return CommandRequest{Action: "repay_debt", Amount: amount}, ""

	case "bet":
		if len(args) != 3 {
			return CommandRequest{}, "usage: bet <event_id> <option_id> <amount>"
		}
		amount, ok := atoi(args[2])
		if !ok {
			return CommandRequest{}, "usage: bet <event_id> <option_id> <amount>"
		}
		return CommandRequest{Action: "place_bet", EventID: args[0], OptionID: args[1], Amount: amount}, ""
	}

	return CommandRequest{}, fmt.Sprintf("unknown command %q (try help)", verb)
}

func betsText(gs *state.GameState) string {
	if len(gs.Prediction.ActiveEvents) == 0 {
		return "预测市场暂无开放的事件。"
	}
	var b strings.Builder
	b.WriteString("开放的预测事件:\n")
	for i := range gs.Prediction.ActiveEvents {
		ev := &gs.Prediction.ActiveEvents[i]
		b.WriteString(fmt.Sprintf("• [%s] %s (第 %d 周结算, 投注 %d-%d)\n",
			ev.ID, ev.Title, ev.SettlementWeek, ev.MinBet, ev.MaxBet))
		for j := range ev.Options {
			opt := &ev.Options[j]
			b.WriteString(fmt.Sprintf("    %s: %s @ %.2f\n", opt.ID, opt.Text, opt.Odds))
		}
	}
	return b.String()
}

func (m ConsoleUI) sendCommand(cmd CommandRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := sendCommand(m.client, m.config.APIBaseURL, m.gameState.ID, cmd)
		return commandResultMsg{resp, err}
	}
}

func (m ConsoleUI) refreshGameState() tea.Cmd {
	return func() tea.Msg {
		gs, err := getGameState(m.client, m.config.APIBaseURL, m.gameState.ID)
		return gameStateMsg{gs, err}
	}
}

func (m ConsoleUI) copyTranscript() tea.Cmd {
	transcript := strings.Join(m.transcript, "\n")
	return func() tea.Msg {
		return clipboardDoneMsg{clipboard.WriteAll(transcript)}
	}
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
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

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Your session stays on the server; rejoin with the same game ID.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	logWidth := int(float64(m.width)*0.72) - 4
	metaWidth := m.width - logWidth - 6

	logPanel := logPanelStyle.Width(logWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.logViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", logWidth-4)),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, logPanel, metaPanel)
}
