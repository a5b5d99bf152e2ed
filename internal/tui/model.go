package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"resmigul/internal/engine"
	"resmigul/internal/ui"
)

type tapModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	state engine.Snapshot
	goal  int

	lastLog string
	loading bool
	err     error
}

type refreshMsg struct {
	state engine.Snapshot
	goal  int
	err   error
}

type tappedMsg struct {
	res *engine.TapResult
	err error
}

type boughtMsg struct {
	res *engine.PurchaseResult
	err error
}

type claimedMsg struct {
	res *engine.ClaimResult
	err error
}

type tickMsg time.Time

func newTapModel(ctx context.Context, svc *engine.Service) tapModel {
	return tapModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Ready.",
	}
}

func (m tapModel) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(engine.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m tapModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		st, err := m.svc.State()
		if err != nil {
			return refreshMsg{err: err}
		}
		goal, err := m.svc.GoalToday()
		if err != nil {
			return refreshMsg{err: err}
		}
		return refreshMsg{state: st, goal: goal}
	}
}

func (m tapModel) tapCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Tap(m.ctx)
		return tappedMsg{res: res, err: err}
	}
}

func (m tapModel) buyCmd(itemID string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Buy(m.ctx, itemID)
		return boughtMsg{res: res, err: err}
	}
}

func (m tapModel) claimCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ClaimDaily(m.ctx)
		return claimedMsg{res: res, err: err}
	}
}

func (m tapModel) tickRunCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.Tick(m.ctx)
		if err != nil {
			return refreshMsg{err: err}
		}
		st, err := m.svc.State()
		if err != nil {
			return refreshMsg{err: err}
		}
		goal, err := m.svc.GoalToday()
		if err != nil {
			return refreshMsg{err: err}
		}
		return refreshMsg{state: st, goal: goal}
	}
}

func (m tapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "enter", "t":
			return m, m.tapCmd()
		case "c":
			return m, m.claimCmd()
		case "1", "2", "3", "4":
			items := engine.Catalog()
			idx := int(msg.String()[0] - '1')
			if idx < len(items) {
				return m, m.buyCmd(items[idx].ID)
			}
			return m, nil
		}
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.tickRunCmd(), tickCmd())

	case refreshMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.loading = false
		m.state = msg.state
		m.goal = msg.goal
		return m, nil

	case tappedMsg:
		if msg.err != nil {
			m.lastLog = ui.Bad.Render(msg.err.Error())
			return m, m.refreshCmd()
		}
		m.lastLog = tapLog(msg.res)
		return m, m.refreshCmd()

	case boughtMsg:
		if msg.err != nil {
			m.lastLog = ui.Bad.Render(msg.err.Error())
			return m, m.refreshCmd()
		}
		m.lastLog = ui.Good.Render(fmt.Sprintf("%s %s bought (-%d %s)", msg.res.Item.Icon, msg.res.Item.Name, msg.res.Item.Price, ui.IconCoin))
		return m, m.refreshCmd()

	case claimedMsg:
		if msg.err != nil {
			m.lastLog = ui.Warn.Render(msg.err.Error())
			return m, m.refreshCmd()
		}
		m.lastLog = ui.Gold.Render(fmt.Sprintf("%s daily reward +%d (streak %d)", ui.IconGift, msg.res.Amount, msg.res.Streak))
		return m, m.refreshCmd()
	}

	return m, nil
}

func tapLog(res *engine.TapResult) string {
	if !res.Accepted {
		return ui.Muted.Render("(debounced)")
	}
	parts := []string{fmt.Sprintf("+%d", res.Increment)}
	if res.Critical {
		parts = append(parts, ui.Gold.Render("CRIT!"))
	}
	if res.FunBonus > 0 {
		parts = append(parts, ui.Warn.Render(fmt.Sprintf("fun +%d", res.FunBonus)))
	}
	if res.LevelsGained > 0 {
		parts = append(parts, ui.Gold.Render("LEVEL UP"))
	}
	if res.GoalReached {
		parts = append(parts, ui.Good.Render("GOAL DONE "+ui.IconDone))
	}
	for _, q := range res.QuestsCompleted {
		parts = append(parts, ui.Good.Render(fmt.Sprintf("quest %s +%d", q.ID, q.Reward)))
	}
	return strings.Join(parts, " ")
}

func (m tapModel) View() string {
	if m.err != nil {
		return ui.Bad.Render(ui.IconError+" "+m.err.Error()) + "\n"
	}
	if m.loading {
		return ui.Muted.Render("Loading...") + "\n"
	}

	s := m.state
	var b strings.Builder

	header := fmt.Sprintf("%s  %s %s %d  %s %d",
		ui.Heading(ui.IconSparkle, "Resmigul"),
		ui.Muted.Render(s.CurrentDate),
		ui.IconFlame, s.Streak,
		ui.IconCoin, s.Balance,
	)
	b.WriteString(header + "\n\n")

	count := fmt.Sprintf("  %s  ", ui.Title.Render(fmt.Sprintf("%d", s.TodayCount)))
	b.WriteString(count + ui.Muted.Render(fmt.Sprintf("/ %d today", m.goal)) + "\n")
	b.WriteString("  " + ui.ProgressBar(s.TodayCount, m.goal, 32) + "\n")
	b.WriteString("  " + ui.Dim.Render("\""+engine.QuoteOfDay(s.CurrentDate)+"\"") + "\n\n")

	b.WriteString(fmt.Sprintf("  %s lvl %d  %s\n",
		ui.Key.Render(s.User.Name),
		s.User.Level,
		ui.Muted.Render(fmt.Sprintf("xp %d/%d", s.User.XP, s.User.MaxXP)),
	))
	b.WriteString("  " + ui.ProgressBar(s.User.XP, s.User.MaxXP, 32) + "\n\n")

	if len(s.ActiveEffects) > 0 {
		b.WriteString("  " + ui.H2.Render("Boosts") + "\n")
		now := time.Now()
		for _, e := range s.ActiveEffects {
			left := e.ExpiresAt.Sub(now).Round(time.Second)
			if left < 0 {
				left = 0
			}
			b.WriteString(fmt.Sprintf("  %s ×%d  %s\n", e.Kind, e.Value, ui.Muted.Render(left.String())))
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + ui.H2.Render(ui.IconQuest+" Quests") + "\n")
	for _, q := range s.Quests {
		mark := " "
		if q.Completed {
			mark = ui.Good.Render("✓")
		}
		b.WriteString(fmt.Sprintf("  [%s] %s %s\n", mark, q.Title, ui.Muted.Render(fmt.Sprintf("%d/%d (+%d)", q.Current, q.Target, q.Reward))))
	}
	b.WriteString("\n")

	b.WriteString("  " + m.lastLog + "\n\n")
	b.WriteString(ui.Dim.Render("  space: tap  1-4: buy  c: claim  q: quit") + "\n")

	return b.String()
}
