package tui

import (
	"YT_comment_export/internal/core/domain"
	"YT_comment_export/internal/core/ports"
	"YT_comment_export/internal/core/usecases"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type videoDoneMsg struct{ result domain.VideoResult }
type batchDoneMsg struct{ summary domain.BatchSummary }

type AppModel struct {
	useCase usecases.ScrapeUseCase
	links   []ports.VideoLink
	logger  ports.LoggerPort

	spinner spinner.Model
	results []domain.VideoResult
	summary *domain.BatchSummary

	events chan tea.Msg

	appContext context.Context
	cancelApp  context.CancelFunc
}

func NewAppModel(ctx context.Context, uc usecases.ScrapeUseCase, links []ports.VideoLink, log ports.LoggerPort) *AppModel {
	appCtx, cancel := context.WithCancel(ctx)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = successStyle

	return &AppModel{
		useCase:    uc,
		links:      links,
		logger:     log,
		spinner:    s,
		events:     make(chan tea.Msg, len(links)+1),
		appContext: appCtx,
		cancelApp:  cancel,
	}
}

// Summary is nil until the batch finished.
func (m *AppModel) Summary() *domain.BatchSummary {
	return m.summary
}

func (m *AppModel) Init() tea.Cmd {
	m.logger.Info(fmt.Sprintf("TUI: iniciando lote de %d vídeos", len(m.links)))
	return tea.Batch(m.spinner.Tick, m.startBatch(), m.waitForEvent())
}

// startBatch runs the whole batch on one goroutine; every finished video is
// pushed to events and picked up by waitForEvent.
func (m *AppModel) startBatch() tea.Cmd {
	return func() tea.Msg {
		summary := m.useCase.RunBatch(m.appContext, m.links, func(r domain.VideoResult) {
			m.events <- videoDoneMsg{result: r}
		})
		m.events <- batchDoneMsg{summary: summary}
		return nil
	}
}

func (m *AppModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.logger.Info("Ctrl+C ou Esc pressionado, cancelando lote.")
			m.cancelApp()
			return m, tea.Quit
		}

	case videoDoneMsg:
		m.results = append(m.results, msg.result)
		return m, m.waitForEvent()

	case batchDoneMsg:
		m.summary = &msg.summary
		m.cancelApp()
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("YouTube comment export"))
	b.WriteString("\n")
	b.WriteString(listHeaderStyle.Render(fmt.Sprintf("%d/%d videos", len(m.results), len(m.links))))
	b.WriteString("\n")

	for _, r := range m.results {
		b.WriteString(ResultLine(r))
		b.WriteString("\n")
	}

	if m.summary != nil {
		b.WriteString("\n")
		b.WriteString(SummaryLine(*m.summary))
		b.WriteString("\n")
		return docStyle.Render(b.String())
	}

	if len(m.results) < len(m.links) {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.links[len(m.results)].URL)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("(Ctrl+C ou Esc para cancelar)"))
	return docStyle.Render(b.String())
}
