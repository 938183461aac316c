// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/popular-query/controller"
	"github.com/danielhkuo/popular-query/period"
)

// fetchedMsg carries a finished network call back onto the Update loop.
type fetchedMsg struct {
	outcome controller.Outcome
}

// Model is the Bubble Tea model around a Page.
type Model struct {
	ctx    context.Context
	page   *controller.Page
	logger *slog.Logger

	// key -> control id
	keys map[string]string

	// initial deep-link request, consumed by Init
	startup tea.Cmd

	notice string
	failed string
	width  int

	// For testing - allows injecting "now"
	now func() time.Time
}

// NewModel wraps page. If the page fragment names a period that has a
// button, that period is generated when the program starts.
func NewModel(ctx context.Context, page *controller.Page, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	m := Model{
		ctx:    ctx,
		page:   page,
		logger: logger,
		keys: map[string]string{
			"c": controller.CopyControlID,
			"o": controller.OpenControlID,
			"?": controller.HelpControlID,
		},
		now: time.Now,
	}
	for _, button := range page.Buttons.Buttons() {
		m.keys[button.ID[:1]] = button.ID
	}

	if p, err := period.Parse(page.Router.Fragment()); err == nil && page.Handles(p.String()) {
		logger.Debug("deep link", "period", p)
		m.startup = m.press(p.String())
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.startup
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case fetchedMsg:
		m.page.Requests.Settle(msg.outcome)
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "q" || key == "ctrl+c" {
			return m, tea.Quit
		}
		id, ok := m.keys[key]
		if !ok {
			return m, nil
		}
		m.notice, m.failed = "", ""
		return m, m.press(id)
	}

	return m, nil
}

// press dispatches id and records what happened for the status
// line. It returns the fetch command when a request was started.
func (m *Model) press(id string) tea.Cmd {
	effect, err := m.page.Dispatch(id)
	if err != nil {
		m.logger.Warn("control failed", "control", id, "error", err)
		m.failed = err.Error()
		return nil
	}

	switch {
	case effect.Pending != "":
		return m.fetch(effect.Pending)
	case effect.Copied:
		m.notice = "Copied to clipboard"
	case effect.Opened != "":
		m.notice = "Opened " + effect.Opened
	case id == controller.HelpControlID && !effect.PreventDefault:
		m.page.Router.OpenHelp()
	}
	return nil
}

func (m Model) fetch(p period.Period) tea.Cmd {
	ctx, requests := m.ctx, m.page.Requests
	return func() tea.Msg {
		return fetchedMsg{outcome: requests.Fetch(ctx, p)}
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Popular query"))
	b.WriteString("\n\n")

	if m.page.Router.HelpOpen() {
		b.WriteString(helpView())
		b.WriteString("\n")
		b.WriteString(m.footer())
		return b.String()
	}

	b.WriteString(m.buttonsView())
	b.WriteString("\n\n")

	switch {
	case m.page.Buttons.Busy():
		b.WriteString(dimStyle.Render("Loading..."))
	case m.page.Errors.Text() != "":
		b.WriteString(errorStyle.Render(m.page.Errors.Text()))
	case m.page.Results.Text() != "":
		b.WriteString(m.resultView())
	default:
		b.WriteString(dimStyle.Render("Pick a period to generate a query."))
	}
	b.WriteString("\n")

	if m.failed != "" {
		b.WriteString(errorStyle.Render(m.failed))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(m.footer())
	return b.String()
}

func (m Model) buttonsView() string {
	var rendered []string
	for _, button := range m.page.Buttons.Buttons() {
		style := buttonStyle
		switch {
		case button.Disabled:
			style = disabledButtonStyle
		case button.Chosen:
			style = chosenButtonStyle
		}
		label := fmt.Sprintf("[%s] %s", button.ID[:1], button.ID)
		rendered = append(rendered, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) resultView() string {
	style := resultStyle
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	out := style.Render(m.page.Results.Text())

	if at := m.page.Results.ComputedAt(); !at.IsZero() {
		out += "\n" + dimStyle.Render("computed "+humanize.RelTime(at, m.now(), "ago", "from now"))
	}
	return out
}

func (m Model) footer() string {
	frag := m.page.Router.Fragment()
	if frag == "" {
		frag = "-"
	}
	return dimStyle.Render(fmt.Sprintf("#%s  c copy  o open  ? help  q quit", frag))
}

func helpView() string {
	return strings.Join([]string{
		"Generates a search query out of the tags that were popular",
		"over the chosen period.",
		"",
		"  d, w, m   generate the daily, weekly or monthly query",
		"  c         copy the query to the clipboard",
		"  o         search the query on the image board",
		"  ?         close this help",
		"  q         quit",
	}, "\n")
}
