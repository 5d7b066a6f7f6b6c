package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var tabLabels = []string{"1 Dashboard", "2 Agenda", "3 Appointments", "4 Barbers", "5 Customers", "6 Services"}

// View renders the TUI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.mode {
	case ModeDraft:
		b.WriteString(m.renderDraftModal())
	case ModeForm:
		b.WriteString(m.renderFormModal())
	case ModeConfirm:
		b.WriteString(m.renderConfirmModal())
	default:
		b.WriteString(m.renderBody())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderStatusLine())
	return b.String()
}

func (m Model) renderBody() string {
	switch m.view {
	case ViewAgenda:
		return m.agendaView()
	case ViewAppointments:
		return m.appointmentsView()
	case ViewBarbers:
		return m.barbersView()
	case ViewCustomers:
		return m.customersView()
	case ViewServices:
		return m.servicesView()
	default:
		return m.dashboardView()
	}
}

func (m Model) renderTabs() string {
	parts := make([]string, len(tabLabels))
	for i, label := range tabLabels {
		style := m.styles.TabStyle
		if View(i) == m.view {
			style = m.styles.TabActive
		}
		parts[i] = style.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderStatusLine() string {
	text := m.statusMsg
	if text == "" {
		text = "q: quit  ·  r: refresh  ·  1-6: switch view"
		if m.width > 0 {
			return m.styles.HelpStyle.Render(ansi.Truncate(text, m.width, "..."))
		}
		return m.styles.HelpStyle.Render(text)
	}
	if m.width > 0 {
		text = ansi.Truncate(text, m.width, "...")
	}
	return m.styles.StatusStyle.Render(text)
}

// renderDraftModal renders the pending appointment confirmation.
func (m Model) renderDraftModal() string {
	if m.draft == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render("New appointment"))
	b.WriteString("\n\n")
	barber, _ := m.selectedBarber()
	fmt.Fprintf(&b, "%s %s, %s-%s with %s\n\n",
		m.draft.Date.Format("Monday"),
		m.draft.Date.Format("02 Jan 2006"),
		m.draft.StartLabel(),
		m.draft.EndLabel(),
		barber.Name,
	)

	customerPanel := m.renderDraftList("Customer", m.customerNames(), m.draftCustomer, m.draftFocus == 0)
	servicePanel := m.renderDraftList("Service", m.serviceNames(), m.draftService, m.draftFocus == 1)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, customerPanel, " ", servicePanel))
	b.WriteString("\n")

	if m.conflictMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.ModalWarningStyle.Render(m.conflictMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.HelpStyle.Render("tab: switch list  ·  j/k: select  ·  enter: book  ·  esc: discard"))
	return m.styles.ModalStyle.Render(b.String())
}

func (m Model) renderDraftList(title string, items []string, selected int, focused bool) string {
	var b strings.Builder
	b.WriteString(m.styles.ModalLabelStyle.Render(title))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(m.styles.RowMutedStyle.Render("(none)"))
	}
	for i, item := range items {
		style := m.styles.RowStyle
		if i == selected {
			style = m.styles.RowSelectedStyle
		}
		b.WriteString(style.Render(" " + item + " "))
		b.WriteString("\n")
	}

	panel := m.styles.BlurredPanelStyle
	if focused {
		panel = m.styles.FocusedPanelStyle
	}
	return panel.Render(b.String())
}

func (m Model) customerNames() []string {
	names := make([]string, len(m.customers))
	for i, c := range m.customers {
		names[i] = c.Name
	}
	return names
}

func (m Model) serviceNames() []string {
	active := m.activeServices()
	names := make([]string, len(active))
	for i, s := range active {
		names[i] = fmt.Sprintf("%s (%.2f)", s.Name, s.Price)
	}
	return names
}

// renderFormModal renders the active entity form.
func (m Model) renderFormModal() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render(m.form.title))
	b.WriteString("\n\n")
	for i, label := range m.form.labels {
		b.WriteString(m.styles.ModalLabelStyle.Render(fmt.Sprintf("%-10s", label)))
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.HelpStyle.Render("tab: next field  ·  enter: save  ·  esc: cancel"))
	return m.styles.ModalStyle.Render(b.String())
}

// renderConfirmModal renders a yes/no question.
func (m Model) renderConfirmModal() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalWarningStyle.Render(m.confirm.message))
	b.WriteString("\n\n")
	b.WriteString(m.styles.HelpStyle.Render("y: yes  ·  n: no"))
	return m.styles.ModalStyle.Render(b.String())
}
