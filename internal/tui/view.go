package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/notifications"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	var base string
	if m.UiState.View() == state.BoardDetailView {
		base = m.viewBoard()
	} else {
		base = m.viewBoardList()
	}

	// Toasts that do not fit the window fall back to a line in the status bar
	toasts := m.NotificationState.GetLayers(notifications.RenderFromState)
	inline := ""
	if all := m.NotificationState.All(); len(toasts) == 0 && len(all) > 0 {
		inline = notifications.RenderInlineFromState(all[len(all)-1])
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(m.frame(base, inline))}
	if modal := m.modalLayer(); modal != nil {
		layers = append(layers, modal)
	}
	layers = append(layers, toasts...)

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// frame trims content to the terminal height and pins the status bar below it
func (m Model) frame(content, notice string) string {
	lines := strings.Split(content, "\n")
	maxLines := max(m.UiState.Height()-1, 1)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n") + "\n" + m.renderStatusBar(notice)
}

func (m Model) viewBoardList() string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Boards"))
	sb.WriteString("\n\n")

	if !m.AppState.Loaded() {
		sb.WriteString(SubtleStyle.Render("Loading boards..."))
		return sb.String()
	}

	boards := m.AppState.Boards()
	if len(boards) == 0 {
		sb.WriteString(SubtleStyle.Render(fmt.Sprintf("No boards yet. Press %s to create one.", helpKey(m.Keys.CreateBoard))))
		return sb.String()
	}

	for i, b := range boards {
		row := fmt.Sprintf("[%d] %s  %s", b.ID, titleOr(b.Title(), "(untitled)"),
			fmt.Sprintf("%d groups, %d items", len(b.Groups), b.ItemCount()))
		if i == m.UiState.SelectedBoard() {
			sb.WriteString(SelectedBoardRowStyle.Render("> " + row))
		} else {
			sb.WriteString(BoardRowStyle.Render("  " + row))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) viewBoard() string {
	b := m.AppState.CurrentBoard()
	if b == nil {
		return SubtleStyle.Render("Loading board...")
	}

	parts := []string{
		TitleStyle.Render(titleOr(b.Title(), "(untitled)")) + " " + SubtleStyle.Render(fmt.Sprintf("#%d", b.ID)),
	}
	if desc := renderDescription(b.Description(), m.UiState.Width()-4); desc != "" {
		parts = append(parts, desc)
	}

	if len(b.Groups) == 0 {
		parts = append(parts, SubtleStyle.Render(fmt.Sprintf("No groups yet. Press %s to add one.", helpKey(m.Keys.AddGroup))))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	// Scroll horizontally so the selected group stays visible
	visible := max(m.UiState.Width()/(groupWidth+2), 1)
	selected := m.UiState.SelectedGroup()
	start := max(selected-visible+1, 0)
	end := min(start+visible, len(b.Groups))

	columns := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		columns = append(columns, m.renderGroup(b.Groups[i], i == selected))
	}
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, columns...))

	if len(b.Groups) > visible {
		parts = append(parts, SubtleStyle.Render(fmt.Sprintf("groups %d-%d of %d", start+1, end, len(b.Groups))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderGroup(g *models.Group, selected bool) string {
	header := TitleStyle.Render(titleOr(g.Title(), "(untitled)")) + " " +
		SubtleStyle.Render(fmt.Sprintf("(%d)", len(g.Items)))

	cards := []string{header}
	if len(g.Items) == 0 {
		cards = append(cards, SubtleStyle.Render("empty"))
	}
	for i, it := range g.Items {
		style := ItemStyle
		if selected && i == m.UiState.SelectedItem() {
			style = SelectedItemStyle
		}
		cards = append(cards, style.Render(titleOr(it.Title(), "(untitled)")+"\n"+SubtleStyle.Render(fmt.Sprintf("#%d", it.ID))))
	}

	style := GroupStyle
	if selected {
		style = SelectedGroupStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, cards...))
}

// renderStatusBar shows the location on the left and notice, or the help
// hint, on the right
func (m Model) renderStatusBar(notice string) string {
	left := "Tablero"
	if b := m.AppState.CurrentBoard(); b != nil && m.UiState.View() == state.BoardDetailView {
		left += " / " + titleOr(b.Title(), "(untitled)")
	}
	right := "press " + helpKey(m.Keys.ShowHelp) + " for help"
	if notice != "" {
		right = notice
	}

	gap := max(m.UiState.Width()-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return StatusBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// modalLayer returns the dialog for the current mode, or nil in normal mode
func (m Model) modalLayer() *lipgloss.Layer {
	mode := m.UiState.Mode()

	var box string
	switch {
	case mode.IsInput():
		style := CreateInputBoxStyle
		if mode == state.RenameItemMode {
			style = EditInputBoxStyle
		}
		box = style.Width(modalWidth).Render(fmt.Sprintf("%s\n> %s_", m.InputState.Prompt, m.InputState.Buffer))

	case mode == state.DeleteBoardConfirmMode:
		b := m.getSelectedBoard()
		if b == nil {
			return nil
		}
		content := fmt.Sprintf("Delete board '%s'?", titleOr(b.Title(), "(untitled)"))
		if n := b.ItemCount(); n > 0 {
			content += fmt.Sprintf("\nThis will also delete %d item(s).", n)
		}
		box = DeleteConfirmBoxStyle.Width(modalWidth).Render(content + "\n\n[y]es  [n]o")

	case mode == state.DeleteItemConfirmMode:
		it := m.getCurrentItem()
		if it == nil {
			return nil
		}
		box = DeleteConfirmBoxStyle.Width(modalWidth).
			Render(fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", titleOr(it.Title(), "(untitled)")))

	case mode == state.HelpMode:
		box = HelpBoxStyle.Render(m.helpContent())

	default:
		return nil
	}

	x := max((m.UiState.Width()-lipgloss.Width(box))/2, 0)
	y := max((m.UiState.Height()-lipgloss.Height(box))/2, 0)
	return lipgloss.NewLayer(box).X(x).Y(y)
}

func (m Model) helpContent() string {
	bindings := m.Keys.ListHelp()
	heading := "BOARDS"
	if m.UiState.View() == state.BoardDetailView {
		bindings = m.Keys.BoardHelp()
		heading = "BOARD"
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("TABLERO - Keyboard Shortcuts"))
	sb.WriteString("\n\n" + heading + "\n")
	for _, b := range bindings {
		h := b.Help()
		sb.WriteString(fmt.Sprintf("  %-6s %s\n", h.Key, h.Desc))
	}
	sb.WriteString("\n" + SubtleStyle.Render("press "+helpKey(m.Keys.Back)+" to close"))
	return sb.String()
}

func helpKey(b key.Binding) string {
	return b.Help().Key
}

func titleOr(title, fallback string) string {
	if title == "" {
		return fallback
	}
	return title
}
