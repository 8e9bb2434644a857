package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	pkgtypes "github.com/vietdv277/vpcgap/pkg/types"
)

const (
	pickerListHeight = 8
	pickerMinWidth   = 60
	pickerMaxWidth   = 120
)

// ErrPickerCancelled is returned when the user leaves the picker without choosing
var ErrPickerCancelled = errors.New("selection cancelled")

// VPCPicker is the bubbletea model for choosing the VPC to plan in
type VPCPicker struct {
	vpcs      []pkgtypes.VPC
	filtered  []pkgtypes.VPC
	cursor    int
	offset    int
	search    string
	selected  *pkgtypes.VPC
	quitting  bool
	cancelled bool
	width     int
}

// NewVPCPicker creates a picker over vpcs
func NewVPCPicker(vpcs []pkgtypes.VPC) VPCPicker {
	m := VPCPicker{
		vpcs:     vpcs,
		filtered: vpcs,
	}
	m.resize(80)
	return m
}

func (m *VPCPicker) resize(termWidth int) {
	m.width = min(max(termWidth-2, pickerMinWidth), pickerMaxWidth)
}

// Init implements tea.Model
func (m VPCPicker) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model
func (m VPCPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				vpc := m.filtered[m.cursor]
				m.selected = &vpc
				m.quitting = true
				return m, tea.Quit
			}

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}

		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+pickerListHeight {
					m.offset = m.cursor - pickerListHeight + 1
				}
			}

		case tea.KeyBackspace:
			if len(m.search) > 0 {
				r := []rune(m.search)
				m.search = string(r[:len(r)-1])
				m.filter()
			}

		case tea.KeyRunes:
			m.search += string(msg.Runes)
			m.filter()
		}
	}

	return m, nil
}

// Selected returns the chosen VPC, or nil
func (m VPCPicker) Selected() *pkgtypes.VPC {
	return m.selected
}

func (m *VPCPicker) filter() {
	if m.search == "" {
		m.filtered = m.vpcs
	} else {
		query := strings.ToLower(m.search)
		m.filtered = nil
		for _, vpc := range m.vpcs {
			if strings.Contains(strings.ToLower(vpc.Name), query) ||
				strings.Contains(strings.ToLower(vpc.ID), query) ||
				strings.Contains(vpc.CIDR, query) {
				m.filtered = append(m.filtered, vpc)
			}
		}
	}
	m.cursor = min(m.cursor, max(len(m.filtered)-1, 0))
	m.offset = 0
}

// View implements tea.Model
func (m VPCPicker) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	w := m.width

	sb.WriteString(BorderStyle.Render(TopLeft + strings.Repeat(Horizontal, w) + TopRight))
	sb.WriteString("\n")

	m.line(&sb, NameStyle.Render(padRight(" > "+m.search, w)))
	m.line(&sb, strings.Repeat(" ", w))

	end := min(m.offset+pickerListHeight, len(m.filtered))
	for i := m.offset; i < end; i++ {
		m.line(&sb, m.row(i))
	}
	for i := end - m.offset; i < pickerListHeight; i++ {
		m.line(&sb, strings.Repeat(" ", w))
	}

	sb.WriteString(BorderStyle.Render(BottomLeft + strings.Repeat(Horizontal, w) + BottomRight))
	sb.WriteString("\n")

	status := fmt.Sprintf("  %d/%d VPCs", len(m.filtered), len(m.vpcs))
	hints := "[Enter:select] [Esc:cancel]"
	sb.WriteString(status)
	if pad := w + 2 - runewidth.StringWidth(status) - runewidth.StringWidth(hints); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	sb.WriteString(HintStyle.Render(hints))
	sb.WriteString("\n")

	return sb.String()
}

func (m VPCPicker) line(sb *strings.Builder, content string) {
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(content)
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")
}

func (m VPCPicker) row(idx int) string {
	vpc := m.filtered[idx]

	cursor := "   "
	if idx == m.cursor {
		cursor = " > "
	}

	nameWidth := max(m.width-3-24-2-18-2, 10)
	return cursor +
		IDStyle.Render(padRight(vpc.ID, 24)) + "  " +
		IPStyle.Render(padRight(vpc.CIDR, 18)) + "  " +
		NameStyle.Render(padRight(vpc.Name, nameWidth))
}

// SelectVPC displays an interactive selector for VPCs
func SelectVPC(vpcs []pkgtypes.VPC) (*pkgtypes.VPC, error) {
	if len(vpcs) == 0 {
		return nil, fmt.Errorf("no VPCs available")
	}

	p := tea.NewProgram(NewVPCPicker(vpcs))

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running selector: %w", err)
	}

	result := finalModel.(VPCPicker)
	if result.cancelled || result.selected == nil {
		return nil, ErrPickerCancelled
	}

	return result.selected, nil
}
