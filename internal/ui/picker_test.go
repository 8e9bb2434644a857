package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgtypes "github.com/vietdv277/vpcgap/pkg/types"
)

var pickerVPCs = []pkgtypes.VPC{
	{ID: "vpc-aaa", Name: "shared-services", CIDR: "10.0.0.0/16"},
	{ID: "vpc-bbb", Name: "prod", CIDR: "10.1.0.0/16"},
	{ID: "vpc-ccc", Name: "staging", CIDR: "172.31.0.0/16"},
}

func send(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestVPCPicker_SelectWithArrows(t *testing.T) {
	m := send(NewVPCPicker(pickerVPCs),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	picker := m.(VPCPicker)
	require.NotNil(t, picker.Selected())
	assert.Equal(t, "vpc-bbb", picker.Selected().ID)
	assert.Empty(t, picker.View())
}

func TestVPCPicker_Filter(t *testing.T) {
	m := send(NewVPCPicker(pickerVPCs),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("172.31")},
	)
	view := m.View()
	assert.Contains(t, view, "vpc-ccc")
	assert.NotContains(t, view, "vpc-aaa")
	assert.Contains(t, view, "1/3 VPCs")

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "vpc-ccc", m.(VPCPicker).Selected().ID)
}

func TestVPCPicker_NoMatch(t *testing.T) {
	m := send(NewVPCPicker(pickerVPCs),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zzz")},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	assert.Nil(t, m.(VPCPicker).Selected())

	m = send(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Contains(t, m.View(), "3/3 VPCs")
}

func TestVPCPicker_Cancel(t *testing.T) {
	m := send(NewVPCPicker(pickerVPCs), tea.KeyMsg{Type: tea.KeyEsc})
	picker := m.(VPCPicker)
	assert.True(t, picker.cancelled)
	assert.Nil(t, picker.Selected())
}
