package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/rightclick/internal/logging"
	"github.com/atomicstack/rightclick/internal/logging/events"
	"github.com/atomicstack/rightclick/internal/ui/command"
)

// handleActionResultMsg reports how opening a link went. Failures never reach
// the menu; they only show up in the status line and the log.
func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		logging.Error(result.Err)
		events.Action.Error(result.Err)
		return nil
	}
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	}
	events.Action.Success(result.Info)
	return nil
}
