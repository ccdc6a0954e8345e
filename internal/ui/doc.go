// Package ui contains the Bubble Tea program that renders the parody menu bar
// as a popup, one menu level at a time.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, resizes, link results).
//   - Navigation helpers (navigation.go) manage the stack of menu levels. Enter
//     on a submenu pushes its children; enter on a button clicks it and folds
//     the popup back to the root; escape pops a level and re-opens the parent.
//     Filter/input helpers (input.go) keep text entry out of the event loop.
//
// State ownership:
//   - Menu level state lives in internal/ui/state.Level, which tracks items,
//     filtering and viewport calculations.
//   - The game state belongs to the dispatcher. Every Children and Click call
//     runs synchronously inside Update, under the dispatcher lock, so the
//     menu never sees two callers at once.
//
// Side effects:
//   - A click only queues the URLs it wants opened. The command bus turns them
//     into a tea.Cmd that launches the browser off the update loop and reports
//     back with a command.ActionResult.
package ui
