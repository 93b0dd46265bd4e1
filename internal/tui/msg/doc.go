// Package msg defines the message types used by the TUI's Bubbletea event
// loop and the command factories that produce them.
//
// Every network call runs inside a tea.Cmd so Update never blocks. The
// controller and catalog record their own loading and error state; the
// messages here only tell the model that something finished so it can
// re-read that state and adjust focus, selection or scrolling.
package msg
