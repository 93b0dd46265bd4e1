// Package view renders the planner screens. Functions here are pure: they
// take a small state struct and return a string, so each screen can be tested
// without running a Bubble Tea program.
//
// # Screens
//
//   - [HeaderView]: title, tagline and the History / New Project switch
//   - [HistoryView]: filter box and the project cards
//   - [FormView]: the project input form
//   - [ResultsView]: tabbed plan, schedule, review and HTML export
//
// [RenderDocument] turns render.Block slices into styled text and is shared
// by the results screen and the CLI.
package view
