// Package sway renders typed command descriptions into the exact text
// accepted by sway's command protocol, the syntax shared by its config
// file and the RUN_COMMAND IPC message.
//
// # Grammar
//
// The grammar is a closed set of sealed interfaces, one per syntactic
// category:
//
//   - Criterion: a window-matching condition ([app_id="firefox"])
//   - SubCommand: an operation on the selected or focused container
//   - Standalone: a command that selects no container (bindsym, exec, ...)
//   - Command: anything that can appear in a command list
//
// Each interface is sealed with an unexported marker method, so the type
// switches in render.go are exhaustive. Rendering is total: every value
// that can be constructed has a text form, nil renders as the empty
// string, and pointers to variants render like the variant itself.
//
// # Builders
//
// CriteriaGroup, Targeted and List keep the structured sequence as the
// source of truth and a rendered cache that is always equal to a fresh
// render of that sequence:
//
//	list := new(sway.List).
//		Add(sway.Raw("workspace 5")).
//		Add(sway.Border{Style: sway.BorderNone}).
//		Add(sway.Select(sway.MatchFloating{}).Do(sway.Floating{State: sway.Disable}))
//
//	list.String() // workspace 5;border none;[floating]floating disable
//
// Every append is O(appended text) except Targeted.Where after the first
// sub-command, which rebuilds the whole unit. Supply criteria first.
//
// Accessors hand out copies, and List.Add copies units and criteria
// groups (including those nested in bindings and for_window), so nothing
// outside a builder can change what it has rendered.
//
// # Validation
//
// The package guarantees syntax, never acceptance. Regular expressions,
// marks, titles and numeric ranges are passed through unchanged; sway
// reports anything it rejects in its IPC reply.
//
// Builders are not safe for concurrent mutation.
package sway
