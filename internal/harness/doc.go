// Package harness runs recipe scenarios against an in-process sway.
//
// A scenario names a recipe, the commands the fake sway should reject,
// and assertions on what was sent and recorded. Run compiles the recipe,
// sends the command list over IPC to a testutil.FakeSway, records the
// batch in an in-memory history store and evaluates the assertions.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: browser_float
//	description: "Firefox dialogs float on workspace 5"
//	recipe: ../recipes/browser-float.yaml
//	reject:
//	  - bogus
//	assertions:
//	  - type: sent_contains
//	    command: exec foot
//	  - type: sent_order
//	    commands: [workspace 5, exec foot]
//	  - type: sent_count
//	    count: 4
//	  - type: command_failed
//	    command: exec bogus
//	  - type: history
//	    count: 4
//
// The recipe path is resolved relative to the scenario file.
//
// # Assertion Types
//
//   - sent_contains: a command with this text was sent
//   - sent_order: the commands were sent in this order, not necessarily adjacent
//   - sent_count: exactly this many commands were sent, counting each
//     sub-command of a targeted unit, as sway replies
//   - command_failed: the command was sent and sway rejected it
//   - history: the batch was recorded with this many replies
//
// Command text is compared after sway.NormalizeWhitespace, so empty
// optional positions do not matter.
//
// # Deterministic Testing
//
// Batch IDs come from testutil.FixedIDGenerator and each run uses a fresh
// in-memory database, so identical scenarios produce identical results
// for golden file comparison.
package harness
