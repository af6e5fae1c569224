// Package nav implements the tour's navigation state machine.
//
// Transition is a pure function from (State, Intent) to the next State;
// Machine holds one State for a running UI and reports each step to an
// Observer. Screens form the closed set Home, Categories, List(category)
// and Detail(category, id).
//
// # Back navigation
//
// Forward intents (GoToCategories, SelectCategory, SelectItem) push the
// current screen and Back pops it. GoHome is a jump-and-clear: the stack
// is emptied regardless of depth and HomeCycleCompleted becomes true.
// Once set, the flag makes SystemBack on the Home screen a consumed no-op
// instead of propagating to the host.
//
// # Invalid arguments
//
// An unknown category or (category, id) pair never produces an error.
// The machine treats it as Back and marks the Outcome as a fallback.
package nav
