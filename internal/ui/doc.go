// Package ui implements the Rolodex terminal interface on Bubble Tea.
//
// # Event Flow
//
// Everything runs on the Bubble Tea event loop: the single startup
// fetch, debounce ticks, key and mouse events all arrive as messages
// into Model.Update. Because the loop is single-threaded, the query
// state has exactly one writer at a time even though three mechanisms
// mutate it (direct key bindings, the debounced search commit, and the
// scroll advancer).
//
// # Derivation
//
// Update never edits the displayed records directly. Every mutation
// ends in rederive(), which recomputes the full view from the loaded
// collection plus the query state and then re-clamps the page index
// against the fresh page count. The displayed page is always a pure
// function of (collection, query).
//
// # Debounce
//
// Search keystrokes do not commit. Each one bumps a generation counter
// and schedules a tick carrying that generation and the value typed so
// far; when the tick lands, it commits only if its generation is still
// current. A superseded tick is dropped on arrival, so only the last
// value of a burst ever commits, and quitting the program drops any
// pending tick outright.
//
// # Scroll Advancement
//
// The record pane is a bubbles viewport showing only the current
// page's slice. After a downward scroll event, if fewer than the
// configured number of lines remain below the fold and more pages
// exist, the page index advances by one and the pane resets to the top
// of the new page. It never advances past the last page and never
// moves backward on its own.
package ui
