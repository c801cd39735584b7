// Package ui implements periscope's Bubble Tea terminal interface: an
// entry list with a detail pane, a raw tail view, search, level filters,
// and themes. It reads snapshots from the state store on a tick and never
// touches the filesystem itself; slow work such as icon resolution runs in
// background commands whose results re-enter the update loop as messages.
package ui
