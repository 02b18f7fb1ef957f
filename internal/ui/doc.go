// Package ui provides the user interface components for the simshare TUI.
//
// # Overview
//
// The ui package implements the visual components of simshare using the Bubble
// Tea framework and Lipgloss styling library. Components hold no domain state
// of their own; they bind to the framework-independent types in the chat,
// share and catalog packages and render them.
//
// # Layout System
//
// The home view stacks the animated banner over the simulation list. The
// detail view splits the content area in two:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────┬───────────────────────────────────┤
//	│  Summary        │                                   │
//	│  Friends        │         Chat Panel                │
//	│  (1/3 width)    │         (2/3 width)               │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Application title and the open simulation over a gradient.
//
// Footer: Context-aware keyboard shortcuts and a transient flash message.
//
// Home: Simulation list with keyboard navigation and the banner.
//
// Detail: Simulation summary and the friends list with initials avatars and
// status badges.
//
// ChatPanel: Message history in a viewport plus a textarea bound to a
// chat.Composer. Enter submits, Shift+Enter inserts a newline.
//
// Modal: Popup container for the states in the modals package (share,
// invite, settings, help, welcome).
//
// # Styles
//
// All styles are defined in styles.go and regenerated from the active Theme
// by SetTheme.
package ui
