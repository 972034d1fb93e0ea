package ui

// Package ui contains the Fyne-based desktop user interface for the frame
// player. It wires user interactions (selection widgets, transport buttons,
// keyboard shortcuts) to the catalog scanner and the playback engine, and
// renders the current frame. All UI strings are localized via Localization.
