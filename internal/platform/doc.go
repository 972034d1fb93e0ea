package platform

// Package platform contains OS integration helpers: revealing a frame file in
// the system file manager and opening it with the default image viewer.
