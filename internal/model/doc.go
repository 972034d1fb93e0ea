package model

// Package model defines domain data structures used across the app: catalog
// entities (characters, animations, frame sequences) and the playback status
// enum. Catalog structures are read-only snapshots of the filesystem at scan
// time; the UI and the playback service never mutate them.
