package catalog

// Package catalog discovers characters, animations, and frame files in the
// root/<character>/<animation>/<frame>.png directory layout. Scans are
// synchronous snapshot reads; nothing is cached and nothing is written back
// to disk.
