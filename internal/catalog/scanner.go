package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ytget/frame-player/internal/logger"
	"github.com/ytget/frame-player/internal/model"
)

// FramesSubdir is an optional nested directory that holds the frame files
// when the animation directory itself only carries metadata.
const FramesSubdir = "frames"

// Frame image extensions recognized by the scanner
var frameExtensions = []string{".png", ".jpg", ".jpeg"}

// Scanner lists catalog entries under a fixed root directory
type Scanner struct {
	root string
}

// NewScanner creates a scanner for the given root directory
func NewScanner(root string) *Scanner {
	return &Scanner{root: root}
}

// Root returns the root directory this scanner reads from
func (s *Scanner) Root() string {
	return s.root
}

// ListCharacters lists the immediate subdirectories of the root in name order.
// Returns NotFoundError when the root is missing or not a directory.
func (s *Scanner) ListCharacters() ([]model.Character, error) {
	entries, err := readDirSorted(s.root)
	if err != nil {
		return nil, err
	}

	var characters []model.Character
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		characters = append(characters, model.Character{
			Name: entry.Name(),
			Path: filepath.Join(s.root, entry.Name()),
		})
	}

	logger.Sugar.Debugf("scanned %d characters under %s", len(characters), s.root)
	return characters, nil
}

// ListAnimations lists the animation subdirectories of a character in name
// order. Returns NotFoundError when the character directory is missing.
func (s *Scanner) ListAnimations(character string) ([]model.Animation, error) {
	dir := filepath.Join(s.root, character)
	entries, err := readDirSorted(dir)
	if err != nil {
		return nil, err
	}

	var animations []model.Animation
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		animations = append(animations, model.Animation{
			Name:      entry.Name(),
			Character: character,
			Path:      filepath.Join(dir, entry.Name()),
		})
	}

	logger.Sugar.Debugf("scanned %d animations for character %s", len(animations), character)
	return animations, nil
}

// ListFrames lists the frame image files of an animation in playback order.
// Frames are read from the animation directory itself, or from a nested
// "frames" directory when one exists. Returns NotFoundError when the
// animation directory is missing and EmptyAnimationError when no frame
// images are found.
func (s *Scanner) ListFrames(character, animation string) (*model.FrameSequence, error) {
	dir := filepath.Join(s.root, character, animation)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, &NotFoundError{Path: dir}
	}

	// Prefer the nested frames directory when present
	searchDir := dir
	nested := filepath.Join(dir, FramesSubdir)
	if info, err := os.Stat(nested); err == nil && info.IsDir() {
		searchDir = nested
	}

	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return nil, &NotFoundError{Path: searchDir}
	}

	var frames []string
	for _, entry := range entries {
		if entry.IsDir() || !isFrameFile(entry.Name()) {
			continue
		}
		frames = append(frames, filepath.Join(searchDir, entry.Name()))
	}

	if len(frames) == 0 {
		return nil, &EmptyAnimationError{Path: dir}
	}

	sortFrames(frames)

	logger.Sugar.Debugf("scanned %d frames for %s/%s", len(frames), character, animation)
	return &model.FrameSequence{Animation: animation, Frames: frames}, nil
}

// readDirSorted reads a directory, mapping missing paths to NotFoundError.
// os.ReadDir already returns entries sorted by filename.
func readDirSorted(dir string) ([]os.DirEntry, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &NotFoundError{Path: dir}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &NotFoundError{Path: dir}
	}
	return entries, nil
}

// isFrameFile reports whether a filename has a recognized frame extension
func isFrameFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, fe := range frameExtensions {
		if ext == fe {
			return true
		}
	}
	return false
}

// sortFrames orders frame paths by the numeric value embedded in the file
// stem when one exists, falling back to lexicographic order. Zero-padded
// names like frame001.png sort the same either way; unpadded names like
// frame10.png sort after frame2.png only with the numeric key.
func sortFrames(frames []string) {
	sort.SliceStable(frames, func(i, j int) bool {
		ni, oki := frameNumber(frames[i])
		nj, okj := frameNumber(frames[j])
		if oki && okj && ni != nj {
			return ni < nj
		}
		if oki != okj {
			return oki // numbered frames before unnumbered ones
		}
		return filepath.Base(frames[i]) < filepath.Base(frames[j])
	})
}

// frameNumber extracts the integer formed by the digits in the file stem
func frameNumber(path string) (int, bool) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	n := 0
	found := false
	for _, r := range stem {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			found = true
		}
	}
	return n, found
}
