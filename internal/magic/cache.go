package magic

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/corvidchess/engine/internal/mask"
	"github.com/corvidchess/engine/internal/square"
)

// cacheVersion is bumped whenever the encoded shape changes; a mismatch is
// treated the same as a missing or unparseable file (regenerate).
const cacheVersion = 1

// cacheFile is the on-disk, self-describing TOML encoding of an
// AttackTables: the three 64-entry arrays, plus a version tag.
type cacheFile struct {
	Version int           `toml:"version"`
	Rook    [64]cacheMagic `toml:"rook"`
	Bishop  [64]cacheMagic `toml:"bishop"`
	Knight  [64]uint64     `toml:"knight"`
}

type cacheMagic struct {
	Mask       uint64   `toml:"mask"`
	Multiplier uint64   `toml:"multiplier"`
	Shift      uint8    `toml:"shift"`
	Patterns   []uint64 `toml:"patterns"`
}

// DefaultCachePath returns the attack-table cache's file path, creating its
// parent directory on demand. The directory defaults to a stable subpath of
// the platform home directory but can be overridden with
// CORVIDCHESS_CACHE_DIR; setting CORVIDCHESS_NO_CACHE to any non-empty
// value disables the cache entirely (an empty return). Directory-creation
// or lookup failures also degrade to an empty path, which LoadOrBuild
// treats as "no cache available" rather than a fatal error.
func DefaultCachePath() string {
	if os.Getenv("CORVIDCHESS_NO_CACHE") != "" {
		return ""
	}

	dir := os.Getenv("CORVIDCHESS_CACHE_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Printf("magic: could not resolve home directory, disabling cache: %v", err)
			return ""
		}
		dir = filepath.Join(home, ".cache", "corvidchess")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("magic: could not create cache directory %s: %v", dir, err)
		return ""
	}
	return filepath.Join(dir, "attack-tables.toml")
}

// LoadOrBuild is the normal entry point: it attempts to read and decode path
// as a cache file, adopting it if the file exists, parses, and is
// structurally consistent (right entry counts, each mask/shift/pattern
// length coherent with the others). On any of those failures it logs the
// reason and falls back to building fresh tables with New, then makes a
// best-effort attempt to write them back to path for next time.
func LoadOrBuild(path string) *AttackTables {
	if path != "" {
		if t, err := load(path); err == nil {
			return t
		} else {
			log.Printf("magic: cache unusable (%v), regenerating", err)
		}
	}

	t := New()

	if path != "" {
		if err := save(path, t); err != nil {
			log.Printf("magic: could not write attack-table cache to %s: %v", path, err)
		}
	}

	return t
}

func load(path string) (*AttackTables, error) {
	var cf cacheFile
	if _, err := toml.DecodeFile(path, &cf); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if cf.Version != cacheVersion {
		return nil, fmt.Errorf("cache version %d, want %d", cf.Version, cacheVersion)
	}

	t := &AttackTables{}
	for sq := square.A1; sq <= square.H8; sq++ {
		rook, err := cf.Rook[sq].toAttackMagic()
		if err != nil {
			return nil, fmt.Errorf("rook square %s: %w", sq, err)
		}
		t.Rook[sq] = rook

		bishop, err := cf.Bishop[sq].toAttackMagic()
		if err != nil {
			return nil, fmt.Errorf("bishop square %s: %w", sq, err)
		}
		t.Bishop[sq] = bishop

		t.Knight[sq] = mask.BoardMask(cf.Knight[sq])
	}
	return t, nil
}

// toAttackMagic validates that the pattern array's length and the shift
// both match what Mask's popcount plus the fixed slack implies, rejecting a
// structurally inconsistent entry rather than silently serving a corrupt
// table.
func (c cacheMagic) toAttackMagic() (AttackMagic, error) {
	n := mask.BoardMask(c.Mask).PopCount()
	wantLen := 1 << uint(n+slack)
	if len(c.Patterns) != wantLen {
		return AttackMagic{}, fmt.Errorf("pattern array has %d entries, want %d", len(c.Patterns), wantLen)
	}
	if wantShift := 64 - (n + slack); int(c.Shift) != wantShift {
		return AttackMagic{}, fmt.Errorf("shift is %d, want %d", c.Shift, wantShift)
	}

	patterns := make([]mask.BoardMask, len(c.Patterns))
	for i, p := range c.Patterns {
		patterns[i] = mask.BoardMask(p)
	}
	return AttackMagic{
		Mask:       mask.BoardMask(c.Mask),
		Multiplier: c.Multiplier,
		Shift:      c.Shift,
		Patterns:   patterns,
	}, nil
}

func save(path string, t *AttackTables) error {
	cf := cacheFile{Version: cacheVersion}
	for sq := square.A1; sq <= square.H8; sq++ {
		cf.Rook[sq] = fromAttackMagic(t.Rook[sq])
		cf.Bishop[sq] = fromAttackMagic(t.Bishop[sq])
		cf.Knight[sq] = uint64(t.Knight[sq])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cf)
}

func fromAttackMagic(m AttackMagic) cacheMagic {
	patterns := make([]uint64, len(m.Patterns))
	for i, p := range m.Patterns {
		patterns[i] = uint64(p)
	}
	return cacheMagic{
		Mask:       uint64(m.Mask),
		Multiplier: m.Multiplier,
		Shift:      m.Shift,
		Patterns:   patterns,
	}
}
