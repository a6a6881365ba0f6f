package magic

import (
	"path/filepath"
	"testing"
)

func TestDefaultCachePathHonorsCacheDirOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "custom")
	t.Setenv("CORVIDCHESS_CACHE_DIR", dir)
	t.Setenv("CORVIDCHESS_NO_CACHE", "")

	path := DefaultCachePath()
	if filepath.Dir(path) != dir {
		t.Errorf("DefaultCachePath() = %q, want a file under %q", path, dir)
	}
}

func TestDefaultCachePathHonorsNoCache(t *testing.T) {
	t.Setenv("CORVIDCHESS_NO_CACHE", "1")
	if got := DefaultCachePath(); got != "" {
		t.Errorf("DefaultCachePath() = %q, want empty when CORVIDCHESS_NO_CACHE is set", got)
	}
}
