package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vk/b26c/internal/debugfile"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteFiles writes every name -> content pair below dir, creating parent
// directories as needed, and returns dir. Names are slash-separated relative
// paths such as "src/main.btsp".
func WriteFiles(t *testing.T, dir string, files map[string]string) string {
	t.Helper()
	for name, content := range files {
		filePath := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}
	return dir
}

// WriteSource writes a single source file into a fresh temporary directory and
// returns its path.
func WriteSource(t *testing.T, name, content string) string {
	t.Helper()
	dir := WriteFiles(t, t.TempDir(), map[string]string{name: content})
	return filepath.Join(dir, filepath.FromSlash(name))
}

// ReadDebugFile returns the content of the debug file written for base.
func ReadDebugFile(t *testing.T, base string) string {
	t.Helper()
	content, err := os.ReadFile(debugfile.FileName(base))
	require.NoError(t, err, "debug file should exist for base %q", base)
	return string(content)
}

// FixedClock returns a clock that always reports the given Unix second.
func FixedClock(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}

// Chdir changes the working directory to dir and restores the previous one
// when the test finishes. It stands in for testing.T.Chdir, which requires
// Go 1.24.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
