package debugfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/b26c/internal/bast"
)

func TestFormatEntity(t *testing.T) {
	testCases := []struct {
		name     string
		entity   bast.Entity
		expected string
	}{
		{"no args", bast.Entity{Command: "foo"}, "foo;"},
		{"empty args slice", bast.Entity{Command: "foo", Args: []string{}}, "foo;"},
		{"single arg", bast.Entity{Command: "print", Args: []string{"x"}}, "print ?? (x);"},
		{"two args", bast.Entity{Command: "greet", Args: []string{"name", "Bob"}}, "greet ?? (name, Bob);"},
		{"untrimmed command", bast.Entity{Command: " go ", Args: []string{"a"}}, " go  ?? (a);"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatEntity(tc.entity))
		})
	}
}

func sampleBAST() *bast.BAST {
	return &bast.BAST{
		Imports: []string{"io"},
		Entities: []bast.Entity{
			{Command: "greet", Args: []string{"name", "Bob"}},
			{Command: "halt"},
		},
		References: []string{
			"start:2;",
			"end:5;",
			"endcode:5;",
			"bootstrapver:b26;",
			"bootstraprqcomp:b26c;",
			"bootstrapast:b26bast;",
		},
		Details: []string{
			"projectname=demo.btsp",
			"compile-start:1700000000",
			"num-entities:2",
		},
		Raw: []string{"#import io", "#start", "greet??(name, Bob)", "", "halt", "#end"},
	}
}

const sampleOutput = `;;details
projectname=demo.btsp
compile-start:1700000000
num-entities:2
;;raw
#import io
#start
greet??(name, Bob)

halt
#end
;;imports
io
;;entities
greet ?? (name, Bob);
halt;
;;references
start:2;
end:5;
endcode:5;
bootstrapver:b26;
bootstraprqcomp:b26c;
bootstrapast:b26bast;
`

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleBAST()))
	assert.Equal(t, sampleOutput, buf.String())
}

func TestWrite_EmptyBAST(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, bast.New(nil)))
	assert.Equal(t, ";;details\n;;raw\n;;imports\n;;entities\n;;references\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("no space left on device")
}

func TestWrite_PropagatesWriterErrors(t *testing.T) {
	err := Write(failingWriter{}, sampleBAST())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no space left on device")
}

func TestWriteFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "main")

	path, err := WriteFile(base, sampleBAST())
	require.NoError(t, err)
	assert.Equal(t, base+".btspdebug", path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleOutput, string(content))
}

func TestWriteFile_Overwrites(t *testing.T) {
	base := filepath.Join(t.TempDir(), "main")
	require.NoError(t, os.WriteFile(FileName(base), []byte("stale content that is longer than the new file\n"), 0o644))

	_, err := WriteFile(base, bast.New(nil))
	require.NoError(t, err)

	content, err := os.ReadFile(FileName(base))
	require.NoError(t, err)
	assert.Equal(t, ";;details\n;;raw\n;;imports\n;;entities\n;;references\n", string(content))
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "does", "not", "exist", "main")

	_, err := WriteFile(base, sampleBAST())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create debug file")
}
