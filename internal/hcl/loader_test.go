package hcl

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/b26c/internal/config"
	"github.com/vk/b26c/internal/testutil"
)

func TestLoader_Load(t *testing.T) {
	src := config.Source{Path: "src/hello.btsp", Dir: "src", Stem: "hello"}

	testCases := []struct {
		name      string
		content   string
		expectErr string
		expected  *config.Project
	}{
		{
			name:     "empty file",
			content:  "",
			expected: &config.Project{},
		},
		{
			name:     "literal output",
			content:  `output = "debug"`,
			expected: &config.Project{OutputBase: "debug"},
		},
		{
			name:     "output from source variables",
			content:  `output = "build/${source.stem}"`,
			expected: &config.Project{OutputBase: "build/hello"},
		},
		{
			name:     "output from source dir",
			content:  `output = "${source.dir}/${source.stem}.out"`,
			expected: &config.Project{OutputBase: "src/hello.out"},
		},
		{
			name:     "number output is converted",
			content:  `output = 26`,
			expected: &config.Project{OutputBase: "26"},
		},
		{
			name: "logging block",
			content: `
				logging {
					level  = "debug"
					format = "json"
				}
			`,
			expected: &config.Project{LogLevel: "debug", LogFormat: "json"},
		},
		{
			name: "logging values are lowercased",
			content: `
				logging {
					level  = "DEBUG"
					format = "Json"
				}
			`,
			expected: &config.Project{LogLevel: "debug", LogFormat: "json"},
		},
		{
			name: "everything",
			content: `
				output = source.stem
				logging {
					level = "warn"
				}
			`,
			expected: &config.Project{OutputBase: "hello", LogLevel: "warn"},
		},
		{
			name:      "syntax error",
			content:   `output = "unterminated`,
			expectErr: "failed to parse HCL file",
		},
		{
			name:      "unknown attribute",
			content:   `workers = 10`,
			expectErr: "failed to decode HCL file",
		},
		{
			name:      "unknown variable",
			content:   `output = nope.stem`,
			expectErr: "failed to evaluate \"output\"",
		},
		{
			name:      "list cannot become a string",
			content:   `output = ["a", "b"]`,
			expectErr: "cannot convert \"output\"",
		},
		{
			name: "duplicate logging blocks",
			content: `
				logging {}
				logging {}
			`,
			expectErr: "failed to decode HCL file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			path := testutil.WriteSource(t, "b26c.hcl", tc.content)

			// --- Act ---
			project, err := NewLoader().Load(context.Background(), path, src)

			// --- Assert ---
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			tc.expected.Path = path
			if diff := cmp.Diff(tc.expected, project); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b26c.hcl")

	_, err := NewLoader().Load(context.Background(), path, config.NewSource("main.btsp"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file")
}
