package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
)

func TestPromptVersion_NonTTY(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdin")
	gt.NoError(t, os.WriteFile(path, []byte("2023.4.1\n"), 0644))

	in, err := os.Open(path)
	gt.NoError(t, err)
	defer in.Close()

	var out bytes.Buffer
	version, err := promptVersion(in, &out)

	// A regular file is not a terminal: no prompt, version stays blank.
	gt.NoError(t, err)
	gt.Equal(t, version, "")
	gt.Equal(t, out.Len(), 0)
}
