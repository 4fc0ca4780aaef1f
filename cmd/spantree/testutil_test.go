package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const triangleYAML = `title: triangle
nodes:
  - {name: A, x: 0, y: 0}
  - {name: B, x: 1, y: 0}
  - {name: C, x: 0, y: 1.5}
edges:
  - {from: A, to: B, weight: 1}
  - {from: B, to: C, weight: 2}
  - {from: A, to: C, weight: 3}
`

const islandsYAML = `nodes:
  - {name: A}
  - {name: B}
  - {name: C}
  - {name: D}
edges:
  - {from: A, to: B, weight: 1}
  - {from: C, to: D, weight: 1}
`

// memFs returns an in-memory filesystem holding the given files.
func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(body), 0o644))
	}

	return fs
}

// bufferedCmd returns a bare command whose stdout is captured.
func bufferedCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)

	return cmd, buf
}
