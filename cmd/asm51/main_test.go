package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/asm51/problem"
)

func execute(t *testing.T, source string, args ...string) (dir string, stderr string, err error) {
	dir = t.TempDir()
	path := filepath.Join(dir, "prog.asm")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))

	buf := &bytes.Buffer{}
	cmd := newCommand()
	cmd.SetErr(buf)
	cmd.SetOut(buf)
	cmd.SetArgs(append(args, path))
	err = cmd.Execute()
	stderr = buf.String()
	return
}

const program = `; counts down
start:  mov a, #10h
loop:   djnz r2, loop
        sjmp start
        ljmp done
table:  .db 1, 2, 3
done:   mov dptr, #table
        ret
`

func TestMainHex(t *testing.T) {
	assert := assert.New(t)

	dir, stderr, err := execute(t, program)
	require.NoError(t, err)
	assert.Empty(stderr)

	data, err := os.ReadFile(filepath.Join(dir, "prog.hex"))
	require.NoError(t, err)
	assert.Equal(":100000007410DAFE80FA02000C010203900009224B\n:00000001FF\n", string(data))
}

func TestMainRecordSize(t *testing.T) {
	assert := assert.New(t)

	dir, _, err := execute(t, program, "--record-size", "8", "--byte-wrap")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "prog.hex"))
	require.NoError(t, err)
	assert.Equal(":080000007410DAFE80FA020020\n"+
		":080008000C0102039000092223\n"+
		":00000001FF\n", string(data))

	_, _, err = execute(t, program, "--record-size", "0")
	assert.Error(err)
}

func TestMainRaw(t *testing.T) {
	assert := assert.New(t)

	dir, _, err := execute(t, "nop\n.org 2\nret\n", "--raw")
	require.NoError(t, err)
	assert.NoFileExists(filepath.Join(dir, "prog.hex"))

	data, err := os.ReadFile(filepath.Join(dir, "prog.bin"))
	require.NoError(t, err)
	assert.Equal([]byte{0x00, 0xff, 0x22}, data)
}

func TestMainDefine(t *testing.T) {
	assert := assert.New(t)

	dir, stderr, err := execute(t, "mov a, #VALUE\n", "-D", "VALUE=10h")
	require.NoError(t, err)
	assert.Empty(stderr)

	data, err := os.ReadFile(filepath.Join(dir, "prog.hex"))
	require.NoError(t, err)
	assert.Equal(":0200000074107A\n:00000001FF\n", string(data))
}

func TestMainConfig(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	toml := filepath.Join(dir, "asm51.toml")
	require.NoError(t, os.WriteFile(toml, []byte("register-bank = 1\n"), 0o644))

	out := filepath.Join(dir, "push.hex")
	_, stderr, err := execute(t, "push r0\n", "--config", toml, "-o", out)
	require.NoError(t, err)
	assert.Empty(stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(":02000000C00836\n:00000001FF\n", string(data))

	_, _, err = execute(t, "push r0\n", "--set", "register-bank")
	assert.Error(err)

	_, _, err = execute(t, "push r0\n", "--set", "register-bank=9")
	assert.Error(err)
}

func TestMainProblems(t *testing.T) {
	assert := assert.New(t)

	dir, stderr, err := execute(t, "foo a\n        add a, r1, r2\n")
	assert.Equal(problem.ErrProblems(1), err)
	assert.NoFileExists(filepath.Join(dir, "prog.hex"))

	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	if assert.Len(lines, 2) {
		assert.True(strings.HasSuffix(lines[0], "prog.asm:1: error: unknown mnemonic 'foo' (at 'foo')"), lines[0])
		assert.True(strings.HasSuffix(lines[1], "prog.asm:2: warning: unnecessary trailing operand for add (at 'r2')"), lines[1])
	}

	_, _, err = execute(t, "nop\n", "--set", "trailing-operand=error")
	assert.NoError(err)
}
