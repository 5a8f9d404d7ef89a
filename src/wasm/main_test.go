//go:build js && wasm

package main

import (
	"errors"
	"syscall/js"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntArgs(t *testing.T) {
	got, err := intArgs([]js.Value{js.ValueOf(3), js.ValueOf(4)}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, got)

	_, err = intArgs([]js.Value{js.ValueOf(3), js.ValueOf("x")}, 2)
	assert.True(t, errors.Is(err, errNotNumber), "%v", err)

	_, err = intArgs([]js.Value{js.ValueOf(3)}, 2)
	assert.Error(t, err)
}

func TestSessionCells(t *testing.T) {
	require.NoError(t, session.New(3, 2, true))
	require.NoError(t, session.u.ToggleCell(1, 2))

	arr := session.Cells()
	require.Equal(t, 6, arr.Length())
	got := make([]byte, 6)
	js.CopyBytesToGo(got, arr)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 1}, got)
}
