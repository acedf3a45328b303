package commands

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToOrdinalRejectsOutOfDomain(t *testing.T) {
	cmd := toOrdinalCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"9223372036854775807"})
	require.Error(t, cmd.Execute())
}

func TestToOrdinalInDomain(t *testing.T) {
	cmd := toOrdinalCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"11016"})
	require.NoError(t, cmd.Execute())
}

func TestToDateWideRejectsOutOfDomain(t *testing.T) {
	cmd := toDateCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--wide", "--", "-9223372036854775808"})
	require.Error(t, cmd.Execute())
}
