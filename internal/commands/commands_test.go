package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"town-explorer/internal/commands"
)

type fakeTown struct {
	went, selected string
	labels, fps    *bool
	grid           *bool
}

func (f *fakeTown) Goto(id string) error {
	if id == "missing" {
		return errors.New("no such entity")
	}
	f.went = id
	return nil
}

func (f *fakeTown) Select(id string) error { f.selected = id; return nil }
func (f *fakeTown) SetLabels(on bool)      { f.labels = &on }
func (f *fakeTown) SetFPS(on bool)         { f.fps = &on }
func (f *fakeTown) SetGrid(on bool)        { f.grid = &on }

func run(t *testing.T, r *commands.Registry, line string) error {
	t.Helper()
	args, ok := commands.Parse(line)
	require.True(t, ok, line)
	return r.Execute(args)
}

func TestParse(t *testing.T) {
	args, ok := commands.Parse("cmd goto  bakery ")
	assert.True(t, ok)
	assert.Equal(t, []string{"goto", "bakery"}, args)

	_, ok = commands.Parse("hello there")
	assert.False(t, ok)

	args, ok = commands.Parse("cmd ")
	assert.True(t, ok)
	assert.Empty(t, args)
}

func TestTownCommands(t *testing.T) {
	town := &fakeTown{}
	r := commands.NewRegistry()
	commands.RegisterTown(r, town)

	require.NoError(t, run(t, r, "cmd goto bakery"))
	assert.Equal(t, "bakery", town.went)

	require.NoError(t, run(t, r, "cmd select hall"))
	assert.Equal(t, "hall", town.selected)

	require.NoError(t, run(t, r, "cmd labels -on=false"))
	require.NotNil(t, town.labels)
	assert.False(t, *town.labels)

	require.NoError(t, run(t, r, "cmd fps"))
	require.NotNil(t, town.fps)
	assert.True(t, *town.fps)

	require.NoError(t, run(t, r, "cmd grid -on=true"))
	assert.True(t, *town.grid)
}

func TestTownCommandErrors(t *testing.T) {
	r := commands.NewRegistry()
	commands.RegisterTown(r, &fakeTown{})

	assert.Error(t, run(t, r, "cmd goto"))
	assert.Error(t, run(t, r, "cmd goto missing"))
	assert.Error(t, run(t, r, "cmd fly"))
	assert.Error(t, run(t, r, "cmd labels -on=maybe"))
	assert.Error(t, r.Execute(nil))
}

func TestHelpIsSorted(t *testing.T) {
	r := commands.NewRegistry()
	commands.RegisterTown(r, &fakeTown{})
	assert.Equal(t, []string{"fps", "goto", "grid", "labels", "select"}, r.Names())
	assert.Equal(t, "cmd fps -on=<bool>", r.Help()[0])
}
