package commands

import (
	"flag"
	"fmt"
)

// Town is what the console can drive in the running viewer.
type Town interface {
	// Goto moves the camera to look at the entity with the given id.
	Goto(id string) error
	// Select pins the selection to id.
	Select(id string) error
	SetLabels(on bool)
	SetFPS(on bool)
	SetGrid(on bool)
}

// RegisterTown adds the viewer commands: goto, select, labels, fps and grid.
func RegisterTown(r *Registry, t Town) {
	r.Register("goto", "<id>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("goto: expected one entity id")
		}
		return t.Goto(args[0])
	})
	r.Register("select", "<id>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("select: expected one entity id")
		}
		return t.Select(args[0])
	})
	toggle("labels", r, t.SetLabels)
	toggle("fps", r, t.SetFPS)
	toggle("grid", r, t.SetGrid)
}

func toggle(name string, r *Registry, set func(bool)) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	on := fs.Bool("on", true, "enable "+name)
	r.Register(name, "-on=<bool>", fs, func([]string) error {
		set(*on)
		return nil
	})
}
