package main

import (
	"fmt"
	"os"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"

	"github.com/glibgo/glib-go/pkg/gio/unixmounts"
	"github.com/glibgo/glib-go/pkg/glib"
)

var mountArgs struct {
	All bool `flag:"all,Include system-internal mounts"`
}

func main() {
	root := &command.C{
		Name:  "glibtool",
		Usage: "command args...",
		Help:  "Inspect the glib-go bindings and the Unix mount tables.",
		Commands: []*command.C{
			{
				Name: "version",
				Help: "Print the wrapper and GLib runtime versions.",
				Run:  command.Adapt(runVersion),
			},
			{
				Name:     "mounts",
				Help:     "List active mount entries.",
				SetFlags: command.Flags(flax.MustBind, &mountArgs),
				Run:      command.Adapt(runMounts),
			},
			{
				Name:  "mountpoints",
				Usage: "mountpoints [path]",
				Help:  "List configured mount points, or show the one at path.",
				Run:   runMountPoints,
			},
			command.HelpCommand(nil),
		},
	}
	command.RunOrFail(root.NewEnv(nil), os.Args[1:])
}

func runVersion(env *command.Env) error {
	fmt.Printf("glib-go %s\n", glib.WrapperVersion())
	if v := glib.RuntimeVersion(); v != "" {
		fmt.Printf("glib %s\n", v)
	} else {
		fmt.Println("glib: native bindings not linked")
	}
	return nil
}

func runMounts(env *command.Env) error {
	entries, err := unixmounts.Entries()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !mountArgs.All && e.IsSystemInternal() {
			continue
		}
		fmt.Printf("%s on %s type %s (%s)\n", e.DevicePath, e.MountPath, e.FSType, e.Options)
	}
	return nil
}

func runMountPoints(env *command.Env) error {
	if len(env.Args) > 0 {
		p, read, err := unixmounts.At(env.Args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s on %s type %s (%s), table read %s\n",
			p.DevicePath, p.MountPath, p.FSType, p.Options, read.Format("2006-01-02 15:04:05"))
		return nil
	}

	points, err := unixmounts.Points()
	if err != nil {
		return err
	}
	for _, p := range points {
		fmt.Printf("%s on %s type %s (%s)\n", p.DevicePath, p.MountPath, p.FSType, p.Options)
	}
	return nil
}
