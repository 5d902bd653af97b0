// Command ssiat drives the language front end: it checks sources and dumps
// the canonical tree the evaluator consumes.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/profile"
)

type cli struct {
	Verbose bool   `help:"Log stage timing and details to stderr." short:"v"`
	NoColor bool   `help:"Disable colored diagnostics."`
	Profile string `help:"Write a cpu or mem profile into the working directory." enum:",cpu,mem" default:""`

	Units []string `help:"Extra unit-table YAML files." placeholder:"FILE" type:"existingfile"`
	Seeds []string `help:"Extra seed-signature YAML files." placeholder:"FILE" type:"existingfile"`

	Check checkCmd `cmd:"" default:"withargs" help:"Parse and validate source files."`
	Dump  dumpCmd  `cmd:"" help:"Print a source file's canonical tree."`
}

func main() {
	var c cli
	ktx := kong.Parse(&c,
		kong.Name("ssiat"),
		kong.Description("씨앗 언어 앞단: 구문, 결속, 단위 검사"),
		kong.UsageOnError(),
	)
	ktx.FatalIfErrorf(run(&c, ktx))
}

func run(c *cli, ktx *kong.Context) error {
	if c.Profile != "" {
		defer startProfile(c.Profile).Stop()
	}

	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return ktx.Run(c)
}

func startProfile(mode string) interface{ Stop() } {
	if mode == "mem" {
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
	}
	return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
}
