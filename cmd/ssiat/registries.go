package main

import (
	"fmt"
	"os"

	"github.com/ssiat-lang/ssiat/internal/seedlib"
	"github.com/ssiat-lang/ssiat/internal/units"
)

// registries loads the builtin tables plus whatever extension files the
// flags name. Units layer onto one registry; seed signatures are handed to
// the resolver to define ahead of user seeds.
func (c *cli) registries() (*units.Registry, []*seedlib.Signature, error) {
	reg := units.Std()
	for _, path := range c.Units {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		if err := reg.LoadYAML(data); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	var sigs []*seedlib.Signature
	for _, path := range c.Seeds {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		loaded, err := seedlib.LoadYAML(data)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		sigs = append(sigs, loaded...)
	}
	return reg, sigs, nil
}
