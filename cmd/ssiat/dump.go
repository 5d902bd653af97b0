package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/front"
)

type dumpCmd struct {
	Path   string `arg:"" help:"Source file." type:"existingfile"`
	Format string `help:"Output format." enum:"yaml,json" default:"yaml"`
}

func (cmd *dumpCmd) Run(c *cli) error {
	reg, sigs, err := c.registries()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(cmd.Path)
	if err != nil {
		return err
	}
	src := string(data)

	canon, err := front.Parse(cmd.Path, src, front.WithUnits(reg), front.WithSeeds(sigs))
	if err != nil {
		if pe, ok := err.(*diagnostics.ParseError); ok {
			renderer := diagnostics.NewRenderer(!c.NoColor && diagnostics.WantColor(os.Stderr))
			renderer.Render(os.Stderr, src, cmd.Path, pe)
			return fmt.Errorf("구문 검사가 실패했습니다")
		}
		return err
	}

	doc := encodeCanon(canon)
	switch cmd.Format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}
}
