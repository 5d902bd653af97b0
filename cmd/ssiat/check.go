package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ssiat-lang/ssiat/internal/config"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/front"
)

type checkCmd struct {
	Paths []string `arg:"" help:"Source files (.ssi)." type:"existingfile"`
	JSON  bool     `help:"Emit a machine-readable report on stdout." name:"json"`
}

type checkReport struct {
	RunID string       `json:"run_id"`
	Files []fileReport `json:"files"`
}

type fileReport struct {
	Path   string        `json:"path"`
	Errors []errorReport `json:"errors,omitempty"`
}

type errorReport struct {
	Code    string `json:"code"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

func (cmd *checkCmd) Run(c *cli) error {
	reg, sigs, err := c.registries()
	if err != nil {
		return err
	}

	renderer := diagnostics.NewRenderer(!c.NoColor && diagnostics.WantColor(os.Stderr))
	report := checkReport{RunID: uuid.NewString()}
	failed := 0
	for _, path := range cmd.Paths {
		if !config.IsSourceFile(path) {
			slog.Warn("unrecognized extension", "file", path, "want", config.SourceFileExt)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		src := string(data)

		begin := time.Now()
		ctx := front.Run(path, src, front.WithUnits(reg), front.WithSeeds(sigs))
		slog.Debug("checked", "file", path, "errors", len(ctx.Errors), "elapsed", time.Since(begin))

		fr := fileReport{Path: path}
		for _, e := range ctx.Errors {
			line, col := diagnostics.Position(src, e.Span.Start)
			fr.Errors = append(fr.Errors, errorReport{
				Code:    string(e.Code),
				Line:    line,
				Column:  col,
				Message: e.Message,
			})
			if !cmd.JSON {
				renderer.Render(os.Stderr, src, path, e)
			}
		}
		if len(ctx.Errors) > 0 {
			failed++
		}
		report.Files = append(report.Files, fr)
	}

	if cmd.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d개 파일에서 오류가 났습니다", failed)
	}
	return nil
}
