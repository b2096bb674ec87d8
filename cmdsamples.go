package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
)

var sampleLevels = []int{0, 25, 50, 75, 100}

type SamplesCmd struct {
	TemplateFlags `embed:""`

	Template   string `name:"template" help:"Template svg file, defaults to the built in battery." type:"existingfile"`
	Foreground Color  `name:"foreground" help:"Foreground color as six hex digits."`
	Size       int    `name:"size" help:"Longest side of the PNGs in pixels, 0 keeps the template size." default:"128"`
	NoPng      bool   `name:"no-png" help:"Only write svg files."`

	Dir string `arg:"" name:"dir" help:"Output directory" type:"path"`
}

func (cmd *SamplesCmd) Run() error {
	template := defaultTemplate
	if cmd.Template != "" {
		var err error
		if template, err = os.ReadFile(cmd.Template); err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}
	}

	if err := os.MkdirAll(cmd.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	editor := cmd.Editor()
	for _, pct := range sampleLevels {
		for _, charging := range []bool{false, true} {
			name := fmt.Sprintf("battery-%d", pct)
			if charging {
				name += "-charging"
			}
			VPrintf("rendering %s\n", name)

			doc := etree.NewDocument()
			if err := doc.ReadFromBytes(template); err != nil {
				return fmt.Errorf("failed to parse template: %w", err)
			}
			cfg := Config{Level: float64(pct) / 100, Charging: charging, Foreground: string(cmd.Foreground)}
			if err := editor.Apply(doc, cfg); err != nil {
				return fmt.Errorf("failed to render %s: %w", name, err)
			}

			dst := filepath.Join(cmd.Dir, name+".svg")
			if err := doc.WriteToFile(dst); err != nil {
				return fmt.Errorf("failed to write svg file %s: %w", dst, err)
			}
			if !cmd.NoPng {
				if err := writePNG(doc, filepath.Join(cmd.Dir, name+".png"), cmd.Size); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
