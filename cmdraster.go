package main

import (
	"fmt"
	"os"
)

type RasterCmd struct {
	Src  string `arg:"" name:"src" help:"Source svg file" type:"existingfile"`
	Dst  string `arg:"" name:"dst" help:"Destination png file" type:"path"`
	Size int    `name:"size" help:"Longest side of the PNG in pixels, 0 keeps the svg size." default:"0"`
}

func (cmd *RasterCmd) Run() error {
	if content, err := os.ReadFile(cmd.Src); err != nil {
		return fmt.Errorf("failed to read svg file: %w", err)
	} else if f, err := os.Create(cmd.Dst); err != nil {
		return fmt.Errorf("failed to create png file: %w", err)
	} else {
		defer f.Close()
		if err := RasterizeAsPNG(content, f, cmd.Size); err != nil {
			return fmt.Errorf("failed to rasterize %s: %w", cmd.Src, err)
		}
		return f.Close()
	}
}
