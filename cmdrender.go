package main

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/beevik/etree"
)

type Level float64

func (l *Level) UnmarshalText(text []byte) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(text)), 64)
	if err != nil {
		return fmt.Errorf("invalid level: \"%s\", expected a number between 0 and 1", text)
	}
	return l.set(v)
}

// Decode accepts numbers as well as strings so a config file can hold
// {"level": 0.5}.
func (l *Level) Decode(ctx *kong.DecodeContext) error {
	token, err := ctx.Scan.PopValue("level")
	if err != nil {
		return err
	}
	switch v := token.Value.(type) {
	case string:
		return l.UnmarshalText([]byte(v))
	case float64:
		return l.set(v)
	case int:
		return l.set(float64(v))
	case int64:
		return l.set(float64(v))
	default:
		return fmt.Errorf("invalid level: %v, expected a number between 0 and 1", v)
	}
}

func (l *Level) set(v float64) error {
	if !(v >= 0 && v <= 1) {
		return fmt.Errorf("invalid level: \"%v\", level must be in the range 0-1", v)
	}
	*l = Level(v)
	return nil
}

var hexColorRx = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// Color is a six digit hex color without the leading '#'.
type Color string

func (c *Color) UnmarshalText(text []byte) error {
	groups := hexColorRx.FindStringSubmatch(string(text))
	if groups == nil {
		return fmt.Errorf("invalid color: \"%s\", expected format: \"rrggbb\"", text)
	}
	*c = Color(strings.ToLower(groups[1]))
	return nil
}

// TemplateFlags describe where the editable parts of a template are.
type TemplateFlags struct {
	Bar          Selector   `name:"bar" help:"Charge bar element, as name#id." default:"rect#bar"`
	ChargingIcon Selector   `name:"charging-icon" help:"Charging icon element, as name#id." default:"g#charging"`
	FgTarget     []Selector `name:"fg-target" help:"Elements recolored by --foreground, as name#id[@fill|@stroke]." default:"rect#body,rect#terminal,rect#bar,path#bolt@stroke"`
	BarExtent    float64    `name:"bar-extent" help:"Width of the charge bar at full charge." default:"48"`
}

func (f *TemplateFlags) Editor() *Editor {
	return &Editor{
		Bar:          f.Bar,
		ChargingIcon: f.ChargingIcon,
		Foreground:   f.FgTarget,
		BarExtent:    f.BarExtent,
	}
}

type RenderCmd struct {
	TemplateFlags `embed:""`

	Level      Level  `name:"level" help:"Charge level between 0 and 1." default:"1"`
	Charging   bool   `name:"charging" help:"Show the charging icon."`
	Foreground Color  `name:"foreground" help:"Foreground color as six hex digits. Example: aa0000"`
	Png        string `name:"png" help:"Also write a PNG rendering to this path." type:"path"`
	Size       int    `name:"size" help:"Longest side of the PNG in pixels, 0 keeps the template size." default:"0"`

	Src string `arg:"" name:"src" help:"Template svg file" type:"path"`
	Dst string `arg:"" name:"dst" help:"Destination svg file" type:"path"`
}

func (cmd *RenderCmd) Validate() error {
	if cmd.BarExtent < 0 {
		return fmt.Errorf("invalid bar extent: %v, must not be negative", cmd.BarExtent)
	}
	if cmd.Size < 0 {
		return fmt.Errorf("invalid size: %d, must not be negative", cmd.Size)
	}
	return nil
}

func (cmd *RenderCmd) Config() Config {
	return Config{
		Level:      float64(cmd.Level),
		Charging:   cmd.Charging,
		Foreground: string(cmd.Foreground),
	}
}

func (cmd *RenderCmd) Run() error {
	VPrintf("config: %+v\n", cmd.Config())

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(cmd.Src); err != nil {
		return fmt.Errorf("failed to read svg file %s: %w", cmd.Src, err)
	}

	if err := cmd.Editor().Apply(doc, cmd.Config()); err != nil {
		return fmt.Errorf("failed to edit svg file %s: %w", cmd.Src, err)
	}

	if err := doc.WriteToFile(cmd.Dst); err != nil {
		return fmt.Errorf("failed to write svg file %s: %w", cmd.Dst, err)
	}

	if cmd.Png != "" {
		if err := writePNG(doc, cmd.Png, cmd.Size); err != nil {
			return err
		}
	}

	return nil
}

// writePNG rasterizes a copy of doc with hidden elements removed.
func writePNG(doc *etree.Document, dst string, size int) error {
	visible := doc.Copy()
	if root := visible.Root(); root != nil {
		pruneHidden(root)
	}
	content, err := visible.WriteToBytes()
	if err != nil {
		return fmt.Errorf("failed to serialize svg: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create png file: %w", err)
	}
	defer f.Close()

	if err := RasterizeAsPNG(content, f, size); err != nil {
		return fmt.Errorf("failed to rasterize %s: %w", dst, err)
	}
	return f.Close()
}
