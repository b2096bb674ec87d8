package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

var verbose = false

func Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

func VPrintf(format string, a ...interface{}) {
	if verbose {
		Printf(format, a...)
	}
}

type CLI struct {
	Verbose bool            `help:"Enable debug output."`
	Config  kong.ConfigFlag `help:"JSON file with default flag values."`
	Render  RenderCmd       `cmd:"" default:"withargs" help:"Renders a battery icon from a template svg file."`
	Raster  RasterCmd       `cmd:"" help:"Converts an svg file to png."`
	Samples SamplesCmd      `cmd:"" help:"Renders example icons for a range of levels."`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("battery-icon"),
		kong.Description("Generates a battery icon showing a charge level and charging state."),
		kong.UsageOnError(),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli, kong.Configuration(JSONConfig))
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	verbose = cli.Verbose
	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	// Call the Run() method of the selected parsed command.
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
