package main

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

//go:embed battery.svg
var defaultTemplate []byte

var ErrMissingElement = errors.New("missing expected element")

// DefaultBarExtent is the width of the charge bar in battery.svg at full charge.
const DefaultBarExtent = 48.0

type Config struct {
	Level      float64
	Charging   bool
	Foreground string // "rrggbb", empty leaves the template colors alone
}

// Editor rewrites a battery template in place.
type Editor struct {
	Bar          Selector
	ChargingIcon Selector
	Foreground   []Selector
	BarExtent    float64
}

func NewEditor() *Editor {
	return &Editor{
		Bar:          MustParseSelector("rect#bar"),
		ChargingIcon: MustParseSelector("g#charging"),
		Foreground: []Selector{
			MustParseSelector("rect#body"),
			MustParseSelector("rect#terminal"),
			MustParseSelector("rect#bar"),
			MustParseSelector("path#bolt@stroke"),
		},
		BarExtent: DefaultBarExtent,
	}
}

func (e *Editor) Apply(doc *etree.Document, cfg Config) error {
	bars := e.Bar.Find(doc)
	if len(bars) == 0 {
		return fmt.Errorf("%w: charge bar %s", ErrMissingElement, e.Bar)
	}
	icons := e.ChargingIcon.Find(doc)
	if len(icons) == 0 {
		return fmt.Errorf("%w: charging icon %s", ErrMissingElement, e.ChargingIcon)
	}
	targets := make([][]*etree.Element, len(e.Foreground))
	if cfg.Foreground != "" {
		for i, sel := range e.Foreground {
			if targets[i] = sel.Find(doc); len(targets[i]) == 0 {
				return fmt.Errorf("%w: foreground target %s", ErrMissingElement, sel)
			}
		}
	}

	width := FormatExtent(e.BarExtent * clampLevel(cfg.Level))
	for _, bar := range bars {
		bar.CreateAttr("width", width)
	}
	VPrintf("  bar width: %s\n", width)

	display := "none"
	if cfg.Charging {
		display = "inline"
	}
	for _, icon := range icons {
		removeStyleProperty(icon, "display")
		icon.CreateAttr("display", display)
	}
	VPrintf("  charging icon display: %s\n", display)

	if cfg.Foreground != "" {
		color := "#" + cfg.Foreground
		recolored := 0
		for i, sel := range e.Foreground {
			for _, el := range targets[i] {
				recolored += setColor(el, sel.Attr, color)
			}
		}
		VPrintf("  recolored %d attributes to %s\n", recolored, color)
	}

	return nil
}

// setColor overwrites the paint attributes of el. With attr set only that
// attribute is written, otherwise fill and stroke are replaced where present
// and not "none".
func setColor(el *etree.Element, attr string, color string) int {
	if attr != "" {
		el.CreateAttr(attr, color)
		return 1
	}
	n := 0
	for _, name := range []string{"fill", "stroke"} {
		if a := el.SelectAttr(name); a != nil && a.Value != "none" {
			a.Value = color
			n += 1
		}
	}
	return n
}

func clampLevel(level float64) float64 {
	if math.IsNaN(level) || level < 0 {
		return 0
	}
	return min(level, 1)
}

// FormatExtent renders a length with at most three decimals and no trailing
// zeros.
func FormatExtent(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// removeStyleProperty drops a CSS declaration from the style attribute, which
// would otherwise win over the presentation attribute of the same name.
func removeStyleProperty(el *etree.Element, property string) {
	style := el.SelectAttr("style")
	if style == nil {
		return
	}
	kept := []string{}
	for _, decl := range strings.Split(style.Value, ";") {
		name, _, _ := strings.Cut(decl, ":")
		if strings.TrimSpace(decl) == "" || strings.EqualFold(strings.TrimSpace(name), property) {
			continue
		}
		kept = append(kept, strings.TrimSpace(decl))
	}
	if len(kept) == 0 {
		el.RemoveAttr("style")
	} else {
		style.Value = strings.Join(kept, ";")
	}
}

// isHidden reports whether el has display none, from the style attribute or
// the presentation attribute.
func isHidden(el *etree.Element) bool {
	if style := el.SelectAttrValue("style", ""); style != "" {
		for _, decl := range strings.Split(style, ";") {
			if name, value, ok := strings.Cut(decl, ":"); ok && strings.EqualFold(strings.TrimSpace(name), "display") {
				return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important")) == "none"
			}
		}
	}
	return el.SelectAttrValue("display", "") == "none"
}

// pruneHidden removes every element with display none, which oksvg would
// otherwise draw.
func pruneHidden(el *etree.Element) {
	for _, child := range el.ChildElements() {
		if isHidden(child) {
			el.RemoveChild(child)
		} else {
			pruneHidden(child)
		}
	}
}
