package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"codeberg.org/go-fonts/liberation/liberationsansregular"
	"github.com/tdewolff/argp"
	"github.com/vgkit/canvas"
	"github.com/vgkit/canvas/glyph"
)

type Draw struct {
	Width       float64 `short:"W" default:"100" desc:"Canvas width in pixels"`
	Height      float64 `short:"H" default:"100" desc:"Canvas height in pixels"`
	Fill        string  `short:"f" default:"" desc:"Fill color as #rgb, #rgba, #rrggbb or #rrggbbaa"`
	Stroke      string  `short:"s" default:"" desc:"Stroke color as #rgb, #rgba, #rrggbb or #rrggbbaa"`
	StrokeWidth float64 `default:"1" desc:"Stroke width"`
	EvenOdd     bool    `desc:"Fill with the even-odd rule instead of non-zero"`
	Dash        string  `short:"d" default:"" desc:"Dash pattern as comma-separated lengths"`
	Text        string  `short:"t" default:"" desc:"Text to draw"`
	TextX       float64 `default:"0" desc:"Text baseline start x"`
	TextY       float64 `default:"0" desc:"Text baseline start y"`
	Font        string  `default:"" desc:"Font file for text, Liberation Sans when empty"`
	FontSize    float64 `default:"12" desc:"Font size in points"`
	Verbose     bool    `short:"v" desc:"Print debug logging"`
	Output      string  `short:"o" default:"out.png" desc:"Output PNG file"`
	Path        string  `index:"0" desc:"SVG path data"`
}

func main() {
	root := argp.NewCmd(&Draw{}, "Render SVG path data and text to a PNG")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Draw) Run() error {
	if cmd.Path == "" && cmd.Text == "" {
		return argp.ShowUsage
	}
	if cmd.Verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	c := canvas.New(0, 0, cmd.Width, cmd.Height)
	if cmd.Path != "" {
		p, err := canvas.ParseSVGPath(cmd.Path)
		if err != nil {
			return err
		}
		if cmd.Fill != "" {
			rule := canvas.NonZero
			if cmd.EvenOdd {
				rule = canvas.EvenOdd
			}
			c.SetColor(canvas.Hex(cmd.Fill))
			c.Fill(p, canvas.Identity, rule, canvas.BlendSrcOver, 1.0)
		}
		if cmd.Stroke != "" {
			dash, err := parseDash(cmd.Dash)
			if err != nil {
				return err
			}
			style := canvas.StrokeStyle{
				Width:      cmd.StrokeWidth,
				Cap:        canvas.ButtCap,
				Join:       canvas.MiterJoin,
				MiterLimit: 10.0,
				Dash:       dash,
			}
			c.SetColor(canvas.Hex(cmd.Stroke))
			c.Stroke(p, canvas.Identity, style, canvas.BlendSrcOver, 1.0)
		}
	}
	if cmd.Text != "" {
		face, err := cmd.face()
		if err != nil {
			return err
		}
		defer face.Close()
		if err := c.Text(face, cmd.TextX, cmd.TextY, cmd.Text); err != nil {
			return err
		}
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (cmd *Draw) face() (*glyph.Face, error) {
	var font *glyph.Font
	var err error
	if cmd.Font != "" {
		font, err = glyph.LoadFontFile(cmd.Font)
	} else {
		font, err = glyph.Parse(liberationsansregular.TTF)
	}
	if err != nil {
		return nil, err
	}
	return font.Face(cmd.FontSize, 100.0)
}

func parseDash(s string) (canvas.DashData, error) {
	if s == "" {
		return canvas.DashData{}, nil
	}
	var dash canvas.DashData
	for _, field := range strings.Split(s, ",") {
		d, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return canvas.DashData{}, fmt.Errorf("bad dash pattern %q", s)
		}
		dash.Array = append(dash.Array, d)
	}
	return dash, nil
}
