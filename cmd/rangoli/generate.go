package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/sonnes/rangoli/core"
	"github.com/sonnes/rangoli/gradient"
	"github.com/sonnes/rangoli/pipeline"
	"github.com/sonnes/rangoli/tokenize"
	"github.com/urfave/cli/v3"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"gen"},
		Usage:     "Color text with a gradient and split it into chat messages",
		ArgsUsage: "[TEXT]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "preset",
				Aliases: []string{"p"},
				Usage:   "Named preset (see `rangoli presets`)",
			},
			&cli.StringSliceFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "Color stop as #RRGGBB; repeat for more stops. Overrides --preset",
			},
			&cli.StringFlag{
				Name:  "interpolation",
				Usage: "Interpolation: smooth, discrete",
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "Output mode: gradient, solid",
			},
			&cli.StringFlag{
				Name:  "start-alpha",
				Usage: "Alpha at the first character, 0-255 or NN%",
			},
			&cli.StringFlag{
				Name:  "end-alpha",
				Usage: "Alpha at the last character, 0-255 or NN%",
			},
			&cli.StringFlag{
				Name:  "solid-color",
				Usage: "Color for solid mode. Defaults to the first stop",
			},
			&cli.StringFlag{
				Name:  "solid-alpha",
				Usage: "Alpha for solid mode, 0-255 or NN%. Defaults to --start-alpha",
			},
			&cli.IntFlag{
				Name:  "max-length",
				Usage: "Maximum characters per chat message",
			},
			&cli.IntFlag{
				Name:  "max-chunks",
				Usage: "Maximum number of chat messages",
			},
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output format: markup, chunks, terminal, json, html",
				Value: "terminal",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Write output to this file, or into this directory with a generated name. - means stdout",
			},
			&cli.BoolFlag{
				Name:  "copy",
				Usage: "Copy the markup (or the --chunk) to the clipboard",
			},
			&cli.IntFlag{
				Name:  "chunk",
				Usage: "Emit only chunk N (1-based) as raw markup",
			},
			presetsFileFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			text, err := inputText(cmd)
			if err != nil {
				return err
			}

			req, err := a.request(cmd, text)
			if err != nil {
				return err
			}
			warnRequest(req)

			res := pipeline.Run(req)
			log.Debug("generated",
				"chars", res.Stats.LiteralChars,
				"icons", res.Stats.Icons,
				"length", res.Stats.FormattedLength,
				"chunks", len(res.Chunks))
			if res.Truncated {
				log.Warn("output truncated to fit the chunk limit", "chunks", len(res.Chunks))
			}

			var out bytes.Buffer
			payload := res.Formatted
			if n := cmd.Int("chunk"); n != 0 {
				if n < 1 || n > len(res.Chunks) {
					return fmt.Errorf("chunk %d out of range (have %d)", n, len(res.Chunks))
				}
				payload = res.Chunks[n-1]
				fmt.Fprintln(&out, payload)
			} else {
				rnd, err := a.renderer(cmd.String("o"))
				if err != nil {
					return err
				}
				if err := rnd.Render(&out, res); err != nil {
					return fmt.Errorf("render: %w", err)
				}
			}

			if cmd.Bool("copy") {
				if err := copyToClipboard(payload); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				log.Info("copied to clipboard", "length", utf8.RuneCountInString(payload))
			}

			return writeOutput(cmd, &out, res)
		},
	}
}

// request resolves flags over config over defaults. Explicit colors win over
// a preset; a preset's interpolation applies unless --interpolation is set.
func (a *app) request(cmd *cli.Command, text string) (pipeline.Request, error) {
	cfg := a.cfg
	// config.Load has already validated the mode names.
	interp, _ := core.ParseInterpolation(cfg.Interpolation)
	style := core.Style{Stops: cfg.Colors, Interpolation: interp}

	name := cfg.Preset
	if cmd.IsSet("preset") {
		name = cmd.String("preset")
	}
	if colors := cmd.StringSlice("color"); len(colors) > 0 {
		style.Stops = colors
	} else if name != "" {
		catalog, err := a.catalog(cmd)
		if err != nil {
			return pipeline.Request{}, err
		}
		p, err := catalog.Lookup(name)
		if err != nil {
			return pipeline.Request{}, err
		}
		log.Debug("using preset", "name", p.Name, "colors", p.Colors)
		style = p.Style()
	}

	if cmd.IsSet("interpolation") {
		mode, err := core.ParseInterpolation(cmd.String("interpolation"))
		if err != nil {
			return pipeline.Request{}, err
		}
		style.Interpolation = mode
	}

	outputName := cfg.Output
	if cmd.IsSet("mode") {
		outputName = cmd.String("mode")
	}
	output, err := core.ParseOutputMode(outputName)
	if err != nil {
		return pipeline.Request{}, err
	}

	req := pipeline.Request{
		Text:       text,
		Style:      style,
		StartAlpha: cfg.StartAlpha,
		EndAlpha:   cfg.EndAlpha,
		Output:     output,
		SolidColor: cmd.String("solid-color"),
		MaxLen:     cfg.MaxLength,
		MaxChunks:  cfg.MaxChunks,
	}

	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"start-alpha", &req.StartAlpha},
		{"end-alpha", &req.EndAlpha},
	} {
		if !cmd.IsSet(f.name) {
			continue
		}
		v, err := core.ParseAlpha(cmd.String(f.name))
		if err != nil {
			return pipeline.Request{}, fmt.Errorf("--%s: %w", f.name, err)
		}
		*f.dst = int(v)
	}
	if cmd.IsSet("solid-alpha") {
		v, err := core.ParseAlpha(cmd.String("solid-alpha"))
		if err != nil {
			return pipeline.Request{}, fmt.Errorf("--solid-alpha: %w", err)
		}
		alpha := int(v)
		req.SolidAlpha = &alpha
	}
	if cmd.IsSet("max-length") {
		req.MaxLen = cmd.Int("max-length")
	}
	if cmd.IsSet("max-chunks") {
		req.MaxChunks = cmd.Int("max-chunks")
	}
	return req, nil
}

// warnRequest logs problems the pipeline tolerates silently.
func warnRequest(req pipeline.Request) {
	for _, s := range req.Style.Stops {
		if !core.ValidHex(s) {
			log.Warn("ignoring invalid color", "value", s)
		}
	}
	g := gradient.New(req.Style, req.StartAlpha, req.EndAlpha)
	if !g.Valid() {
		log.Warn("fewer than two valid colors, using fallback", "color", "#"+core.FallbackColor.RGBHex())
	}
	for _, c := range g.Stops() {
		if !core.Readable(c) {
			log.Warn("color has low contrast on a dark chat background",
				"color", "#"+c.RGBHex(),
				"ratio", fmt.Sprintf("%.2f", core.ContrastRatio(c, core.ChatBackground)))
		}
	}
	if req.Output == core.ModeSolid && req.SolidColor != "" && !core.ValidHex(req.SolidColor) {
		log.Warn("invalid solid color, using fallback", "value", req.SolidColor)
	}

	if n := utf8.RuneCountInString(req.Text); n > core.MaxTextLength {
		log.Warn("text is longer than chat clients usually accept", "length", n, "max", core.MaxTextLength)
	}
	if st := tokenize.Analyze(tokenize.Tokenize(req.Text)); st.LongestRun > tokenize.MaxIconRun {
		log.Warn("too many icons in a row may not display", "run", st.LongestRun, "max", tokenize.MaxIconRun)
	}
}

// writeOutput sends out to stdout, a file, or a generated file name inside
// a directory.
func writeOutput(cmd *cli.Command, out *bytes.Buffer, res *core.Result) error {
	path := cmd.String("out")
	if path == "" || path == "-" {
		_, err := io.Copy(cmd.Root().Writer, out)
		return err
	}

	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		format := cmd.String("o")
		if cmd.Int("chunk") != 0 {
			format = "markup"
		}
		path = filepath.Join(path, outputName(format, res.Output, time.Now()))
	}
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info("wrote output", "path", path)
	return nil
}

// outputName is "<mode>-text-<unix millis>.<ext>", with the extension
// following the output format.
func outputName(format string, mode core.OutputMode, now time.Time) string {
	ext := "txt"
	switch format {
	case "json", "html":
		ext = format
	}
	return fmt.Sprintf("%s-text-%d.%s", mode, now.UnixMilli(), ext)
}
