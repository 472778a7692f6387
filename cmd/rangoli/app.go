package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sonnes/rangoli/config"
	"github.com/sonnes/rangoli/preset"
	"github.com/sonnes/rangoli/render"
	htmlrender "github.com/sonnes/rangoli/render/html"
	jsonrender "github.com/sonnes/rangoli/render/json"
	"github.com/sonnes/rangoli/render/markup"
	"github.com/sonnes/rangoli/render/terminal"
	"github.com/urfave/cli/v3"
)

// app holds the renderer registry and the loaded defaults used by CLI commands.
type app struct {
	renderers map[string]func() render.Renderer
	cfg       *config.Config
}

func newApp(cmd *cli.Command) (*app, error) {
	path := cmd.String("config")
	if path == "" {
		path = config.DefaultPath()
	}
	log.Debug("loading config", "path", path)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	return &app{
		renderers: map[string]func() render.Renderer{
			"markup":   func() render.Renderer { return &markup.Renderer{} },
			"chunks":   func() render.Renderer { return &markup.Renderer{Chunks: true} },
			"terminal": func() render.Renderer { return terminal.New() },
			"json":     func() render.Renderer { return &jsonrender.Renderer{Indent: true} },
			"html":     func() render.Renderer { return htmlrender.New() },
		},
		cfg: cfg,
	}, nil
}

func (a *app) renderer(name string) (render.Renderer, error) {
	fn, ok := a.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (want %s)", name, strings.Join(a.formats(), ", "))
	}
	return fn(), nil
}

func (a *app) formats() []string {
	names := make([]string, 0, len(a.renderers))
	for n := range a.renderers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// catalog returns the built-in presets merged with the presets file named by
// --presets-file or the config.
func (a *app) catalog(cmd *cli.Command) (*preset.Catalog, error) {
	path := a.cfg.PresetsFile
	if cmd.IsSet("presets-file") {
		path = cmd.String("presets-file")
	}
	c, err := preset.Load(path)
	if err != nil {
		return nil, fmt.Errorf("presets: %w", err)
	}
	return c, nil
}

// inputText returns the command arguments joined by spaces, or stdin when
// there are none. A single trailing newline from stdin is dropped.
func inputText(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() > 0 {
		return strings.Join(cmd.Args().Slice(), " "), nil
	}
	data, err := io.ReadAll(cmd.Root().Reader)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

func presetsFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "presets-file",
		Usage: "TOML or YAML file with extra presets, merged over the built-ins",
	}
}
