package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/sonnes/rangoli/core"
	"github.com/sonnes/rangoli/preset"
	"github.com/urfave/cli/v3"
)

func presetsCmd() *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: "List, search and export gradient presets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "search",
				Aliases: []string{"s"},
				Usage:   "Fuzzy match preset names",
			},
			&cli.StringFlag{
				Name:  "category",
				Usage: "Only presets in this category",
			},
			&cli.BoolFlag{
				Name:  "swatch",
				Usage: "Show color swatches",
			},
			presetsFileFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ps, err := selectPresets(cmd)
			if err != nil {
				return err
			}
			if len(ps) == 0 {
				return fmt.Errorf("no presets match")
			}
			writePresets(cmd.Root().Writer, ps, cmd.Bool("swatch"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "export",
				Usage: "Write presets to a TOML or YAML file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "Destination .toml, .yaml or .yml file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "Only presets in this category",
					},
					presetsFileFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					ps, err := selectPresets(cmd)
					if err != nil {
						return err
					}
					path := cmd.String("file")
					if err := preset.WriteFile(path, ps); err != nil {
						return fmt.Errorf("export presets: %w", err)
					}
					log.Info("exported presets", "path", path, "count", len(ps))
					return nil
				},
			},
		},
	}
}

// selectPresets applies --search and --category to the loaded catalog.
func selectPresets(cmd *cli.Command) ([]preset.Preset, error) {
	a, err := newApp(cmd)
	if err != nil {
		return nil, err
	}
	c, err := a.catalog(cmd)
	if err != nil {
		return nil, err
	}

	ps := c.All()
	if q := cmd.String("search"); q != "" {
		ps = c.Search(q)
	}
	if cat := cmd.String("category"); cat != "" {
		var kept []preset.Preset
		for _, p := range ps {
			if strings.EqualFold(p.Category, cat) {
				kept = append(kept, p)
			}
		}
		ps = kept
	}
	return ps, nil
}

func writePresets(w io.Writer, ps []preset.Preset, swatch bool) {
	nameWidth, catWidth := 0, 0
	for _, p := range ps {
		nameWidth = max(nameWidth, len(p.Name))
		catWidth = max(catWidth, len(p.Category))
	}
	for _, p := range ps {
		line := fmt.Sprintf("%-*s  %-*s  %-8s  ", nameWidth, p.Name, catWidth, p.Category, p.Style().Interpolation)
		if swatch {
			for _, c := range p.Colors {
				hex, err := core.NormalizeHex(c)
				if err != nil {
					continue
				}
				line += lipgloss.NewStyle().Foreground(lipgloss.Color("#" + hex)).Render("██")
			}
			line += "  "
		}
		line += strings.Join(p.Colors, " ")
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
