package main

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/sonnes/rangoli/chunk"
	"github.com/urfave/cli/v3"
)

func chunkCmd() *cli.Command {
	return &cli.Command{
		Name:      "chunk",
		Usage:     "Split existing color markup into chat messages",
		ArgsUsage: "[MARKUP]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "max-length",
				Usage: "Maximum characters per chat message",
				Value: chunk.DefaultMaxLen,
			},
			&cli.IntFlag{
				Name:  "max-chunks",
				Usage: "Maximum number of chat messages",
				Value: chunk.DefaultMaxChunks,
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Verify no tag is split and fail if the markup was truncated",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			text, err := inputText(cmd)
			if err != nil {
				return err
			}
			text = strings.TrimSpace(text)

			res := chunk.Split(text, cmd.Int("max-length"), cmd.Int("max-chunks"))
			log.Debug("split", "length", utf8.RuneCountInString(text), "chunks", len(res.Chunks), "truncated", res.Truncated)

			w := cmd.Root().Writer
			for _, c := range res.Chunks {
				fmt.Fprintln(w, c)
			}

			if !cmd.Bool("check") {
				if res.Truncated {
					log.Warn("markup truncated to fit the chunk limit")
				}
				return nil
			}
			if !chunk.Intact(text, res.Chunks) {
				return fmt.Errorf("check failed: a chunk boundary splits a tag")
			}
			if res.Truncated {
				return fmt.Errorf("check failed: markup needs more than %d chunks", cmd.Int("max-chunks"))
			}
			return nil
		},
	}
}
