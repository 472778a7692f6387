package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sonnes/rangoli/tokenize"
	"github.com/urfave/cli/v3"
)

func tokenizeCmd() *cli.Command {
	return &cli.Command{
		Name:      "tokenize",
		Usage:     "Show how text splits into literal runs and icon tokens",
		ArgsUsage: "[TEXT]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			text, err := inputText(cmd)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			segs := tokenize.Tokenize(text)
			for _, s := range segs {
				kind := "text"
				if s.IsIcon {
					kind = "icon"
				}
				fmt.Fprintf(w, "%-4s  %s\n", kind, strconv.Quote(s.Content))
			}

			st := tokenize.Analyze(segs)
			fmt.Fprintf(w, "\n%d chars, %d icons, longest icon run %d\n", st.LiteralChars, st.Icons, st.LongestRun)
			return nil
		},
	}
}
