package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := rootCmd().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:  "rangoli",
		Usage: "Turn plain text into gradient-colored chat messages",
		Description: `
  _ _ __ _ _ _  __ _ ___| (_)
 | '_/ _' | ' \/ _' / _ \ | |
 |_| \__,_|_||_\__, \___/_|_|
               |___/

 Colors every character, keeps icon tokens intact, and splits the
 markup into messages that fit the chat limit.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "warn",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a config.toml with default settings",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			generateCmd(),
			chunkCmd(),
			presetsCmd(),
			tokenizeCmd(),
		},
	}
}
