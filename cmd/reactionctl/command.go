package main

import "github.com/urfave/cli/v2"

func (s *reactionctl) loadApp() {
	s.app = cli.NewApp()
	s.app.Name = "reactionctl"
	s.app.Usage = "Convert reactions between the wire and the domain representation"
	s.app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path of a TOML config file",
			EnvVars: []string{"REACTIONCTL_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "One of debug, info, warn, error, silence",
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "Write Prometheus counters to this file when the command ends",
		},
	}
	s.app.Before = s.before
	s.app.After = s.after
	s.app.Commands = []*cli.Command{
		{
			Action:      s.decode,
			Name:        "decode",
			Usage:       "Decode a wire object into its domain JSON",
			ArgsUsage:   "[file]",
			Category:    "Convert",
			Description: `Reads a wire object such as {"_": "reactionEmoji", "emoticon": "👍"} from file or stdin.`,
		},
		{
			Action:    s.encode,
			Name:      "encode",
			Usage:     "Encode a domain reaction type into its wire object",
			ArgsUsage: "[file]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "chat",
					Usage: "Input is a chat reactions object instead of a single reaction type",
				},
			},
			Category:    "Convert",
			Description: `Reads a domain object such as {"type": "custom_emoji", "custom_emoji_id": "42"} from file or stdin.`,
		},
	}
}
