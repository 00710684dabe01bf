// Copyright 2023 LiveKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/myworldtech/meet/pkg/config"
	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/rtc"
	"github.com/myworldtech/meet/version"
)

var baseFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "config",
		Usage: "path to meet config file",
	},
	&cli.StringFlag{
		Name:    "config-body",
		Usage:   "meet config in YAML, typically passed in as an environment var",
		EnvVars: []string{"MEET_CONFIG"},
	},
	&cli.StringFlag{
		Name:    "url",
		Usage:   "signalling server websocket url",
		EnvVars: []string{"MEET_URL"},
	},
	&cli.StringFlag{
		Name:    "redis-host",
		Usage:   "host (incl. port) to the redis server holding user profiles",
		EnvVars: []string{"REDIS_HOST"},
	},
	&cli.StringFlag{
		Name:    "redis-password",
		Usage:   "password to redis",
		EnvVars: []string{"REDIS_PASSWORD"},
	},
	&cli.StringFlag{
		Name:  "log-level",
		Usage: "debug, info, warn or error",
	},
	// debugging flags
	&cli.BoolFlag{
		Name:  "dev",
		Usage: "sets log-level to debug and console formatter",
	},
	&cli.BoolFlag{
		Name:   "disable-strict-config",
		Usage:  "disables strict config parsing",
		Hidden: true,
	},
}

var joinFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "room",
		Usage:    "id of the room to join",
		Required: true,
	},
	&cli.StringFlag{
		Name:     "peer",
		Usage:    "peer id to join as, usually the user id",
		Required: true,
	},
	&cli.BoolFlag{
		Name:  "host",
		Usage: "join as host, admitting others without approval",
	},
	&cli.StringFlag{
		Name:  "audio",
		Usage: "an ogg file to publish as microphone",
	},
	&cli.StringFlag{
		Name:  "video",
		Usage: "an ivf or h264 annex-b file to publish as camera",
	},
	&cli.StringFlag{
		Name:  "screen",
		Usage: "an ivf or h264 annex-b file to publish as the screen when sharing",
	},
	&cli.StringFlag{
		Name:  "screen-audio",
		Usage: "an ogg file to publish alongside the screen when sharing",
	},
	&cli.BoolFlag{
		Name:  "manual-bandwidth",
		Usage: "drive quality adaptation with /bw instead of measured bandwidth",
	},
}

func main() {
	defer func() {
		if rtc.Recover(logger.GetLogger(), recover()) != nil {
			os.Exit(1)
		}
	}()

	generatedFlags, err := config.GenerateCLIFlags(baseFlags, true)
	if err != nil {
		fmt.Println(err)
	}

	app := &cli.App{
		Name:        "meet",
		Usage:       "multi-party video call client",
		Description: "joins a room and reads commands from stdin, type /help once connected",
		Flags:       append(baseFlags, generatedFlags...),
		Commands: []*cli.Command{
			{
				Name:   "join",
				Usage:  "join a room",
				Flags:  joinFlags,
				Action: joinRoom,
			},
			{
				Name:   "print-config",
				Usage:  "prints the effective configuration",
				Action: printConfig,
			},
			{
				Name:   "help-verbose",
				Usage:  "prints app help, including all generated configuration flags",
				Action: helpVerbose,
			},
		},
		Version: version.Version,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
	}
}

func getConfig(c *cli.Context) (*config.Config, error) {
	confString, err := getConfigString(c.String("config"), c.String("config-body"))
	if err != nil {
		return nil, err
	}

	strictMode := true
	if c.Bool("disable-strict-config") {
		strictMode = false
	}

	conf, err := config.NewConfig(confString, strictMode, c, baseFlags)
	if err != nil {
		return nil, err
	}
	if err := config.InitLoggerFromConfig(&conf.Logging); err != nil {
		return nil, err
	}
	if conf.Development {
		logger.Infow("starting in development mode")
	}
	return conf, nil
}

func getConfigString(configFile string, inConfigBody string) (string, error) {
	if inConfigBody != "" || configFile == "" {
		return inConfigBody, nil
	}

	outConfigBody, err := os.ReadFile(configFile)
	if err != nil {
		return "", err
	}

	return string(outConfigBody), nil
}

func printConfig(c *cli.Context) error {
	conf, err := getConfig(c)
	if err != nil {
		return err
	}
	redacted := *conf
	if redacted.Profile.Redis.Password != "" {
		redacted.Profile.Redis.Password = "****"
	}
	out, err := yaml.Marshal(&redacted)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

func helpVerbose(c *cli.Context) error {
	generatedFlags, err := config.GenerateCLIFlags(baseFlags, false)
	if err != nil {
		return err
	}

	c.App.Flags = append(baseFlags, generatedFlags...)
	return cli.ShowAppHelp(c)
}
