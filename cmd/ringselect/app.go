package main

import (
	"io"
	"os"

	"github.com/bsv-blockchain/ringselect/chaincfg"
	"github.com/bsv-blockchain/ringselect/errors"
	"github.com/bsv-blockchain/ringselect/services/decoys"
	"github.com/bsv-blockchain/ringselect/settings"
	"github.com/bsv-blockchain/ringselect/ulogger"
	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newApp(tSettings *settings.Settings, logger ulogger.Logger) *cli.App {
	inputFlag := &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "path of the JSON request, stdin when omitted",
	}

	return &cli.App{
		Name:  "ringselect",
		Usage: "Select decoys and assemble rings for spending outputs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "network",
				Usage:   "network whose protocol constants apply (mainnet, testnet, stagenet, regtest)",
				EnvVars: []string{"RINGSELECT_NETWORK"},
			},
			&cli.IntFlag{
				Name:  "max-iterations",
				Usage: "maximum draws the sampler may make",
			},
		},
		Before: func(c *cli.Context) error {
			if c.IsSet("network") {
				params, err := chaincfg.GetChainParams(c.String("network"))
				if err != nil {
					return errors.NewConfigurationError("unknown network %q", c.String("network"), err)
				}

				tSettings.ChainCfgParams = params
			}

			if c.IsSet("max-iterations") {
				tSettings.Decoys.MaxSampleIterations = c.Int("max-iterations")
			}

			return tSettings.Validate()
		},
		Commands: []*cli.Command{
			{
				Name:  "sample",
				Usage: "Sample decoy candidates for an output from the chain's output distribution",
				Flags: []cli.Flag{inputFlag},
				Action: func(c *cli.Context) error {
					src, err := decoys.NewSecureSource()
					if err != nil {
						return err
					}

					return withInput(c, func(r io.Reader) error {
						return runSample(tSettings, logger, src, r, c.App.Writer)
					})
				},
			},
			{
				Name:  "build",
				Usage: "Verify node records for sampled candidates and assemble the ring",
				Flags: []cli.Flag{inputFlag},
				Action: func(c *cli.Context) error {
					src, err := decoys.NewSecureSource()
					if err != nil {
						return err
					}

					return withInput(c, func(r io.Reader) error {
						return runBuild(tSettings, logger, src, r, c.App.Writer)
					})
				},
			},
		},
	}
}

func withInput(c *cli.Context, fn func(r io.Reader) error) error {
	path := c.String("input")
	if path == "" || path == "-" {
		return fn(c.App.Reader)
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.NewInvalidArgumentError("cannot open %s", path, err)
	}

	defer f.Close()

	return fn(f)
}
