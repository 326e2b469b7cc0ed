package main

import (
	"context"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/spritegen/spritegen"
	"github.com/spritegen/spritegen/artifact"
	"github.com/spritegen/spritegen/frame"
	"github.com/spritegen/spritegen/gen"
	"github.com/spritegen/spritegen/sprite"
	"github.com/urfave/cli/v2"
)

const defaultDB = "spritegen.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func main() {
	app := cli.NewApp()

	app.Name = "spritegen"
	app.Usage = "AI character sprite generation utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"SPRITEGEN_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to catalog database",
		},
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert an animation artifact to a sprite sheet PNG",
			Description: "A single-frame artifact produces a single frame PNG instead of a sheet.",
			ArgsUsage:   "INPUT.json OUTPUT.png",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "scale",
					Value: 1,
					Usage: "integer upscale factor",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				a, err := artifact.Load(c.Args().Get(0), frame.Height, frame.Width)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if f, ok := a.Frames[artifact.SingleName]; ok && len(a.Frames) == 1 {
					out, err := os.Create(c.Args().Get(1))
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					defer out.Close()

					if err := sprite.Encode(out, sprite.Rasterize(f, a.Palette, c.Int("scale"))); err != nil {
						return cli.NewExitError(err, 1)
					}
					return nil
				}

				if err := a.WriteSheet(c.Args().Get(1), sprite.CharacterLayout, c.Int("scale")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "frames",
			Usage:       "Convert an animation artifact to one PNG per frame",
			Description: "",
			ArgsUsage:   "INPUT.json DIRECTORY",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "scale",
					Value: 8,
					Usage: "integer upscale factor",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				a, err := artifact.Load(c.Args().Get(0), frame.Height, frame.Width)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := a.WriteFrames(c.Args().Get(1), c.Int("scale")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "extract",
			Usage:       "Convert an existing image back into an animation artifact",
			Description: "The image is quantized down to the drawing character vocabulary.",
			ArgsUsage:   "INPUT.png OUTPUT.json",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := os.Open(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m, _, err := image.Decode(f)
				f.Close()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fr, p := sprite.FromImage(m)
				a := &artifact.Animation{
					Palette: p,
					Frames:  map[string]frame.Frame{artifact.SingleName: fr},
				}

				if err := a.Save(c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "generate",
			Usage:       "Generate a walk animation artifact from a character description",
			Description: "Needs OPENROUTER_API_KEY unless --mock is given.",
			ArgsUsage:   "DESCRIPTION OUTPUT.json",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "model",
					Value: gen.DefaultModel,
					Usage: "model identifier",
				},
				&cli.StringFlag{
					Name:  "endpoint",
					Value: gen.DefaultEndpoint,
					Usage: "OpenAI-compatible chat completions URL",
				},
				&cli.StringFlag{
					Name:    "key",
					EnvVars: []string{"OPENROUTER_API_KEY"},
					Usage:   "API key",
				},
				&cli.BoolFlag{
					Name:  "mock",
					Usage: "use the offline mock generator",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				var client gen.Client
				switch {
				case c.Bool("mock"):
					client = gen.Mock{}
				case c.String("key") == "":
					return cli.NewExitError(errors.New("no API key; set OPENROUTER_API_KEY or use --mock"), 1)
				default:
					client = &gen.OpenRouter{
						Endpoint: c.String("endpoint"),
						Model:    c.String("model"),
						Key:      c.String("key"),
					}
				}

				g := &gen.Generator{
					Client: client,
					Policy: gen.DefaultPolicy,
					Logger: newLogger(c),
				}

				a, err := g.Generate(context.Background(), c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := a.Save(c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Scan filesystem and render sheets for every artifact",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "scale",
					Value: 1,
					Usage: "integer upscale factor",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				s, err := spritegen.New(c.String("db"), newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer s.Close()

				if err := s.Scan(c.Args().First(), c.Int("scale")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
