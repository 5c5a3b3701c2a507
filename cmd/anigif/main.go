package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/bodgit/anigif"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

// expand turns the argument list into a list of image files; a single
// directory argument is replaced by its image files in name order.
func expand(args []string) ([]string, error) {
	if len(args) == 1 {
		info, err := os.Stat(args[0])
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			entries, err := ioutil.ReadDir(args[0])
			if err != nil {
				return nil, err
			}
			var files []string
			for _, entry := range entries {
				if !entry.Mode().IsRegular() {
					continue
				}
				switch filepath.Ext(entry.Name()) {
				case ".gif", ".jpeg", ".jpg", ".png":
					files = append(files, filepath.Join(args[0], entry.Name()))
				}
			}
			sort.Strings(files)
			return files, nil
		}
	}
	return args, nil
}

func loadImages(files []string, logger *log.Logger) ([]image.Image, error) {
	images := make([]image.Image, 0, len(files))
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		m, format, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %v", file, err)
		}
		logger.Printf("Loaded \"%s\" (%s, %dx%d)\n", file, format, m.Bounds().Dx(), m.Bounds().Dy())
		images = append(images, m)
	}
	return images, nil
}

// demo builds a moving-stripes test animation over a five color palette.
func demo(width, height, frames int) (*anigif.GIF, error) {
	palette := color.Palette{
		color.RGBA{0x00, 0x00, 0x00, 0xff},
		color.RGBA{0xff, 0xff, 0xff, 0xff},
		color.RGBA{0xff, 0x00, 0x00, 0xff},
		color.RGBA{0x00, 0xff, 0x00, 0xff},
		color.RGBA{0x00, 0x00, 0xff, 0xff},
	}

	g, err := anigif.New(width, height, palette, 0)
	if err != nil {
		return nil, err
	}

	pixels := make([]byte, width*height)
	for i := 0; i < frames; i++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				switch {
				case ((x-i*3)%16+16)%16 < 8:
					pixels[y*width+x] = byte(2 + i%3)
				case (x+y)%2 == 0:
					pixels[y*width+x] = 1
				default:
					pixels[y*width+x] = 0
				}
			}
		}
		if err := g.AddFrame(pixels, 7); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "anigif"
	app.Usage = "Animated GIF assembly utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "build",
			Usage:       "Build an animated GIF from still images",
			Description: "Images are used in argument order, or in name order when a single directory is given. All images must share the same dimensions.",
			ArgsUsage:   "FILE|DIRECTORY [FILE...]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "out.gif",
					Usage:   "path to the generated GIF",
				},
				&cli.IntFlag{
					Name:  "delay",
					Value: 10,
					Usage: "delay between frames in hundredths of a second",
				},
				&cli.IntFlag{
					Name:  "loop",
					Value: 0,
					Usage: "number of repetitions, 0 for infinite",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := log.New(ioutil.Discard, "", 0)
				if c.Bool("verbose") {
					logger.SetOutput(os.Stderr)
				}

				files, err := expand(c.Args().Slice())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				images, err := loadImages(files, logger)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				g, err := anigif.FromImages(images, c.Int("delay"), c.Int("loop"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := g.SaveFile(c.String("output")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "demo",
			Usage:       "Write a small test animation",
			Description: "",
			ArgsUsage:   "[FILE]",
			Action: func(c *cli.Context) error {
				output := "demo.gif"
				if c.NArg() > 0 {
					output = c.Args().First()
				}

				g, err := demo(64, 64, 12)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := g.SaveFile(output); err != nil {
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
