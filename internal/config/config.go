// Package config loads run settings from code defaults overlaid with an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/HamletTheHamster/unit-circle-plots/internal/animate"
	"github.com/HamletTheHamster/unit-circle-plots/internal/chart"
	"github.com/HamletTheHamster/unit-circle-plots/internal/estimate"
	"github.com/HamletTheHamster/unit-circle-plots/internal/render"
)

// Backends accepted by Config.Backend.
const (
	BackendGonum   = "gonum"
	BackendGnuplot = "gnuplot"
)

type Config struct {
	// Dir is the directory all relative file names are resolved against.
	Dir string `yaml:"dir" validate:"required"`

	Input  Naming `yaml:"input"`
	Output Naming `yaml:"output"`

	Sizes []int `yaml:"sizes" validate:"required,min=1,unique,dive,gt=0"`

	Chart    Chart    `yaml:"chart"`
	Backend  string   `yaml:"backend" validate:"oneof=gonum gnuplot"`
	Run      Run      `yaml:"run"`
	Generate Generate `yaml:"generate"`
	Estimate Estimate `yaml:"estimate"`
	Animate  Animate  `yaml:"animate"`
}

type Naming struct {
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix" validate:"required"`
}

type Chart struct {
	Width          float64 `yaml:"width" validate:"gt=0"`
	Height         float64 `yaml:"height" validate:"gt=0"`
	Alpha          float64 `yaml:"alpha" validate:"gte=0,lte=1"`
	MarkerArea     float64 `yaml:"marker_area" validate:"gt=0"`
	ScatterColor   string  `yaml:"scatter_color" validate:"rgbhex"`
	CircleColor    string  `yaml:"circle_color" validate:"rgbhex"`
	CircleWidth    float64 `yaml:"circle_width" validate:"gt=0"`
	CircleSegments int     `yaml:"circle_segments" validate:"gte=3"`
}

type Run struct {
	// Strict fails a size whose table row count differs from the size.
	Strict    bool `yaml:"strict"`
	KeepGoing bool `yaml:"keep_going"`
	Parallel  int  `yaml:"parallel" validate:"gte=0"`
}

type Generate struct {
	Seed uint64 `yaml:"seed"`
}

type Estimate struct {
	Workers     int    `yaml:"workers" validate:"gte=1,lte=8"`
	ErrorsFile  string `yaml:"errors_file" validate:"required"`
	TimingsFile string `yaml:"timings_file" validate:"required"`
	Convergence string `yaml:"convergence_file" validate:"required"`
}

type Animate struct {
	File  string `yaml:"file" validate:"required"`
	Delay int    `yaml:"delay" validate:"gt=0"`
}

// Default returns the settings of the reference run: sizes 1000 to 8000,
// points_N.csv in, plot_N.png out, in the working directory.
func Default() *Config {
	return &Config{
		Dir:     ".",
		Input:   Naming{Prefix: render.DefaultInput.Prefix, Suffix: render.DefaultInput.Suffix},
		Output:  Naming{Prefix: render.DefaultOutput.Prefix, Suffix: render.DefaultOutput.Suffix},
		Sizes:   []int{1000, 2000, 4000, 8000},
		Backend: BackendGonum,
		Chart: Chart{
			Width:          6,
			Height:         6,
			Alpha:          0.3,
			MarkerArea:     10,
			ScatterColor:   "#1f77b4",
			CircleColor:    "#d62728",
			CircleWidth:    1.5,
			CircleSegments: 360,
		},
		Generate: Generate{Seed: 1},
		Estimate: Estimate{
			Workers:     1,
			ErrorsFile:  estimate.ErrorsFile,
			TimingsFile: estimate.TimingsFile,
			Convergence: "convergence.png",
		},
		Animate: Animate{
			File:  "plots.gif",
			Delay: animate.DefaultDelay,
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path yields the defaults. The result is validated.
func Load(
	path string,
) (
	*Config, error,
) {

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// rgbhex accepts exactly the forms ParseHexColor understands.
	err := v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
		_, err := ParseHexColor(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(err)
	}
	return v
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("config: invalid: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// InputNaming is where point tables are read from.
func (c *Config) InputNaming() render.Naming {
	return render.Naming{Dir: c.Dir, Prefix: c.Input.Prefix, Suffix: c.Input.Suffix}
}

// OutputNaming is where chart images are written.
func (c *Config) OutputNaming() render.Naming {
	return render.Naming{Dir: c.Dir, Prefix: c.Output.Prefix, Suffix: c.Output.Suffix}
}

// Style converts the chart settings to a chart.Style.
func (c Chart) Style() (
	chart.Style, error,
) {

	scatter, err := ParseHexColor(c.ScatterColor)
	if err != nil {
		return chart.Style{}, err
	}
	circle, err := ParseHexColor(c.CircleColor)
	if err != nil {
		return chart.Style{}, err
	}

	return chart.Style{
		Width:          vg.Length(c.Width) * vg.Inch,
		Height:         vg.Length(c.Height) * vg.Inch,
		Alpha:          c.Alpha,
		MarkerArea:     c.MarkerArea,
		ScatterColor:   scatter,
		CircleColor:    circle,
		CircleWidth:    vg.Points(c.CircleWidth),
		CircleSegments: c.CircleSegments,
	}, nil
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHexColor(
	s string,
) (
	color.RGBA, error,
) {

	hex, ok := strings.CutPrefix(s, "#")
	if ok && len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if !ok || len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("config: bad color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("config: bad color %q", s)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
