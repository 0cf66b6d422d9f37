/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads and validates the parameters of the gaussum
// command line tool.
package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/fentec-project/gaussum/sumgauss"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables overriding
// configuration values.
const EnvPrefix = "GAUSSUM_"

// Sample counts are restricted to powers of ten in this range.
const (
	MinSamples = 10
	MaxSamples = 100000000
)

// Config holds the parameters of one or more renders.
type Config struct {
	Mean1   float64 `yaml:"mean1" env:"MEAN1" validate:"gte=-10,lte=10"`
	Std1    float64 `yaml:"std1" env:"STD1" validate:"gte=0,lte=10"`
	Mean2   float64 `yaml:"mean2" env:"MEAN2" validate:"gte=-10,lte=10"`
	Std2    float64 `yaml:"std2" env:"STD2" validate:"gte=0,lte=10"`
	Samples int     `yaml:"samples" env:"SAMPLES" validate:"pow10"`
	Bins    int     `yaml:"bins" env:"BINS" validate:"gte=1,lte=1000"`
	Seed    uint64  `yaml:"seed" env:"SEED"`

	Output string `yaml:"output" env:"OUTPUT" validate:"required"`
	// Format is derived from the extension of Output when empty.
	Format string  `yaml:"format" env:"FORMAT" validate:"omitempty,oneof=png svg pdf eps jpg jpeg tif tiff"`
	Width  float64 `yaml:"width_cm" env:"WIDTH_CM" validate:"gt=0,lte=200"`
	Height float64 `yaml:"height_cm" env:"HEIGHT_CM" validate:"gt=0,lte=200"`

	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" validate:"oneof=text json"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Mean1:     0,
		Std1:      1,
		Mean2:     0,
		Std2:      1,
		Samples:   10000,
		Bins:      sumgauss.DefaultBins,
		Seed:      42,
		Output:    "sum_of_gaussians.png",
		Width:     20,
		Height:    16,
		LogFormat: "text",
	}
}

// Load returns the default configuration overridden by the YAML file
// at path, if path is not empty, and then by GAUSSUM_* environment
// variables. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "error reading config file")
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "error parsing config file %s", path)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, errors.Wrap(err, "error parsing environment")
	}

	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("pow10", func(fl validator.FieldLevel) bool {
		return IsPow10Samples(int(fl.Field().Int()))
	})
	return v
}

// IsPow10Samples reports whether n is a power of ten
// between MinSamples and MaxSamples.
func IsPow10Samples(n int) bool {
	for p := MinSamples; p <= MaxSamples; p *= 10 {
		if n == p {
			return true
		}
	}
	return false
}

// Validate checks that every value is within the range accepted
// by the input controls.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return errors.Wrap(err, "invalid config")
		}
		msgs := make([]string, len(verrs))
		for i, fe := range verrs {
			msgs[i] = describe(fe)
		}
		return errors.Wrap(sumgauss.ErrInvalidParameter, strings.Join(msgs, "; "))
	}
	if _, err := c.ImageFormat(); err != nil {
		return err
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "pow10":
		return fe.Field() + " should be a power of ten between 10 and 10^8"
	case "oneof":
		return fe.Field() + " should be one of " + fe.Param()
	case "required":
		return fe.Field() + " is required"
	default:
		return fe.Field() + " should be " + fe.Tag() + " " + fe.Param()
	}
}

// Params returns the parameters of the demonstration.
func (c Config) Params() sumgauss.Params {
	return sumgauss.Params{
		Mean1:       c.Mean1,
		Std1:        c.Std1,
		Mean2:       c.Mean2,
		Std2:        c.Std2,
		SampleCount: c.Samples,
		Bins:        c.Bins,
	}
}

// ImageFormat returns Format, or the extension of Output when
// Format is empty.
func (c Config) ImageFormat() (string, error) {
	if c.Format != "" {
		return c.Format, nil
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(c.Output)), ".")
	switch ext {
	case "png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff":
		return ext, nil
	}
	return "", errors.Errorf("cannot derive image format from output %q", c.Output)
}

// Size returns the dimensions of the rendered figure.
func (c Config) Size() (width, height vg.Length) {
	return vg.Length(c.Width) * vg.Centimeter, vg.Length(c.Height) * vg.Centimeter
}

// Set updates the parameter named key from its textual value.
// Keys are mean1, std1, mean2, std2, samples, bins and seed.
// The result is not validated.
func (c *Config) Set(key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	var err error
	switch key {
	case "mean1":
		c.Mean1, err = strconv.ParseFloat(value, 64)
	case "std1":
		c.Std1, err = strconv.ParseFloat(value, 64)
	case "mean2":
		c.Mean2, err = strconv.ParseFloat(value, 64)
	case "std2":
		c.Std2, err = strconv.ParseFloat(value, 64)
	case "samples":
		c.Samples, err = parseSamples(value)
	case "bins":
		c.Bins, err = strconv.Atoi(value)
	case "seed":
		c.Seed, err = strconv.ParseUint(value, 10, 64)
	default:
		return errors.Errorf("unknown parameter %q", key)
	}
	if err != nil {
		return errors.Wrapf(err, "invalid value for %s", key)
	}
	return nil
}

// parseSamples accepts plain integers as well as 1e5 style powers of ten.
func parseSamples(value string) (int, error) {
	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, errors.Errorf("%s is not an integer", value)
	}
	return int(f), nil
}
