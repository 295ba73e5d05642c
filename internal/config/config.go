package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/bsviz/internal/search"
)

const (
	DefaultTarget = 72.0
	DefaultTheme  = "cyberpunk"
	DefaultFormat = "text"
)

// DefaultArray is the array shown when nothing else is configured.
var DefaultArray = []float64{2, 5, 8, 12, 16, 23, 38, 42, 56, 72, 91}

// ErrInvalidConfig wraps every field-level validation failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// configValidate checks the struct tags of Config. Field errors are reported
// under their yaml key.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	configValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
	})
}

// Config is one resolved run. Theme names must match the palettes in
// internal/viz.
type Config struct {
	Array   []float64 `yaml:"array" validate:"required,min=1"`
	Target  float64   `yaml:"target"`
	Theme   string    `yaml:"theme" validate:"omitempty,oneof=cyberpunk retro minimal ocean sunset"`
	Format  string    `yaml:"format" validate:"oneof=text json csv"`
	Verbose bool      `yaml:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		Array:  append([]float64(nil), DefaultArray...),
		Target: DefaultTarget,
		Theme:  DefaultTheme,
		Format: DefaultFormat,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(DefaultConfig(), path)
}

// LoadOver reads path on top of a copy of base. Keys missing from the file
// keep base's values.
func LoadOver(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	cfg.Array = append([]float64(nil), base.Array...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the tagged fields first, then the search input contract.
// An empty array is reported as both ErrInvalidConfig and
// search.ErrEmptyArray.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		fe := fieldErrs[0]
		switch fe.Tag() {
		case "required", "min":
			if fe.Field() == "array" {
				return fmt.Errorf("%w: %w", ErrInvalidConfig, search.ErrEmptyArray)
			}
			return fmt.Errorf("%w: %s is required", ErrInvalidConfig, fe.Field())
		case "oneof":
			return fmt.Errorf("%w: %s %q (want one of %s)", ErrInvalidConfig, fe.Field(), fe.Value(), fe.Param())
		}
		return fmt.Errorf("%w: %s fails %s", ErrInvalidConfig, fe.Field(), fe.Tag())
	}
	return search.Validate(c.Array, c.Target)
}

// ParseValues reads a literal list such as "2, 5, 8 12". Commas and
// whitespace both separate values.
func ParseValues(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ';'
	})
	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		vals = append(vals, v)
	}
	if len(vals) == 0 {
		return nil, errors.New("no values given")
	}
	return vals, nil
}

// ReadValues reads an array from a file in ParseValues syntax. Text after
// '#' on a line is ignored.
func ReadValues(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var b strings.Builder
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	vals, err := ParseValues(b.String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vals, nil
}
