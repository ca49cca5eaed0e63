package config

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// Ownership selects how a generated resolver method returns its value.
type Ownership string

const (
	// Borrowed results are returned by pointer.
	Borrowed Ownership = "borrowed"
	// Owned results are returned as plain values.
	Owned Ownership = "owned"
)

// Config is the content of trailgen.yaml.
type Config struct {
	// Schema lists SDL files or directories.
	Schema  []string `yaml:"schema" validate:"required,min=1,dive,required"`
	Output  string   `yaml:"output" validate:"required"`
	Package string   `yaml:"package" validate:"required,goident"`
	// Ownership maps "Type.field" to borrowed or owned. Unlisted fields are
	// borrowed.
	Ownership map[string]Ownership `yaml:"ownership" validate:"dive,keys,fieldref,endkeys,oneof=borrowed owned"`
	Log       LogConfig            `yaml:"log"`
	Otel      OtelConfig           `yaml:"otel"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json logfmt"`
}

type OtelConfig struct {
	Endpoint string `yaml:"endpoint" validate:"omitempty,hostname_port"`
	Service  string `yaml:"service"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output:  "trails_gen.go",
		Package: "graph",
		Log:     LogConfig{Level: "info", Format: "text"},
		Otel:    OtelConfig{Service: "trailgen"},
	}
}

// Load reads and validates a configuration file. Values absent from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var fieldRefPattern = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*\.[_A-Za-z][_0-9A-Za-z]*$`)

// customValidations are the tags registered on top of validator's own.
var customValidations = map[string]validator.Func{
	"goident": func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return token.IsIdentifier(s) && s != "_"
	},
	"fieldref": func(fl validator.FieldLevel) bool {
		return fieldRefPattern.MatchString(fl.Field().String())
	},
}

var newValidate = sync.OnceValues(func() (*validator.Validate, error) {
	v := validator.New()
	if err := register(v, customValidations); err != nil {
		return nil, err
	}
	return v, nil
})

func register(v *validator.Validate, fns map[string]validator.Func) error {
	for tag, fn := range fns {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q validation: %w", tag, err)
		}
	}
	return nil
}

// Validate checks c and reports every invalid value at once.
func (c *Config) Validate() error {
	v, err := newValidate()
	if err != nil {
		return err
	}
	err = v.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// OwnershipOf returns the configured ownership of typeName.field.
func (c *Config) OwnershipOf(typeName, field string) Ownership {
	if o, ok := c.Ownership[typeName+"."+field]; ok {
		return o
	}
	return Borrowed
}
