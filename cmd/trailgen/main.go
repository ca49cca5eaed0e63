package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/hanpama/trailgen/internal/compile"
	"github.com/hanpama/trailgen/internal/config"
	"github.com/hanpama/trailgen/internal/eventbus"
	"github.com/hanpama/trailgen/internal/logging"
	"github.com/hanpama/trailgen/internal/otel"
)

const rootUsage = `trailgen - GraphQL query trail generator

USAGE:
  trailgen <command> [flags]

COMMANDS:
  generate         Generate the trail package from GraphQL SDL
  check            Run every generator pass and report diagnostics without writing
  help             Show help for any command
`

const flagsUsage = `  -config <file>           trailgen.yaml to read (optional)
  -schema <path>           SDL file or directory. Repeatable; replaces config schema
  -out <file>              Output Go file (default: trails_gen.go)
  -package <name>          Go package name of the output (default: graph)
  -log.level <level>       debug, info, warn or error (default: info)
  -log.format <format>     text, json or logfmt (default: text)
  -otel.endpoint <addr>    OTLP collector endpoint
  -otel.service <name>     OpenTelemetry service name (default: trailgen)
`

const generateUsage = "generate FLAGS:\n" + flagsUsage + "  (Exits non-zero when diagnostics are reported; the output is still written)\n"

const checkUsage = "check FLAGS:\n" + flagsUsage

// errDiagnostics is returned when a compilation reported diagnostics.
var errDiagnostics = errors.New("schema has diagnostics")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("trailgen", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer))
	if err := global.Parse(args); err != nil {
		fmt.Fprint(stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]
	switch cmd {
	case "generate":
		return cmdCompile(cmdArgs, generateUsage, true, stderr)
	case "check":
		return cmdCompile(cmdArgs, checkUsage, false, stderr)
	case "help":
		return cmdHelp(cmdArgs, stdout)
	default:
		fmt.Fprint(stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, rootUsage)
		return nil
	}
	switch args[0] {
	case "generate":
		fmt.Fprint(stdout, generateUsage)
	case "check":
		fmt.Fprint(stdout, checkUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

type stringListFlag []string

func (s *stringListFlag) String() string { return "" }

func (s *stringListFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(name string, args []string, usage string, stderr io.Writer) (*config.Config, error) {
	var (
		configPath string
		schemas    stringListFlag
		out        string
		pkg        string
		logLevel   string
		logFormat  string
		otelEP     string
		otelSvc    string
	)
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&configPath, "config", "", "trailgen.yaml to read")
	fs.Var(&schemas, "schema", "SDL file or directory")
	fs.StringVar(&out, "out", "", "Output Go file")
	fs.StringVar(&pkg, "package", "", "Go package name")
	fs.StringVar(&logLevel, "log.level", "", "Log level")
	fs.StringVar(&logFormat, "log.format", "", "Log format")
	fs.StringVar(&otelEP, "otel.endpoint", "", "OTLP collector endpoint")
	fs.StringVar(&otelSvc, "otel.service", "", "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(stderr, usage)
		return nil, err
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}
	if len(schemas) > 0 {
		cfg.Schema = schemas
	}
	for _, o := range []struct {
		dst *string
		val string
	}{
		{&cfg.Output, out},
		{&cfg.Package, pkg},
		{&cfg.Log.Level, logLevel},
		{&cfg.Log.Format, logFormat},
		{&cfg.Otel.Endpoint, otelEP},
		{&cfg.Otel.Service, otelSvc},
	} {
		if o.val != "" {
			*o.dst = o.val
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprint(stderr, usage)
		return nil, err
	}
	return cfg, nil
}

func cmdCompile(args []string, usage string, write bool, stderr io.Writer) error {
	name := "check"
	if write {
		name = "generate"
	}
	cfg, err := loadConfig(name, args, usage, stderr)
	if err != nil {
		return err
	}

	logger, err := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	bus := eventbus.New()
	detach := logging.Attach(bus, logger)
	defer detach()

	ctx := context.Background()
	shutdown, err := otel.Setup(ctx, cfg.Otel.Endpoint, cfg.Otel.Service, bus)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	out, err := compile.Run(ctx, cfg, bus, write)
	if err != nil {
		return err
	}
	if n := len(out.Diagnostics); n > 0 {
		return fmt.Errorf("%w: %d reported", errDiagnostics, n)
	}
	return nil
}
