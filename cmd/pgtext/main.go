// Command pgtext checks PostgreSQL text format literals against a type and prints their canonical text.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jackc/pgtext"
	"github.com/jackc/pgtext/pgtype"
	"github.com/pkg/errors"
)

const version = "0.1.0"

var errInvalidLiterals = errors.New("invalid literals")

type cli struct {
	Config        string `short:"c" help:"TOML configuration file." type:"path"`
	ServerVersion string `help:"PostgreSQL server version. Types the server does not have are unavailable."`
	TimeZone      string `help:"Time zone that timestamptz values are rendered in."`
	Format        string `short:"f" help:"Output format: text, json or yaml."`
	LogLevel      string `help:"Log level: trace, debug, info, warn, error or none."`
	LogBackend    string `help:"Log backend: zerolog, zap, logrus, log15, kitlog or none."`

	Check   checkCmd   `cmd:"" help:"Check literals against a type and print their canonical text."`
	Types   typesCmd   `cmd:"" help:"List the known type names."`
	Version versionCmd `cmd:"" help:"Print version information."`
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	config config
}

func (a *app) typeMap() (*pgtext.TypeMap, error) {
	logger, err := newLogger(a.config.Log.Backend, a.stderr)
	if err != nil {
		return nil, err
	}

	tmConfig := pgtext.Config{
		ServerVersion: a.config.ServerVersion,
		TimeZone:      a.config.TimeZone,
		Logger:        logger,
	}
	if a.config.Log.Level != "" {
		tmConfig.LogLevel, err = pgtext.LogLevelFromString(a.config.Log.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "log level %q", a.config.Log.Level)
		}
	}

	tm, err := pgtext.NewTypeMap(tmConfig)
	return tm, errors.WithStack(err)
}

type checkCmd struct {
	Type     string   `arg:"" help:"Type name, e.g. int4, daterange, bit(3) or int4[]."`
	Literals []string `arg:"" optional:"" help:"Literals to check. Read one per line from stdin when omitted."`
}

func (c *checkCmd) Run(a *app) error {
	tm, err := a.typeMap()
	if err != nil {
		return err
	}

	literals := c.Literals
	if len(literals) == 0 {
		scanner := bufio.NewScanner(a.stdin)
		for scanner.Scan() {
			literals = append(literals, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return errors.Wrap(err, "read stdin")
		}
	}

	ctx := context.Background()
	results := make([]checkResult, 0, len(literals))
	lines := make([]string, 0, len(literals))
	invalid := false

	for _, src := range literals {
		r := checkResult{Input: src}
		v, err := tm.Parse(ctx, c.Type, src)
		if err != nil {
			var pgErr *pgtype.Error
			if !errors.As(err, &pgErr) {
				return errors.Wrapf(err, "check %s", c.Type)
			}
			r.Issue = string(pgErr.Code())
			r.Message = pgErr.Message
			invalid = true
		} else {
			r.Valid = true
			r.Canonical = v.String()
		}
		results = append(results, r)
		lines = append(lines, r.String())
	}

	if err := write(a.stdout, a.config.Format, results, lines); err != nil {
		return errors.Wrap(err, "write results")
	}
	if invalid {
		return errInvalidLiterals
	}
	return nil
}

type typesCmd struct{}

func (typesCmd) Run(a *app) error {
	tm, err := a.typeMap()
	if err != nil {
		return err
	}

	names := tm.Names()
	return errors.Wrap(write(a.stdout, a.config.Format, names, names), "write types")
}

type versionCmd struct{}

func (versionCmd) Run(a *app) error {
	_, err := fmt.Fprintf(a.stdout, "pgtext %s\n", version)
	return err
}

// run executes the command line args and returns the process exit code: 0 on success, 1 when a literal is
// invalid and 2 for any other error.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var flags cli
	exitCode := -1
	parser, err := kong.New(&flags,
		kong.Name("pgtext"),
		kong.Description("Check PostgreSQL text format literals."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "pgtext: %v\n", err)
		return 2
	}

	kctx, err := parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "pgtext: %v\n", err)
		return 2
	}

	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	a.config, err = loadConfig(flags.Config)
	if err != nil {
		fmt.Fprintf(stderr, "pgtext: %v\n", err)
		return 2
	}
	a.config.override(&flags)
	if err := a.config.validate(); err != nil {
		fmt.Fprintf(stderr, "pgtext: %v\n", err)
		return 2
	}

	err = kctx.Run(a)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errInvalidLiterals):
		return 1
	default:
		fmt.Fprintf(stderr, "pgtext: %v\n", err)
		return 2
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
