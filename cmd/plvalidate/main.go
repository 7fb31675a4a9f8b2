// Command plvalidate checks Polish identifiers and personal data from the
// command line.
//
//	plvalidate pesel 49040501580 46040501580
//	plvalidate nip 437-500-30-84
//	plvalidate pesel-date 1949-04-05 49040501580
//	plvalidate kinds
//
// Each value is printed with its verdict. The exit code is 0 when every value
// is valid, 1 when any is invalid and 2 on usage errors.
//
// Logging is configured through PLVALIDATE_LOG_LEVEL (default warn),
// PLVALIDATE_LOG_FORMAT (text or json) and PLVALIDATE_ENV, optionally from a
// .env file.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/plvalidator/pkg/config"
	"github.com/dmitrymomot/plvalidator/pkg/logger"
	"github.com/dmitrymomot/plvalidator/pkg/validator"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

type appConfig struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Env       string `env:"ENV" envDefault:"development"`
}

type kindKey struct{}

func main() {
	var cfg appConfig
	if err := config.Load(&cfg, config.WithPrefix("PLVALIDATE_")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, log))
}

func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithEnvironment(cfg.Env, "plvalidate"),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithContextValue("kind", kindKey{}),
	), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, log *slog.Logger) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	if args[0] == "kinds" {
		for _, k := range validator.Kinds() {
			fmt.Fprintf(stdout, "%s\t%d\n", k, k.Arity())
		}
		return exitValid
	}

	kind, err := validator.ParseKind(args[0])
	if err != nil {
		log.ErrorContext(ctx, "cannot validate", logger.Error(err))
		usage(stderr)
		return exitUsage
	}

	values := args[1:]
	arity := kind.Arity()
	if len(values) == 0 || len(values)%arity != 0 {
		log.ErrorContext(ctx, "wrong number of values", logger.Kind(kind.String()), logger.Count("values", len(values)))
		usage(stderr)
		return exitUsage
	}

	ctx = context.WithValue(ctx, kindKey{}, kind.String())

	// Values are personal data and are never logged.
	invalid := 0
	for i := 0; i < len(values); i += arity {
		group := values[i : i+arity]
		rule, err := validator.RuleFor(kind, kind.String(), group...)
		if err != nil {
			log.ErrorContext(ctx, "cannot build rule", logger.Error(err))
			return exitUsage
		}

		label := strings.Join(group, " ")
		if err := rule.Validate(); err != nil {
			invalid++
			fmt.Fprintf(stdout, "%s\tinvalid: %s\n", label, message(err))
			log.DebugContext(ctx, "value checked", logger.Valid(false))
			continue
		}
		fmt.Fprintf(stdout, "%s\tvalid\n", label)
		log.DebugContext(ctx, "value checked", logger.Valid(true))
	}

	log.InfoContext(ctx, "validation finished",
		logger.Count("checked", len(values)/arity),
		logger.Count("invalid", invalid),
	)

	if invalid > 0 {
		return exitInvalid
	}
	return exitValid
}

func message(err error) string {
	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		return verrs[0].Message
	}
	return err.Error()
}

func usage(w io.Writer) {
	kinds := validator.Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	fmt.Fprintf(w, "usage: plvalidate <kind> <value>...\n       plvalidate kinds\n\nkinds: %s\n", strings.Join(names, ", "))
}
