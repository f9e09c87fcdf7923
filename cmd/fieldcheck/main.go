// Command fieldcheck validates a JSON document against a rule set and prints
// the sanitized document, or the failures keyed by field.
//
// Usage:
//
//	fieldcheck -rules rules.yaml -data input.json [-raise]
//
// Rule files ending in .json are read as JSON, anything else as YAML. Use
// "-" as the data path to read the document from stdin. The exit status is
// 0 when the document is valid, 1 when validation fails and 2 on usage or
// configuration errors. Engine settings come from FIELDKIT_* environment
// variables or a .env file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/fieldkit/pkg/config"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fieldcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rulesPath := fs.String("rules", "", "path to the rule set (YAML or JSON)")
	dataPath := fs.String("data", "-", `path to the JSON document, "-" for stdin`)
	raise := fs.Bool("raise", false, "report failures as an error on stderr instead of a JSON mapping")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *rulesPath == "" {
		fmt.Fprintln(stderr, "fieldcheck: -rules is required")
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.LoadEngine()
	if err != nil {
		fmt.Fprintf(stderr, "fieldcheck: %v\n", err)
		return exitUsage
	}
	log := logger.New(append(cfg.LoggerOptions(), logger.WithOutput(stderr))...)

	rules, err := loadRules(*rulesPath, cfg.NormalizeOptions())
	if err != nil {
		log.Error("failed to load rules", logger.Error(err))
		return exitUsage
	}

	data, err := loadData(*dataPath, stdin)
	if err != nil {
		log.Error("failed to read data", logger.Error(err))
		return exitUsage
	}

	v := validator.New(cfg.ValidatorOptions(log)...)

	if *raise {
		if err := v.Validate(data, rules); err != nil {
			fmt.Fprintf(stderr, "fieldcheck: %v\n", err)
			return exitInvalid
		}
		return writeJSON(stdout, data, log)
	}

	ok, errs := v.Check(data, rules)
	if !ok {
		if code := writeJSON(stdout, map[string]any{"valid": false, "errors": errs.Map()}, log); code != exitOK {
			return code
		}
		return exitInvalid
	}
	return writeJSON(stdout, data, log)
}

func loadRules(path string, opts []validator.NormalizeOption) (validator.RuleSet, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return validator.ParseRuleSetJSON(src, opts...)
	}
	return validator.ParseRuleSetYAML(src, opts...)
}

func loadData(path string, stdin io.Reader) (map[string]any, error) {
	var (
		src []byte
		err error
	)
	if path == "-" {
		src, err = io.ReadAll(stdin)
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(src, &data); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if data == nil {
		return nil, errors.New("document must be a JSON object")
	}
	return data, nil
}

func writeJSON(w io.Writer, v any, log *slog.Logger) int {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Error("failed to encode output", logger.Error(err))
		return exitUsage
	}
	fmt.Fprintln(w, string(out))
	return exitOK
}
