package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ninggf/folio4go/schema"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// slogLogger sends schema diagnostics to slog
type slogLogger struct {
	logger *slog.Logger
}

func (l slogLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func (l slogLogger) Infof(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l slogLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

type fieldReport struct {
	Field string                 `json:"field"`
	Type  string                 `json:"type"`
	Vno   uint8                  `json:"vno"`
	Opts  *schema.FieldIndexOpts `json:"opts"`
}

func main() {
	schemaPath := flag.String("schema", "", "path to an infobase schema (TOML)")
	flags := flag.String("flags", "", "resolve a single indexing option list, e.g. \"PF,TE\"")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("folioidx %s\n", Version)
		return
	}

	level := parseLogLevel(*logLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	schema.Logger = slogLogger{logger}
	schema.LogLevel = schema.DebugLevel // filtering is left to slog

	if err := run(os.Stdout, *schemaPath, *flags, isFlagSet("flags")); err != nil {
		logger.Error("folioidx failed", "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer, schemaPath, flags string, flagsSet bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	switch {
	case schemaPath != "":
		setting, err := schema.LoadConf(schemaPath)
		if err != nil {
			return fmt.Errorf("load schema: %w", err)
		}
		slog.Debug("schema loaded", "name", setting.Conf.Name, "fields", len(setting.Schema.FieldMetas))
		reports := make([]fieldReport, 0, len(setting.Schema.FieldMetas))
		for _, name := range setting.Schema.FieldNames() {
			meta, _ := setting.Schema.Field(name)
			reports = append(reports, fieldReport{name, meta.Type, meta.Vno, meta.Opts})
		}
		return enc.Encode(reports)
	case flagsSet:
		return enc.Encode(schema.ResolveFromFlags(schema.SplitFlags(flags)))
	default:
		return fmt.Errorf("one of -schema or -flags is required")
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
