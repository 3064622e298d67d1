package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muhammadolammi/skillworker/internal/resume"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Exit codes per failure kind.
const (
	exitOK          = 0
	exitUsage       = 1
	exitUnsupported = 2
	exitCorrupt     = 3
	exitNoSection   = 4
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("skillscan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		contentType   string
		asJSON        bool
		verbose       bool
		strict        bool
		stopAtHeading bool
	)
	fs.StringVar(&contentType, "type", "", "Declared content type (sniffed from the file when empty)")
	fs.BoolVar(&asJSON, "json", false, "Print skills as a JSON array")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")
	fs.BoolVar(&strict, "strict", false, "Split on newline, bullet, comma and semicolon only")
	fs.BoolVar(&stopAtHeading, "stop-at-heading", false, "End the skills section at the next heading")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: skillscan [flags] FILE")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	path := fs.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "skillscan: %v\n", err)
		return exitUsage
	}
	if contentType == "" {
		contentType = resume.SniffContentType(data)
		log.Debug().Str("file", path).Str("type", contentType).Msg("sniffed content type")
	}

	parser := resume.NewParser(resume.ParserOptions{
		StopAtHeading:    stopAtHeading,
		StrictSeparators: strict,
	})
	skills, err := resume.Process(resume.NewExtractor(resume.ExtractorOptions{}), parser, data, contentType)
	if err != nil {
		kind := resume.KindOf(err)
		log.Debug().Err(err).Str("kind", kind.String()).Msg("extraction failed")
		fmt.Fprintln(stderr, resume.Notice(kind))
		return exitCode(kind)
	}

	if asJSON {
		enc := json.NewEncoder(stdout)
		if err := enc.Encode(skills); err != nil {
			fmt.Fprintf(stderr, "skillscan: %v\n", err)
			return exitUsage
		}
		return exitOK
	}
	for _, skill := range skills {
		fmt.Fprintln(stdout, skill)
	}
	return exitOK
}

func exitCode(kind resume.ErrorKind) int {
	switch kind {
	case resume.UnsupportedFormat:
		return exitUnsupported
	case resume.CorruptDocument:
		return exitCorrupt
	case resume.SectionNotFound:
		return exitNoSection
	}
	return exitUsage
}
