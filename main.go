// Command sof runs the SOF interpreter (spec §6's CLI surface) over one
// or more source files, an inline `-c` command, or standard input.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jcorbin/sof/internal/builtin"
	"github.com/jcorbin/sof/internal/interp"
	"github.com/jcorbin/sof/internal/langerr"
	"github.com/jcorbin/sof/internal/location"
	"github.com/jcorbin/sof/internal/logio"
	"github.com/jcorbin/sof/internal/preprocess"
)

const version = "sof 0.1.0"

func main() {
	var (
		help           bool
		showVersion    bool
		debug          bool
		preprocessOnly bool
		skipPreprocess bool
		command        string
	)
	flag.BoolVar(&help, "h", false, "print usage and exit")
	flag.BoolVar(&showVersion, "v", false, "print version and exit")
	flag.BoolVar(&debug, "d", false, "enable debug trace logging")
	flag.BoolVar(&preprocessOnly, "p", false, "print preprocessed source and exit, without running it")
	flag.BoolVar(&skipPreprocess, "P", false, "skip the preprocessor pass when running source")
	flag.StringVar(&command, "c", "", "run COMMAND as inline source instead of reading files")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-h] [-v] [-d] [-p] [-P] [-c COMMAND] [file ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if help {
		flag.Usage()
		return
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, version)
		return
	}

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	sources, err := gatherSources(command, flag.Args())
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	if preprocessOnly {
		for _, s := range sources {
			clean, err := preprocess.Run(s.file, s.src)
			if err != nil {
				log.Errorf("%v", renderError(err, s.file, s.src))
				continue
			}
			fmt.Fprintln(os.Stdout, clean)
		}
		return
	}

	opts := []interp.Option{
		interp.WithInput(os.Stdin),
	}
	if debug {
		// tee program output alongside the trace log on stderr, so
		// `writeln`/`write` output interleaves with TRACE lines instead
		// of only ever landing on stdout.
		opts = append(opts,
			interp.WithOutputs(os.Stdout, os.Stderr),
			interp.WithTracef(log.Leveledf("TRACE")),
		)
	} else {
		opts = append(opts, interp.WithOutput(os.Stdout))
	}
	in := interp.New(opts...)

	ctx := context.Background()
	if err := builtin.Install(ctx, in); err != nil {
		log.Errorf("preamble: %v", renderError(err, builtin.PreambleFile, ""))
		return
	}

	for _, s := range sources {
		var runErr error
		if skipPreprocess {
			runErr = in.RunSourceNoPreprocess(ctx, s.file, s.src)
		} else {
			runErr = in.RunSource(ctx, s.file, s.src)
		}
		if runErr != nil {
			clean, preErr := preprocess.Run(s.file, s.src)
			if preErr != nil {
				clean = s.src
			}
			log.Errorf("%v", renderError(runErr, s.file, clean))
		}
	}
}

type namedSource struct {
	file string
	src  string
}

// gatherSources resolves the CLI's input surface: an inline `-c`
// command takes precedence, then file arguments, then standard input
// when neither is given (spec §6: "followed by zero or more filenames").
func gatherSources(command string, files []string) ([]namedSource, error) {
	if command != "" {
		return []namedSource{{file: "<command-line>", src: command}}, nil
	}
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return []namedSource{{file: "<stdin>", src: string(data)}}, nil
	}
	sources := make([]namedSource, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		sources = append(sources, namedSource{file: f, src: string(data)})
	}
	return sources, nil
}

// renderError formats an uncaught error for the CLI (spec §7): a header
// with the error kind, the file+line, a caret-marked excerpt of the
// offending line (when a location and its matching clean source text are
// both available), and the reason string with its arguments substituted.
func renderError(err error, file, cleanSrc string) string {
	le, ok := err.(*langerr.Error)
	if !ok {
		return err.Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s error", le.TypeKey)

	if le.Complete {
		fmt.Fprintf(&sb, " at %s", location.Described(le.Loc, cleanSrc))
		if le.Loc.File == file && cleanSrc != "" {
			line, col := location.ExcerptLine(cleanSrc, le.Loc.Index)
			fmt.Fprintf(&sb, "\n\t%s\n\t%s^", line, strings.Repeat(" ", col))
		}
	}

	reason := le.MsgKey
	if len(le.Args) > 0 {
		reason = fmt.Sprintf(le.MsgKey, le.Args...)
	}
	fmt.Fprintf(&sb, ": %s", reason)
	return sb.String()
}
