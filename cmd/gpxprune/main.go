package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/heaths/gpx"
	"github.com/heaths/gpx/config"
	"github.com/heaths/gpx/formatter"
)

// localLayout is the wall-clock layout for -start/-end, interpreted in the
// configured timezone.
const localLayout = "2006-01-02T15:04:05"

type job struct {
	pattern string
	input   string
	output  string
	result  *gpx.Result
}

func main() {
	start := flag.String("start", "", "window start, local time ("+localLayout+")")
	end := flag.String("end", "", "window end, local time ("+localLayout+")")
	out := flag.String("out", "", "output path (single input only; defaults to <input>_pruned.gpx)")
	overwrite := flag.Bool("overwrite", false, "write the edited document back to the input path")
	cfgPath := flag.String("config", "", "path to a gpxprune.yml config file")
	encodingFlag := flag.String("encoding", "", "output text encoding (overrides config): us-ascii|utf-8|utf-16le|utf-16be|utf-32")
	indent := flag.Bool("indent", false, "pretty-print output")
	flag.Parse()

	gpx.InitLogging()
	if err := config.LoadAppConfig(*cfgPath); err != nil {
		log.Fatalf("config: %v", err)
	}

	inputs := flag.Args()
	if len(inputs) == 0 || *start == "" || *end == "" {
		fmt.Println("Provide -start, -end and at least one input GPX path (wildcards allowed)")
		flag.Usage()
		os.Exit(1)
	}
	if *out != "" && len(inputs) > 1 {
		fmt.Println("-out is only valid with a single input")
		os.Exit(1)
	}
	if *out != "" && *overwrite {
		fmt.Println("-out and -overwrite are mutually exclusive")
		os.Exit(1)
	}

	loc, err := config.Config.Prune.Location()
	if err != nil {
		log.Fatalf("timezone: %v", err)
	}
	startT, err := time.ParseInLocation(localLayout, *start, loc)
	if err != nil {
		log.Fatalf("bad -start: %v", err)
	}
	endT, err := time.ParseInLocation(localLayout, *end, loc)
	if err != nil {
		log.Fatalf("bad -end: %v", err)
	}
	// start after end is tolerated: the prune pass matches nothing.

	encName := config.Config.Output.Encoding
	if *encodingFlag != "" {
		encName = *encodingFlag
	}
	enc, err := formatter.ParseEncoding(encName)
	if err != nil {
		log.Fatalf("bad encoding: %v", err)
	}
	opts := formatter.Options{
		Encoding: enc,
		Indent:   *indent || config.Config.Output.Indent,
	}

	jobs := make([]*job, 0, len(inputs))
	for _, pattern := range inputs {
		input, err := gpx.Resolve(pattern)
		if err != nil {
			fail(err)
		}
		j := &job{pattern: pattern, input: input}
		switch {
		case *out != "":
			j.output = *out
		case *overwrite:
			j.output = input
		default:
			j.output = outputPath(input)
		}
		jobs = append(jobs, j)
	}

	var g errgroup.Group
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			doc, err := gpx.LoadFile(j.input)
			if err != nil {
				return err
			}
			res, err := gpx.Prune(doc, startT, endT)
			if err != nil {
				return fmt.Errorf("%s: %w", j.input, err)
			}
			res.Warnings.LogAll(j.input)
			if err := formatter.Save(doc, j.output, opts); err != nil {
				return err
			}
			j.result = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fail(err)
	}

	if !config.Config.Quiet {
		printStats(jobs)
	}
}

func outputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_pruned.gpx"
}

func printStats(jobs []*job) {
	for _, j := range jobs {
		color.Set(color.FgYellow)
		fmt.Print("input: ")
		color.Set(color.FgGreen)
		fmt.Printf("%s\n", j.input)
		color.Set(color.FgYellow)
		fmt.Print("removed points: ")
		color.Set(color.FgGreen)
		fmt.Printf("%d\n", j.result.Removed)
		color.Set(color.FgYellow)
		fmt.Print("shifted points: ")
		color.Set(color.FgGreen)
		fmt.Printf("%d\n", j.result.Shifted)
		color.Set(color.FgYellow)
		fmt.Print("spliced out: ")
		color.Set(color.FgGreen)
		fmt.Printf("%v\n", j.result.Offset)
		color.Set(color.FgYellow)
		fmt.Print("output: ")
		color.Set(color.FgMagenta)
		fmt.Printf("%s\n", j.output)
		color.Unset()
		fmt.Println()
	}
}

func fail(err error) {
	switch {
	case errors.Is(err, gpx.ErrNoInput):
		log.Printf("input resolution failed: %v", err)
	case errors.Is(err, gpx.ErrParse):
		log.Printf("parse failed: %v", err)
	case errors.Is(err, gpx.ErrWrite):
		log.Printf("write failed: %v", err)
	default:
		log.Printf("%v", err)
	}
	os.Exit(1)
}
