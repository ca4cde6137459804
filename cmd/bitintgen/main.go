// Command bitintgen writes one fixed-width unsigned integer type per bit
// width given on the command line. It is run by go:generate in the bitint
// package root:
//
//	bitintgen -out . 24 48 80 256 512 1024 2048 4096
//
// The output belongs to package bitint and uses its unexported limb helpers,
// so -out should name the bitint package directory. Each width must be a
// positive multiple of 8; the command fails before writing anything if one
// is not.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
)

const usage = `Fixed-width integer generator

Usage: bitintgen [-out <dir>] [-v] <bits>...`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		os.Exit(1)
	}
}

var errUsage = errors.New("bitintgen: usage")

func run(args []string) error {
	fs := flag.NewFlagSet("bitintgen", flag.ContinueOnError)
	out := fs.String("out", ".", "Output directory")
	verbose := fs.Bool("v", false, "Log each generated type")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: no widths given", errUsage)
	}

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		log = l
	}
	defer log.Sync() //nolint:errcheck

	widths, err := parseWidths(fs.Args())
	if err != nil {
		return err
	}

	gen := &generator{log: log}

	// Render everything before touching the filesystem so a bad width
	// never leaves a partial catalogue behind.
	files := make(map[string][]byte, len(widths))
	for _, bits := range widths {
		src, err := gen.render(bits)
		if err != nil {
			return err
		}
		files[fileName(bits)] = src
	}

	for _, bits := range widths {
		name := filepath.Join(*out, fileName(bits))
		if err := os.WriteFile(name, files[fileName(bits)], 0o644); err != nil {
			return fmt.Errorf("bitintgen: write %s: %w", name, err)
		}
		log.Info("wrote type", zap.Int("bits", bits), zap.String("file", name))
	}
	return nil
}

func parseWidths(args []string) ([]int, error) {
	seen := make(map[int]bool, len(args))
	widths := make([]int, 0, len(args))
	for _, arg := range args {
		bits, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("bitintgen: width %q is not an integer", arg)
		}
		if seen[bits] {
			continue
		}
		seen[bits] = true
		widths = append(widths, bits)
	}
	return widths, nil
}

func fileName(bits int) string {
	return fmt.Sprintf("u%d.go", bits)
}
