// Copyright 2024 The rjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rjsonlint validates one or more JSON files against RFC 8259
// and reports every failure found, rather than stopping at the first.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rjson/rjson"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	lintFlags := flag.NewFlagSet("rjsonlint", flag.ExitOnError)
	dir := lintFlags.String("dir", "", "recursively lint every .json file under this directory instead of the given files")
	quiet := lintFlags.Bool("quiet", false, "suppress per-file success lines")
	lintFlags.Parse(os.Args[1:])

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	files, err := collectFiles(*dir, lintFlags.Args())
	if err != nil {
		logger.Error("collecting input files failed", zap.Error(err))
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: rjsonlint [-dir DIR] [-quiet] file.json ...")
		os.Exit(2)
	}

	var combined error
	for _, f := range files {
		if err := lintFile(f, *quiet, logger); err != nil {
			combined = multierr.Append(combined, err)
		}
	}

	if combined != nil {
		for _, err := range multierr.Errors(combined) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func collectFiles(dir string, explicit []string) ([]string, error) {
	if dir == "" {
		return explicit, nil
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".json" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func lintFile(path string, quiet bool, logger *zap.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	v, err := rjson.Decode(data)
	if err != nil {
		logger.Warn("invalid JSON", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("%s: %w", path, err)
	}
	rjson.Release(v)
	if !quiet {
		fmt.Printf("%s: ok\n", path)
	}
	return nil
}
