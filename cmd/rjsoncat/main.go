// Copyright 2024 The rjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rjsoncat decodes a JSON file and re-emits it, either as
// compact wire output or as an indented, colorized tree.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rjson/rjson"
	"github.com/rjson/rjson/rjsonfmt"
	"go.uber.org/zap"
)

func main() {
	prettyFlags := flag.NewFlagSet("rjsoncat", flag.ExitOnError)
	pretty := prettyFlags.Bool("pretty", false, "render an indented, colorized tree instead of compact output")
	color := prettyFlags.Bool("color", true, "colorize pretty output (ignored without -pretty)")
	verbose := prettyFlags.Bool("verbose", false, "log decode/encode timing")
	prettyFlags.Parse(os.Args[1:])

	args := prettyFlags.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: rjsoncat [-pretty] [-color] [-verbose] <file.json>")
		os.Exit(2)
	}

	var logger *zap.Logger
	if *verbose {
		logger, _ = zap.NewDevelopment()
	} else {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	data, err := os.ReadFile(args[0])
	if err != nil {
		logger.Error("read failed", zap.String("file", args[0]), zap.Error(err))
		os.Exit(1)
	}

	start := time.Now()
	v, err := rjson.Decode(data)
	if err != nil {
		logger.Error("decode failed", zap.String("file", args[0]), zap.Error(err))
		os.Exit(1)
	}
	defer rjson.Release(v)
	logger.Info("decoded", zap.String("file", args[0]), zap.Int("bytes", len(data)), zap.Duration("took", time.Since(start)))

	if *pretty {
		if err := rjsonfmt.Fprint(os.Stdout, v, rjsonfmt.Options{Color: *color}); err != nil {
			logger.Error("print failed", zap.Error(err))
			os.Exit(1)
		}
		fmt.Println()
		return
	}

	start = time.Now()
	out, err := rjson.Encode(v)
	if err != nil {
		logger.Error("encode failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("encoded", zap.Int("bytes", len(out)), zap.Duration("took", time.Since(start)))
	os.Stdout.Write(out)
	fmt.Println()
}
