// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command gomark renders Markdown files (or stdin) to HTML.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tonitrnel/gomark"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gomark", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		gfm       = fs.Bool("gfm", false, "enable GitHub Flavored Markdown extensions")
		gfmLinks  = fs.Bool("gfm-autolink", false, "enable GFM extended autolinks (bare URLs, www., email)")
		ofm       = fs.Bool("obsidian", false, "enable Obsidian Flavored Markdown extensions")
		mdx       = fs.Bool("mdx", false, "accept MDX-style component tags in raw HTML")
		cjkSpace  = fs.Bool("cjk-autocorrect", false, "insert spacing between CJK text and ASCII")
		cjkPunct  = fs.Bool("cjk-punctuation", false, "normalize Chinese punctuation to full-width")
		cjkFlank  = fs.Bool("cjk-delimiters", false, "treat CJK characters as letters for emphasis flanking")
		smart     = fs.Bool("smart-punctuation", false, "curl quotes and substitute dashes/ellipses")
		maxBytes  = fs.Int("max-bytes", 0, "maximum input size in bytes (0 = unbounded)")
		maxNodes  = fs.Int("max-nodes", 0, "maximum tree nodes (0 = unbounded)")
		ignoreRaw = fs.Bool("ignore-raw-html", false, "drop raw HTML blocks and inline tags from output")
		tagfilter = fs.Bool("tagfilter", false, "apply GFM's disallowed-raw-html tag filter")
		verbose   = fs.Bool("v", false, "log parse failures, such as resource-limit errors, to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if *verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var opts []gomark.Option
	if *gfm {
		opts = append(opts, gomark.WithGithubFlavored())
	}
	if *gfmLinks {
		opts = append(opts, gomark.WithGFMExtendedAutolink())
	}
	if *ofm {
		opts = append(opts, gomark.WithObsidianFlavored())
	}
	if *mdx {
		opts = append(opts, gomark.WithMDXComponent())
	}
	if *cjkSpace {
		opts = append(opts, gomark.WithCJKAutocorrect())
	}
	if *cjkPunct {
		opts = append(opts, gomark.WithNormalizeChinesePunctuation())
	}
	if *cjkFlank {
		opts = append(opts, gomark.WithCJKFriendlyDelimiters())
	}
	if *smart {
		opts = append(opts, gomark.WithSmartPunctuation())
	}
	if *maxBytes > 0 {
		opts = append(opts, gomark.WithMaxInputBytes(*maxBytes))
	}
	if *maxNodes > 0 {
		opts = append(opts, gomark.WithMaxNodes(*maxNodes))
	}
	options := gomark.NewOptions(opts...)

	renderer := &gomark.HTMLRenderer{IgnoreRaw: *ignoreRaw}
	if *tagfilter {
		renderer.FilterTag = gomark.FilterTagGFM
	}

	ctx := context.Background()
	files := fs.Args()
	if len(files) == 0 {
		return renderOne(ctx, logger, renderer, options, "<stdin>", stdin, stdout, stderr)
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			logger.Error("open file", "file", name, "error", err)
			fmt.Fprintf(stderr, "gomark: %v\n", err)
			return 1
		}
		code := renderOne(ctx, logger, renderer, options, name, f, stdout, stderr)
		f.Close()
		if code != 0 {
			return code
		}
		select {
		case <-ctx.Done():
			return 1
		default:
		}
	}
	return 0
}

func renderOne(_ context.Context, logger *slog.Logger, renderer *gomark.HTMLRenderer, options gomark.Options, name string, r io.Reader, w, errw io.Writer) int {
	source, err := io.ReadAll(r)
	if err != nil {
		logger.Error("read input", "file", name, "error", err)
		return 1
	}
	doc, err := gomark.Parse(source, options)
	if err != nil {
		logger.Debug("parse failed", "file", name, "error", err)
		fmt.Fprintf(errw, "gomark: %s: %v\n", name, err)
		return 1
	}
	if err := renderer.Render(w, doc); err != nil {
		logger.Error("render html", "file", name, "error", err)
		return 1
	}
	return 0
}
