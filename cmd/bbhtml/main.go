/*
Copyright (c) 2019 Maxim Konakov
All rights reserved.

Redistribution and use in source and binary forms, with or without modification,
are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice,
   this list of conditions and the following disclaimer.
2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.
3. Neither the name of the copyright holder nor the names of its contributors
   may be used to endorse or promote products derived from this software without
   specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS" AND
ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED
WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED.
IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT,
INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING,
BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY
OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE,
EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// Command bbhtml converts bbcode files to HTML.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/maxim2266/bbhtml"
	"github.com/maxim2266/bbhtml/internal/config"
	"github.com/maxim2266/bbhtml/internal/logfields"
	"github.com/maxim2266/bbhtml/metrics"
)

// CLI is the command line of bbhtml.
type CLI struct {
	Config   string `short:"c" type:"path" help:"Configuration file path"`
	Verbose  bool   `short:"v" help:"Enable verbose logging"`
	Encoding string `short:"e" default:"utf-8" help:"Character encoding of the input (any WHATWG label)"`

	Convert ConvertCmd `cmd:"" default:"withargs" help:"Convert files, or standard input, to HTML"`
	Watch   WatchCmd   `cmd:"" help:"Convert a file again every time it changes"`
}

// env is what the commands run with.
type env struct {
	ctx     context.Context
	cfg     *config.Config
	log     *slog.Logger
	conv    *bbhtml.Converter
	enc     encoding.Encoding
	encName string
	stdin   io.Reader
	stdout  io.Writer
}

func main() {
	var cli CLI

	kctx := kong.Parse(&cli,
		kong.Name("bbhtml"),
		kong.Description("Convert bbcode markup to HTML."),
		kong.UsageOnError())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, kctx, &cli, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "bbhtml:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, kctx *kong.Context, cli *CLI, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := config.Default()

	if cli.Config != "" {
		var err error

		if cfg, err = config.Load(cli.Config); err != nil {
			return err
		}
	}

	logger := cfg.NewLogger(stderr, cli.Verbose)
	reg := prometheus.NewRegistry()

	conv, err := bbhtml.New(cfg.ConverterOptions(logger, metrics.NewPrometheusRecorder(reg))...)

	if err != nil {
		return err
	}

	enc, err := htmlindex.Get(cli.Encoding)

	if err != nil {
		return fmt.Errorf("unsupported input encoding %q: %w", cli.Encoding, err)
	}

	err = kctx.Run(&env{
		ctx:     ctx,
		cfg:     cfg,
		log:     logger,
		conv:    conv,
		enc:     enc,
		encName: cli.Encoding,
		stdin:   stdin,
		stdout:  stdout,
	})

	if path := cfg.Metrics.Textfile; path != "" {
		if merr := prometheus.WriteToTextfile(path, reg); merr != nil {
			logger.Error("Failed to write metrics", logfields.Path(path), logfields.Error(merr))
		}
	}

	return err
}

// convert reads r in the input encoding and converts it within the configured timeout.
func (e *env) convert(r io.Reader, name string) ([]byte, error) {
	src, err := io.ReadAll(transform.NewReader(r, e.enc.NewDecoder()))

	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	ctx := e.ctx

	if d := e.cfg.Timeout(); d > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	start := time.Now()
	res, err := e.conv.Convert(ctx, src)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	e.log.Info("Converted",
		logfields.Path(name),
		logfields.Encoding(e.encName),
		logfields.InputBytes(len(src)),
		logfields.OutputBytes(len(res)),
		logfields.Duration(time.Since(start)))

	return res, nil
}

func (e *env) convertFile(path string) ([]byte, error) {
	f, err := os.Open(path)

	if err != nil {
		return nil, err
	}

	defer f.Close()

	return e.convert(f, path)
}
