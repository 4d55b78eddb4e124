// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/cmdutil"
	"cloudeng.io/lcsengine/lcs"
	"cloudeng.io/logging"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

type allFlags struct {
	CommonFlags
	Format string `subcmd:"format,text,'output format: text or json'"`
}

type diffFlags struct {
	CommonFlags
	Vertical bool `subcmd:"vertical,false,'print one edit per line'"`
}

type runner struct {
	out io.Writer
}

// session represents the state shared by all commands once flags, the
// configuration file and the input sequences have been processed.
type session struct {
	ctx    context.Context
	cfg    Config
	a, b   []rune
	logger *cmdutil.Logger
}

func (s *session) Close() error {
	return s.logger.Close()
}

func newSession(ctx context.Context, cf *CommonFlags, args []string) (*session, error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	s := &session{ctx: ctx, logger: logger}
	s.cfg, err = loadConfig(cf)
	if err != nil {
		logger.Close()
		return nil, err
	}
	dec := s.cfg.decoder()
	seqs := make([][]rune, len(args))
	for i, arg := range args {
		buf, err := readSequence(arg)
		if err != nil {
			logger.Close()
			return nil, err
		}
		seqs[i] = dec.Decode(buf)
	}
	if len(seqs) == 2 {
		s.a, s.b = seqs[0], seqs[1]
	}
	if cf.Verify {
		if err := lcs.Agree(s.a, s.b, s.cfg.options()...); err != nil {
			logger.Close()
			return nil, err
		}
		ctxlog.Logger(ctx).Info("strategies agree", "rows", len(s.a)+1, "cols", len(s.b)+1)
	}
	return s, nil
}

func (s *session) solve() (*lcs.Result, error) {
	strategy, err := s.cfg.strategy()
	if err != nil {
		return nil, err
	}
	return lcs.Solve(s.ctx, s.a, s.b, strategy, s.cfg.options()...)
}

func (s *session) build() (*lcs.Table, error) {
	strategy, err := s.cfg.strategy()
	if err != nil {
		return nil, err
	}
	return lcs.Build(s.a, s.b, strategy, s.cfg.options()...)
}

func (r *runner) length(ctx context.Context, values any, args []string) error {
	s, err := newSession(ctx, values.(*CommonFlags), args)
	if err != nil {
		return err
	}
	defer s.Close()
	fmt.Fprintln(r.out, lcs.Length(s.a, s.b))
	return nil
}

type allOutput struct {
	Strategy  string   `json:"strategy"`
	Length    int      `json:"length"`
	Solutions []string `json:"solutions"`
}

func (r *runner) all(ctx context.Context, values any, args []string) error {
	fv := values.(*allFlags)
	s, err := newSession(ctx, &fv.CommonFlags, args)
	if err != nil {
		return err
	}
	defer s.Close()
	res, err := s.solve()
	if err != nil {
		return err
	}
	solutions := res.Solutions.Sorted()
	switch fv.Format {
	case "json":
		return logging.NewJSONFormatter(r.out, "", "  ").Format(allOutput{
			Strategy:  res.Strategy.String(),
			Length:    res.Length,
			Solutions: solutions,
		})
	case "text", "":
		fmt.Fprintf(r.out, "length: %v\n", res.Length)
		for _, sol := range solutions {
			fmt.Fprintln(r.out, sol)
		}
		return nil
	}
	return fmt.Errorf("unsupported output format: %q", fv.Format)
}

func (r *runner) table(ctx context.Context, values any, args []string) error {
	s, err := newSession(ctx, values.(*CommonFlags), args)
	if err != nil {
		return err
	}
	defer s.Close()
	t, err := s.build()
	if err != nil {
		return err
	}
	t.Format(r.out, s.a, s.b)
	return nil
}

func (r *runner) diff(ctx context.Context, values any, args []string) error {
	fv := values.(*diffFlags)
	s, err := newSession(ctx, &fv.CommonFlags, args)
	if err != nil {
		return err
	}
	defer s.Close()
	t, err := s.build()
	if err != nil {
		return err
	}
	es := lcs.NewEditScript(t, s.a, s.b)
	if fv.Vertical {
		es.FormatVertical(r.out)
		return nil
	}
	es.FormatHorizontal(r.out)
	return nil
}

func (r *runner) config(ctx context.Context, values any, args []string) error {
	s, err := newSession(ctx, values.(*CommonFlags), args)
	if err != nil {
		return err
	}
	defer s.Close()
	buf, err := yaml.Marshal(s.cfg)
	if err != nil {
		return err
	}
	_, err = r.out.Write(buf)
	return err
}
