package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"multibundle-mapper/internal/bundle"
	"multibundle-mapper/internal/config"
	"multibundle-mapper/internal/mapper"
)

type mapOptions struct {
	configPath    string
	format        string
	output        string
	prefix        string
	mappingMarker string
	bundlesMarker string
	configFunc    string
	strict        bool
}

var mapFlags mapOptions

func runMap(cmd *cobra.Command, args []string) error {
	targets, err := mapFlags.targets(logger)
	if err != nil {
		return err
	}

	return runTargets(cmd.Context(), targets, args, cmd.InOrStdin(), logger)
}

// targets resolves the output targets from either the config file or the
// single-target flags.
func (o mapOptions) targets(logger *zap.Logger) ([]config.Target, error) {
	var f *config.File

	if o.configPath != "" {
		var err error

		f, err = config.LoadFile(o.configPath)
		if err != nil {
			return nil, err
		}
	} else {
		if o.format == "" || o.output == "" {
			return nil, errors.New("either --config or both --format and --output are required")
		}

		t := config.Target{
			Format:     o.format,
			Output:     o.output,
			Prefix:     &o.prefix,
			Strict:     &o.strict,
			ConfigFunc: o.configFunc,
		}

		if o.mappingMarker != "" || o.bundlesMarker != "" {
			t.Markers = &bundle.Markers{Mapping: o.mappingMarker, Bundles: o.bundlesMarker}
		}

		f = &config.File{Version: "1", Targets: []config.Target{t}}
	}

	diags := config.Validate(f)
	for _, w := range diags.Warnings {
		logger.Warn(w.Message, zap.String("target", w.Target), zap.String("field", w.Field))
	}

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return f.Targets, nil
}

// runTargets feeds every decoded record to one Mapper per target. Mappers run
// concurrently; the first failure cancels the rest before they write.
func runTargets(ctx context.Context, targets []config.Target, inputs []string, stdin io.Reader, logger *zap.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	mappers := make([]*mapper.Mapper, 0, len(targets))
	for _, t := range targets {
		// errors are returned by Consume and collected by the group
		m, err := t.NewMapper(logger, mapper.WithOnDone(func(error) {}))
		if err != nil {
			return err
		}

		mappers = append(mappers, m)
	}

	chans := make([]chan bundle.Record, len(mappers))
	for i, m := range mappers {
		ch := make(chan bundle.Record)
		chans[i] = ch

		g.Go(func() error {
			return m.Consume(gctx, ch)
		})
	}

	g.Go(func() error {
		count := 0
		emit := func(rec bundle.Record) error {
			count++

			for _, ch := range chans {
				select {
				case ch <- rec:
				case <-gctx.Done():
					return gctx.Err()
				}
			}

			return nil
		}

		var err error
		if len(inputs) == 0 {
			err = bundle.Decode(stdin, emit)
		} else {
			err = bundle.LoadFiles(inputs, emit)
		}

		// leaving the channels open makes the mappers stop on cancellation
		// instead of finalizing with partial data
		if err != nil {
			return err
		}

		logger.Debug("records decoded", zap.Int("records", count), zap.Int("targets", len(chans)))

		for _, ch := range chans {
			close(ch)
		}

		return nil
	})

	return g.Wait()
}
