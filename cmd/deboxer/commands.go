package main

import (
	"fmt"
	"os"

	"github.com/sskutnik/deBOXER/boxer"
	"github.com/sskutnik/deBOXER/dataset"
	"github.com/sskutnik/deBOXER/pipeline"
	"github.com/sskutnik/deBOXER/request"
	"github.com/sskutnik/deBOXER/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) runExtract(cmd *cobra.Command, _ []string) (retErr error) {
	tape, err := os.Open(a.cfg.Tape)
	if err != nil {
		return fmt.Errorf("open tape: %w", err)
	}
	defer func() { _ = tape.Close() }()

	reqs, err := readRequests(a.cfg.Requests)
	if err != nil {
		return err
	}

	out, err := os.Create(a.cfg.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && retErr == nil {
			retErr = fmt.Errorf("close output: %w", cerr)
		}
	}()
	text := dataset.NewWriter(out)
	opts := []pipeline.Option{pipeline.WithLogger(a.logger), pipeline.WithSink(text)}

	if a.cfg.SQLite != "" {
		db, err := store.Open(a.cfg.SQLite, a.cfg.Tape)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		a.logger.Info("sqlite export", zap.String("path", db.Path()), zap.String("run_id", db.RunID()))
		opts = append(opts, pipeline.WithSink(db))
	}

	dec := boxer.NewDecoder(tape, boxer.WithLogger(a.logger.Named("boxer")))
	sum, err := pipeline.NewRunner(dec, opts...).Run(reqs)
	if ferr := text.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d reactions decoded for %d materials, %d listed, %d not found\n",
		sum.Decoded, sum.Materials, sum.Listed, len(sum.Missing))
	for _, k := range sum.Missing {
		fmt.Fprintf(cmd.OutOrStdout(), "  not found: %s\n", k)
	}

	return nil
}

func (a *app) runList(cmd *cobra.Command, _ []string) error {
	tape, err := os.Open(a.cfg.Tape)
	if err != nil {
		return fmt.Errorf("open tape: %w", err)
	}
	defer func() { _ = tape.Close() }()

	w := dataset.NewWriter(cmd.OutOrStdout())
	dec := boxer.NewDecoder(tape, boxer.WithLogger(a.logger.Named("boxer")))
	if err = dec.List(w.Listing); err != nil {
		return err
	}

	return w.Flush()
}

func (a *app) runInitConfig(cmd *cobra.Command, _ []string) error {
	if err := a.cfg.Save(a.configPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", a.configPath)

	return nil
}

func readRequests(path string) ([]request.Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open requests: %w", err)
	}
	defer func() { _ = f.Close() }()

	return request.Parse(f)
}
