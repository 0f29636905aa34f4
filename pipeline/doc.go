// Package pipeline drives a batch extraction: it walks a request list,
// fetches each material's energy-group bounds once, decodes every requested
// reaction and hands the results to one or more sinks.
//
// Error policy:
//   - a reaction missing from the tape is logged at warn level and skipped;
//   - every other decode failure, and any sink failure, stops the run.
//
// Typical wiring:
//
//	dec := boxer.NewDecoder(tape, boxer.WithLogger(log))
//	run := pipeline.NewRunner(dec, pipeline.WithLogger(log), pipeline.WithSink(dataset.NewWriter(out)))
//	sum, err := run.Run(requests)
package pipeline
