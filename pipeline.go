package docxtract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tsawler/docxtract/model"
	"github.com/tsawler/docxtract/report"
)

// Job describes one extraction run.
type Job struct {
	// Input is the DOCX file to read.
	Input string

	// Output is the JSON file to write. Empty means DefaultOutputPath(Input).
	Output string

	// Options selects stats, paragraph indexes and truncation.
	Options ExtractOptions

	// PrintSummary writes the human-readable report before the JSON file.
	PrintSummary bool

	// Logger for debug/error messages. Defaults to slog.Default().
	Logger *slog.Logger
}

// SummaryJob returns the job that reports on a document: stats, paragraph
// indexes, 100/20 truncation and the printed summary.
func SummaryJob(input, output string) Job {
	return Job{
		Input:        input,
		Output:       output,
		Options:      SummaryOptions(),
		PrintSummary: true,
	}
}

// PlainJob returns the job that dumps every paragraph and table with no
// stats and no summary.
func PlainJob(input, output string) Job {
	return Job{
		Input:   input,
		Output:  output,
		Options: PlainOptions(),
	}
}

// OutputPath returns the path the job writes to.
func (j Job) OutputPath() string {
	if j.Output != "" {
		return j.Output
	}
	return DefaultOutputPath(j.Input)
}

func (j *Job) defaults() {
	if j.Logger == nil {
		j.Logger = slog.Default()
	}
}

// Run loads the job's input, extracts it, prints the summary when asked
// and writes the JSON file. Progress lines go to out. The output file is
// only touched once extraction has succeeded.
//
// Errors wrap ErrFileNotFound, ErrParse or ErrIO.
func Run(ctx context.Context, job Job, out io.Writer) (*model.Result, error) {
	job.defaults()
	logger := job.Logger
	outPath := job.OutputPath()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if job.PrintSummary {
		fmt.Fprintf(out, "Opening document: %s\n", job.Input)
	}

	start := time.Now()
	r, err := Load(job.Input)
	if err != nil {
		logger.Debug("load failed", "input", job.Input, "error", err)
		return nil, err
	}
	defer r.Close()

	logger.Debug("document loaded",
		"input", job.Input,
		"part", r.MainPart(),
		"paragraphs", len(r.Paragraphs()),
		"tables", len(r.Tables()),
		"duration", time.Since(start),
	)

	res, warnings, err := FromReader(r).WithOptions(job.Options).Extract()
	if err != nil {
		return nil, err
	}
	if len(warnings) > 0 {
		logger.Warn("extraction warnings", "input", job.Input, "warnings", FormatWarnings(warnings))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if job.PrintSummary {
		report.Print(out, res)
	}

	if err := WriteJSON(outPath, res); err != nil {
		logger.Error("write failed", "output", outPath, "error", err)
		return nil, err
	}
	fmt.Fprintf(out, "Data saved to %s\n", outPath)

	logger.Debug("extraction complete",
		"output", outPath,
		"paragraphs", len(res.Paragraphs),
		"tables", len(res.Tables),
		"duration", time.Since(start),
	)

	return res, nil
}
