package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/naka-gawa/pr-changelog/internal/config"
	"github.com/naka-gawa/pr-changelog/internal/domain"
)

// ConfigLoader loads the report configuration from a path.
type ConfigLoader func(path string) (*config.Config, error)

// ReportRequest carries the inputs collected by the command line.
type ReportRequest struct {
	Users      []string
	Filter     domain.DateFilter
	ConfigPath string
}

// Report is a rendered markdown document.
type Report struct {
	Date    string
	Content string
	Stats   domain.ReportStats
	Flat    bool // config could not be loaded
}

// Reporter wires configuration, aggregation, matching and rendering together.
type Reporter struct {
	aggregator *Aggregator
	loadConfig ConfigLoader
	logger     *log.Logger
	warn       io.Writer
}

// NewReporter creates a Reporter. Warnings meant for the user are written to warn
// regardless of the logger's output.
func NewReporter(aggregator *Aggregator, loadConfig ConfigLoader, logger *log.Logger, warn io.Writer) *Reporter {
	return &Reporter{
		aggregator: aggregator,
		loadConfig: loadConfig,
		logger:     logger,
		warn:       warn,
	}
}

// Generate builds the report. An unreadable config degrades to flat mode with
// the users from the request; a fetch failure aborts.
func (r *Reporter) Generate(ctx context.Context, req ReportRequest) (*Report, error) {
	cfg, err := r.loadConfig(req.ConfigPath)
	if err != nil {
		fmt.Fprintf(r.warn, "Couldn't open configuration file '--config-path=%s'\n%v\n", req.ConfigPath, err)
		return r.generateFlat(ctx, req)
	}

	users := req.Users
	if len(cfg.Users) > 0 {
		users = cfg.Users
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsers
	}

	items, err := r.aggregator.Aggregate(ctx, users, req.Filter, cfg.Excludes)
	if err != nil {
		return nil, err
	}

	partition := MatchItemsWithLabels(cfg.LabelGroups(), items)
	r.logger.Printf("Usecase: %d unknown items out of %d.", len(partition.Unknown), len(items))

	return r.newReport(req, items, RenderGrouped(cfg.Header, partition, ExtractDefinitions(items)), false), nil
}

func (r *Reporter) generateFlat(ctx context.Context, req ReportRequest) (*Report, error) {
	if len(req.Users) == 0 {
		return nil, domain.ErrNoUsers
	}
	items, err := r.aggregator.Aggregate(ctx, req.Users, req.Filter, nil)
	if err != nil {
		return nil, err
	}
	return r.newReport(req, items, RenderFlat(items, ExtractDefinitions(items)), true), nil
}

func (r *Reporter) newReport(req ReportRequest, items []domain.Item, content string, flat bool) *Report {
	summary := Summarize(items)
	r.logger.Printf("Usecase: %s.", summary)
	return &Report{
		Date:    req.Filter.Date,
		Content: content,
		Stats:   summary,
		Flat:    flat,
	}
}

// FileName returns the name of the output file, "<date>.md".
func (rep *Report) FileName() string {
	return rep.Date + ".md"
}

// Save writes the report into dir and returns the written path.
func (rep *Report) Save(dir string) (string, error) {
	path := filepath.Join(dir, rep.FileName())
	if err := os.WriteFile(path, []byte(rep.Content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
