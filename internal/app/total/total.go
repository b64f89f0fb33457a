package total

import (
	"context"
	"errors"
	"fmt"

	"github.com/slok/ollama-total/internal/log"
	"github.com/slok/ollama-total/internal/model"
	"github.com/slok/ollama-total/internal/ollama"
	"github.com/slok/ollama-total/internal/size"
)

// ServiceConfig is the configuration for the total service.
type ServiceConfig struct {
	Lister ollama.Lister
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Lister == nil {
		return fmt.Errorf("lister is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service sums the storage used by the installed models.
type Service struct {
	lister ollama.Lister
	logger log.Logger
}

// NewService creates a new total service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		lister: cfg.Lister,
		logger: cfg.Logger,
	}, nil
}

// Run lists the installed models and returns the report with the exact total.
func (s *Service) Run(ctx context.Context) (*model.Report, error) {
	out, err := s.lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list models: %w", err)
	}

	report, err := size.ParseListing(out)
	if err != nil {
		return nil, fmt.Errorf("could not parse model listing: %w", err)
	}

	s.logger.Debugf("Found %d models (%d rows skipped), total %s bytes", len(report.Models), report.Skipped, report.TotalBytes)
	return report, nil
}

// Total returns the formatted total of the installed models. It never fails,
// errors are returned as a message instead.
func (s *Service) Total(ctx context.Context) string {
	res, _ := s.Summarize(ctx)
	return res
}

// Summarize is like Total but also returns the report when the run succeeded.
func (s *Service) Summarize(ctx context.Context) (res string, report *model.Report) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf("Recovered from panic: %v", r)
			res, report = fmt.Sprintf("Unexpected error: %v", r), nil
		}
	}()

	report, err := s.Run(ctx)
	if err != nil {
		return ErrorMessage(err), nil
	}

	return size.Format(report.TotalBytes), report
}

// ErrorMessage renders an error as the message returned instead of a total.
func ErrorMessage(err error) string {
	var cmdErr *model.CommandError
	if errors.As(err, &cmdErr) {
		return fmt.Sprintf("Error running %s: %s", cmdErr.Command, cmdErr.Error())
	}

	return fmt.Sprintf("Unexpected error: %s", err)
}
