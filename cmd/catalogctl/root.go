package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coursecatalog/catalog/internal/config"
	"github.com/coursecatalog/catalog/internal/logger"
	"github.com/coursecatalog/catalog/internal/middleware"
	"github.com/coursecatalog/catalog/internal/models"
	"github.com/coursecatalog/catalog/internal/services"
)

// coursesClient is the subset of the catalog API client used by the CLI
type coursesClient interface {
	FindAllCourses(ctx context.Context) ([]models.Course, error)
	FindCourseByID(ctx context.Context, id int) (*models.Course, error)
	SaveCourse(ctx context.Context, id int, changes models.CourseChanges) (*models.Course, error)
	FindLessons(ctx context.Context, query models.LessonsQuery) ([]models.Lesson, error)
}

// app carries the state shared by every subcommand
type app struct {
	out      io.Writer
	apiURL   string
	apiKey   string
	timeout  time.Duration
	logLevel string
	asJSON   bool

	log    *zap.Logger
	client coursesClient
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, log: zap.NewNop()}

	defaults, err := config.Load()
	if err != nil {
		defaults = &config.Config{}
	}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Browse and edit the course catalog from a terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.apiURL, "api-url", defaults.CatalogAPI.BaseURL, "catalog API base URL")
	flags.StringVar(&a.apiKey, "api-key", defaults.APIKey, "API key sent with write requests")
	flags.DurationVar(&a.timeout, "timeout", orDefault(defaults.CatalogAPI.Timeout, 10*time.Second), "request timeout")
	flags.StringVar(&a.logLevel, "log-level", orDefaultString(defaults.Logging.Level, "info"), "log level")
	flags.BoolVar(&a.asJSON, "json", false, "print results as JSON")

	root.AddCommand(newCoursesCmd(a), newLessonsCmd(a), newCalcCmd(a))
	return root
}

// setup builds the logger and the API client once flags are parsed
func (a *app) setup() error {
	if err := logger.Init(a.logLevel); err != nil {
		return err
	}
	a.log = logger.Logger

	var httpClient services.HTTPClient = &http.Client{Timeout: a.timeout}
	if a.apiKey != "" {
		httpClient = &apiKeyClient{next: httpClient, key: a.apiKey}
	}
	a.client = services.NewCoursesService(httpClient, a.apiURL, a.log)
	return nil
}

// apiKeyClient adds the API key header to every request
type apiKeyClient struct {
	next services.HTTPClient
	key  string
}

func (c *apiKeyClient) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set(middleware.APIKeyHeader, c.key)
	return c.next.Do(req)
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

func orDefaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
