// Package remote loads the catalog from a PostgREST-style backend (the
// hosted course database), using its /rest/v1 table endpoints.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/exercise"
	"github.com/devroad/devroad/internal/logger"
)

// DefaultTimeout bounds a single request when Options.Timeout is zero.
const DefaultTimeout = 15 * time.Second

// maxBody caps how much of a response is read.
const maxBody = 8 << 20

type Options struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// Client implements session.Loader over HTTP.
type Client struct {
	base   string
	apiKey string
	client *http.Client
	log    *logger.Logger
}

func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("missing remote base URL")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parse remote base URL: %w", err)
	}
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		base:   base,
		apiKey: opts.APIKey,
		client: hc,
		log:    log.With("service", "RemoteCatalog"),
	}, nil
}

// LoadExercises fetches the exercises of lessonID ordered by order_index
// and parses them. Network and HTTP failures are TransportErrors; bad rows
// are MalformedErrors.
func (c *Client) LoadExercises(ctx context.Context, lessonID string) ([]exercise.Spec, error) {
	q := url.Values{}
	q.Set("lesson_id", "eq."+lessonID)
	q.Set("select", "*")
	q.Set("order", "order_index.asc")

	var recs []exercise.Record
	if err := c.getJSON(ctx, "exercises", q, &recs); err != nil {
		return nil, &exercise.TransportError{Op: "load exercises", Err: err}
	}
	c.log.Debug("exercises fetched", "lesson_id", lessonID, "count", len(recs))
	return exercise.ParseAll(recs)
}

// ListCourses fetches every course ordered by order_index.
func (c *Client) ListCourses(ctx context.Context) ([]catalog.Course, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "order_index.asc")

	var out []catalog.Course
	if err := c.getJSON(ctx, "courses", q, &out); err != nil {
		return nil, &exercise.TransportError{Op: "load courses", Err: err}
	}
	return out, nil
}

// ListLessons fetches the lessons of courseID ordered by order_index.
func (c *Client) ListLessons(ctx context.Context, courseID string) ([]catalog.Lesson, error) {
	q := url.Values{}
	q.Set("course_id", "eq."+courseID)
	q.Set("select", "*")
	q.Set("order", "order_index.asc")

	var out []catalog.Lesson
	if err := c.getJSON(ctx, "lessons", q, &out); err != nil {
		return nil, &exercise.TransportError{Op: "load lessons", Err: err}
	}
	return out, nil
}

// ListFlashcards fetches the cards studied before lessonID, ordered by
// order_index.
func (c *Client) ListFlashcards(ctx context.Context, lessonID string) ([]catalog.Flashcard, error) {
	q := url.Values{}
	q.Set("lesson_id", "eq."+lessonID)
	q.Set("select", "*")
	q.Set("order", "order_index.asc")

	var out []catalog.Flashcard
	if err := c.getJSON(ctx, "flashcards", q, &out); err != nil {
		return nil, &exercise.TransportError{Op: "load flashcards", Err: err}
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, table string, q url.Values, out any) error {
	u := fmt.Sprintf("%s/rest/v1/%s?%s", c.base, table, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("read %s: %w", table, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Warn("remote request failed", "table", table, "status", resp.StatusCode)
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, table)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", table, err)
	}
	return nil
}
