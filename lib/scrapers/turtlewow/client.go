package turtlewow

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"time"

	"turtledb-backend/lib/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/turtlewow")

const (
	BaseURL         = "https://database.turtle-wow.org"
	defaultAttempts = 3
	requestTimeout  = time.Second * 30
)

var supportedDomains = []string{"database.turtle-wow.org"}

// Client scrapes the Turtle WoW database. It is safe for concurrent use,
// the underlying HTTP client carries no per-call state.
type Client struct {
	baseURL  string
	http     *resty.Client
	attempts int
	backoff  func(attempt int) time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

type ClientOptions struct {
	// BaseURL overrides the production database origin, used by tests.
	BaseURL string
	// Attempts is the total fetch attempt budget, defaults to 3.
	Attempts int
}

func NewClient(opts ClientOptions) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = BaseURL
	}
	attempts := opts.Attempts
	if attempts <= 0 {
		attempts = defaultAttempts
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("user-agent", "turtledb-backend/1.0")
	client.SetTimeout(requestTimeout)
	telemetry.InstrumentResty(client, "scrapers/turtlewow/http")

	return &Client{
		baseURL:  baseURL,
		http:     client,
		attempts: attempts,
		backoff:  defaultBackoff,
		sleep:    sleepContext,
	}
}

// Close releases pooled connections. The client must not be used after.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}

func (c *Client) SupportedDomains() []string {
	return supportedDomains
}

// ValidateItemURL reports whether the URL points at an item page of a
// supported origin. It performs no network access.
func (c *Client) ValidateItemURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	supported := false
	for _, domain := range supportedDomains {
		if parsed.Hostname() == domain {
			supported = true
			break
		}
	}
	if !supported {
		// non-production origins configured via ClientOptions are accepted
		base, err := url.Parse(c.baseURL)
		if err != nil || parsed.Host != base.Host {
			return false
		}
	}
	return parsed.Query().Get("item") != ""
}

// ScrapeItem fetches and parses an item page.
func (c *Client) ScrapeItem(ctx context.Context, pageURL string) (ScrapedItem, error) {
	ctx, span := tracer.Start(ctx, "ScrapeItem")
	defer span.End()
	span.SetAttributes(attribute.String("url", pageURL))

	doc, err := c.fetchDocument(ctx, pageURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch item page")
		return ScrapedItem{}, err
	}
	item := parseItem(doc)
	span.SetAttributes(
		attribute.String("name", item.Name),
		attribute.Int("crafting_spells", len(item.SpellIDs)),
	)
	return item, nil
}

// ScrapeRecipe fetches and parses the spell page for the given external
// spell id.
func (c *Client) ScrapeRecipe(ctx context.Context, spellID string) (ScrapedRecipe, error) {
	ctx, span := tracer.Start(ctx, "ScrapeRecipe")
	defer span.End()
	span.SetAttributes(attribute.String("spell_id", spellID))

	pageURL := fmt.Sprintf("%s/?spell=%s", c.baseURL, spellID)
	doc, err := c.fetchDocument(ctx, pageURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch spell page")
		return ScrapedRecipe{}, err
	}
	recipe := parseRecipe(doc)
	recipe.SpellID = spellID
	return recipe, nil
}

// fetchDocument GETs the URL with a bounded retry budget. Transport
// failures and 5xx answers are retried with exponential backoff, 4xx
// answers are terminal.
func (c *Client) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	var lastErr error
	for attempt := 0; attempt < c.attempts; attempt++ {
		if attempt > 0 {
			if err := c.sleep(ctx, c.backoff(attempt-1)); err != nil {
				return nil, &SourceUnavailableError{URL: pageURL, Attempts: attempt, Err: err}
			}
		}

		res, err := c.http.R().SetContext(ctx).Get(pageURL)
		if err != nil {
			if !isTransientNetworkError(err) {
				return nil, &SourceUnavailableError{URL: pageURL, Attempts: attempt + 1, Err: err}
			}
			lastErr = err
			continue
		}
		status := res.StatusCode()
		if status >= 500 {
			lastErr = fmt.Errorf("server returned status %d", status)
			continue
		}
		if status >= 400 {
			return nil, &SourceUnavailableError{
				URL:      pageURL,
				Attempts: attempt + 1,
				Err:      fmt.Errorf("server returned status %d", status),
			}
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
		if err != nil {
			return nil, &FormatError{URL: pageURL, Err: err}
		}
		return doc, nil
	}
	return nil, &SourceUnavailableError{URL: pageURL, Attempts: c.attempts, Err: lastErr}
}

// isTransientNetworkError reports whether the request failure is a
// connection or timeout class error worth retrying. Anything else, like
// a malformed URL, is terminal.
func isTransientNetworkError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// defaultBackoff waits 2^i seconds plus a small linear jitter after
// attempt i.
func defaultBackoff(attempt int) time.Duration {
	return time.Duration(1<<attempt)*time.Second + time.Duration(attempt)*100*time.Millisecond
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
