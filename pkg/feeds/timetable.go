package feeds

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/railboard/railboard/pkg/ctdf"
	"github.com/railboard/railboard/pkg/timetable"
	"github.com/rs/zerolog/log"
)

// TimetableClient scrapes the published timetable page. The raw HTML
// is cached; parsing always runs against the caller's "now" so ETAs
// stay correct within the cache window.
type TimetableClient struct {
	PageURL string

	CutoffHour int
	Location   *time.Location

	Cache *Cache

	httpClient *http.Client
}

func NewTimetableClient(pageURL string, cutoffHour int, location *time.Location, responseCache *Cache) *TimetableClient {
	return &TimetableClient{
		PageURL:    pageURL,
		CutoffHour: cutoffHour,
		Location:   location,
		Cache:      responseCache,
		httpClient: &http.Client{},
	}
}

func (c *TimetableClient) cacheKey() string {
	return fmt.Sprintf("railboard/timetable/%s", c.PageURL)
}

func (c *TimetableClient) Fetch(ctx context.Context, now time.Time) ([]ctdf.ScheduledCall, error) {
	if body, ok := c.Cache.Get(ctx, c.cacheKey()); ok {
		return timetable.Parse(bytes.NewReader(body), now, c.CutoffHour, c.Location)
	}

	body, err := c.fetchBody(ctx)
	if err != nil {
		return nil, err
	}

	calls, err := timetable.Parse(bytes.NewReader(body), now, c.CutoffHour, c.Location)
	if err != nil {
		return nil, err
	}

	c.Cache.Set(ctx, c.cacheKey(), body)

	return calls, nil
}

func (c *TimetableClient) fetchBody(ctx context.Context) ([]byte, error) {
	operation := func() ([]byte, error) {
		request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.PageURL, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		response, err := c.httpClient.Do(request)
		if err != nil {
			return nil, err
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: status %d from timetable page", ctdf.ErrScheduleUnavailable, response.StatusCode)
		}

		return io.ReadAll(response.Body)
	}

	body, err := backoff.RetryWithData(operation, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), fetchRetries), ctx))
	if err != nil {
		log.Error().Err(err).Msg("Timetable fetch failed")
		return nil, fmt.Errorf("%w: %s", ctdf.ErrScheduleUnavailable, err)
	}

	return body, nil
}
