package feeds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cenkalti/backoff/v4"
	"github.com/railboard/railboard/pkg/ctdf"
	"github.com/railboard/railboard/pkg/siri_vm"
	"github.com/rs/zerolog/log"
)

const fetchRetries = 3

// VehicleMonitoringClient fetches the live telemetry snapshot from the
// agency's SIRI VehicleMonitoring endpoint.
type VehicleMonitoringClient struct {
	Endpoint   string
	AgencyCode string
	APIKey     string

	Cache *Cache

	httpClient *http.Client
}

func NewVehicleMonitoringClient(endpoint string, agencyCode string, apiKey string, responseCache *Cache) *VehicleMonitoringClient {
	return &VehicleMonitoringClient{
		Endpoint:   endpoint,
		AgencyCode: agencyCode,
		APIKey:     apiKey,
		Cache:      responseCache,
		httpClient: &http.Client{},
	}
}

func (c *VehicleMonitoringClient) cacheKey() string {
	return fmt.Sprintf("railboard/vehiclemonitoring/%s", c.AgencyCode)
}

// Fetch returns the current snapshot, from cache when a recent
// response exists. Transport failures are retried with exponential
// backoff; a non-success status or malformed envelope surfaces as
// ErrFeedUnavailable.
func (c *VehicleMonitoringClient) Fetch(ctx context.Context) (*siri_vm.Snapshot, error) {
	if body, ok := c.Cache.Get(ctx, c.cacheKey()); ok {
		return siri_vm.ParseJSON(body)
	}

	body, err := c.fetchBody(ctx)
	if err != nil {
		return nil, err
	}

	snapshot, err := siri_vm.ParseJSON(body)
	if err != nil {
		return nil, err
	}

	c.Cache.Set(ctx, c.cacheKey(), body)

	return snapshot, nil
}

func (c *VehicleMonitoringClient) fetchBody(ctx context.Context) ([]byte, error) {
	requestURL := fmt.Sprintf("%s?api_key=%s&agency=%s", c.Endpoint, url.QueryEscape(c.APIKey), url.QueryEscape(c.AgencyCode))

	operation := func() ([]byte, error) {
		request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		response, err := c.httpClient.Do(request)
		if err != nil {
			return nil, err
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: status %d from vehicle monitoring endpoint", ctdf.ErrFeedUnavailable, response.StatusCode)
		}

		return io.ReadAll(response.Body)
	}

	body, err := backoff.RetryWithData(operation, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), fetchRetries), ctx))
	if err != nil {
		log.Error().Err(err).Msg("Vehicle monitoring fetch failed")
		return nil, fmt.Errorf("%w: %s", ctdf.ErrFeedUnavailable, err)
	}

	return body, nil
}
