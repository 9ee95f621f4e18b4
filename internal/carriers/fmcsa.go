// internal/carriers/fmcsa.go
package carriers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	apierrors "carrier-sales-api/internal/common/errors"
	"carrier-sales-api/internal/common/httpclient"
)

// FMCSAClient queries the FMCSA QCMobile API by docket (MC) number.
// One outbound call per Lookup, bounded by the client timeout; no caching and
// no retries.
type FMCSAClient struct {
	baseURL    string
	webKey     string
	httpClient *httpclient.Client
}

// fmcsaResponse mirrors the QCMobile docket-number payload. Only the name
// fields and operating flag are of interest here.
type fmcsaResponse struct {
	Content []struct {
		Carrier struct {
			LegalName        string `json:"legalName"`
			DBAName          string `json:"dbaName"`
			AllowedToOperate string `json:"allowedToOperate"`
		} `json:"carrier"`
	} `json:"content"`
}

func NewFMCSAClient(baseURL, webKey string, timeout time.Duration) *FMCSAClient {
	return &FMCSAClient{
		baseURL:    baseURL,
		webKey:     webKey,
		httpClient: httpclient.NewClient(timeout),
	}
}

// Lookup fetches the carrier registered under the given docket number.
// Returns ErrCarrierNotFound when the registry has no record, and an upstream
// error (REGISTRY_UNAVAILABLE / REGISTRY_MALFORMED) for everything else.
func (c *FMCSAClient) Lookup(ctx context.Context, mcNumber string) (*CarrierRecord, error) {
	endpoint := fmt.Sprintf("%s/carriers/docket-number/%s?webKey=%s",
		c.baseURL, url.PathEscape(mcNumber), url.QueryEscape(c.webKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apierrors.NewRegistryUnavailableError(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierrors.NewRegistryUnavailableError(fmt.Errorf("execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrCarrierNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apierrors.NewRegistryUnavailableError(
			fmt.Errorf("registry returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewRegistryUnavailableError(fmt.Errorf("read response body: %w", err))
	}

	var parsed fmcsaResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, apierrors.NewRegistryMalformedError(fmt.Errorf("unmarshal response: %w", err))
	}

	if len(parsed.Content) == 0 {
		return nil, ErrCarrierNotFound
	}

	carrier := parsed.Content[0].Carrier
	return &CarrierRecord{
		MCNumber:  mcNumber,
		LegalName: carrier.LegalName,
		DBAName:   carrier.DBAName,
	}, nil
}
