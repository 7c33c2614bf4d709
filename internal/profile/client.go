package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/osse101/IdleRates_Go/internal/domain"
	"github.com/osse101/IdleRates_Go/internal/logger"
	"github.com/osse101/IdleRates_Go/internal/metrics"
)

// Source fetches player records
type Source interface {
	FetchPlayer(ctx context.Context, name string) (*domain.PlayerProfile, error)
}

// Client reads player and clan records from the public game API.
// Requests are not retried.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchPlayer loads a player record. When the record names a clan but carries
// no clan data, the clan record is fetched too; a failed clan lookup is logged
// and the player record is returned without it.
func (c *Client) FetchPlayer(ctx context.Context, name string) (*domain.PlayerProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyName)
	}
	log := logger.FromContext(ctx)

	var profile domain.PlayerProfile
	if err := c.getJSON(ctx, PathPlayerProfile+url.PathEscape(name), domain.ErrPlayerNotFound, &profile); err != nil {
		metrics.ProfileFetchesTotal.WithLabelValues(metrics.ResultFromError(err)).Inc()
		return nil, err
	}
	metrics.ProfileFetchesTotal.WithLabelValues(metrics.ResultSuccess).Inc()

	if profile.ClanName != "" && profile.Clan == nil {
		clan, err := c.FetchClan(ctx, profile.ClanName)
		if err != nil {
			log.Warn(LogMsgClanLookupFailed, "clan", profile.ClanName, "error", err)
		} else {
			profile.Clan = clan
		}
	}

	log.Debug(LogMsgProfileFetched, "username", profile.Username, "clan", profile.ClanName)
	return &profile, nil
}

// FetchClan loads a clan recruitment record
func (c *Client) FetchClan(ctx context.Context, clanName string) (*domain.ClanRecord, error) {
	var clan domain.ClanRecord
	if err := c.getJSON(ctx, PathClanRecruitment+url.PathEscape(clanName), domain.ErrClanNotFound, &clan); err != nil {
		return nil, err
	}
	return &clan, nil
}

// getJSON performs a GET and decodes the body into target.
// A 404 maps to notFound; every other failure maps to ErrProfileSourceDown.
func (c *Client) getJSON(ctx context.Context, path string, notFound error, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf(ErrFmtRequestFailed, domain.ErrProfileSourceDown, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf(ErrFmtRequestFailed, domain.ErrProfileSourceDown, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", notFound, path)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf(ErrFmtUnexpectedStatus, domain.ErrProfileSourceDown, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf(ErrFmtDecodeFailed, domain.ErrMalformedProfile, path, err)
	}
	return nil
}
