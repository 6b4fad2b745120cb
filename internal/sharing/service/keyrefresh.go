package service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/notecards/pkg/jwtx"
)

// KeyRefreshService keeps a KeySet in step with the JWKS published by the
// auth service so rotated signing keys are picked up without a restart.
type KeyRefreshService struct {
	Keys     *jwtx.KeySet
	URL      string
	Client   *http.Client
	Logger   *slog.Logger
	Interval time.Duration
	Timeout  time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewKeyRefreshService refreshes keys from url. A non-positive interval
// defaults to five minutes.
func NewKeyRefreshService(keys *jwtx.KeySet, url string, client *http.Client, logger *slog.Logger, interval time.Duration) *KeyRefreshService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &KeyRefreshService{
		Keys:     keys,
		URL:      url,
		Client:   client,
		Logger:   logger,
		Interval: interval,
		Timeout:  10 * time.Second,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Refresh fetches the JWKS once. On any error the current keys are kept.
func (s *KeyRefreshService) Refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	jwks, err := jwtx.FetchJWKS(ctx, s.Client, s.URL)
	if err != nil {
		return err
	}
	if err := s.Keys.ResetFromJWKS(jwks); err != nil {
		return err
	}
	s.Logger.Debug("jwks refreshed", "keys", len(jwks.Keys))
	return nil
}

// Start runs the refresh loop in the background. The first refresh happens
// after one interval; callers load the initial keys with Refresh.
func (s *KeyRefreshService) Start() {
	go s.run()
	s.Logger.Info("key refresh service started", "url", s.URL, "interval", s.Interval)
}

func (s *KeyRefreshService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("key refresh service stopped")
}

func (s *KeyRefreshService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Refresh(context.Background()); err != nil {
				s.Logger.Warn("failed to refresh jwks; keeping current keys", "error", err)
			}
		case <-s.stopCh:
			return
		}
	}
}
