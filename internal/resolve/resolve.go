package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Resolver follows redirects with HEAD requests and remembers where each
// URL ended up.
type Resolver struct {
	client      *http.Client
	cache       *lru.Cache[string, string]
	group       singleflight.Group
	concurrency int
}

func New(timeout time.Duration, cacheSize, concurrency int) (*Resolver, error) {
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("lru.New: %w", err)
	}
	if concurrency < 1 {
		concurrency = 1
	}
	// Some publishers bounce between hosts until a cookie is set.
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookiejar.New: %w", err)
	}
	return &Resolver{
		client:      &http.Client{Timeout: timeout, Jar: jar},
		cache:       cache,
		concurrency: concurrency,
	}, nil
}

// Resolve returns the final location of url after all redirects.
func (r *Resolver) Resolve(ctx context.Context, url string) (string, error) {
	if final, ok := r.cache.Get(url); ok {
		return final, nil
	}

	v, err, _ := r.group.Do(url, func() (any, error) {
		final, err := r.head(ctx, url)
		if err != nil {
			return "", err
		}
		r.cache.Add(url, final)
		return final, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (r *Resolver) head(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return "", fmt.Errorf("http.NewRequest: %w", err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HEAD %s: %w", url, err)
	}
	defer resp.Body.Close()

	final := resp.Request.URL.String()
	if final != url {
		slog.Debug("Resolved redirect", slog.String("url", url), slog.String("final", final), slog.Int("status", resp.StatusCode))
	}
	return final, nil
}

// ResolveAll resolves urls concurrently and returns the results in input
// order. The first error cancels the rest.
func (r *Resolver) ResolveAll(ctx context.Context, urls []string) ([]string, error) {
	results := make([]string, len(urls))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, url := range urls {
		g.Go(func() error {
			final, err := r.Resolve(ctx, url)
			if err != nil {
				return err
			}
			results[i] = final
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
