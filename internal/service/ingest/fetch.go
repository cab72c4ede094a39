package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/ougirez/vaxboard/internal/pkg/constants"
	"github.com/ougirez/vaxboard/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Fetcher pulls the source datasets from an open-data catalog page so the
// loader can work from a local copy. Catalog pages list the exports as plain
// resource links.
type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: 30 * time.Second}}
}

// DiscoverResources scrapes the catalog page for CSV and geojson resource
// links, resolved against the catalog URL.
func (f *Fetcher) DiscoverResources(ctx context.Context, catalogURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, catalogURL, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog page: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: %d %s: %w", resp.StatusCode, resp.Status, constants.ErrResourceUnreadable)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	base := resp.Request.URL

	var urls []string
	seen := make(map[string]struct{})
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		lower := strings.ToLower(href)
		if !strings.HasSuffix(lower, ".csv") && !strings.HasSuffix(lower, ".geojson") {
			return
		}

		ref, err := base.Parse(href)
		if err != nil {
			return
		}
		resolved := ref.String()
		if _, dup := seen[resolved]; dup {
			return
		}
		seen[resolved] = struct{}{}
		urls = append(urls, resolved)
	})

	if len(urls) == 0 {
		return nil, fmt.Errorf("no dataset links on %s: %w", catalogURL, constants.ErrResourceNotFound)
	}

	return urls, nil
}

// Download fetches every resource into destDir, named by its URL basename.
// Downloads run concurrently; each one retries on transient failures.
func (f *Fetcher) Download(ctx context.Context, urls []string, destDir string) ([]string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	saved := make([]string, 0, len(urls))
	var savedMx sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)
	for _, url := range urls {
		url := url
		eg.Go(func() error {
			dest := filepath.Join(destDir, path.Base(url))
			if err := f.downloadOne(egCtx, url, dest); err != nil {
				return fmt.Errorf("download %s: %w", url, err)
			}

			logger.Infof(egCtx, "fetched %s", dest)

			savedMx.Lock()
			defer savedMx.Unlock()
			saved = append(saved, dest)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	return saved, nil
}

func (f *Fetcher) downloadOne(ctx context.Context, url, dest string) (err error) {
	var resp *http.Response
	err = backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}

			var httpErr error
			resp, httpErr = f.client.Do(req)
			if httpErr != nil {
				return fmt.Errorf("http.Get: %w", httpErr)
			}
			if resp.StatusCode != http.StatusOK {
				_ = resp.Body.Close()
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 5),
			ctx,
		),
	)
	if err != nil {
		return err
	}

	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close reader: %w", closeErr)
		}
	}()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("os.Create: %w", err)
	}
	defer func() {
		closeErr := out.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", closeErr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("io.Copy: %w", err)
	}

	return nil
}
