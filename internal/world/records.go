package world

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	retry "github.com/avast/retry-go/v4"
	"go.uber.org/zap"

	"town-explorer/internal/logger"
)

// Contributor identifies who submitted a building.
type Contributor struct {
	Handle string `json:"handle"`
	Avatar string `json:"avatar"`
}

// Record is one entry of the entity data file.
type Record struct {
	ID          string      `json:"id"`
	Plot        int         `json:"plot"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Contributor Contributor `json:"contributor"`
}

// FetchOptions controls remote loading. Local files are read once.
type FetchOptions struct {
	Attempts uint
	Delay    time.Duration
	Timeout  time.Duration
}

// DefaultFetchOptions returns three attempts, 500ms apart, 10s per request.
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{Attempts: 3, Delay: 500 * time.Millisecond, Timeout: 10 * time.Second}
}

// LoadRecords reads the entity list from source: an http(s) URL or a file path.
// The payload is either a JSON array of records or an object with a "buildings" array.
func LoadRecords(ctx context.Context, source string, opts FetchOptions) ([]Record, error) {
	if source == "" {
		return nil, fmt.Errorf("world: no entity source configured")
	}
	var data []byte
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = fetch(ctx, source, opts)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("world: load %s: %w", source, err)
	}
	recs, err := DecodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("world: decode %s: %w", source, err)
	}
	return recs, nil
}

// LoadRecordsOrEmpty is LoadRecords that degrades to an empty list on any failure. The world
// still renders, just unpopulated; the failure is logged.
func LoadRecordsOrEmpty(ctx context.Context, source string, opts FetchOptions, log *logger.Logger) []Record {
	recs, err := LoadRecords(ctx, source, opts)
	if err != nil {
		log.Warn("entity list unavailable, starting empty", zap.String("source", source), zap.Error(err))
		return []Record{}
	}
	return recs
}

// DecodeRecords parses either payload shape accepted by LoadRecords.
func DecodeRecords(data []byte) ([]Record, error) {
	var list []Record
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var wrapped struct {
		Buildings []Record `json:"buildings"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Buildings, nil
}

func fetch(ctx context.Context, url string, opts FetchOptions) ([]byte, error) {
	if opts.Attempts == 0 {
		opts.Attempts = 1
	}
	client := &http.Client{Timeout: opts.Timeout}
	var body []byte
	err := retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return retry.Unrecoverable(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("HTTP %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return retry.Unrecoverable(err)
			}
			return err
		}
		body, err = io.ReadAll(resp.Body)
		return err
	},
		retry.Context(ctx),
		retry.Attempts(opts.Attempts),
		retry.Delay(opts.Delay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}
