package random

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// defaultURL asks random.org for a single two-digit decimal fraction in
// plain-text form
const defaultURL = "https://www.random.org/decimal-fractions/?num=1&dec=2&col=1&base=10&format=plain&rnd=new"

// maxResponseSize bounds the body read; the payload is a single decimal
// fraction
const maxResponseSize = 64

// Remote draws numbers from the random.org HTTP API
type Remote struct {
	url string
	cli *http.Client
}

func NewRemote(url string, timeout time.Duration) *Remote {
	if url == "" {
		url = defaultURL
	}
	return &Remote{
		url: url,
		cli: &http.Client{Timeout: timeout},
	}
}

// Draw fetches a value in [0, 1)
func (r *Remote) Draw(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := r.cli.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request to random.org failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("random.org returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return 0, fmt.Errorf("read random.org response failed: %w", err)
	}

	text := strings.TrimSpace(string(body))
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid response from random.org: %q", text)
	}

	return value, nil
}
