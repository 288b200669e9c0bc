package turtlewow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const itemPage = `<html><body>
	<h1>Arcanite Bar</h1>
	<table class="item-info"><tr><td>Uncommon</td></tr></table>
</body></html>`

func newTestClient(baseURL string) (*Client, *[]time.Duration) {
	client := NewClient(ClientOptions{BaseURL: baseURL})
	var slept []time.Duration
	client.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return client, &slept
}

func TestFetchSucceedsOnThirdAttempt(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, itemPage)
	}))
	defer server.Close()

	client, slept := newTestClient(server.URL)
	defer client.Close()

	item, err := client.ScrapeItem(context.Background(), server.URL+"/?item=12360")
	require.NoError(t, err)
	require.Equal(t, "Arcanite Bar", item.Name)
	require.Equal(t, "uncommon", item.Quality)
	require.Equal(t, int32(3), hits.Load())
	// backoff before the second and third attempts
	require.Equal(t, []time.Duration{defaultBackoff(0), defaultBackoff(1)}, *slept)
}

func TestFetchExhaustsAttempts(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL)
	defer client.Close()

	_, err := client.ScrapeItem(context.Background(), server.URL+"/?item=1")
	var unavailable *SourceUnavailableError
	require.ErrorAs(t, err, &unavailable)
	require.Equal(t, 3, unavailable.Attempts)
	require.Equal(t, int32(3), hits.Load())
}

func TestFetchClientErrorIsTerminal(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, slept := newTestClient(server.URL)
	defer client.Close()

	_, err := client.ScrapeItem(context.Background(), server.URL+"/?item=1")
	var unavailable *SourceUnavailableError
	require.ErrorAs(t, err, &unavailable)
	require.Equal(t, 1, unavailable.Attempts)
	require.Equal(t, int32(1), hits.Load())
	require.Empty(t, *slept)
}

func TestFetchTransportErrorRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from now on

	client, slept := newTestClient(server.URL)
	defer client.Close()

	_, err := client.ScrapeItem(context.Background(), server.URL+"/?item=1")
	var unavailable *SourceUnavailableError
	require.ErrorAs(t, err, &unavailable)
	require.Equal(t, 3, unavailable.Attempts)
	require.Len(t, *slept, 2)
}

func TestFetchMalformedURLIsTerminal(t *testing.T) {
	client, slept := newTestClient("http://127.0.0.1:9999")
	defer client.Close()

	_, err := client.ScrapeItem(context.Background(), "http://bad host/?item=1")
	var unavailable *SourceUnavailableError
	require.ErrorAs(t, err, &unavailable)
	require.Equal(t, 1, unavailable.Attempts)
	require.Empty(t, *slept)
}

func TestTransientNetworkErrorClassification(t *testing.T) {
	require.True(t, isTransientNetworkError(&net.OpError{Op: "dial", Err: errors.New("connection refused")}))
	require.True(t, isTransientNetworkError(&net.DNSError{Err: "no such host"}))
	require.True(t, isTransientNetworkError(io.ErrUnexpectedEOF))

	parseErr := &url.Error{Op: "parse", URL: "http://bad host", Err: errors.New(`invalid character " " in host name`)}
	require.False(t, isTransientNetworkError(parseErr))
	require.False(t, isTransientNetworkError(errors.New("unsupported protocol scheme")))
}

func TestFetchSleepHonorsContext(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})
	defer client.Close()
	client.backoff = func(int) time.Duration { return time.Hour }

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := client.ScrapeItem(ctx, server.URL+"/?item=1")
	var unavailable *SourceUnavailableError
	require.ErrorAs(t, err, &unavailable)
	require.True(t, errors.Is(err, context.Canceled))
	require.Equal(t, int32(1), hits.Load())
}

func TestDefaultBackoff(t *testing.T) {
	require.Equal(t, time.Second, defaultBackoff(0))
	require.Equal(t, 2*time.Second+100*time.Millisecond, defaultBackoff(1))
	require.Equal(t, 4*time.Second+200*time.Millisecond, defaultBackoff(2))
}

func TestScrapeRecipeURL(t *testing.T) {
	var requested atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested.Store(r.URL.String())
		fmt.Fprint(w, `<html><body><h1>Smelt Arcanite</h1>
			<p>Requires Alchemy (275)</p></body></html>`)
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL)
	defer client.Close()

	recipe, err := client.ScrapeRecipe(context.Background(), "16667")
	require.NoError(t, err)
	require.Equal(t, "/?spell=16667", requested.Load())
	require.Equal(t, "Smelt Arcanite", recipe.Name)
	require.Equal(t, "16667", recipe.SpellID)
	require.Equal(t, "alchemy", recipe.Profession)
	require.Equal(t, 275, recipe.RequiredSkill)
}

func TestValidateItemURL(t *testing.T) {
	client := NewClient(ClientOptions{})
	defer client.Close()

	require.True(t, client.ValidateItemURL("https://database.turtle-wow.org/?item=19019"))
	require.False(t, client.ValidateItemURL("https://database.turtle-wow.org/?spell=16667"))
	require.False(t, client.ValidateItemURL("https://example.com/?item=19019"))
	require.False(t, client.ValidateItemURL("::not a url"))

	local, _ := newTestClient("http://127.0.0.1:9999")
	defer local.Close()
	require.True(t, local.ValidateItemURL("http://127.0.0.1:9999/?item=5"))
	require.False(t, local.ValidateItemURL("http://127.0.0.1:8888/?item=5"))
}
