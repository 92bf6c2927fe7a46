package filterlist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	lists   []List
	loadErr error
}

func (e *fakeEngine) Load(lists []List) error {
	e.lists = lists
	return e.loadErr
}

func (e *fakeEngine) ShouldBlock(requestURL string) bool {
	for _, l := range e.lists {
		if strings.Contains(l.Text, requestURL) {
			return true
		}
	}
	return false
}

func TestFetchDownloadsAllSources(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ads.txt":
			w.Write([]byte("||ads.example.com^"))
		case "/trackers.txt":
			w.Write([]byte("||tracker.example.net^"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	fetcher := NewFetcherWithClient(srv.Client())
	lists, err := fetcher.Fetch(context.Background(), []string{
		srv.URL + "/ads.txt",
		srv.URL + "/trackers.txt",
	})
	require.NoError(t, err)
	require.Len(t, lists, 2)

	assert.Equal(t, srv.URL+"/ads.txt", lists[0].URL)
	assert.Equal(t, "||ads.example.com^", lists[0].Text)
	assert.Equal(t, "||tracker.example.net^", lists[1].Text)
}

func TestFetchErrorNamesUnreachableResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	fetcher := NewFetcherWithClient(srv.Client())
	missing := srv.URL + "/nope.txt"

	_, err := fetcher.Fetch(context.Background(), []string{missing})
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
}

func TestFetchFailsOnUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead := srv.URL
	srv.Close()

	fetcher := NewFetcher()
	_, err := fetcher.Fetch(context.Background(), []string{dead + "/list.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), dead)
}

func TestInitAsyncReady(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("||blocked.example.org^"))
	}))
	defer srv.Close()

	engine := &fakeEngine{}
	h := InitAsync(context.Background(), NewFetcherWithClient(srv.Client()), engine, []string{srv.URL + "/l.txt"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, h.Wait(ctx))

	assert.True(t, h.Ready())
	assert.NoError(t, h.Err())
	assert.True(t, engine.ShouldBlock("blocked.example.org"))
}

func TestInitAsyncPropagatesFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	engine := &fakeEngine{}
	h := InitAsync(context.Background(), NewFetcherWithClient(srv.Client()), engine, []string{srv.URL + "/l.txt"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := h.Wait(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), srv.URL)
	assert.False(t, h.Ready())
	assert.Error(t, h.Err())
}

func TestInitAsyncPropagatesEngineError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lists"))
	}))
	defer srv.Close()

	loadErr := errors.New("bad list syntax")
	engine := &fakeEngine{loadErr: loadErr}
	h := InitAsync(context.Background(), NewFetcherWithClient(srv.Client()), engine, []string{srv.URL + "/l.txt"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := h.Wait(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)
	assert.False(t, h.Ready())
}

func TestHandleErrNilWhileInFlight(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	engine := &fakeEngine{}
	h := InitAsync(context.Background(), NewFetcherWithClient(srv.Client()), engine, []string{srv.URL + "/l.txt"})

	assert.NoError(t, h.Err())
	assert.False(t, h.Ready())
}
