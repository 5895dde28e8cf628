package session

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/iudanet/sdgb/internal/client/api"
	"github.com/iudanet/sdgb/internal/crypto"
	"github.com/iudanet/sdgb/pkg/api"
)

// gameServer отвечает на вызовы по хешу API ответами из responses
type gameServer struct {
	mu     sync.Mutex
	names  []string
	onCall func(apiName string)
}

func (g *gameServer) calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.names...)
}

func newGameServer(t *testing.T, responses map[string]any) (*gameServer, *apiclient.Client) {
	t.Helper()
	codec, err := crypto.NewCodec([]byte(crypto.DefaultTransportKey), []byte(crypto.DefaultTransportIV))
	require.NoError(t, err)

	byHash := make(map[string]string, len(responses))
	for name := range responses {
		byHash[crypto.APIHash(name, crypto.DefaultAPISalt, crypto.DefaultObfuscateParam)] = name
	}

	g := &gameServer{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		name, ok := byHash[path.Base(r.URL.Path)]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		g.mu.Lock()
		g.names = append(g.names, name)
		onCall := g.onCall
		g.mu.Unlock()
		if onCall != nil {
			onCall(name)
		}

		payload, err := json.Marshal(responses[name])
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		encoded, err := codec.Encode(payload)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(encoded)
	}))
	t.Cleanup(srv.Close)

	cfg := apiclient.DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.RetryDelay = time.Millisecond
	cfg.Timeout = 5 * time.Second
	client, err := apiclient.NewClient(cfg)
	require.NoError(t, err)

	return g, client
}

func TestSession_CommitSurvivesCancel(t *testing.T) {
	g, client := newGameServer(t, okResponses())
	s := newTestSession(t, client, memRecovery())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := s.LoginAndFetch(ctx)
	require.NoError(t, err)

	g.mu.Lock()
	g.onCall = func(apiName string) {
		if apiName == api.APIUploadUserPlaylogList {
			cancel()
		}
	}
	g.mu.Unlock()

	require.NoError(t, s.Commit(ctx, 3))
	assert.Equal(t, NotLoggedIn, s.State())
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	calls := g.calls()
	require.GreaterOrEqual(t, len(calls), 4)
	assert.Equal(t, []string{
		api.APIUploadUserPlaylogList,
		api.APIUpsertUserAll,
		api.APIUserLogout,
		api.APIGetUserPreview,
	}, calls[len(calls)-4:])
}

func TestSession_CommitOnCanceledContext(t *testing.T) {
	g, client := newGameServer(t, okResponses())
	s := newTestSession(t, client, memRecovery())

	ctx, cancel := context.WithCancel(context.Background())
	_, err := s.LoginAndFetch(ctx)
	require.NoError(t, err)
	cancel()

	require.NoError(t, s.Commit(ctx, 3))
	assert.Contains(t, g.calls(), api.APIUserLogout)
	assert.Equal(t, NotLoggedIn, s.State())
}
