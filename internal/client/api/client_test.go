package api

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sdgb/internal/crypto"
	"github.com/iudanet/sdgb/pkg/api"
)

// fakeServer эмулирует игровой сервер: расшифровывает запрос и шифрует ответ
type fakeServer struct {
	t       *testing.T
	codec   *crypto.Codec
	calls   atomic.Int32
	handler func(n int32, w http.ResponseWriter, body []byte)
}

func newFakeServer(t *testing.T, handler func(n int32, w http.ResponseWriter, body []byte)) (*fakeServer, *httptest.Server) {
	t.Helper()
	codec, err := crypto.NewCodec([]byte(crypto.DefaultTransportKey), []byte(crypto.DefaultTransportIV))
	require.NoError(t, err)

	fs := &fakeServer{t: t, codec: codec, handler: handler}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := fs.calls.Add(1)
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		body, err := codec.Decode(raw)
		require.NoError(t, err)
		fs.handler(n, w, body)
	}))
	t.Cleanup(srv.Close)
	return fs, srv
}

func (fs *fakeServer) reply(w http.ResponseWriter, v any) {
	payload, err := json.Marshal(v)
	require.NoError(fs.t, err)
	fs.replyRaw(w, payload)
}

func (fs *fakeServer) replyRaw(w http.ResponseWriter, payload []byte) {
	encoded, err := fs.codec.Encode(payload)
	require.NoError(fs.t, err)
	_, _ = w.Write(encoded)
}

func newTestClient(t *testing.T, baseURL string, maxAttempts int) *Client {
	t.Helper()
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.MaxAttempts = maxAttempts
	cfg.RetryDelay = time.Millisecond
	cfg.Timeout = 5 * time.Second

	client, err := NewClient(cfg)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, client.timeout)
	assert.Equal(t, 3, client.policy.MaxAttempts)
	assert.Equal(t, 2*time.Second, client.policy.Delay)
	assert.Equal(t, "1.50", client.encodingVersion)
}

func TestNewClient_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AESIV = "short"
	_, err := NewClient(cfg)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.ProxyURL = "://bad"
	_, err = NewClient(cfg)
	assert.Error(t, err)
}

func TestClient_Call_Success(t *testing.T) {
	fs, srv := newFakeServer(t, nil)
	fs.handler = func(_ int32, w http.ResponseWriter, body []byte) {
		var req api.UserLoginRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, int64(10086), req.UserID)
		assert.Equal(t, "A63E01C2805", req.ClientID)

		fs.reply(w, api.UserLoginResponse{ReturnCode: 1, LoginID: 42})
	}

	client := newTestClient(t, srv.URL, 3)
	var resp api.UserLoginResponse
	err := client.Call(context.Background(), api.APIUserLogin, 10086, api.UserLoginRequest{
		UserID:   10086,
		ClientID: "A63E01C2805",
	}, &resp)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.ReturnCode)
	assert.Equal(t, int64(42), resp.LoginID)
	assert.Equal(t, int32(1), fs.calls.Load())
}

func TestClient_Call_Headers(t *testing.T) {
	var got *http.Request
	codec, err := crypto.NewCodec([]byte(crypto.DefaultTransportKey), []byte(crypto.DefaultTransportIV))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = io.Copy(io.Discard, r.Body)
		encoded, err := codec.Encode([]byte(`{"returnCode":1}`))
		require.NoError(t, err)
		_, _ = w.Write(encoded)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 1)
	err = client.Call(context.Background(), api.APIGetUserData, 7, api.UserRequest{UserID: 7}, nil)
	require.NoError(t, err)
	require.NotNil(t, got)

	ep := client.Resolver().Resolve(api.APIGetUserData, 7)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/"+ep.Hash, got.URL.Path)
	assert.Equal(t, ep.UserAgent, got.Header.Get("User-Agent"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "1.50", got.Header.Get("Mai-Encoding"))
	assert.Equal(t, "deflate", got.Header.Get("Content-Encoding"))
	assert.Equal(t, "UTF-8", got.Header.Get("Charset"))
}

func TestClient_Call_RetriesTransientFailures(t *testing.T) {
	tests := []struct {
		name        string
		maxAttempts int
		wantErr     bool
		wantCalls   int32
	}{
		{name: "succeeds on third attempt", maxAttempts: 3, wantErr: false, wantCalls: 3},
		{name: "exhausted after two attempts", maxAttempts: 2, wantErr: true, wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, srv := newFakeServer(t, nil)
			fs.handler = func(n int32, w http.ResponseWriter, _ []byte) {
				if n <= 2 {
					// не кратно блоку AES, расшифровка падает
					_, _ = w.Write([]byte("<html>bad gateway</html>"))
					return
				}
				fs.reply(w, api.CodeResponse{ReturnCode: 1})
			}

			client := newTestClient(t, srv.URL, tt.maxAttempts)
			var resp api.CodeResponse
			err := client.Call(context.Background(), api.APIUpsertUserAll, 1, api.UserRequest{UserID: 1}, &resp)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrProtocolExhausted)
				assert.ErrorIs(t, err, ErrResponse)
				assert.ErrorIs(t, err, crypto.ErrDecryption)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 1, resp.ReturnCode)
			}
			assert.Equal(t, tt.wantCalls, fs.calls.Load())
		})
	}
}

func TestClient_Call_NonZlibResponseIsRetried(t *testing.T) {
	fs, srv := newFakeServer(t, nil)
	fs.handler = func(n int32, w http.ResponseWriter, _ []byte) {
		if n == 1 {
			// корректный AES, но без zlib-заголовка
			notZlib, err := hex.DecodeString("504da7711464a24544745b8916bbe14e16806fe1cd00f7515146f7ee227eb075")
			require.NoError(t, err)
			_, _ = w.Write(notZlib)
			return
		}
		fs.reply(w, api.CodeResponse{ReturnCode: 1})
	}

	client := newTestClient(t, srv.URL, 2)
	err := client.Call(context.Background(), api.APIUpsertUserAll, 1, api.UserRequest{UserID: 1}, nil)

	require.NoError(t, err)
	assert.Equal(t, int32(2), fs.calls.Load())
}

func TestClient_Call_InvalidJSONIsRetried(t *testing.T) {
	fs, srv := newFakeServer(t, nil)
	fs.handler = func(_ int32, w http.ResponseWriter, _ []byte) {
		fs.replyRaw(w, []byte("not json"))
	}

	client := newTestClient(t, srv.URL, 2)
	err := client.Call(context.Background(), api.APIGetUserData, 1, api.UserRequest{UserID: 1}, nil)

	assert.ErrorIs(t, err, ErrProtocolExhausted)
	assert.Equal(t, int32(2), fs.calls.Load())
}

func TestClient_Call_StatusIsFatal(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 3)
	err := client.Call(context.Background(), api.APIUserLogin, 1, api.UserRequest{UserID: 1}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequest)
	assert.NotErrorIs(t, err, ErrProtocolExhausted)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, api.APIUserLogin, statusErr.APIName)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_CallWith_MaxAttemptsOverride(t *testing.T) {
	fs, srv := newFakeServer(t, nil)
	fs.handler = func(_ int32, w http.ResponseWriter, _ []byte) {
		_, _ = w.Write([]byte("garbage"))
	}

	client := newTestClient(t, srv.URL, 3)
	err := client.CallWith(context.Background(), CallOptions{MaxAttempts: 1, Quiet: true},
		api.APIGetUserPreview, 1, api.UserPreviewRequest{UserID: 1}, nil)

	assert.ErrorIs(t, err, ErrProtocolExhausted)
	assert.Equal(t, int32(1), fs.calls.Load())
}

func TestClient_Call_ResultTypeMismatch(t *testing.T) {
	fs, srv := newFakeServer(t, nil)
	fs.handler = func(_ int32, w http.ResponseWriter, _ []byte) {
		fs.replyRaw(w, []byte(`{"returnCode":"one"}`))
	}

	client := newTestClient(t, srv.URL, 3)
	var resp api.CodeResponse
	err := client.Call(context.Background(), api.APIUpsertUserAll, 1, api.UserRequest{UserID: 1}, &resp)

	assert.ErrorIs(t, err, ErrResponse)
	assert.Equal(t, int32(1), fs.calls.Load())
}

func TestClient_Call_CanceledContext(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(t, srv.URL, 3)
	err := client.Call(ctx, api.APIGetUserData, 1, api.UserRequest{UserID: 1}, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrProtocolExhausted)
}
