package delivery

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sdgb/internal/crypto"
)

const updateINI = `[COMMON]
GAME_DESC="OPTION_SDGB 1.51 K"
INSTALL1=https://example.test/files/SDGB_A051_20250314.opt
RELEASE_TIME=2025-03-14T07:00:00

[OPTIONAL]
INSTALL1=https://example.test/files/SDGB_A050_20250101.opt
INSTALL2=https://example.test/files/SDGB_A049_20241101.opt
`

// newDeliveryServer поднимает TLS-сервер instruction и раздачи INI
func newDeliveryServer(t *testing.T, uri func(base string) string) (*httptest.Server, func() []string) {
	t.Helper()

	var (
		mu       sync.Mutex
		requests []string
		srv      *httptest.Server
	)
	mux := http.NewServeMux()
	mux.HandleFunc("/net/delivery/instruction", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, r.Header.Get("User-Agent")+"|"+r.Header.Get("Pragma"))
		mu.Unlock()

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		plain, err := crypto.AuthLiteDecrypt(body)
		if err != nil || !bytes.HasSuffix(plain, []byte("title_id=SDGB&title_ver=1.51&client_id=A63E01C2805")) {
			http.Error(w, "bad instruction", http.StatusBadRequest)
			return
		}

		resp, err := crypto.AuthLiteEncrypt([]byte("\r\n" + uri(srv.URL) + "\r\n"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(resp)
	})
	mux.HandleFunc("/update/SDGB_1.51.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, updateINI)
	})

	srv = httptest.NewTLSServer(mux)
	t.Cleanup(srv.Close)
	return srv, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), requests...)
	}
}

func newTestClient(srv *httptest.Server) *Client {
	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL + "/net/delivery/instruction"
	return NewClient(cfg, srv.Client())
}

func TestClient_Updates(t *testing.T) {
	srv, requests := newDeliveryServer(t, func(base string) string {
		return "uri=" + base + "/update/SDGB_1.51.txt|null||http://insecure.test/a.txt&res=1"
	})
	client := newTestClient(srv)

	updates, err := client.Updates(context.Background(), "1.51")
	require.NoError(t, err)
	require.Len(t, updates, 1)

	info := updates[0]
	assert.Equal(t, srv.URL+"/update/SDGB_1.51.txt", info.Source)
	assert.Equal(t, KindOption, info.Kind)
	assert.Equal(t, "SDGB 1.51 K", info.Title)
	assert.Equal(t, "SDGB_A051_20250314.opt", info.Install.Name)
	assert.Equal(t, "2025-03-14 07:00:00", info.ReleaseTime)
	require.Len(t, info.Optional, 2)
	assert.Equal(t, "SDGB_A050_20250101.opt", info.Optional[0].Name)

	seen := requests()
	require.Len(t, seen, 1)
	assert.Equal(t, "SDGB;Windows/Lite|DFI", seen[0])
}

func TestClient_InstructionStripsControlChars(t *testing.T) {
	srv, _ := newDeliveryServer(t, func(string) string {
		return "uri=null&res=\x01ok"
	})

	raw, err := newTestClient(srv).Instruction(context.Background(), "1.51")
	require.NoError(t, err)
	assert.Equal(t, "uri=null&res=ok", raw)
}

func TestClient_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL
	_, err := NewClient(cfg, srv.Client()).Instruction(context.Background(), "1.51")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestParseInstruction(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr error
	}{
		{
			name: "filters invalid urls",
			raw:  "uri=https://a.test/1.txt|null||http://b.test/2.txt|https://c.test/3.ini|https://d.test/4.txt&res=1",
			want: []string{"https://a.test/1.txt", "https://d.test/4.txt"},
		},
		{
			name: "nothing to update",
			raw:  "uri=null",
			want: nil,
		},
		{
			name:    "missing uri",
			raw:     "res=1",
			wantErr: ErrNoInstruction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstruction(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUpdate(t *testing.T) {
	t.Run("patch without optional", func(t *testing.T) {
		info, err := ParseUpdate([]byte("[COMMON]\nGAME_DESC=PATCH_SDGB 1.51.01\nINSTALL1=https://x.test/p.app\nRELEASE_TIME=2025-04-01T10:00:00\n"))
		require.NoError(t, err)
		assert.Equal(t, KindPatch, info.Kind)
		assert.Equal(t, "SDGB 1.51.01", info.Title)
		assert.Equal(t, Package{Name: "p.app", URL: "https://x.test/p.app"}, info.Install)
		assert.Empty(t, info.Optional)
	})

	t.Run("unknown prefix", func(t *testing.T) {
		info, err := ParseUpdate([]byte("[COMMON]\nGAME_DESC=EVENT\nINSTALL1=https://x.test/e.opt\nRELEASE_TIME=2025-04-01T10:00:00\n"))
		require.NoError(t, err)
		assert.Equal(t, KindOther, info.Kind)
		assert.Equal(t, "EVENT", info.Title)
	})

	t.Run("missing common", func(t *testing.T) {
		_, err := ParseUpdate([]byte("[OPTIONAL]\nA=https://x.test/a.opt\n"))
		assert.Error(t, err)
	})

	t.Run("missing install", func(t *testing.T) {
		_, err := ParseUpdate([]byte("[COMMON]\nGAME_DESC=PATCH_X\nRELEASE_TIME=2025-04-01T10:00:00\n"))
		assert.ErrorContains(t, err, "INSTALL1")
	})
}
