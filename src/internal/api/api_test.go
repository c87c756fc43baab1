package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/maksimkurb/wgconf/src/internal/config"
	"github.com/maksimkurb/wgconf/src/internal/log"
	"github.com/maksimkurb/wgconf/src/internal/wgkey"
)

const testKey = "yAnz5TF+lXXJte14tji3zlMNq+hd2rYUIgJBgB3fBmk="

func init() {
	log.DisableLogs()
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.DefaultConfig()
	return NewRouter(cfg, VersionInfo{Version: "test"})
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.RemoteAddr = "127.0.0.1:50000"
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	resp := DataResponse{Data: v}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) APIError {
	t.Helper()
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	return resp.Error
}

func fieldsBody(t *testing.T, fields map[string]string) string {
	t.Helper()
	data, err := json.Marshal(FieldsRequest{Fields: fields})
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}
	return string(data)
}

func TestValidateInterface(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name        string
		fields      map[string]string
		wantStatus  int
		wantCode    ErrorCode
		wantMessage string
	}{
		{
			name: "valid",
			fields: map[string]string{
				"PrivateKey": testKey,
				"Address":    "10.0.0.1/24",
				"ListenPort": "51820",
				"PostUp":     "echo up",
				"PostDown":   "echo down",
				"MTU":        "1420",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "zero port",
			fields: map[string]string{
				"PrivateKey": testKey,
				"Address":    "10.0.0.1/24",
				"ListenPort": "0",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrCodeValidationFailed,
			wantMessage: "port can't be 0",
		},
		{
			name: "missing port",
			fields: map[string]string{
				"PrivateKey": testKey,
				"Address":    "10.0.0.1/24",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrCodeValidationFailed,
			wantMessage: "invalid port raw value",
		},
		{
			name: "address without mask",
			fields: map[string]string{
				"PrivateKey": testKey,
				"Address":    "10.0.0.1",
				"ListenPort": "51820",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrCodeValidationFailed,
			wantMessage: "address must be address with mask (e.g. 10.0.0.1/8)",
		},
		{
			name: "bad key is reported before address",
			fields: map[string]string{
				"PrivateKey": "not-a-key",
				"Address":    "bogus",
				"ListenPort": "0",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeKeyInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/v1/interface/validate", fieldsBody(t, tt.fields))

			if rec.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}

			if tt.wantStatus == http.StatusOK {
				var resp InterfaceResponse
				decodeData(t, rec, &resp)
				if !resp.Valid {
					t.Error("Expected valid=true")
				}
				if resp.Interface.ListenPort() != 51820 {
					t.Errorf("Expected listen port 51820, got %d", resp.Interface.ListenPort())
				}
				if !strings.HasPrefix(resp.Text, "[Interface]\nPrivateKey = "+testKey+"\n") {
					t.Errorf("Unexpected text: %q", resp.Text)
				}
				if len(resp.Checksum) != 32 {
					t.Errorf("Expected hex MD5 checksum, got %q", resp.Checksum)
				}
				return
			}

			apiErr := decodeError(t, rec)
			if apiErr.Code != tt.wantCode {
				t.Errorf("Expected code %s, got %s", tt.wantCode, apiErr.Code)
			}
			if tt.wantMessage != "" && apiErr.Message != tt.wantMessage {
				t.Errorf("Expected message %q, got %q", tt.wantMessage, apiErr.Message)
			}
		})
	}
}

func TestValidateInterface_MissingFields(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/interface/validate", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	apiErr := decodeError(t, rec)
	if apiErr.Code != ErrCodeInvalidRequest {
		t.Errorf("Expected invalid_request, got %s", apiErr.Code)
	}
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Errorf("Expected details for 'fields', got %v", apiErr.Details)
	}
}

func TestRenderInterface(t *testing.T) {
	router := newTestRouter(t)

	body := `{"private_key":"` + testKey + `","address":"10.0.0.1/8","listen_port":51820,"post_up":"up","post_down":"down"}`
	rec := doRequest(t, router, http.MethodPost, "/api/v1/interface/render", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	want := "[Interface]\n" +
		"PrivateKey = " + testKey + "\n" +
		"Address = 10.0.0.1/8\n" +
		"ListenPort = 51820\n" +
		"PostUp = up\n" +
		"PostDown = down\n" +
		"\n"
	if got := rec.Body.String(); got != want {
		t.Errorf("Unexpected render:\n%q\nwant\n%q", got, want)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Expected text/plain, got %s", ct)
	}
}

func TestRenderInterface_ZeroPort(t *testing.T) {
	router := newTestRouter(t)

	body := `{"private_key":"` + testKey + `","address":"10.0.0.1/8","listen_port":0}`
	rec := doRequest(t, router, http.MethodPost, "/api/v1/interface/render", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if apiErr := decodeError(t, rec); apiErr.Message != "port can't be 0" {
		t.Errorf("Unexpected message %q", apiErr.Message)
	}
}

func TestRenderInterface_MultilineHook(t *testing.T) {
	router := newTestRouter(t)

	body := `{"private_key":"` + testKey + `","address":"10.0.0.1/8","listen_port":51820,"post_up":"echo hi\nListenPort = 1"}`
	rec := doRequest(t, router, http.MethodPost, "/api/v1/interface/render", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if apiErr := decodeError(t, rec); apiErr.Message != "PostUp must be a single line" {
		t.Errorf("Unexpected message %q", apiErr.Message)
	}
}

func TestValidateInterface_MultilineHook(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(FieldsRequest{Fields: map[string]string{
		"PrivateKey": testKey,
		"Address":    "10.0.0.1/24",
		"ListenPort": "51820",
		"PostDown":   "echo bye\r\nListenPort = 1",
	}})
	rec := doRequest(t, router, http.MethodPost, "/api/v1/interface/validate", string(body))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if apiErr := decodeError(t, rec); apiErr.Message != "PostDown must be a single line" {
		t.Errorf("Unexpected message %q", apiErr.Message)
	}
}

func TestParseInterface(t *testing.T) {
	router := newTestRouter(t)

	text := "# office tunnel\n" +
		"[Interface]\n" +
		"PrivateKey = " + testKey + "\n" +
		"Address = 10.0.0.1/24\n" +
		"ListenPort = 51820\n" +
		"MTU = 1420\n" +
		"\n" +
		"[Peer]\n" +
		"AllowedIPs = 10.0.0.2/32\n"
	body, _ := json.Marshal(ParseRequest{Text: text})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/interface/parse", string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ParseResponse
	decodeData(t, rec, &resp)
	if len(resp.UnknownFields) != 1 || resp.UnknownFields[0] != "MTU" {
		t.Errorf("Expected MTU as unknown field, got %v", resp.UnknownFields)
	}
	if len(resp.Sections) != 1 || resp.Sections[0] != "[Peer]" {
		t.Errorf("Expected [Peer] section, got %v", resp.Sections)
	}
	if resp.SourceChecksum == "" || resp.SourceChecksum == resp.Checksum {
		t.Errorf("Expected distinct source checksum, got %q", resp.SourceChecksum)
	}
}

func TestParseInterface_ParseError(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(ParseRequest{Text: "PrivateKey = x\n"})
	rec := doRequest(t, router, http.MethodPost, "/api/v1/interface/parse", string(body))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if apiErr := decodeError(t, rec); apiErr.Code != ErrCodeParseError {
		t.Errorf("Expected parse_error, got %s", apiErr.Code)
	}
}

func TestExpandHooks(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(HooksRequest{
		Fields: map[string]string{
			"PrivateKey": testKey,
			"Address":    "10.0.0.1/24",
			"ListenPort": "51820",
			"PostUp":     "iptables -A FORWARD -i %i -j ACCEPT",
		},
	})
	rec := doRequest(t, router, http.MethodPost, "/api/v1/interface/hooks", string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp HooksResponse
	decodeData(t, rec, &resp)
	if resp.InterfaceName != "wg0" {
		t.Errorf("Expected default interface name wg0, got %s", resp.InterfaceName)
	}
	if resp.PostUp != "iptables -A FORWARD -i wg0 -j ACCEPT" {
		t.Errorf("Unexpected PostUp %q", resp.PostUp)
	}
}

func TestKeys(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/keys", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var pair KeyPairResponse
	decodeData(t, rec, &pair)

	priv, err := wgkey.Parse(pair.PrivateKey)
	if err != nil {
		t.Fatalf("Generated private key does not parse: %v", err)
	}
	if priv.PublicKey().String() != pair.PublicKey {
		t.Error("Public key does not match private key")
	}

	body, _ := json.Marshal(PublicKeyRequest{PrivateKey: pair.PrivateKey})
	rec = doRequest(t, router, http.MethodPost, "/api/v1/keys/public", string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var derived KeyPairResponse
	decodeData(t, rec, &derived)
	if derived.PublicKey != pair.PublicKey || derived.PrivateKey != "" {
		t.Errorf("Unexpected derived response: %+v", derived)
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var resp HealthResponse
	decodeData(t, rec, &resp)
	if !resp.Healthy || resp.Version.Version != "test" {
		t.Errorf("Unexpected health response: %+v", resp)
	}
}

func TestBodyLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.API.MaxBodyBytes = 16
	router := NewRouter(cfg, VersionInfo{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/interface/validate", bytes.NewReader(make([]byte, 64)))
	req.RemoteAddr = "127.0.0.1:50000"
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413, got %d", rec.Code)
	}
}
