package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseEndpoint_NormalizesScheme(t *testing.T) {
	u, err := parseEndpoint("example.com:8080")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != "example.com:8080" {
		t.Fatalf("host = %q, want example.com:8080", u.Host)
	}

	if _, err := parseEndpoint("   "); err == nil {
		t.Fatalf("parseEndpoint accepted empty endpoint, want error")
	}
}

func TestClient_FetchRecords(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	records := []Record{
		{ID: 1, Name: "Leanne Graham", Email: "leanne@april.biz", Phone: "1-770-736-8031", Company: Company{Name: "Romaguera-Crona"}},
		{ID: 2, Name: "Ervin Howell", Email: "ervin@melissa.tv", Phone: "010-692-6593", Company: Company{Name: "Deckow-Crist"}},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(records)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	got, err := c.FetchRecords(ctx)
	if err != nil {
		t.Fatalf("FetchRecords returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("FetchRecords returned %d records, want 2", len(got))
	}
	if got[0].ID != 1 || got[0].Name != "Leanne Graham" || got[0].Company.Name != "Romaguera-Crona" {
		t.Fatalf("first record = %#v, want Leanne Graham of Romaguera-Crona", got[0])
	}
	if got[1].Email != "ervin@melissa.tv" {
		t.Fatalf("second record email = %q, want ervin@melissa.tv", got[1].Email)
	}
	if !strings.HasPrefix(gotUserAgent, "rolodex/") {
		t.Fatalf("User-Agent = %q, want rolodex/*", gotUserAgent)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bad-json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("[{not-json"))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/bad-json")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchRecords(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchRecords error = %v, want decode response error", err)
	}

	c, err = NewClient(server.URL + "/boom")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchRecords(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchRecords error = %v, want status 500 error", err)
	}
}
