package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridboard/pkg/arrange"
	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/storage"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	srv := New(storage.NewGateway(storage.NewMemoryBackend()), arrange.Options{}, log.New(io.Discard))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response: %v", err)
	}
	return resp, data
}

func decodeDoc(t *testing.T, data []byte) boardDocument {
	t.Helper()
	var doc boardDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decoding board document: %v\n%s", err, data)
	}
	return doc
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t)

	resp, data := doJSON(t, http.MethodGet, ts.URL+"/healthz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !bytes.Contains(data, []byte(`"ok"`)) {
		t.Errorf("body = %s", data)
	}
}

func TestGetUnknownBoardReturnsDefaults(t *testing.T) {
	_, ts := newTestServer(t)

	resp, data := doJSON(t, http.MethodGet, ts.URL+"/v1/boards/fresh", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	doc := decodeDoc(t, data)
	if doc.BoardID != "fresh" {
		t.Errorf("boardId = %q, want fresh", doc.BoardID)
	}
	if len(doc.Items) != len(board.WidgetTypes) {
		t.Errorf("got %d items, want the full default catalogue (%d)", len(doc.Items), len(board.WidgetTypes))
	}
}

func TestPutThenGetRoundTrip(t *testing.T) {
	_, ts := newTestServer(t)

	put := boardDocument{Items: []storage.Record{
		{I: "chart-1", X: 0, Y: 0, W: 100, H: 80},
		{I: "table-1", X: 0, Y: 90, W: 50, H: 56},
	}}

	resp, _ := doJSON(t, http.MethodPut, ts.URL+"/v1/boards/b1", put)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT status = %d, want 200", resp.StatusCode)
	}

	resp, data := doJSON(t, http.MethodGet, ts.URL+"/v1/boards/b1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", resp.StatusCode)
	}

	doc := decodeDoc(t, data)
	if len(doc.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(doc.Items))
	}
	if doc.Items[0].I != "chart-1" || doc.Items[1].I != "table-1" {
		t.Errorf("items = %+v", doc.Items)
	}
}

func TestPutSanitizesDocument(t *testing.T) {
	_, ts := newTestServer(t)

	put := boardDocument{Items: []storage.Record{
		{I: "video-1", X: 0, Y: 0, W: 50, H: 50},
		{I: "metric-a", X: 0, Y: 0, W: 24, H: 60},
		{I: "metric-b", X: 30, Y: 0, W: 24, H: 60},
	}}

	resp, data := doJSON(t, http.MethodPut, ts.URL+"/v1/boards/b1", put)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT status = %d, want 200", resp.StatusCode)
	}

	doc := decodeDoc(t, data)
	if len(doc.Items) != 1 || doc.Items[0].I != "metric-a" {
		t.Errorf("items = %+v, want only metric-a to survive", doc.Items)
	}
}

func TestPutRejectsMalformedJSON(t *testing.T) {
	_, ts := newTestServer(t)

	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/v1/boards/b1", bytes.NewReader([]byte("{oops")))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	data, _ := io.ReadAll(resp.Body)
	if !bytes.Contains(data, []byte("INVALID_DOCUMENT")) {
		t.Errorf("body = %s, want error code", data)
	}
}

func TestDeleteBoard(t *testing.T) {
	_, ts := newTestServer(t)

	put := boardDocument{Items: []storage.Record{{I: "chart-1", W: 100, H: 80}}}
	doJSON(t, http.MethodPut, ts.URL+"/v1/boards/b1", put)

	resp, _ := doJSON(t, http.MethodDelete, ts.URL+"/v1/boards/b1", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("DELETE status = %d, want 204", resp.StatusCode)
	}

	// A deleted board reads the same as a fresh one.
	_, data := doJSON(t, http.MethodGet, ts.URL+"/v1/boards/b1", nil)
	doc := decodeDoc(t, data)
	if len(doc.Items) != len(board.WidgetTypes) {
		t.Errorf("got %d items after delete, want default catalogue", len(doc.Items))
	}
}

func TestArrangeBoard(t *testing.T) {
	_, ts := newTestServer(t)

	// Two full-width rows with untidy vertical gaps.
	put := boardDocument{Items: []storage.Record{
		{I: "chart-1", X: 0, Y: 5, W: 100, H: 80},
		{I: "table-1", X: 0, Y: 130, W: 100, H: 56},
	}}
	doJSON(t, http.MethodPut, ts.URL+"/v1/boards/b1", put)

	resp, data := doJSON(t, http.MethodPost, ts.URL+"/v1/boards/b1/arrange", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST arrange status = %d, want 200", resp.StatusCode)
	}

	doc := decodeDoc(t, data)
	if len(doc.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(doc.Items))
	}
	if doc.Items[0].Y != 0 {
		t.Errorf("first row y = %v, want 0", doc.Items[0].Y)
	}
	if doc.Items[1].Y != 90 {
		t.Errorf("second row y = %v, want 90 (80 + default gap)", doc.Items[1].Y)
	}

	// The arranged layout is persisted.
	_, data = doJSON(t, http.MethodGet, ts.URL+"/v1/boards/b1", nil)
	got := decodeDoc(t, data)
	if got.Items[0].Y != 0 || got.Items[1].Y != 90 {
		t.Errorf("persisted layout = %+v, want arranged positions", got.Items)
	}
}
