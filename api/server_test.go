package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strings"
	"testing"

	ws "github.com/gorilla/websocket"
	"github.com/maxb-odessa/slog"

	"github.com/matt-g-everett/rainbow/rainbow"
)

func TestMain(m *testing.M) {
	slog.Init("", 0, "")
	os.Exit(m.Run())
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGetColour(t *testing.T) {
	a := NewApi(rainbow.NewLocked(rainbow.New()))

	tests := []struct {
		path   string
		status int
		colour string
	}{
		{"/colour/0", http.StatusOK, "ff0000"},
		{"/colour/100", http.StatusOK, "0000ff"},
		{"/colour/1000", http.StatusOK, "0000ff"},
		{"/colour/-7.5", http.StatusOK, "ff0000"},
		{"/colour/hot", http.StatusBadRequest, ""},
		{"/colour/NaN", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		rec := do(t, a, http.MethodGet, tt.path, "")
		if rec.Code != tt.status {
			t.Errorf("GET %s status = %d, want %d", tt.path, rec.Code, tt.status)
			continue
		}
		if tt.status != http.StatusOK {
			continue
		}
		var resp colourResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("GET %s: %v", tt.path, err)
		}
		if resp.Colour != tt.colour {
			t.Errorf("GET %s colour = %q, want %q", tt.path, resp.Colour, tt.colour)
		}
	}
}

func TestPutSpectrum(t *testing.T) {
	a := NewApi(rainbow.NewLocked(rainbow.New()))

	rec := do(t, a, http.MethodPut, "/spectrum", `{"spectrum":["black","#FFFFFF"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT /spectrum status = %d: %s", rec.Code, rec.Body)
	}
	var state spectrumMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(state.Spectrum, []string{"black", "#FFFFFF"}) || state.Min != 0 || state.Max != 100 {
		t.Errorf("state = %+v", state)
	}

	rec = do(t, a, http.MethodGet, "/colour/50", "")
	if !strings.Contains(rec.Body.String(), `"808080"`) {
		t.Errorf("GET /colour/50 = %s, want 808080", rec.Body)
	}

	for _, body := range []string{`{"spectrum":["red"]}`, `{"spectrum":["red","bogus"]}`, `{}`, `not json`} {
		rec := do(t, a, http.MethodPut, "/spectrum", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("PUT /spectrum %s status = %d, want 400", body, rec.Code)
		}
	}

	// Failed updates leave the previous spectrum in place.
	rec = do(t, a, http.MethodGet, "/spectrum", "")
	if !strings.Contains(rec.Body.String(), `"black"`) {
		t.Errorf("GET /spectrum = %s", rec.Body)
	}
}

func TestPutRange(t *testing.T) {
	a := NewApi(rainbow.NewLocked(rainbow.New()))

	rec := do(t, a, http.MethodPut, "/range", `{"min":10,"max":5}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("reversed range status = %d, want 400", rec.Code)
	}
	rec = do(t, a, http.MethodPut, "/range", `{"min":10}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing max status = %d, want 400", rec.Code)
	}

	rec = do(t, a, http.MethodPut, "/range", `{"min":0,"max":30}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT /range status = %d: %s", rec.Code, rec.Body)
	}
	rec = do(t, a, http.MethodGet, "/colour/10", "")
	if !strings.Contains(rec.Body.String(), `"ffff00"`) {
		t.Errorf("GET /colour/10 = %s, want ffff00", rec.Body)
	}
}

func TestGetSwatch(t *testing.T) {
	a := NewApi(rainbow.NewLocked(rainbow.New()))

	rec := do(t, a, http.MethodGet, "/swatch?n=3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var swatch []colourResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &swatch); err != nil {
		t.Fatal(err)
	}
	expected := []colourResponse{{0, "ff0000"}, {50, "80ff00"}, {100, "0000ff"}}
	if !reflect.DeepEqual(swatch, expected) {
		t.Errorf("swatch = %+v, want %+v", swatch, expected)
	}

	rec = do(t, a, http.MethodGet, "/swatch?n=5&eased=true", "")
	swatch = nil
	if err := json.Unmarshal(rec.Body.Bytes(), &swatch); err != nil {
		t.Fatal(err)
	}
	if len(swatch) != 5 || swatch[1].Value != 12.5 {
		t.Errorf("eased swatch = %+v", swatch)
	}

	for _, q := range []string{"n=0", "n=x", "n=5000"} {
		if rec := do(t, a, http.MethodGet, "/swatch?"+q, ""); rec.Code != http.StatusBadRequest {
			t.Errorf("GET /swatch?%s status = %d, want 400", q, rec.Code)
		}
	}
}

func TestWebsocket(t *testing.T) {
	srv := httptest.NewServer(NewApi(rainbow.NewLocked(rainbow.New())))
	defer srv.Close()

	conn, _, err := ws.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	for msg, want := range map[string]string{"0": "ff0000", "100": "0000ff", "warm": `error: bad value "warm"`} {
		if err := conn.WriteMessage(ws.TextMessage, []byte(msg)); err != nil {
			t.Fatal(err)
		}
		_, reply, err := conn.ReadMessage()
		if err != nil {
			t.Fatal(err)
		}
		if string(reply) != want {
			t.Errorf("reply to %q = %q, want %q", msg, reply, want)
		}
	}
}
