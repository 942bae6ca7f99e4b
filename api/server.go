package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	ws "github.com/gorilla/websocket"
	"github.com/maxb-odessa/slog"

	"github.com/matt-g-everett/rainbow/rainbow"
	"github.com/matt-g-everett/rainbow/util"
)

// Upper bound on swatch sizes so a single request can't ask for millions of rows.
const maxSwatch = 1024

// Api serves a shared Rainbow over HTTP and a websocket.
type Api struct {
	rainbow  *rainbow.Locked
	router   *mux.Router
	upgrader ws.Upgrader
}

type colourResponse struct {
	Value  float64 `json:"value"`
	Colour string  `json:"colour"`
}

type spectrumMessage struct {
	Spectrum []string `json:"spectrum"`
	Min      float64  `json:"min"`
	Max      float64  `json:"max"`
}

type rangeRequest struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewApi creates an Api and registers its routes.
func NewApi(r *rainbow.Locked) *Api {
	a := new(Api)
	a.rainbow = r
	a.upgrader = ws.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	a.router = mux.NewRouter()
	a.router.HandleFunc("/colour/{value}", a.getColour).Methods(http.MethodGet)
	a.router.HandleFunc("/spectrum", a.getSpectrum).Methods(http.MethodGet)
	a.router.HandleFunc("/spectrum", a.putSpectrum).Methods(http.MethodPut)
	a.router.HandleFunc("/range", a.putRange).Methods(http.MethodPut)
	a.router.HandleFunc("/swatch", a.getSwatch).Methods(http.MethodGet)
	a.router.HandleFunc("/ws", a.websocket)

	return a
}

// ServeHTTP makes the Api usable as an http.Handler.
func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Serve listens on addr until the listener fails.
func (a *Api) Serve(addr string) error {
	slog.Info("Listening at %s", addr)
	return http.ListenAndServe(addr, a)
}

func (a *Api) getColour(w http.ResponseWriter, r *http.Request) {
	value, err := strconv.ParseFloat(mux.Vars(r)["value"], 64)
	// JSON has no encoding for NaN or the infinities.
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		writeError(w, fmt.Errorf("bad value %q", mux.Vars(r)["value"]))
		return
	}

	writeJSON(w, http.StatusOK, colourResponse{Value: value, Colour: a.rainbow.ColorAt(value)})
}

func (a *Api) getSpectrum(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.state())
}

func (a *Api) putSpectrum(w http.ResponseWriter, r *http.Request) {
	var req spectrumMessage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("bad request body: %w", err))
		return
	}

	if err := a.rainbow.SetSpectrum(req.Spectrum); err != nil {
		writeError(w, err)
		return
	}
	slog.Info("Spectrum set to %v", req.Spectrum)

	writeJSON(w, http.StatusOK, a.state())
}

func (a *Api) putRange(w http.ResponseWriter, r *http.Request) {
	var req rangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("bad request body: %w", err))
		return
	}
	if req.Min == nil || req.Max == nil {
		writeError(w, errors.New("both min and max are required"))
		return
	}

	if err := a.rainbow.SetNumberRange(*req.Min, *req.Max); err != nil {
		writeError(w, err)
		return
	}
	slog.Info("Number range set to [%v, %v]", *req.Min, *req.Max)

	writeJSON(w, http.StatusOK, a.state())
}

func (a *Api) getSwatch(w http.ResponseWriter, r *http.Request) {
	n := 11
	if s := r.URL.Query().Get("n"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > maxSwatch {
			writeError(w, fmt.Errorf("n must be within 1..%d", maxSwatch))
			return
		}
		n = v
	}

	sweep := util.Sweep
	if eased, _ := strconv.ParseBool(r.URL.Query().Get("eased")); eased {
		sweep = util.EasedSweep
	}

	swatch := make([]colourResponse, 0, n)
	a.rainbow.Read(func(rb *rainbow.Rainbow) {
		min, max := rb.NumberRange()
		for _, v := range sweep(min, max, n) {
			swatch = append(swatch, colourResponse{Value: v, Colour: rb.ColorAt(v)})
		}
	})

	writeJSON(w, http.StatusOK, swatch)
}

func (a *Api) websocket(w http.ResponseWriter, r *http.Request) {
	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Err("Websocket upgrade failed: %s", err)
		return
	}

	slog.Info("Websocket connected: %s", conn.RemoteAddr())
	defer func() {
		slog.Info("Websocket connection closed: %s", conn.RemoteAddr())
		conn.Close()
	}()

	for {
		mtype, msg, err := conn.ReadMessage()
		if err != nil || mtype == ws.CloseMessage {
			return
		}
		if mtype != ws.TextMessage {
			continue
		}

		reply := ""
		if value, err := strconv.ParseFloat(string(msg), 64); err != nil {
			reply = fmt.Sprintf("error: bad value %q", msg)
		} else {
			reply = a.rainbow.ColorAt(value)
		}

		if err := conn.WriteMessage(ws.TextMessage, []byte(reply)); err != nil {
			slog.Err("Websocket send() failed: %s", err)
			return
		}
	}
}

func (a *Api) state() spectrumMessage {
	spectrum, min, max := a.rainbow.Snapshot()
	return spectrumMessage{Spectrum: spectrum, Min: min, Max: max}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("Failed to write response: %s", err)
	}
}

// Every error reaching a client is caused by its input.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}
