package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/midbel/bikecharts"
)

const svgType = "image/svg+xml"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1 << 16,
}

type pointerMessage struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Pressed bool    `json:"pressed"`
}

func servePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("content-type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

func (s *store) serveStations(w http.ResponseWriter, r *http.Request) {
	var (
		data, _ = s.Snapshot()
		set     []bikecharts.Station
	)
	if data != nil {
		set = data.Stations
	}
	width, height := s.grid.Bounds(len(set))
	cv := bikecharts.NewSVGCanvas(width, height)
	s.grid.Render(cv, set)

	w.Header().Set("content-type", svgType)
	if err := cv.Render(w); err != nil {
		log.Printf("stations: %s", err)
	}
}

func (s *store) serveScatter(w http.ResponseWriter, r *http.Request) {
	var (
		q     = r.URL.Query()
		frame bikecharts.Frame
		err   error
	)
	if frame.Mode, err = bikecharts.ParseMode(q.Get("mode")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if frame.Pointer.X, err = parseCoord(q, "x"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if frame.Pointer.Y, err = parseCoord(q, "y"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("content-type", svgType)
	if err := s.renderFrame(frame).Render(w); err != nil {
		log.Printf("scatter: %s", err)
	}
}

// parseCoord reads one coordinate of the pointer. A missing coordinate puts
// the pointer outside of the plot.
func parseCoord(q url.Values, key string) (float64, error) {
	str := q.Get(key)
	if str == "" {
		return -1, nil
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: invalid coordinate %q", key, str)
	}
	return v, nil
}

func (s *store) serveRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := s.Refresh(r.Context()); err != nil {
		log.Printf("refresh failed: %s", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// serveFrames renders one frame of the scatter plot for every pointer event
// received on the connection. The display mode lives with the connection.
func (s *store) serveFrames(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade: %s", err)
		return
	}
	defer conn.Close()

	var (
		frame bikecharts.Frame
		buf   bytes.Buffer
	)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("read: %s", err)
			}
			return
		}
		var pm pointerMessage
		if err := json.Unmarshal(msg, &pm); err != nil {
			log.Printf("invalid pointer message: %s", err)
			continue
		}
		frame.Pointer = bikecharts.Pointer{X: pm.X, Y: pm.Y, Pressed: pm.Pressed}
		frame = s.chart.Update(frame)

		buf.Reset()
		if err := s.renderFrame(frame).Render(&buf); err != nil {
			log.Printf("render: %s", err)
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, buf.Bytes()); err != nil {
			log.Printf("write: %s", err)
			return
		}
	}
}

func (s *store) renderFrame(frame bikecharts.Frame) *bikecharts.SVGCanvas {
	_, ix := s.Snapshot()
	cv := bikecharts.NewSVGCanvas(s.chart.Width, s.chart.Height)
	s.chart.Render(cv, ix, frame)
	return cv
}
