package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/midbel/bikecharts"
	"github.com/midbel/bikecharts/feed"
)

const loadTimeout = time.Second * 30

func main() {
	log.SetPrefix("[serve] ")
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	var (
		addr     = flag.String("a", getEnv("BIKECHARTS_ADDR", ":8080"), "listening address")
		stations = flag.String("stations", os.Getenv("BIKECHARTS_STATIONS"), "station status file or url")
		trips    = flag.String("trips", os.Getenv("BIKECHARTS_TRIPS"), "trips csv file or url")
		first    = flag.Bool("first", false, "select the first marker under the pointer")
	)
	flag.Parse()

	chart := bikecharts.DefaultScatter()
	chart.FirstMatch = *first

	st := newStore(feed.Sources{Stations: *stations, Trips: *trips}, chart)
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	if err := st.Refresh(ctx); err != nil {
		log.Printf("initial load failed: %s", err)
	}
	cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", servePage)
	mux.HandleFunc("/stations.svg", st.serveStations)
	mux.HandleFunc("/scatter.svg", st.serveScatter)
	mux.HandleFunc("/refresh", st.serveRefresh)
	mux.HandleFunc("/ws", st.serveFrames)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
