package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/midbel/bikecharts"
	"github.com/midbel/bikecharts/feed"
	"github.com/midbel/slices"
)

const defaultTimeout = time.Second * 30

type Canvas interface {
	bikecharts.Canvas
	Render(io.Writer) error
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "no .env file found, using environment variables")
	}

	var (
		kind      = flag.String("type", "donut", "chart type (donut, scatter)")
		stations  = flag.String("stations", os.Getenv("BIKECHARTS_STATIONS"), "station status file or url")
		trips     = flag.String("trips", os.Getenv("BIKECHARTS_TRIPS"), "trips csv file or url")
		format    = flag.String("format", "", "output format (svg, png)")
		mode      = flag.String("mode", "all", "display mode (all, gender, usertype)")
		pointer   = flag.String("pointer", "", "pointer position x:y")
		years     = flag.String("years", "1935:2005", "domain for birth years")
		durations = flag.String("durations", "0:4500", "domain for trip durations")
		columns   = flag.Int("columns", 12, "number of stations per row")
		first     = flag.Bool("first", false, "select the first marker under the pointer")
		result    = flag.String("file", "", "output file")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var (
		cv  Canvas
		err error
	)
	switch *kind {
	case "donut", "":
		var set []bikecharts.Station
		if set, err = feed.LoadStations(ctx, *stations); err != nil {
			break
		}
		grid := bikecharts.DefaultDonutGrid()
		grid.Columns = *columns
		w, h := grid.Bounds(len(set))
		cv = createCanvas(getFormat(*format, *result), w, h)
		grid.Render(cv, set)
	case "scatter":
		var list []bikecharts.Trip
		if list, err = feed.LoadTrips(ctx, *trips); err != nil {
			break
		}
		ch := bikecharts.DefaultScatter()
		ch.FirstMatch = *first
		if ch.Years, err = numberDomain(*years); err != nil {
			break
		}
		if ch.Durations, err = numberDomain(*durations); err != nil {
			break
		}
		var frame bikecharts.Frame
		if frame.Mode, err = bikecharts.ParseMode(*mode); err != nil {
			break
		}
		if frame.Pointer, err = parsePointer(*pointer); err != nil {
			break
		}
		cv = createCanvas(getFormat(*format, *result), ch.Width, ch.Height)
		ch.Render(cv, ch.Index(list), frame)
	default:
		err = fmt.Errorf("%s: unsupported chart type", *kind)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err = renderChart(*result, cv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func renderChart(file string, cv Canvas) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return cv.Render(w)
}

func getFormat(format, file string) string {
	if format != "" {
		return format
	}
	return strings.TrimPrefix(filepath.Ext(file), ".")
}

func createCanvas(format string, width, height float64) Canvas {
	if format == "png" {
		return bikecharts.NewRasterCanvas(int(math.Ceil(width)), int(math.Ceil(height)))
	}
	return bikecharts.NewSVGCanvas(width, height)
}

func numberDomain(str string) (bikecharts.Domain, error) {
	vs := strings.Split(str, ":")
	if len(vs) != 2 {
		return bikecharts.Domain{}, fmt.Errorf("invalid number of values given for domain")
	}
	fn, err := strconv.ParseFloat(slices.Fst(vs), 64)
	if err != nil {
		return bikecharts.Domain{}, err
	}
	tn, err := strconv.ParseFloat(slices.Lst(vs), 64)
	if err != nil {
		return bikecharts.Domain{}, err
	}
	return bikecharts.NumberDomain(fn, tn), nil
}

func parsePointer(str string) (bikecharts.Pointer, error) {
	var p bikecharts.Pointer
	if str == "" {
		p.X, p.Y = -1, -1
		return p, nil
	}
	vs := strings.Split(str, ":")
	if len(vs) != 2 {
		return p, fmt.Errorf("invalid pointer position given")
	}
	x, err := strconv.ParseFloat(slices.Fst(vs), 64)
	if err != nil {
		return p, err
	}
	y, err := strconv.ParseFloat(slices.Lst(vs), 64)
	if err != nil {
		return p, err
	}
	p.X, p.Y = x, y
	return p, nil
}
