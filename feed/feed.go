// Package feed reads stations and trips from local files or over http and
// turns them into the values drawn by bikecharts.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/midbel/bikecharts"
	"golang.org/x/sync/errgroup"
)

var (
	ErrStatus = errors.New("unexpected status")
	ErrColumn = errors.New("column not found")
	ErrCount  = errors.New("negative count")
)

// Open gives access to the content of loc: an http(s) url or a path to a
// local file.
func Open(ctx context.Context, loc string) (io.ReadCloser, error) {
	u, err := url.Parse(loc)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return os.Open(loc)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc, nil)
	if err != nil {
		return nil, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		res.Body.Close()
		return nil, fmt.Errorf("%s: %w (%d)", loc, ErrStatus, res.StatusCode)
	}
	return res.Body, nil
}

type Sources struct {
	Stations string
	Trips    string
}

// Load reads both sources at the same time. Either both succeed or no
// dataset is returned. An empty location leaves its part of the dataset
// empty.
func Load(ctx context.Context, src Sources) (*bikecharts.Dataset, error) {
	var (
		data     bikecharts.Dataset
		grp, sub = errgroup.WithContext(ctx)
	)
	if src.Stations != "" {
		grp.Go(func() error {
			list, err := LoadStations(sub, src.Stations)
			if err == nil {
				data.Stations = list
			}
			return err
		})
	}
	if src.Trips != "" {
		grp.Go(func() error {
			list, err := LoadTrips(sub, src.Trips)
			if err == nil {
				data.Trips = list
			}
			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}
