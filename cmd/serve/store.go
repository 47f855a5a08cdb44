package main

import (
	"context"
	"log"
	"sync"

	"github.com/midbel/bikecharts"
	"github.com/midbel/bikecharts/feed"
)

// store keeps the current generation of data. A refresh replaces the dataset
// and its index together, so a frame sees either the old pair or the new one.
type store struct {
	src   feed.Sources
	chart bikecharts.Scatter
	grid  bikecharts.DonutGrid

	mu    sync.RWMutex
	data  *bikecharts.Dataset
	index *bikecharts.Index
}

func newStore(src feed.Sources, chart bikecharts.Scatter) *store {
	return &store{
		src:   src,
		chart: chart,
		grid:  bikecharts.DefaultDonutGrid(),
	}
}

func (s *store) Refresh(ctx context.Context) error {
	data, err := feed.Load(ctx, s.src)
	if err != nil {
		return err
	}
	ix := s.chart.Index(data.Trips)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data, s.index = data, ix
	log.Printf("refresh: %d stations, %d markers", len(data.Stations), ix.Len())
	return nil
}

func (s *store) Snapshot() (*bikecharts.Dataset, *bikecharts.Index) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data, s.index
}
