package feed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/midbel/bikecharts"
)

const (
	colDuration = "tripduration"
	colUser     = "usertype"
	colBirth    = "birth year"
	colGender   = "gender"
)

func LoadTrips(ctx context.Context, loc string) ([]bikecharts.Trip, error) {
	r, err := Open(ctx, loc)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	list, err := DecodeTrips(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", loc, err)
	}
	return list, nil
}

// DecodeTrips reads trips from a csv file with a header line. Columns are
// found by name. Rows with a value that can not be used (unknown birth year,
// unknown user type,...) are skipped.
func DecodeTrips(r io.Reader) ([]bikecharts.Trip, error) {
	rs := csv.NewReader(r)
	rs.ReuseRecord = true
	rs.FieldsPerRecord = -1

	head, err := rs.Read()
	if err != nil {
		return nil, err
	}
	cols, err := findColumns(head, colDuration, colUser, colBirth, colGender)
	if err != nil {
		return nil, err
	}
	var list []bikecharts.Trip
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		t, ok := getTrip(row, cols)
		if !ok {
			continue
		}
		list = append(list, t)
	}
	return list, nil
}

func getTrip(row []string, cols map[string]int) (bikecharts.Trip, bool) {
	var (
		t   bikecharts.Trip
		err error
	)
	get := func(name string) string {
		ix := cols[name]
		if ix >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[ix])
	}
	if t.Duration, err = strconv.ParseFloat(get(colDuration), 64); err != nil || t.Duration < 0 {
		return t, false
	}
	if t.BirthYear, err = strconv.ParseFloat(get(colBirth), 64); err != nil {
		return t, false
	}
	if t.UserType, err = bikecharts.ParseUserType(get(colUser)); err != nil {
		return t, false
	}
	g, err := strconv.Atoi(get(colGender))
	if err != nil || g < int(bikecharts.GenderUnknown) || g > int(bikecharts.GenderFemale) {
		return t, false
	}
	t.Gender = bikecharts.Gender(g)
	return t, true
}

func findColumns(head []string, names ...string) (map[string]int, error) {
	cols := make(map[string]int)
	for i, h := range head {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, n := range names {
		if _, ok := cols[n]; !ok {
			return nil, fmt.Errorf("%s: %w", n, ErrColumn)
		}
	}
	return cols, nil
}
