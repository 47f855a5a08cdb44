package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/midbel/bikecharts"
)

const sampleStatus = `{
  "last_updated": 1571230000,
  "data": {
    "stations": [
      {"station_id": "72", "num_bikes_available": 11, "num_docks_available": 42, "num_bikes_disabled": 1, "num_docks_disabled": 0},
      {"station_id": "79", "num_bikes_available": 0, "num_docks_available": 0, "num_bikes_disabled": 0, "num_docks_disabled": 0}
    ]
  }
}`

const sampleTrips = `"tripduration","starttime","stoptime","start station id","usertype","birth year","gender"
"600","2019-10-01 00:00:05","2019-10-01 00:10:05","72","Subscriber","1980","1"
"1200","2019-10-01 00:01:05","2019-10-01 00:21:05","79","Customer","\N","0"
"300","2019-10-01 00:02:05","2019-10-01 00:07:05","72","Customer","1991","2"
"abc","2019-10-01 00:03:05","2019-10-01 00:07:05","72","Customer","1991","2"
"300","2019-10-01 00:04:05","2019-10-01 00:09:05","72","Visitor","1991","2"
`

func TestDecodeStations(t *testing.T) {
	list, err := DecodeStations(strings.NewReader(sampleStatus))
	if err != nil {
		t.Fatal(err)
	}
	want := []bikecharts.Station{
		{ID: "72", BikesAvailable: 11, DocksAvailable: 42, BikesDisabled: 1},
		{ID: "79"},
	}
	if len(list) != len(want) {
		t.Fatalf("stations: want %d, got %d", len(want), len(list))
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("station %d: want %+v, got %+v", i, want[i], list[i])
		}
	}
}

func TestDecodeStationsNegative(t *testing.T) {
	str := `{"data": {"stations": [{"station_id": "1", "num_bikes_available": -1}]}}`
	if _, err := DecodeStations(strings.NewReader(str)); !errors.Is(err, ErrCount) {
		t.Errorf("negative count: want ErrCount, got %v", err)
	}
}

func TestDecodeTrips(t *testing.T) {
	list, err := DecodeTrips(strings.NewReader(sampleTrips))
	if err != nil {
		t.Fatal(err)
	}
	want := []bikecharts.Trip{
		{Duration: 600, UserType: bikecharts.Subscriber, BirthYear: 1980, Gender: bikecharts.GenderMale},
		{Duration: 300, UserType: bikecharts.Customer, BirthYear: 1991, Gender: bikecharts.GenderFemale},
	}
	if len(list) != len(want) {
		t.Fatalf("trips: want %d, got %d", len(want), len(list))
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("trip %d: want %+v, got %+v", i, want[i], list[i])
		}
	}
}

func TestDecodeTripsMissingColumn(t *testing.T) {
	str := "tripduration,usertype,gender\n600,Subscriber,1\n"
	if _, err := DecodeTrips(strings.NewReader(str)); !errors.Is(err, ErrColumn) {
		t.Errorf("missing column: want ErrColumn, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/station_status.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleStatus))
	})
	mux.HandleFunc("/trips.csv", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleTrips))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	data, err := Load(context.Background(), Sources{
		Stations: srv.URL + "/station_status.json",
		Trips:    srv.URL + "/trips.csv",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(data.Stations) != 2 || len(data.Trips) != 2 {
		t.Errorf("dataset: got %d stations and %d trips", len(data.Stations), len(data.Trips))
	}

	data, err = Load(context.Background(), Sources{
		Stations: srv.URL + "/station_status.json",
		Trips:    srv.URL + "/missing.csv",
	})
	if !errors.Is(err, ErrStatus) {
		t.Errorf("missing source: want ErrStatus, got %v", err)
	}
	if data != nil {
		t.Errorf("failed load should not return a dataset")
	}
}

func TestLoadEmpty(t *testing.T) {
	data, err := Load(context.Background(), Sources{})
	if err != nil {
		t.Fatal(err)
	}
	if !data.Empty() {
		t.Errorf("no source: dataset should be empty")
	}
}
