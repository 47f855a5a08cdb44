package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/midbel/bikecharts"
)

type stationStatus struct {
	Data struct {
		Stations []struct {
			ID            string `json:"station_id"`
			BikesAvail    int    `json:"num_bikes_available"`
			DocksAvail    int    `json:"num_docks_available"`
			BikesDisabled int    `json:"num_bikes_disabled"`
			DocksDisabled int    `json:"num_docks_disabled"`
		} `json:"stations"`
	} `json:"data"`
}

func LoadStations(ctx context.Context, loc string) ([]bikecharts.Station, error) {
	r, err := Open(ctx, loc)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	list, err := DecodeStations(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", loc, err)
	}
	return list, nil
}

// DecodeStations reads a GBFS station_status document. Stations are returned
// in the order of the document.
func DecodeStations(r io.Reader) ([]bikecharts.Station, error) {
	var status stationStatus
	if err := json.NewDecoder(r).Decode(&status); err != nil {
		return nil, err
	}
	list := make([]bikecharts.Station, 0, len(status.Data.Stations))
	for _, s := range status.Data.Stations {
		st := bikecharts.Station{
			ID:             s.ID,
			BikesAvailable: s.BikesAvail,
			DocksAvailable: s.DocksAvail,
			BikesDisabled:  s.BikesDisabled,
			DocksDisabled:  s.DocksDisabled,
		}
		for _, k := range bikecharts.Kinds() {
			if st.Quantity(k) < 0 {
				return nil, fmt.Errorf("station %s: %w for %s", s.ID, ErrCount, k)
			}
		}
		list = append(list, st)
	}
	return list, nil
}
