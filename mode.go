package bikecharts

import (
	"fmt"
	"strings"
)

type DisplayMode int

const (
	ModeAll DisplayMode = iota
	ModeGender
	ModeUserType
)

func Modes() []DisplayMode {
	return []DisplayMode{ModeAll, ModeGender, ModeUserType}
}

func ParseMode(str string) (DisplayMode, error) {
	switch strings.ToLower(str) {
	case "", "all":
		return ModeAll, nil
	case "gender":
		return ModeGender, nil
	case "usertype", "user-type", "user":
		return ModeUserType, nil
	default:
		return 0, fmt.Errorf("%s: unknown display mode", str)
	}
}

func (m DisplayMode) String() string {
	switch m {
	case ModeGender:
		return "Gender"
	case ModeUserType:
		return "User type"
	default:
		return "All"
	}
}

var (
	allFill    = Tableau10.At(0)
	genderFill = map[Gender]string{
		GenderUnknown: "#bab0ab",
		GenderMale:    Tableau10.At(0),
		GenderFemale:  Tableau10.At(1),
	}
	userFill = map[UserType]string{
		Subscriber: Tableau10.At(4),
		Customer:   Tableau10.At(2),
	}
)

// Fill gives the color of a trip. It only looks at the trip itself.
func (m DisplayMode) Fill(t Trip) string {
	switch m {
	case ModeGender:
		return genderFill[t.Gender]
	case ModeUserType:
		return userFill[t.UserType]
	default:
		return allFill
	}
}

type LegendItem struct {
	Label string
	Fill  string
}

func (m DisplayMode) Legend() []LegendItem {
	switch m {
	case ModeGender:
		var list []LegendItem
		for _, g := range []Gender{GenderUnknown, GenderMale, GenderFemale} {
			list = append(list, LegendItem{Label: g.String(), Fill: genderFill[g]})
		}
		return list
	case ModeUserType:
		var list []LegendItem
		for _, u := range []UserType{Subscriber, Customer} {
			list = append(list, LegendItem{Label: u.String(), Fill: userFill[u]})
		}
		return list
	default:
		return []LegendItem{{Label: "All trips", Fill: allFill}}
	}
}

// Pointer is the state of the pointer for one frame. Pressed is only set on
// the frame where the button went down.
type Pointer struct {
	X       float64
	Y       float64
	Pressed bool
}

func (p Pointer) Pos() Pos {
	return NewPos(p.X, p.Y)
}

type Button struct {
	Area
	Mode DisplayMode
}

func (b Button) Hit(p Pointer) bool {
	return b.Contains(p.X, p.Y)
}

// LayoutButtons places one button per mode in a row starting at pos.
func LayoutButtons(pos Pos, width, height, gap float64) []Button {
	var list []Button
	for i, m := range Modes() {
		b := Button{
			Area: Area{
				X:      pos.X + float64(i)*(width+gap),
				Y:      pos.Y,
				Width:  width,
				Height: height,
			},
			Mode: m,
		}
		list = append(list, b)
	}
	return list
}

// SelectMode returns the mode of the button under a pressed pointer, or the
// current mode when the pointer is not pressed or not on a button.
func SelectMode(buttons []Button, p Pointer, current DisplayMode) DisplayMode {
	if !p.Pressed {
		return current
	}
	for _, b := range buttons {
		if b.Hit(p) {
			return b.Mode
		}
	}
	return current
}
