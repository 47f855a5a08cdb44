package bikecharts

import (
	"fmt"
	"strings"
)

type UserType int

const (
	Subscriber UserType = iota
	Customer
)

func ParseUserType(str string) (UserType, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "subscriber":
		return Subscriber, nil
	case "customer":
		return Customer, nil
	default:
		return 0, fmt.Errorf("%s: unknown user type", str)
	}
}

func (u UserType) String() string {
	if u == Customer {
		return "Customer"
	}
	return "Subscriber"
}

type Gender int

const (
	GenderUnknown Gender = iota
	GenderMale
	GenderFemale
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return "Unknown"
	}
}

// Trip is a single ride. Duration is given in seconds.
type Trip struct {
	Duration  float64
	UserType  UserType
	BirthYear float64
	Gender    Gender
}
