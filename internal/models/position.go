package models

import (
	"errors"
	"fmt"
)

type Position string

const (
	PositionAesthetician           Position = "AESTHETICIAN"
	PositionHairStylist            Position = "HAIR STYLIST"
	PositionMassageTherapist       Position = "MASSAGE THERAPIST"
	PositionNailTechnician         Position = "NAIL TECHNICIAN"
	PositionSalonServicesAttendant Position = "SALON SERVICES ATTENDANT"
	PositionSpaAttendant           Position = "SPA ATTENDANT"
	PositionSpaManagement          Position = "SPA MANAGEMENT"
	PositionSpaReceptionist        Position = "SPA RECEPTIONIST"
)

var ErrInvalidPosition = errors.New("invalid position")

// Positions в порядке пунктов меню (1..8)
var Positions = []Position{
	PositionAesthetician,
	PositionHairStylist,
	PositionMassageTherapist,
	PositionNailTechnician,
	PositionSalonServicesAttendant,
	PositionSpaAttendant,
	PositionSpaManagement,
	PositionSpaReceptionist,
}

// PositionByChoice возвращает должность по номеру пункта меню
func PositionByChoice(choice int) (Position, error) {
	if choice < 1 || choice > len(Positions) {
		return "", fmt.Errorf("%w: choice %d", ErrInvalidPosition, choice)
	}
	return Positions[choice-1], nil
}

// ParsePosition проверяет строку из файла
func ParsePosition(s string) (Position, error) {
	p := Position(s)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	return p, nil
}

func (p Position) IsValid() bool {
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}
