package model

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidEnum is returned when a value is not a member of its closed set.
var ErrInvalidEnum = errors.New("invalid enum value")

func parseEnum[T ~string](s string, set []T) (T, error) {
	v := T(s)
	if !slices.Contains(set, v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEnum, s)
	}
	return v, nil
}

// RoastLevel is the roast degree of a bean.
type RoastLevel string

// Roast levels.
const (
	RoastLight    RoastLevel = "LIGHT"
	RoastCinnamon RoastLevel = "CINNAMON"
	RoastMedium   RoastLevel = "MEDIUM"
	RoastHigh     RoastLevel = "HIGH"
	RoastCity     RoastLevel = "CITY"
	RoastFullCity RoastLevel = "FULL_CITY"
	RoastFrench   RoastLevel = "FRENCH"
	RoastItalian  RoastLevel = "ITALIAN"
)

// RoastLevels lists every accepted roast level, lightest first.
var RoastLevels = []RoastLevel{
	RoastLight, RoastCinnamon, RoastMedium, RoastHigh,
	RoastCity, RoastFullCity, RoastFrench, RoastItalian,
}

func (r RoastLevel) Valid() bool { return slices.Contains(RoastLevels, r) }

// ParseRoastLevel converts s into a RoastLevel.
func ParseRoastLevel(s string) (RoastLevel, error) { return parseEnum(s, RoastLevels) }

// Process is the post-harvest processing method of a bean.
type Process string

// Processes.
const (
	ProcessWashed        Process = "WASHED"
	ProcessNatural       Process = "NATURAL"
	ProcessHoney         Process = "HONEY"
	ProcessPulpedNatural Process = "PULPED_NATURAL"
	ProcessSemiWashed    Process = "SEMI_WASHED"
	ProcessAnaerobic     Process = "ANAEROBIC"
	ProcessOther         Process = "OTHER"
)

// Processes lists every accepted processing method.
var Processes = []Process{
	ProcessWashed, ProcessNatural, ProcessHoney, ProcessPulpedNatural,
	ProcessSemiWashed, ProcessAnaerobic, ProcessOther,
}

func (p Process) Valid() bool { return slices.Contains(Processes, p) }

func ParseProcess(s string) (Process, error) { return parseEnum(s, Processes) }

// DripperSize is the nominal cup size of a dripper (01 = 1-2 cups, and so on).
type DripperSize string

// Dripper sizes.
const (
	DripperSize01    DripperSize = "SIZE_01"
	DripperSize02    DripperSize = "SIZE_02"
	DripperSize03    DripperSize = "SIZE_03"
	DripperSize04    DripperSize = "SIZE_04"
	DripperSizeOther DripperSize = "OTHER"
)

// DripperSizes lists every accepted dripper size.
var DripperSizes = []DripperSize{
	DripperSize01, DripperSize02, DripperSize03, DripperSize04, DripperSizeOther,
}

func (s DripperSize) Valid() bool { return slices.Contains(DripperSizes, s) }

func ParseDripperSize(s string) (DripperSize, error) { return parseEnum(s, DripperSizes) }

// FilterType is the material of a brewing filter.
type FilterType string

// Filter types.
const (
	FilterPaper FilterType = "PAPER"
	FilterMetal FilterType = "METAL"
	FilterCloth FilterType = "CLOTH"
)

// FilterTypes lists every accepted filter type.
var FilterTypes = []FilterType{FilterPaper, FilterMetal, FilterCloth}

func (f FilterType) Valid() bool { return slices.Contains(FilterTypes, f) }

func ParseFilterType(s string) (FilterType, error) { return parseEnum(s, FilterTypes) }
