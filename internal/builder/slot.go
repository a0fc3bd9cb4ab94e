package builder

import (
	"encoding/json"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

// Slot is one component category of a build. It is either Included, holding
// what the chassis bundles, or Selectable, holding the user's choice (which
// may be empty). A slot is never both.
type Slot[I, S any] struct {
	included bool
	value    I
	choice   S
}

type (
	CPUSlot  = Slot[models.CPU, *models.CPU]
	RAMSlot  = Slot[float64, *models.RAM]
	DiskSlot = Slot[float64, []models.Disk]
)

func Included[I, S any](value I) Slot[I, S] {
	return Slot[I, S]{included: true, value: value}
}

func Selectable[I, S any](choice S) Slot[I, S] {
	return Slot[I, S]{choice: choice}
}

func (s Slot[I, S]) IsIncluded() bool {
	return s.included
}

// Included returns the bundled value, or false for a selectable slot.
func (s Slot[I, S]) Included() (I, bool) {
	if !s.included {
		var zero I
		return zero, false
	}
	return s.value, true
}

// Choice returns the user's choice, or false for an included slot.
func (s Slot[I, S]) Choice() (S, bool) {
	if s.included {
		var zero S
		return zero, false
	}
	return s.choice, true
}

func (s Slot[I, S]) MarshalJSON() ([]byte, error) {
	if s.included {
		return json.Marshal(struct {
			Included bool `json:"included"`
			Value    I    `json:"value"`
		}{true, s.value})
	}
	return json.Marshal(struct {
		Included bool `json:"included"`
		Selected S    `json:"selected"`
	}{false, s.choice})
}
