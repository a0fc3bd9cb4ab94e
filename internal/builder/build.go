package builder

import (
	"github.com/Aquilabot/KreaPC-Builder/internal/catalog"
)

// Build is the selection state of a build in progress. Included components
// are never stored here; they are implied by the chassis.
type Build struct {
	ChassisID string   `json:"chassis_id"`
	CPUID     string   `json:"cpu_id"`
	RAMID     string   `json:"ram_id"`
	DiskIDs   []string `json:"disk_ids"`
}

func (b Build) clone() Build {
	b.DiskIDs = append([]string{}, b.DiskIDs...)
	return b
}

type EventKind string

const (
	SelectChassis EventKind = "select_chassis"
	SelectCPU     EventKind = "select_cpu"
	SelectRAM     EventKind = "select_ram"
	AddDisk       EventKind = "add_disk"
	RemoveDisk    EventKind = "remove_disk"
)

// Event is a single user interaction with the configurator. ID carries the
// chosen part for the select and add kinds, Index the entry for RemoveDisk.
type Event struct {
	Kind  EventKind `json:"kind"`
	ID    string    `json:"id,omitempty"`
	Index int       `json:"index,omitempty"`
}

func (k EventKind) Valid() bool {
	switch k {
	case SelectChassis, SelectCPU, SelectRAM, AddDisk, RemoveDisk:
		return true
	}
	return false
}

// Transition resets the parts of b that the selected chassis makes
// unavailable: every sub-selection when there is no chassis, each slot the
// chassis includes, and the disks that no longer fit. Applying it twice
// yields the same Build.
func Transition(cat *catalog.Catalog, b Build) Build {
	next := b.clone()

	chassis, ok := cat.FindChassis(next.ChassisID)
	if !ok {
		return Build{DiskIDs: []string{}}
	}

	if chassis.CPUIncluded != "" {
		next.CPUID = ""
	}
	if chassis.RAMIncluded != nil {
		next.RAMID = ""
	}
	if chassis.DiskIncluded != nil {
		next.DiskIDs = []string{}
	} else if limit := max(chassis.NumberOfDisks, 0); len(next.DiskIDs) > limit {
		next.DiskIDs = next.DiskIDs[:limit]
	}

	return next
}

// Apply returns the Build that results from ev. Interactions the current
// chassis does not allow are ignored and leave the Build as it was.
func Apply(cat *catalog.Catalog, b Build, ev Event) Build {
	next := Transition(cat, b)

	switch ev.Kind {
	case SelectChassis:
		if ev.ID != "" {
			if _, ok := cat.FindChassis(ev.ID); !ok {
				return next
			}
		}
		next.ChassisID = ev.ID
		return Transition(cat, next)

	case SelectCPU:
		if next.ChassisID == "" || IsCPUIncluded(cat, next) {
			return next
		}
		if _, ok := cat.FindCPU(ev.ID); ok || ev.ID == "" {
			next.CPUID = ev.ID
		}

	case SelectRAM:
		if next.ChassisID == "" || IsRAMIncluded(cat, next) {
			return next
		}
		if _, ok := cat.FindRAM(ev.ID); ok || ev.ID == "" {
			next.RAMID = ev.ID
		}

	case AddDisk:
		if ev.ID == "" || IsDiskIncluded(cat, next) || len(next.DiskIDs) >= MaxDisksToAdd(cat, next) {
			return next
		}
		if _, ok := cat.FindDisk(ev.ID); ok {
			next.DiskIDs = append(next.DiskIDs, ev.ID)
		}

	case RemoveDisk:
		if IsDiskIncluded(cat, next) || ev.Index < 0 || ev.Index >= len(next.DiskIDs) {
			return next
		}
		next.DiskIDs = append(next.DiskIDs[:ev.Index], next.DiskIDs[ev.Index+1:]...)
	}

	return next
}
