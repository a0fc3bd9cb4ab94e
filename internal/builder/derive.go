package builder

import (
	"encoding/json"

	"github.com/Aquilabot/KreaPC-Builder/internal/catalog"
	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

// Speed is the RAM speed of a build in MT/s. It is not applicable when the
// chassis bundles the RAM, and unknown when no RAM is selected. A selected
// RAM reports its speed as listed, zero included.
type Speed struct {
	NotApplicable bool
	Selected      bool
	MTs           float64
}

// Known reports whether the speed is worth displaying.
func (s Speed) Known() bool {
	return s.Selected && s.MTs > 0
}

func (s Speed) String() string {
	switch {
	case s.NotApplicable:
		return "N/A"
	case s.Selected:
		return models.FormatNumber(s.MTs)
	}
	return ""
}

func (s Speed) MarshalJSON() ([]byte, error) {
	switch {
	case s.NotApplicable:
		return json.Marshal("N/A")
	case s.Selected:
		return json.Marshal(s.MTs)
	}
	return []byte("null"), nil
}

// slots resolves the chassis and the three dependent slots of b.
func slots(cat *catalog.Catalog, b Build) (*models.Chassis, CPUSlot, RAMSlot, DiskSlot) {
	chassis, _ := cat.FindChassis(b.ChassisID)

	var cpu CPUSlot
	if chassis != nil && chassis.CPUIncluded != "" {
		cpu = Included[models.CPU, *models.CPU](cat.FindCPUByName(chassis.CPUIncluded))
	} else {
		selected, _ := cat.FindCPU(b.CPUID)
		cpu = Selectable[models.CPU](selected)
	}

	var ram RAMSlot
	if chassis != nil && chassis.RAMIncluded != nil {
		ram = Included[float64, *models.RAM](*chassis.RAMIncluded)
	} else {
		selected, _ := cat.FindRAM(b.RAMID)
		ram = Selectable[float64](selected)
	}

	var disk DiskSlot
	if chassis != nil && chassis.DiskIncluded != nil {
		disk = Included[float64, []models.Disk](*chassis.DiskIncluded)
	} else {
		disks := []models.Disk{}
		for _, id := range b.DiskIDs {
			if d, ok := cat.FindDisk(id); ok {
				disks = append(disks, *d)
			}
		}
		disk = Selectable[float64](disks)
	}

	return chassis, cpu, ram, disk
}

func IsCPUIncluded(cat *catalog.Catalog, b Build) bool {
	_, cpu, _, _ := slots(cat, b)
	return cpu.IsIncluded()
}

func IsRAMIncluded(cat *catalog.Catalog, b Build) bool {
	_, _, ram, _ := slots(cat, b)
	return ram.IsIncluded()
}

func IsDiskIncluded(cat *catalog.Catalog, b Build) bool {
	_, _, _, disk := slots(cat, b)
	return disk.IsIncluded()
}

// IncludedCPU returns the CPU bundled with the chassis, or nil.
func IncludedCPU(cat *catalog.Catalog, b Build) *models.CPU {
	_, cpu, _, _ := slots(cat, b)
	if included, ok := cpu.Included(); ok {
		return &included
	}
	return nil
}

// EffectiveCPU returns the CPU the build runs on, bundled or selected.
func EffectiveCPU(cat *catalog.Catalog, b Build) *models.CPU {
	_, cpu, _, _ := slots(cat, b)
	return effectiveCPU(cpu)
}

func effectiveCPU(cpu CPUSlot) *models.CPU {
	if included, ok := cpu.Included(); ok {
		return &included
	}
	selected, _ := cpu.Choice()
	return selected
}

func SelectedRAM(cat *catalog.Catalog, b Build) *models.RAM {
	_, _, ram, _ := slots(cat, b)
	selected, _ := ram.Choice()
	return selected
}

// SelectedDisks resolves the chosen disks in order. Identifiers missing from
// the catalog are skipped.
func SelectedDisks(cat *catalog.Catalog, b Build) []models.Disk {
	_, _, _, disk := slots(cat, b)
	selected, _ := disk.Choice()
	return selected
}

func MaxDisksToAdd(cat *catalog.Catalog, b Build) int {
	chassis, _, _, disk := slots(cat, b)
	return maxDisksToAdd(chassis, disk)
}

func maxDisksToAdd(chassis *models.Chassis, disk DiskSlot) int {
	if chassis == nil || disk.IsIncluded() {
		return 0
	}
	return max(chassis.NumberOfDisks, 0)
}

// TotalPrice sums the chassis and every user-selected part. Included parts
// are part of the chassis price.
func TotalPrice(cat *catalog.Catalog, b Build) models.Price {
	return totalPrice(slots(cat, b))
}

func totalPrice(chassis *models.Chassis, cpu CPUSlot, ram RAMSlot, disk DiskSlot) models.Price {
	if chassis == nil {
		return 0
	}

	total := chassis.Price
	if selected, ok := cpu.Choice(); ok && selected != nil {
		total += selected.Price
	}
	if selected, ok := ram.Choice(); ok && selected != nil {
		total += selected.Price
	}
	if selected, ok := disk.Choice(); ok {
		for _, d := range selected {
			total += d.Price
		}
	}
	return total
}

func TotalDiskSizeGB(cat *catalog.Catalog, b Build) float64 {
	_, _, _, disk := slots(cat, b)
	return totalDiskSizeGB(disk)
}

func totalDiskSizeGB(disk DiskSlot) float64 {
	if included, ok := disk.Included(); ok {
		return included
	}
	selected, _ := disk.Choice()
	total := 0.0
	for _, d := range selected {
		total += d.SizeGB
	}
	return total
}

// RAMSizeGB returns the bundled or selected RAM size, nil when neither.
func RAMSizeGB(cat *catalog.Catalog, b Build) *float64 {
	_, _, ram, _ := slots(cat, b)
	return ramSizeGB(ram)
}

func ramSizeGB(ram RAMSlot) *float64 {
	if included, ok := ram.Included(); ok {
		return &included
	}
	if selected, _ := ram.Choice(); selected != nil {
		size := selected.SizeGB
		return &size
	}
	return nil
}

func RAMSpeed(cat *catalog.Catalog, b Build) Speed {
	_, _, ram, _ := slots(cat, b)
	return ramSpeed(ram)
}

func ramSpeed(ram RAMSlot) Speed {
	if ram.IsIncluded() {
		return Speed{NotApplicable: true}
	}
	if selected, _ := ram.Choice(); selected != nil {
		return Speed{Selected: true, MTs: selected.Speed}
	}
	return Speed{}
}
