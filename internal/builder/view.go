package builder

import (
	"fmt"

	"github.com/Aquilabot/KreaPC-Builder/internal/catalog"
	"github.com/Aquilabot/KreaPC-Builder/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	NoticeMaxDisksReached = "Max disks reached"
	NoticeNoDiskBays      = "Cannot add disks to this chassis"
)

var numberPrinter = message.NewPrinter(language.English)

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// View is everything the configurator renders for a build.
type View struct {
	Build           Build           `json:"build"`
	Chassis         *models.Chassis `json:"chassis"`
	CPU             CPUSlot         `json:"cpu"`
	RAM             RAMSlot         `json:"ram"`
	Disk            DiskSlot        `json:"disk"`
	EffectiveCPU    *models.CPU     `json:"effective_cpu"`
	MaxDisksToAdd   int             `json:"max_disks_to_add"`
	TotalPrice      models.Price    `json:"total_price"`
	TotalDiskSizeGB float64         `json:"total_disk_size_gb"`
	RAMSizeGB       *float64        `json:"ram_size_gb"`
	RAMSpeed        Speed           `json:"ram_speed"`
	Stats           []Stat          `json:"stats"`
	Notices         []string        `json:"notices"`
}

// Derive computes the view of b. The build is normalised against its chassis
// first, so the view is consistent even for a hand-written Build.
func Derive(cat *catalog.Catalog, b Build) View {
	b = Transition(cat, b)
	chassis, cpu, ram, disk := slots(cat, b)

	v := View{
		Build:           b,
		Chassis:         chassis,
		CPU:             cpu,
		RAM:             ram,
		Disk:            disk,
		EffectiveCPU:    effectiveCPU(cpu),
		MaxDisksToAdd:   maxDisksToAdd(chassis, disk),
		TotalPrice:      totalPrice(chassis, cpu, ram, disk),
		TotalDiskSizeGB: totalDiskSizeGB(disk),
		RAMSizeGB:       ramSizeGB(ram),
		RAMSpeed:        ramSpeed(ram),
	}
	v.Stats = v.stats()
	v.Notices = v.notices()

	return v
}

func (v View) SelectedDisks() []models.Disk {
	disks, _ := v.Disk.Choice()
	return disks
}

func (v View) stats() []Stat {
	stats := []Stat{}

	if cpu := v.EffectiveCPU; cpu != nil {
		if cpu.Cores > 0 && cpu.Threads > 0 {
			stats = append(stats, Stat{"CPU Cores/Threads", fmt.Sprintf("%d / %d", cpu.Cores, cpu.Threads)})
		}
		if cpu.Passmark > 0 {
			stats = append(stats, Stat{"CPU Passmark Score", numberPrinter.Sprintf("%d", cpu.Passmark)})
		}
	}
	if v.RAMSizeGB != nil && *v.RAMSizeGB > 0 {
		stats = append(stats, Stat{"RAM Size", models.FormatNumber(*v.RAMSizeGB) + " GB"})
	}
	if v.RAMSpeed.Known() {
		stats = append(stats, Stat{"RAM Speed", v.RAMSpeed.String() + " MT/s"})
	}
	if v.TotalDiskSizeGB > 0 {
		stats = append(stats, Stat{"Total Disk Size", models.SizeTB(v.TotalDiskSizeGB)})
	}

	return stats
}

func (v View) notices() []string {
	notices := []string{}
	if v.Chassis == nil || v.Disk.IsIncluded() {
		return notices
	}

	switch {
	case v.MaxDisksToAdd == 0:
		notices = append(notices, NoticeNoDiskBays)
	case len(v.SelectedDisks()) >= v.MaxDisksToAdd:
		notices = append(notices, NoticeMaxDisksReached)
	}
	return notices
}

type linkList []string

func (l *linkList) add(link string) {
	if link != "" {
		*l = append(*l, link)
	}
}

// Links returns the external links of every resolved part in the build.
func (v View) Links() []string {
	var links linkList
	if v.Chassis != nil {
		links.add(v.Chassis.Link)
	}
	if v.EffectiveCPU != nil {
		links.add(v.EffectiveCPU.Link)
	}
	if ram, _ := v.RAM.Choice(); ram != nil {
		links.add(ram.Link)
	}
	for _, d := range v.SelectedDisks() {
		links.add(d.Link)
	}
	return links
}

// PCPPLinks returns the PCPartPicker product pages of the parts to buy: the
// chassis and the selected parts. Bundled parts come with the chassis.
func (v View) PCPPLinks() []string {
	var links linkList
	if v.Chassis != nil {
		links.add(v.Chassis.PCPartPicker)
	}
	if cpu, _ := v.CPU.Choice(); cpu != nil {
		links.add(cpu.PCPartPicker)
	}
	if ram, _ := v.RAM.Choice(); ram != nil {
		links.add(ram.PCPartPicker)
	}
	for _, d := range v.SelectedDisks() {
		links.add(d.PCPartPicker)
	}
	return links
}
