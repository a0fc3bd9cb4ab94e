package builder

import (
	"fmt"
	"strings"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
	"github.com/Aquilabot/KreaPC-Builder/internal/utils"
)

const (
	HeatsinkLink = "https://amzn.to/3WbxGhS"

	summaryNoChassis  = "Please select a chassis to begin configuring your Mini PC."
	summaryDisclaimer = "Prices are estimates and may vary. Links go to external sites."
)

// Summary renders the build summary of v as plain text.
func Summary(v View) string {
	var sb strings.Builder

	sb.WriteString("Build Summary\n")
	if v.Chassis == nil {
		sb.WriteString(summaryNoChassis + "\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "Chassis: %s (%s)%s\n", v.Chassis.Name, v.Chassis.Price, vendorSuffix(v.Chassis.Link))

	switch cpu, ok := v.CPU.Choice(); {
	case !ok:
		fmt.Fprintf(&sb, "CPU: %s (Included)\n", v.EffectiveCPU.Name)
	case cpu != nil:
		fmt.Fprintf(&sb, "CPU: %s (%s)%s\n", cpu.Name, cpu.Price, vendorSuffix(cpu.Link))
	default:
		sb.WriteString("CPU: Not Selected\n")
	}

	switch ram, ok := v.RAM.Choice(); {
	case !ok:
		fmt.Fprintf(&sb, "RAM: %sGB (Included)\n", models.FormatNumber(*v.RAMSizeGB))
	case ram != nil:
		fmt.Fprintf(&sb, "RAM: %s (%s)%s\n", ram.Name, ram.Price, vendorSuffix(ram.Link))
	default:
		sb.WriteString("RAM: Not Selected\n")
	}

	switch disks, ok := v.Disk.Choice(); {
	case !ok:
		fmt.Fprintf(&sb, "Disks:\n  - %s (Included)\n", models.SizeTB(v.TotalDiskSizeGB))
	case len(disks) > 0:
		sb.WriteString("Disks:\n")
		for _, d := range disks {
			fmt.Fprintf(&sb, "  - %s (%s %s) (%s)%s\n", d.Name, models.SizeTB(d.SizeGB), d.Type, d.Price, vendorSuffix(d.Link))
		}
		fmt.Fprintf(&sb, "  - Consider adding low profile copper heatsink(s): %s\n", HeatsinkLink)
	default:
		sb.WriteString("Disks: No disks selected\n")
	}

	for _, notice := range v.Notices {
		fmt.Fprintf(&sb, "  ! %s\n", notice)
	}

	if len(v.Stats) > 0 {
		sb.WriteString("\nStats\n")
		for _, stat := range v.Stats {
			fmt.Fprintf(&sb, "  %s: %s\n", stat.Label, stat.Value)
		}
	}

	fmt.Fprintf(&sb, "\nTotal Estimated Price: %s\n", v.TotalPrice)
	sb.WriteString(summaryDisclaimer + "\n")

	return sb.String()
}

func vendorSuffix(link string) string {
	if vendor := utils.ExtractVendorName(link); vendor != "" {
		return " [" + vendor + "]"
	}
	return ""
}
