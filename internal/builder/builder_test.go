package builder

import (
	"strings"
	"testing"

	"github.com/Aquilabot/KreaPC-Builder/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `{
  "chassis": [
    {"id": "c1", "name": "N100 Mini", "price": 200, "link": "https://amzn.to/c1", "cpu_included": "Intel N100", "ram_included": 16, "disk_included": null, "number_of_disks": 2},
    {"id": "bay4", "name": "Four Bay", "price": 300, "pcpartpicker": "https://pcpartpicker.com/product/Qy7WGX/bay4", "number_of_disks": 4},
    {"id": "bay2", "name": "Two Bay", "price": 150, "number_of_disks": 2},
    {"id": "sealed", "name": "Sealed Box", "price": 189, "cpu_included": "Intel Core i9-13900H", "ram_included": 32, "disk_included": 500, "number_of_disks": 0},
    {"id": "nobay", "name": "No Bays", "price": 120, "number_of_disks": 0}
  ],
  "cpu": [
    {"id": "i9", "name": "Intel Core i9-13900H", "price": 0, "pcpartpicker": "https://pcpartpicker.com/product/Tz4Cmx/i9", "cores": 14, "threads": 20, "passmark": 29786},
    {"id": "r7", "name": "AMD Ryzen 7 8700G", "price": 279, "link": "https://www.amazon.com/dp/r7", "pcpartpicker": "https://pcpartpicker.com/product/Vz2Kmr/r7", "cores": 8, "threads": 16, "passmark": 32364}
  ],
  "ram": [
    {"id": "r32", "name": "32GB DDR5", "price": 89, "link": "https://pcpartpicker.com/product/jLF48d/r32", "pcpartpicker": "https://pcpartpicker.com/product/jLF48d/r32", "size_gb": 32, "speed": 5600},
    {"id": "r0", "name": "Unbinned 8GB", "price": 19, "size_gb": 8, "speed": 0}
  ],
  "disk": [
    {"id": "d1", "name": "1TB NVMe", "price": 50, "link": "https://pcpartpicker.com/product/Mr2rxr/d1", "pcpartpicker": "https://pcpartpicker.com/product/Mr2rxr/d1", "size_gb": 1000, "type": "NVMe"},
    {"id": "d2", "name": "2TB NVMe", "price": 120, "size_gb": 2000, "type": "NVMe"},
    {"id": "d4", "name": "4TB SATA", "price": 200, "size_gb": 4000, "type": "SATA SSD"}
  ]
}`

func loadTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(strings.NewReader(testCatalog))
	require.NoError(t, err)
	return cat
}

func TestTransition(t *testing.T) {
	cat := loadTestCatalog(t)

	tests := []struct {
		name  string
		build Build
		want  Build
	}{
		{
			name:  "no chassis clears everything",
			build: Build{CPUID: "r7", RAMID: "r32", DiskIDs: []string{"d1"}},
			want:  Build{DiskIDs: []string{}},
		},
		{
			name:  "unknown chassis counts as none",
			build: Build{ChassisID: "ghost", CPUID: "r7", DiskIDs: []string{"d1"}},
			want:  Build{DiskIDs: []string{}},
		},
		{
			name:  "included cpu and ram are cleared",
			build: Build{ChassisID: "c1", CPUID: "r7", RAMID: "r32", DiskIDs: []string{"d1"}},
			want:  Build{ChassisID: "c1", DiskIDs: []string{"d1"}},
		},
		{
			name:  "included disk clears disk list",
			build: Build{ChassisID: "sealed", DiskIDs: []string{"d1", "d2"}},
			want:  Build{ChassisID: "sealed", DiskIDs: []string{}},
		},
		{
			name:  "excess disks are truncated in order",
			build: Build{ChassisID: "bay2", CPUID: "r7", DiskIDs: []string{"d1", "d2", "d4"}},
			want:  Build{ChassisID: "bay2", CPUID: "r7", DiskIDs: []string{"d1", "d2"}},
		},
		{
			name:  "selectable slots are kept",
			build: Build{ChassisID: "bay4", CPUID: "r7", RAMID: "r32", DiskIDs: []string{"d1", "d1"}},
			want:  Build{ChassisID: "bay4", CPUID: "r7", RAMID: "r32", DiskIDs: []string{"d1", "d1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transition(cat, tt.build)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Transition(cat, got), "transition must be idempotent")
		})
	}
}

func TestTransitionDoesNotAliasInput(t *testing.T) {
	cat := loadTestCatalog(t)
	in := Build{ChassisID: "bay4", DiskIDs: []string{"d1", "d2"}}

	out := Transition(cat, in)
	out.DiskIDs[0] = "d4"

	assert.Equal(t, []string{"d1", "d2"}, in.DiskIDs)
}

func TestChassisSwitchTruncatesDisks(t *testing.T) {
	cat := loadTestCatalog(t)
	b := Build{DiskIDs: []string{}}

	b = Apply(cat, b, Event{Kind: SelectChassis, ID: "bay4"})
	for _, id := range []string{"d1", "d2", "d4"} {
		b = Apply(cat, b, Event{Kind: AddDisk, ID: id})
	}
	require.Equal(t, []string{"d1", "d2", "d4"}, b.DiskIDs)

	b = Apply(cat, b, Event{Kind: SelectChassis, ID: "bay2"})
	assert.Equal(t, []string{"d1", "d2"}, b.DiskIDs)
}

func TestApplySelect(t *testing.T) {
	cat := loadTestCatalog(t)

	t.Run("cpu and ram need a chassis", func(t *testing.T) {
		b := Apply(cat, Build{}, Event{Kind: SelectCPU, ID: "r7"})
		b = Apply(cat, b, Event{Kind: SelectRAM, ID: "r32"})
		assert.Empty(t, b.CPUID)
		assert.Empty(t, b.RAMID)
	})

	t.Run("included slots ignore selection", func(t *testing.T) {
		b := Apply(cat, Build{}, Event{Kind: SelectChassis, ID: "c1"})
		b = Apply(cat, b, Event{Kind: SelectCPU, ID: "r7"})
		b = Apply(cat, b, Event{Kind: SelectRAM, ID: "r32"})
		assert.Empty(t, b.CPUID)
		assert.Empty(t, b.RAMID)
	})

	t.Run("selectable slots take selection", func(t *testing.T) {
		b := Apply(cat, Build{}, Event{Kind: SelectChassis, ID: "bay4"})
		b = Apply(cat, b, Event{Kind: SelectCPU, ID: "r7"})
		b = Apply(cat, b, Event{Kind: SelectRAM, ID: "r32"})
		assert.Equal(t, "r7", b.CPUID)
		assert.Equal(t, "r32", b.RAMID)

		b = Apply(cat, b, Event{Kind: SelectCPU, ID: ""})
		assert.Empty(t, b.CPUID)
	})

	t.Run("unknown ids are ignored", func(t *testing.T) {
		b := Apply(cat, Build{}, Event{Kind: SelectChassis, ID: "bay4"})
		b = Apply(cat, b, Event{Kind: SelectCPU, ID: "r7"})
		b = Apply(cat, b, Event{Kind: SelectCPU, ID: "missing"})
		b = Apply(cat, b, Event{Kind: SelectChassis, ID: "missing"})
		assert.Equal(t, "bay4", b.ChassisID)
		assert.Equal(t, "r7", b.CPUID)
	})

	t.Run("clearing chassis resets sub-selections", func(t *testing.T) {
		b := Apply(cat, Build{}, Event{Kind: SelectChassis, ID: "bay4"})
		b = Apply(cat, b, Event{Kind: SelectCPU, ID: "r7"})
		b = Apply(cat, b, Event{Kind: AddDisk, ID: "d1"})
		b = Apply(cat, b, Event{Kind: SelectChassis, ID: ""})
		assert.Equal(t, Build{DiskIDs: []string{}}, b)
	})

	t.Run("unknown event kind leaves build alone", func(t *testing.T) {
		b := Apply(cat, Build{ChassisID: "bay4", CPUID: "r7"}, Event{Kind: "explode"})
		assert.Equal(t, Build{ChassisID: "bay4", CPUID: "r7", DiskIDs: []string{}}, b)
	})
}

func TestApplyAddDisk(t *testing.T) {
	cat := loadTestCatalog(t)
	start := Apply(cat, Build{}, Event{Kind: SelectChassis, ID: "bay2"})

	t.Run("duplicates allowed up to the limit", func(t *testing.T) {
		b := Apply(cat, start, Event{Kind: AddDisk, ID: "d1"})
		b = Apply(cat, b, Event{Kind: AddDisk, ID: "d1"})
		assert.Equal(t, []string{"d1", "d1"}, b.DiskIDs)

		b = Apply(cat, b, Event{Kind: AddDisk, ID: "d2"})
		assert.Equal(t, []string{"d1", "d1"}, b.DiskIDs)
	})

	t.Run("empty and unknown ids ignored", func(t *testing.T) {
		b := Apply(cat, start, Event{Kind: AddDisk, ID: ""})
		b = Apply(cat, b, Event{Kind: AddDisk, ID: "d9"})
		assert.Empty(t, b.DiskIDs)
	})

	t.Run("included disk ignores add", func(t *testing.T) {
		b := Apply(cat, Build{}, Event{Kind: SelectChassis, ID: "sealed"})
		b = Apply(cat, b, Event{Kind: AddDisk, ID: "d1"})
		assert.Empty(t, b.DiskIDs)
	})

	t.Run("no bays ignores add", func(t *testing.T) {
		b := Apply(cat, Build{}, Event{Kind: SelectChassis, ID: "nobay"})
		b = Apply(cat, b, Event{Kind: AddDisk, ID: "d1"})
		assert.Empty(t, b.DiskIDs)
	})
}

func TestApplyRemoveDisk(t *testing.T) {
	cat := loadTestCatalog(t)
	b := Build{ChassisID: "bay4", DiskIDs: []string{"d1", "d2", "d4"}}

	tests := []struct {
		name  string
		index int
		want  []string
	}{
		{name: "first", index: 0, want: []string{"d2", "d4"}},
		{name: "middle", index: 1, want: []string{"d1", "d4"}},
		{name: "last", index: 2, want: []string{"d1", "d2"}},
		{name: "negative index", index: -1, want: []string{"d1", "d2", "d4"}},
		{name: "past the end", index: 3, want: []string{"d1", "d2", "d4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(cat, b, Event{Kind: RemoveDisk, Index: tt.index})
			assert.Equal(t, tt.want, got.DiskIDs)
			assert.Equal(t, []string{"d1", "d2", "d4"}, b.DiskIDs)
		})
	}
}

func TestDiskLimitHoldsAfterEveryEvent(t *testing.T) {
	cat := loadTestCatalog(t)
	events := []Event{
		{Kind: SelectChassis, ID: "bay4"},
		{Kind: AddDisk, ID: "d1"},
		{Kind: AddDisk, ID: "d2"},
		{Kind: AddDisk, ID: "d4"},
		{Kind: AddDisk, ID: "d1"},
		{Kind: AddDisk, ID: "d1"},
		{Kind: SelectChassis, ID: "bay2"},
		{Kind: AddDisk, ID: "d4"},
		{Kind: SelectChassis, ID: "c1"},
		{Kind: RemoveDisk, Index: 0},
		{Kind: AddDisk, ID: "d2"},
		{Kind: SelectChassis, ID: "sealed"},
		{Kind: AddDisk, ID: "d2"},
		{Kind: SelectChassis, ID: "nobay"},
	}

	b := Build{}
	for _, ev := range events {
		b = Apply(cat, b, ev)
		assert.LessOrEqual(t, len(b.DiskIDs), MaxDisksToAdd(cat, b), "after %s %q", ev.Kind, ev.ID)
	}
}

func TestEventKindValid(t *testing.T) {
	assert.True(t, AddDisk.Valid())
	assert.True(t, SelectChassis.Valid())
	assert.False(t, EventKind("").Valid())
	assert.False(t, EventKind("select_gpu").Valid())
}
