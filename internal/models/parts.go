package models

// Chassis is the base unit of a build. A chassis may bundle a CPU, RAM and
// disk storage, in which case those slots are not selectable.
type Chassis struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         Price    `json:"price"`
	Link          string   `json:"link,omitempty"`
	PCPartPicker  string   `json:"pcpartpicker,omitempty"`
	CPUIncluded   string   `json:"cpu_included,omitempty"`
	RAMIncluded   *float64 `json:"ram_included"`
	DiskIncluded  *float64 `json:"disk_included"`
	NumberOfDisks int      `json:"number_of_disks"`
}

type CPU struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Price        Price  `json:"price,omitempty"`
	Link         string `json:"link,omitempty"`
	PCPartPicker string `json:"pcpartpicker,omitempty"`
	Cores        int    `json:"cores,omitempty"`
	Threads      int    `json:"threads,omitempty"`
	Passmark     int    `json:"passmark,omitempty"`
}

// RAM sizes are in GB and speeds in MT/s.
type RAM struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        Price   `json:"price"`
	Link         string  `json:"link,omitempty"`
	PCPartPicker string  `json:"pcpartpicker,omitempty"`
	SizeGB       float64 `json:"size_gb"`
	Speed        float64 `json:"speed"`
}

type Disk struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        Price   `json:"price"`
	Link         string  `json:"link,omitempty"`
	PCPartPicker string  `json:"pcpartpicker,omitempty"`
	SizeGB       float64 `json:"size_gb"`
	Type         string  `json:"type"`
}

// Catalog is the static component data set, one ordered collection per category.
type Catalog struct {
	Chassis []Chassis `json:"chassis"`
	CPU     []CPU     `json:"cpu"`
	RAM     []RAM     `json:"ram"`
	Disk    []Disk    `json:"disk"`
}
