package models

// Table statuses.
const (
	TableAvailable   = "available"
	TableOccupied    = "occupied"
	TableReserved    = "reserved"
	TableMaintenance = "maintenance"
)

// Table is a physical café table. Occupancy transitions go through
// conditional updates in the table service, never read-then-write.
type Table struct {
	Model
	TableNumber int    `gorm:"uniqueIndex;not null" json:"tableNumber"`
	Capacity    int    `gorm:"not null;default:2" json:"capacity"`
	Status      string `gorm:"size:50;default:available" json:"status"`
	OccupiedBy  *uint  `gorm:"index" json:"occupiedBy"`
	Location    string `gorm:"size:255" json:"location"`
	Notes       string `gorm:"type:text" json:"notes"`
}

// "tables" collides with reserved words on some drivers.
func (Table) TableName() string { return "cafe_tables" }
