package repositories

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/models"
)

// TableRepository handles database operations for café tables.
type TableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db: db}
}

// All returns every table ordered by table number.
func (r *TableRepository) All() ([]models.Table, error) {
	var tables []models.Table
	err := r.db.Order("table_number").Find(&tables).Error
	return tables, err
}

// Available returns tables currently free to occupy.
func (r *TableRepository) Available() ([]models.Table, error) {
	var tables []models.Table
	err := r.db.Where("status = ?", models.TableAvailable).Order("table_number").Find(&tables).Error
	return tables, err
}

// FindByID looks up a table by primary key.
func (r *TableRepository) FindByID(id uint) (*models.Table, error) {
	var table models.Table
	if err := r.db.First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// FindByNumber looks up a table by its table number.
func (r *TableRepository) FindByNumber(number int) (*models.Table, error) {
	var table models.Table
	if err := r.db.Where("table_number = ?", number).First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// First returns the lowest-numbered table, or gorm.ErrRecordNotFound when
// no tables exist.
func (r *TableRepository) First() (*models.Table, error) {
	var table models.Table
	if err := r.db.Order("table_number").First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// Create persists a new table.
func (r *TableRepository) Create(table *models.Table) error {
	return r.db.Create(table).Error
}

// Update persists changes to a table.
func (r *TableRepository) Update(table *models.Table) error {
	return r.db.Save(table).Error
}

// CountOccupied returns how many tables are currently occupied.
func (r *TableRepository) CountOccupied() (int64, error) {
	var count int64
	err := r.db.Model(&models.Table{}).Where("status = ?", models.TableOccupied).Count(&count).Error
	return count, err
}
