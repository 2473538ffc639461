package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/models"
	"github.com/shashiranjanraj/verandah/app/repositories"
	"github.com/shashiranjanraj/verandah/pkg/metrics"
)

// TableService manages café table occupancy. Occupy is a conditional
// update guarded on the current status, so two concurrent claims of the
// same table cannot both succeed. Release is unconditional and idempotent.
type TableService struct {
	db     *gorm.DB
	tables *repositories.TableRepository
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{db: db, tables: repositories.NewTableRepository(db)}
}

// All returns every table.
func (s *TableService) All() ([]models.Table, error) {
	return s.tables.All()
}

// Available returns tables free to occupy.
func (s *TableService) Available() ([]models.Table, error) {
	return s.tables.Available()
}

// Occupy claims a table for a user. Only an available table can be
// occupied; anything else is a conflict.
func (s *TableService) Occupy(tableID, userID uint) (*models.Table, error) {
	res := s.db.Model(&models.Table{}).
		Where("id = ? AND status = ?", tableID, models.TableAvailable).
		Updates(map[string]interface{}{
			"status":      models.TableOccupied,
			"occupied_by": userID,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// Either the table does not exist or it is not available.
		if _, err := s.tables.FindByID(tableID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return nil, ErrTableOccupied
	}

	s.refreshOccupiedGauge()
	return s.tables.FindByID(tableID)
}

// Release frees a table. Releasing an already-available table is a no-op,
// so retries and admin recovery are safe.
func (s *TableService) Release(tableID uint) (*models.Table, error) {
	table, err := s.tables.FindByID(tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	err = s.db.Model(&models.Table{}).
		Where("id = ?", tableID).
		Updates(map[string]interface{}{
			"status":      models.TableAvailable,
			"occupied_by": nil,
		}).Error
	if err != nil {
		return nil, err
	}

	s.refreshOccupiedGauge()
	table.Status = models.TableAvailable
	table.OccupiedBy = nil
	return table, nil
}

// TableInput is the payload for Create and AdminUpdate.
type TableInput struct {
	TableNumber int    `json:"tableNumber" validate:"required,integer,gt=0"`
	Capacity    int    `json:"capacity" validate:"required,integer,gt=0"`
	Location    string `json:"location" validate:"nullable,max=255"`
	Notes       string `json:"notes" validate:"nullable,max=2000"`
}

// Create adds a table (admin).
func (s *TableService) Create(in TableInput) (*models.Table, error) {
	table := &models.Table{
		TableNumber: in.TableNumber,
		Capacity:    in.Capacity,
		Status:      models.TableAvailable,
		Location:    in.Location,
		Notes:       in.Notes,
	}
	if err := s.tables.Create(table); err != nil {
		return nil, err
	}
	return table, nil
}

// AdminUpdateInput lets an admin adjust a table, including forcing its
// status (e.g. maintenance).
type AdminUpdateInput struct {
	Capacity int    `json:"capacity" validate:"nullable,integer,gt=0"`
	Status   string `json:"status" validate:"nullable,in=available,occupied,reserved,maintenance"`
	Location string `json:"location" validate:"nullable,max=255"`
	Notes    string `json:"notes" validate:"nullable,max=2000"`
}

// AdminUpdate applies an admin edit to a table.
func (s *TableService) AdminUpdate(tableID uint, in AdminUpdateInput) (*models.Table, error) {
	table, err := s.tables.FindByID(tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Capacity > 0 {
		table.Capacity = in.Capacity
	}
	if in.Status != "" {
		table.Status = in.Status
		if in.Status != models.TableOccupied {
			table.OccupiedBy = nil
		}
	}
	if in.Location != "" {
		table.Location = in.Location
	}
	if in.Notes != "" {
		table.Notes = in.Notes
	}

	if err := s.tables.Update(table); err != nil {
		return nil, err
	}

	s.refreshOccupiedGauge()
	return table, nil
}

func (s *TableService) refreshOccupiedGauge() {
	if count, err := s.tables.CountOccupied(); err == nil {
		metrics.TablesOccupied.Set(float64(count))
	}
}
