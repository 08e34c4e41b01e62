package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/qrresto/qr-resto/models"
	"github.com/qrresto/qr-resto/utils"
	"gorm.io/gorm"
)

// SessionService assigns the ephemeral session token that ties a dining
// party's orders to one table for one visit.
type SessionService struct {
	DB *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{DB: db}
}

// EnsureSession returns the table's session token, minting one if the table
// is unoccupied. The token is claimed with a conditional update so two
// first orders racing on the same table converge on a single token: only
// the write that finds current_session still NULL sticks, and both callers
// re-read the winning value.
func (s *SessionService) EnsureSession(tableID uint) (string, error) {
	var table models.Table
	if err := s.DB.First(&table, tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", utils.ErrNotFound
		}
		return "", err
	}

	if table.CurrentSession != nil && *table.CurrentSession != "" {
		return *table.CurrentSession, nil
	}

	token := uuid.NewString()
	res := s.DB.Model(&models.Table{}).
		Where("id = ? AND current_session IS NULL", tableID).
		Updates(map[string]interface{}{
			"current_session": token,
			"is_occupied":     true,
			"status":          models.TableOccupied,
		})
	if res.Error != nil {
		return "", res.Error
	}

	if res.RowsAffected == 1 {
		return token, nil
	}

	// Lost the race; someone else claimed the session first.
	if err := s.DB.First(&table, tableID).Error; err != nil {
		return "", err
	}
	if table.CurrentSession == nil {
		return "", errors.New("table session missing after claim")
	}
	return *table.CurrentSession, nil
}

// CloseSession frees the table at the end of a visit: the session token is
// cleared and the table goes back to available.
func (s *SessionService) CloseSession(tableID uint) (*models.Table, error) {
	var table models.Table
	if err := s.DB.First(&table, tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}

	table.CurrentSession = nil
	table.IsOccupied = false
	table.Status = models.TableAvailable
	if err := s.DB.Save(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}
