package settlement

import (
	"gorm.io/gorm"

	"github.com/nandu-kp/paygate/models"
)

// Store applies a payment's terminal transition. Implementations must only
// move payments out of the processing state; the returned bool reports
// whether the transition was applied.
type Store interface {
	MarkSucceeded(paymentID string) (bool, error)
	MarkFailed(paymentID, errorCode, errorDescription string) (bool, error)
}

type gormStore struct {
	db *gorm.DB
}

// NewStore returns a Store backed by the given database handle.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// The status guard in the WHERE clause is what enforces the at-most-once
// terminal transition: an UPDATE that matches no processing row is a no-op.
func (s *gormStore) MarkSucceeded(paymentID string) (bool, error) {
	tx := s.db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", paymentID, models.PaymentStatusProcessing).
		Updates(map[string]interface{}{
			"status":            models.PaymentStatusSuccess,
			"error_code":        "",
			"error_description": "",
		})
	return tx.RowsAffected > 0, tx.Error
}

func (s *gormStore) MarkFailed(paymentID, errorCode, errorDescription string) (bool, error) {
	tx := s.db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", paymentID, models.PaymentStatusProcessing).
		Updates(map[string]interface{}{
			"status":            models.PaymentStatusFailed,
			"error_code":        errorCode,
			"error_description": errorDescription,
		})
	return tx.RowsAffected > 0, tx.Error
}
