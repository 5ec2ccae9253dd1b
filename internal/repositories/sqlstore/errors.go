// Package sqlstore holds the gorm repositories for the relational schema.
// Queries stay dialect-neutral so the same code runs on postgres and mysql.
package sqlstore

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yoockh/facultyportal/internal/utils"
)

// translate maps gorm sentinels onto the repository contract.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return utils.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return utils.ErrDuplicate
	default:
		return err
	}
}

// replaceAll swaps every row of a one-to-many section for the given rows
// inside one transaction. rows must be a pointer to a slice of model.
func replaceAll(tx *gorm.DB, model any, userID string, rows any, n int) error {
	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		return tx.Create(rows).Error
	})
}

// affected turns a zero-row update/delete into ErrNotFound.
func affected(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
