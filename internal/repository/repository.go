// Package repository provides tenant-scoped access to the entity tables.
// Every function takes the tenant ID as an explicit argument and folds a
// tenant_id filter into the query; there is no way to read or write a row
// without naming the tenant it belongs to. A lookup that matches the id
// but not the tenant behaves exactly like a missing row.
package repository

import (
	"errors"
	"time"

	"school-service/pkg/metrics"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches both the id and the tenant.
var ErrNotFound = errors.New("record not found")

// List returns all rows of type T owned by the tenant, oldest first.
func List[T any](db *gorm.DB, tenantID uint) ([]T, error) {
	defer metrics.TrackDBOperation("query")(time.Now())

	var rows []T
	if result := db.Where("tenant_id = ?", tenantID).Order("id").Find(&rows); result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

// Find returns the row with the given id if it is owned by the tenant.
func Find[T any](db *gorm.DB, tenantID, id uint) (*T, error) {
	var row T
	result := db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &row, nil
}

// Create inserts the row. The caller sets TenantID on the entity before
// calling; it is never taken from request input.
func Create[T any](db *gorm.DB, row *T) error {
	defer metrics.TrackDBOperation("insert")(time.Now())
	return db.Create(row).Error
}

// Save writes back an entity previously loaded through Find, so the
// tenant check has already happened.
func Save[T any](db *gorm.DB, row *T) error {
	defer metrics.TrackDBOperation("update")(time.Now())
	return db.Save(row).Error
}

// Delete hard-deletes the row with the given id if it is owned by the
// tenant. Deleting a row of another tenant reports ErrNotFound.
func Delete[T any](db *gorm.DB, tenantID, id uint) error {
	defer metrics.TrackDBOperation("delete")(time.Now())

	var row T
	result := db.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountWhere counts the tenant's rows of type T matching the extra
// condition. Used for referential checks before a delete.
func CountWhere[T any](db *gorm.DB, tenantID uint, query string, args ...interface{}) (int64, error) {
	var row T
	var count int64
	result := db.Model(&row).Where("tenant_id = ?", tenantID).Where(query, args...).Count(&count)
	return count, result.Error
}

// DeleteWhere hard-deletes the tenant's rows of type T matching the
// extra condition. Used by the cascade deletion policy.
func DeleteWhere[T any](db *gorm.DB, tenantID uint, query string, args ...interface{}) error {
	var row T
	return db.Where("tenant_id = ?", tenantID).Where(query, args...).Delete(&row).Error
}
