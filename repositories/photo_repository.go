// File: /repositories/photo_repository.go
package repositories

import (
	"gorm.io/gorm"

	"github.com/nousyukukangen-ringo/isibasigeru/models"
)

// PhotoRepository answers storage-level questions about photos, mainly for
// the orphaned-upload cleanup job.
type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// ReferencedFilepaths returns every filepath some photo row points at.
func (r *PhotoRepository) ReferencedFilepaths() (map[string]bool, error) {
	var paths []string
	if err := r.db.Model(&models.Photo{}).Pluck("filepath", &paths).Error; err != nil {
		return nil, err
	}

	referenced := make(map[string]bool, len(paths))
	for _, p := range paths {
		referenced[p] = true
	}
	return referenced, nil
}
