// File: /jobs/orphan_cleanup_job.go
package jobs

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/nousyukukangen-ringo/isibasigeru/repositories"
	"github.com/nousyukukangen-ringo/isibasigeru/services"
)

// OrphanCleanupJob periodically removes uploaded files no photo row
// references anymore, e.g. leftovers of interrupted replacement uploads.
type OrphanCleanupJob struct {
	photos  *repositories.PhotoRepository
	storage *services.Storage
	ticker  *time.Ticker
	done    chan bool
}

func NewOrphanCleanupJob(db *gorm.DB, storage *services.Storage, interval time.Duration) *OrphanCleanupJob {
	return &OrphanCleanupJob{
		photos:  repositories.NewPhotoRepository(db),
		storage: storage,
		ticker:  time.NewTicker(interval),
		done:    make(chan bool),
	}
}

// Start begins the cleanup job.
func (j *OrphanCleanupJob) Start() {
	log.Println("Orphan upload cleanup job started")

	go func() {
		j.cleanup()

		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				log.Println("Orphan upload cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job.
func (j *OrphanCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *OrphanCleanupJob) cleanup() {
	referenced, err := j.photos.ReferencedFilepaths()
	if err != nil {
		log.Printf("Error during orphan cleanup: %v", err)
		return
	}

	names, err := j.storage.List()
	if err != nil {
		log.Printf("Error during orphan cleanup: %v", err)
		return
	}

	removed := 0
	for _, name := range names {
		if referenced[j.storage.PublicPath(name)] {
			continue
		}
		if err := j.storage.Remove(j.storage.PublicPath(name)); err != nil {
			log.Printf("Error removing orphaned upload %s: %v", name, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Printf("Orphan cleanup removed %d file(s)", removed)
	}
}
