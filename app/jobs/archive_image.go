// Package jobs holds the console's queued background work.
package jobs

import (
	"fmt"
	"path"

	"github.com/cardstore/console/pkg/logger"
	"github.com/cardstore/console/pkg/queue"
	"github.com/cardstore/console/pkg/storage"
)

// ArchiveImage keeps a copy of an uploaded product image on the configured
// disk so the console retains the original after the upstream accepts it.
type ArchiveImage struct {
	ProductName string `json:"product_name"`
	FileName    string `json:"file_name"`
	Data        []byte `json:"data"`
}

// Handle writes the image under product-images/.
func (j *ArchiveImage) Handle() error {
	if len(j.Data) == 0 {
		return nil
	}
	dst := path.Join("product-images", path.Base(j.FileName))
	if err := storage.Put(dst, j.Data); err != nil {
		return fmt.Errorf("jobs: archive image %s: %w", dst, err)
	}
	logger.Info("product image archived", "product", j.ProductName, "path", dst)
	return nil
}

// RegisterAll registers every job type with the queue so workers can
// decode envelopes back into jobs.
func RegisterAll() {
	queue.Register(fmt.Sprintf("%T", &ArchiveImage{}), func() queue.Job { return &ArchiveImage{} })
}
