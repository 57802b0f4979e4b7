package workbook

import (
	"context"
	"fmt"
	"path"

	"github.com/abhayror17/Excel-Comparator/core/compare"
	"github.com/abhayror17/Excel-Comparator/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectSource reads a workbook stored as an object in the configured bucket.
// The object is downloaded once, on first use, and parsed in memory.
type ObjectSource struct {
	client storage.Client
	bucket string
	object string

	excel *ExcelSource
}

// NewObjectSource creates a lazy source for a bucket object. No network
// call happens until the first SheetNames or Sheet.
func NewObjectSource(client storage.Client, bucket, object string) *ObjectSource {
	return &ObjectSource{client: client, bucket: bucket, object: object}
}

// Name returns the object's base name.
func (s *ObjectSource) Name() string {
	return path.Base(s.object)
}

// SheetNames lists the sheets of the remote workbook.
func (s *ObjectSource) SheetNames(ctx context.Context) ([]string, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	return s.excel.SheetNames(ctx)
}

// Sheet materializes one sheet of the remote workbook.
func (s *ObjectSource) Sheet(ctx context.Context, name string) (compare.Dataset, error) {
	if err := s.ensure(ctx); err != nil {
		return compare.Dataset{}, err
	}
	return s.excel.Sheet(ctx, name)
}

// Close releases the parsed workbook, if it was ever fetched.
func (s *ObjectSource) Close() error {
	if s.excel == nil {
		return nil
	}
	return s.excel.Close()
}

func (s *ObjectSource) ensure(ctx context.Context) error {
	if s.excel != nil {
		return nil
	}

	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to fetch workbook %s from bucket %s: %w", s.object, s.bucket, err)
	}
	defer obj.Close()

	excel, err := OpenReader(obj, s.Name())
	if err != nil {
		return err
	}
	s.excel = excel
	return nil
}
