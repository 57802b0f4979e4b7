package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhayror17/Excel-Comparator/core/config"
	"github.com/abhayror17/Excel-Comparator/core/logger"
	"github.com/abhayror17/Excel-Comparator/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var workbookPrefix string

// workbooksCmd lists the workbooks available in the configured bucket.
var workbooksCmd = &cobra.Command{
	Use:   "workbooks",
	Short: "List workbooks in the configured bucket",
	Long:  `Lists the .xlsx objects in the configured storage bucket, usable as compare --from-bucket arguments.`,
	RunE:  runWorkbooks,
}

func init() {
	workbooksCmd.Flags().StringVar(&workbookPrefix, "prefix", "", "Only list objects under this prefix")

	RootCmd.AddCommand(workbooksCmd)
}

func runWorkbooks(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", cfg.Storage.Bucket)
	}

	count := 0
	for obj := range client.ListObjects(ctx, cfg.Storage.Bucket, minio.ListObjectsOptions{
		Prefix:    workbookPrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".xlsx") {
			continue
		}
		l.Info("Workbook",
			zap.String("object", obj.Key),
			zap.Int64("size", obj.Size),
			zap.Time("modified", obj.LastModified),
		)
		count++
	}

	l.Info("Listing complete",
		zap.String("bucket", cfg.Storage.Bucket),
		zap.Int("workbooks", count),
	)
	return nil
}
