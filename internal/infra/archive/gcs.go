package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"order-offer-service/internal/pkg/config"
	"order-offer-service/internal/pkg/errs"
	"order-offer-service/internal/usecase/shared"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	contentTypeJSON      = "application/json"
	retentionMetadataKey = "retention-days"
)

// NewClient builds a Cloud Storage client. A configured endpoint points the
// client at an emulator and disables authentication.
func NewClient(ctx context.Context, cfg config.ArchiveConfig) (*gcs.Client, error) {
	var opts []option.ClientOption
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint), option.WithoutAuthentication())
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "create storage client")
	}
	return client, nil
}

// GCSStore writes settled orders to a bucket, once per key.
type GCSStore struct {
	client           *gcs.Client
	bucket           string
	projectID        string
	maxRetentionDays int
	logger           *slog.Logger
}

func NewGCSStore(client *gcs.Client, cfg config.ArchiveConfig, logger *slog.Logger) (*GCSStore, error) {
	if client == nil {
		return nil, errors.New("archive: client is required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, errors.New("archive: bucket is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GCSStore{
		client:           client,
		bucket:           bucket,
		projectID:        cfg.ProjectID,
		maxRetentionDays: cfg.MaxRetentionDays,
		logger:           logger,
	}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *GCSStore) EnsureBucket(ctx context.Context) error {
	handle := s.client.Bucket(s.bucket)
	_, err := handle.Attrs(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gcs.ErrBucketNotExist) {
		return errs.Wrapf(err, "inspect bucket %s", s.bucket)
	}
	if err := handle.Create(ctx, s.projectID, nil); err != nil {
		if isStatus(err, http.StatusConflict) {
			return nil
		}
		return errs.Wrapf(err, "create bucket %s", s.bucket)
	}
	s.logger.Info("archive bucket created", "bucket", s.bucket)
	return nil
}

func (s *GCSStore) Put(ctx context.Context, record shared.ArchiveRecord) (string, error) {
	key := Key(record.OrderID, record.FinishedAt)

	body, err := json.Marshal(record)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "encode archive record"), errs.ErrArchiveFailed)
	}

	retention := RetentionDays(record.TTLSeconds, s.maxRetentionDays)

	obj := s.client.Bucket(s.bucket).Object(key).If(gcs.Conditions{DoesNotExist: true})
	w := obj.NewWriter(ctx)
	w.ContentType = contentTypeJSON
	w.Metadata = map[string]string{
		retentionMetadataKey: strconv.Itoa(retention),
	}

	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return s.writeResult(key, err)
	}
	if err := w.Close(); err != nil {
		return s.writeResult(key, err)
	}

	s.logger.Info("archive.stored",
		"order_id", record.OrderID.String(),
		"key", key,
		"retention_days", retention)
	return key, nil
}

// writeResult treats a failed precondition as an earlier successful write.
func (s *GCSStore) writeResult(key string, err error) (string, error) {
	if isStatus(err, http.StatusPreconditionFailed) {
		s.logger.Info("archive object already present", "key", key)
		return key, nil
	}
	return "", errs.Mark(errs.Wrapf(err, "write %s", key), errs.ErrArchiveFailed)
}

func isStatus(err error, code int) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// Read returns the stored bytes for key.
func (s *GCSStore) Read(ctx context.Context, key string) ([]byte, error) {
	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, errs.Wrapf(err, "open %s", key)
	}
	defer r.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, errs.Wrapf(err, "read %s", key)
	}
	return buf.Bytes(), nil
}
