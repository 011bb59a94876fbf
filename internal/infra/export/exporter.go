package export

import (
	"context"
	"log/slog"
	"strings"

	"reclaim/config"
	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/domain/service"
	"reclaim/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type exporter struct {
	bucket    *blob.Bucket
	bucketURL string
	logger    *slog.Logger
}

type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens export.bucketUrl. Without one, Archive reports ErrExportUnavailable
// while CSV downloads keep working.
func New(params Params) (service.LedgerExporter, error) {
	bucketURL := ""
	if params.Config.Export != nil {
		bucketURL = strings.TrimSpace(params.Config.Export.BucketURL)
	}

	exp, err := Open(params.Ctx, bucketURL, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return exp.Close()
		},
	})

	return exp, nil
}

// Open returns an exporter backed by the bucket at bucketURL, or none when empty.
func Open(ctx context.Context, bucketURL string, logger *slog.Logger) (*exporter, error) {
	exp := &exporter{bucketURL: bucketURL, logger: logger}
	if bucketURL == "" {
		return exp, nil
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open export bucket %s", bucketURL)
	}
	exp.bucket = bucket

	logger.Info("Ledger export bucket opened", slog.String("bucket_url", bucketURL))

	return exp, nil
}

func (e *exporter) EncodeCSV(txs []*entity.TokenTransaction) ([]byte, string, error) {
	return TransactionsCSV(txs)
}

func (e *exporter) Archive(ctx context.Context, key string, data []byte) (string, error) {
	if e.bucket == nil {
		return "", domainerrors.ErrExportUnavailable
	}

	if err := e.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: "text/csv"}); err != nil {
		return "", errors.Wrapf(err, "write export %s", key)
	}

	e.logger.InfoContext(ctx, "Ledger export archived",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(data)))))

	return strings.TrimSuffix(e.bucketURL, "/") + "/" + key, nil
}

func (e *exporter) Close() error {
	if e.bucket == nil {
		return nil
	}

	return errors.WithStack(e.bucket.Close())
}
