package ports

import (
	"context"

	"github.com/bnema/labdesk/internal/domain"
)

type DownloadSink interface {
	Save(ctx context.Context, filename string, data []byte) (domain.Download, error)
}
