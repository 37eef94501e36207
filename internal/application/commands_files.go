package application

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/labdesk/internal/domain"
	"github.com/sirupsen/logrus"
)

type DownloadFileArgs struct {
	ID int64 `json:"id"`
	// Filename is the local name; without one the name is derived from ID.
	Filename string `json:"filename,omitempty"`
}

var downloadRoute = Route[DownloadFileArgs, []byte]{
	Name:   "download_file",
	Method: http.MethodGet,
	Path:   "/arquivos",
	Params: func(a DownloadFileArgs) []string {
		return []string{idParam(a.ID), "download"}
	},
	Binary:  true,
	Timeout: downloadTimeout,
	Decode:  RawBytes,
}

func registerFiles(r *Registry) {
	RegisterFunc(r, downloadRoute.Name, downloadFile)
}

func downloadFile(ctx context.Context, deps Deps, args DownloadFileArgs) domain.Outcome[domain.Download] {
	data, err := Execute(ctx, deps, downloadRoute, args)
	if err != nil {
		return domain.Fail[domain.Download](err)
	}
	if len(data) == 0 {
		return domain.Fail[domain.Download](domain.NewDecodeError("downloaded file is empty", nil, nil))
	}

	filename := strings.TrimSpace(args.Filename)
	if filename == "" {
		filename = fmt.Sprintf("arquivo-%d", args.ID)
	}

	download, err := deps.Downloads.Save(ctx, filename, data)
	if err != nil {
		return domain.Fail[domain.Download](fmt.Errorf("save download: %w", err))
	}

	deps.log().WithFields(logrus.Fields{
		"path":  download.Path,
		"bytes": download.Size,
	}).Info("file downloaded")
	return domain.Succeed("file saved to "+download.Path, &download)
}
