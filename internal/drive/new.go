package drive

import (
	"context"
	"fmt"
	"os"

	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/sparta-contents/summary-note-maker/internal/logger"
)

type implDrive struct {
	service *drivev3.Service
	logger  logger.Logger
}

// New creates a Drive client authenticated with a service account. The key
// is read from credentialsFile, or from GOOGLE_CREDENTIALS_JSON when the file
// is empty. Extra client options are appended last.
func New(ctx context.Context, credentialsFile string, log logger.Logger, opts ...option.ClientOption) (Drive, error) {
	clientOpts := []option.ClientOption{option.WithScopes(drivev3.DriveScope)}
	switch {
	case credentialsFile != "":
		clientOpts = append(clientOpts, option.WithCredentialsFile(credentialsFile))
	case os.Getenv("GOOGLE_CREDENTIALS_JSON") != "":
		clientOpts = append(clientOpts, option.WithCredentialsJSON([]byte(os.Getenv("GOOGLE_CREDENTIALS_JSON"))))
	}
	clientOpts = append(clientOpts, opts...)

	service, err := drivev3.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &implDrive{
		service: service,
		logger:  log,
	}, nil
}
