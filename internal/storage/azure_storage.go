package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
)

// AzureBlobConfig locates the palette document in a storage account
type AzureBlobConfig struct {
	ConnectionString string
	AccountName      string
	AccountKey       string
	Container        string
	BlobName         string
}

type azureSource struct {
	client    *azblob.Client
	container string
	blob      string
	account   string
}

// NewAzureSource prefers a connection string, then the account key, and
// falls back to the default Azure credential chain.
func NewAzureSource(cfg AzureBlobConfig) (PaletteSource, error) {
	if cfg.AccountName == "" && cfg.ConnectionString == "" {
		return nil, apperrors.NewValidationError("azure storage account or connection string is required", nil)
	}
	if cfg.Container == "" || cfg.BlobName == "" {
		return nil, apperrors.NewValidationError("azure container and blob name are required", nil)
	}

	serviceURL := fmt.Sprintf("https://%s.blob.core.windows.net", cfg.AccountName)

	var (
		client *azblob.Client
		err    error
	)
	switch {
	case cfg.ConnectionString != "":
		client, err = azblob.NewClientFromConnectionString(cfg.ConnectionString, nil)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid azure connection string", err)
		}
	case cfg.AccountKey != "":
		credential, credErr := azblob.NewSharedKeyCredential(cfg.AccountName, cfg.AccountKey)
		if credErr != nil {
			return nil, apperrors.NewValidationError("invalid azure storage key", credErr)
		}
		client, err = azblob.NewClientWithSharedKeyCredential(serviceURL, credential, nil)
	default:
		credential, credErr := azidentity.NewDefaultAzureCredential(nil)
		if credErr != nil {
			return nil, apperrors.NewInternalError("failed to build azure credential", credErr)
		}
		client, err = azblob.NewClient(serviceURL, credential, nil)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create blob client", err)
	}

	account := cfg.AccountName
	if account == "" {
		account = strings.TrimSuffix(client.URL(), "/")
	}
	return &azureSource{
		client:    client,
		container: cfg.Container,
		blob:      cfg.BlobName,
		account:   account,
	}, nil
}

func (s *azureSource) Describe() string {
	return fmt.Sprintf("azure:%s/%s/%s", s.account, s.container, s.blob)
}

func (s *azureSource) Fetch(ctx context.Context) ([]byte, error) {
	resp, err := s.client.DownloadStream(ctx, s.container, s.blob, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("palette blob %s not found", s.Describe()), err)
		}
		return nil, apperrors.NewNetworkError("palette blob download failed", err)
	}

	body := resp.Body
	defer body.Close()

	data, _, err := readCapped(body)
	if err != nil {
		return nil, apperrors.NewNetworkError("failed to read palette blob", err)
	}
	return data, nil
}
