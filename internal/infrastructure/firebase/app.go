package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	fbapp "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"nanocart/pkg/config"
	"nanocart/pkg/logger"
)

// Clients holds the firebase-backed handles the server needs.
type Clients struct {
	Firestore  *firestore.Client
	Bucket     *gcs.BucketHandle
	BucketName string
}

func (c *Clients) Close() error {
	if c == nil || c.Firestore == nil {
		return nil
	}
	return c.Firestore.Close()
}

func clientOptions(cfg config.FirebaseConfig) []option.ClientOption {
	switch {
	case cfg.CredentialsJSON != "":
		logger.Info("Using Firebase service account from environment variable")
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cfg.CredentialsJSON))}
	case cfg.CredentialsFile != "":
		logger.Info("Using Firebase service account from file: %s", cfg.CredentialsFile)
		return []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsFile)}
	default:
		logger.Info("Using application default credentials for Firebase")
		return nil
	}
}

// NewClients initializes the firebase app and opens the clients selected by
// withFirestore and withStorage.
func NewClients(ctx context.Context, cfg config.FirebaseConfig, withFirestore, withStorage bool) (*Clients, error) {
	app, err := fbapp.NewApp(ctx, &fbapp.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, clientOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase: %w", err)
	}

	clients := &Clients{BucketName: cfg.StorageBucket}

	if withFirestore {
		clients.Firestore, err = app.Firestore(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create firestore client: %w", err)
		}
	}

	if withStorage {
		storageClient, err := app.Storage(ctx)
		if err != nil {
			_ = clients.Close()
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		clients.Bucket, err = storageClient.Bucket(cfg.StorageBucket)
		if err != nil {
			_ = clients.Close()
			return nil, fmt.Errorf("failed to open bucket %s: %w", cfg.StorageBucket, err)
		}
	}

	return clients, nil
}
