package bootstrap

import (
	"context"

	"cloud.google.com/go/firestore"
)

// InitFirestore opens a Firestore client for projectID. The client library
// honours FIRESTORE_EMULATOR_HOST for local runs.
func InitFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}
	return firestore.NewClient(ctx, projectID)
}
