package mongodb

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"

	"jacsonsite/store"
	"jacsonsite/store/storetest"
)

func TestStoreConformance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := tcmongo.Run(ctx, "mongo:7")
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	uri, err := ctr.ConnectionString(ctx)
	require.NoError(t, err)

	storetest.Run(t, func(t *testing.T) store.Store {
		s, err := open(ctx, uri, "jacson_test_"+uuid.NewString()[:8])
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestOpenRejectsBadURI(t *testing.T) {
	_, err := Open(context.Background(), "postgres://localhost/jacson")
	require.Error(t, err)
}
