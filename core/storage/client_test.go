package storage_test

import (
	"testing"

	"forum-provider/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "forum-scripts",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithScheme", func(t *testing.T) {
		for _, endpoint := range []string{"http://localhost:9000", "https://s3.amazonaws.com"} {
			client, err := storage.NewClient(storage.Config{Endpoint: endpoint, AccessKey: "k", SecretKey: "s"})
			assert.NoError(t, err, endpoint)
			assert.NotNil(t, client)
		}
	})

	t.Run("InvalidEndpoint", func(t *testing.T) {
		_, err := storage.NewClient(storage.Config{Endpoint: "bad host:9000"})
		assert.Error(t, err)
	})
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "mysql/install/tables.sql", storage.ObjectKey("", "mysql/install/tables.sql"))
	assert.Equal(t, "v3/mysql/fulltext.sql", storage.ObjectKey("/v3/", "/mysql/fulltext.sql"))
}
