package scripts

import (
	"context"
	"errors"
	"testing"

	"forum-provider/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func objects(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(infos))
	for _, i := range infos {
		ch <- i
	}
	close(ch)
	return ch
}

func TestMissingInBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "forum-scripts").Return(true, nil)
	client.On("ListObjects", mock.Anything, "forum-scripts", mock.MatchedBy(func(o minio.ListObjectsOptions) bool {
		return o.Prefix == "v3/mysql/install/tables.sql"
	})).Return(objects(minio.ObjectInfo{Key: "v3/mysql/install/tables.sql"}))
	client.On("ListObjects", mock.Anything, "forum-scripts", mock.MatchedBy(func(o minio.ListObjectsOptions) bool {
		return o.Prefix == "v3/mysql/install/views.sql"
	})).Return(objects(minio.ObjectInfo{Key: "v3/mysql/install/views.sql.bak"}))

	missing, err := MissingInBucket(context.Background(), client, "forum-scripts", "v3",
		[]string{"mysql/install/tables.sql", "mysql/install/views.sql"})
	require.NoError(t, err)
	assert.Equal(t, []string{"mysql/install/views.sql"}, missing)
}

func TestMissingInBucket_NoBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "forum-scripts").Return(false, nil)

	_, err := MissingInBucket(context.Background(), client, "forum-scripts", "", []string{"a.sql"})
	assert.ErrorContains(t, err, "does not exist")
}

func TestMissingInBucket_ListError(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "forum-scripts").Return(true, nil)
	client.On("ListObjects", mock.Anything, "forum-scripts", mock.Anything).
		Return(objects(minio.ObjectInfo{Err: errors.New("AccessDenied")}))

	_, err := MissingInBucket(context.Background(), client, "forum-scripts", "", []string{"a.sql"})
	assert.ErrorContains(t, err, "AccessDenied")
}
