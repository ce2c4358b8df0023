//go:build integration

package redis_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/taskboard-server/internal/model"
	"github.com/dtroode/taskboard-server/internal/repository"
	"github.com/dtroode/taskboard-server/internal/storage/redis"
)

var url string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		panic(err)
	}
	url = fmt.Sprintf("redis://%s:%s/0", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRedis_UserLifecycle(t *testing.T) {
	ctx := context.Background()
	backend, err := redis.Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close(ctx) })

	users := repository.NewUserRepository(backend.Collection("users"))
	hela := model.User{ID: "u1", UserName: "hela", Password: "pw", Email: "hela@x.com"}

	_, err = users.Create(ctx, hela)
	require.NoError(t, err)

	_, err = users.Create(ctx, hela)
	assert.ErrorIs(t, err, model.ErrDuplicateKey)

	upd, err := users.Update(ctx, model.User{ID: "ghost"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), upd.ModifiedCount)

	_, found, err := users.GetByID(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, found)

	hela.UserName = "hela2"
	upd, err = users.Update(ctx, hela)
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.ModifiedCount)

	all, err := users.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.User{hela}, all)

	del, err := users.DeleteByEmail(ctx, "hela@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	del, err = users.DeleteByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), del.DeletedCount)
}
