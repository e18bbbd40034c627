package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(nil)
		_ = rdb.Close()
	})
	return mr
}

func TestGetSetJSONRoundTrip(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	SetJSON(ctx, UserKey(7), cachedUser{ID: 7, Username: "annab"}, UserTTL)

	var got cachedUser
	require.NoError(t, GetJSON(ctx, UserKey(7), &got))
	assert.Equal(t, cachedUser{ID: 7, Username: "annab"}, got)
}

func TestGetJSONMiss(t *testing.T) {
	setupTestRedis(t)

	var got cachedUser
	err := GetJSON(context.Background(), UserKey(99), &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestGetJSONWithoutClientIsMiss(t *testing.T) {
	SetClient(nil)

	var got cachedUser
	err := GetJSON(context.Background(), UserKey(1), &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestAsideLoadsOnceThenServesFromCache(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	loads := 0
	var first, second cachedUser
	load := func(dest *cachedUser) func() error {
		return func() error {
			loads++
			*dest = cachedUser{ID: 3, Username: "kris"}
			return nil
		}
	}

	require.NoError(t, Aside(ctx, UserKey(3), &first, UserTTL, load(&first)))
	require.NoError(t, Aside(ctx, UserKey(3), &second, UserTTL, load(&second)))

	assert.Equal(t, first, second)
	assert.Equal(t, 1, loads)
}

func TestAsideReloadsAfterTTL(t *testing.T) {
	mr := setupTestRedis(t)
	ctx := context.Background()

	loads := 0
	var got cachedUser
	load := func() error {
		loads++
		got = cachedUser{ID: 3, Username: "kris"}
		return nil
	}

	require.NoError(t, Aside(ctx, UserKey(3), &got, time.Minute, load))
	mr.FastForward(2 * time.Minute)
	require.NoError(t, Aside(ctx, UserKey(3), &got, time.Minute, load))

	assert.Equal(t, 2, loads)
}

func TestAsidePropagatesLoadError(t *testing.T) {
	setupTestRedis(t)

	wantErr := errors.New("db down")
	var got cachedUser
	err := Aside(context.Background(), UserKey(5), &got, UserTTL, func() error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestInvalidatePostDropsFeed(t *testing.T) {
	mr := setupTestRedis(t)
	ctx := context.Background()

	SetJSON(ctx, PostKey(1), cachedUser{}, PostTTL)
	SetJSON(ctx, FeedKey, []cachedUser{}, FeedTTL)

	InvalidatePost(ctx, 1)

	assert.False(t, mr.Exists(PostKey(1)))
	assert.False(t, mr.Exists(FeedKey))
}
