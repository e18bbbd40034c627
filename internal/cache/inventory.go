package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix    = "user:%d"
	PostKeyPrefix    = "post:%d"
	ProjectKeyPrefix = "project:%d"
	TutorialsKey     = "tutorials:all"
	FeedKey          = "posts:feed"
)

const (
	UserTTL     = 5 * time.Minute
	ProjectTTL  = 10 * time.Minute
	PostTTL     = 30 * time.Minute
	TutorialTTL = time.Hour
	FeedTTL     = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func ProjectKey(projectID uint) string {
	return fmt.Sprintf(ProjectKeyPrefix, projectID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateProject(ctx context.Context, projectID uint) {
	Invalidate(ctx, ProjectKey(projectID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, FeedKey)
}

func InvalidateTutorials(ctx context.Context) {
	Invalidate(ctx, TutorialsKey)
}
