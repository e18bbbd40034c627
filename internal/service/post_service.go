package service

import (
	"context"
	"strings"

	"yarnhog/internal/cache"
	"yarnhog/internal/models"
	"yarnhog/internal/repository"
)

const (
	maxPostTitleLength   = 200
	maxPostContentLength = 5000
	maxCommentLength     = 1000
	feedPageSize         = 20
)

type PostService struct {
	postRepo    repository.PostRepository
	projectRepo repository.ProjectRepository
	encodeImage EncodeImageFunc
}

type CreatePostInput struct {
	UserID    uint
	Title     string
	Content   string
	Image     []byte
	ProjectID *uint
}

type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Title   *string
	Content *string
	Image   []byte
}

func NewPostService(postRepo repository.PostRepository, projectRepo repository.ProjectRepository, encodeImage EncodeImageFunc) *PostService {
	return &PostService{postRepo: postRepo, projectRepo: projectRepo, encodeImage: encodeImage}
}

// CreatePost validates and stores a community post. When the post is
// shared from a project, the project title is copied onto the post and
// stays frozen even if the project is later renamed.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > maxPostTitleLength {
		return nil, models.NewValidationError("Title is too long")
	}
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > maxPostContentLength {
		return nil, models.NewValidationError("Content is too long")
	}

	post := &models.Post{
		Title:   title,
		Content: content,
		UserID:  in.UserID,
	}

	if in.ProjectID != nil {
		project, err := s.projectRepo.GetByID(ctx, *in.ProjectID)
		if err != nil {
			return nil, err
		}
		if project.UserID != in.UserID {
			return nil, models.NewForbiddenError("You can only share your own projects")
		}
		post.ProjectID = in.ProjectID
		post.ProjectTitle = project.Title
	}

	if len(in.Image) > 0 {
		if s.encodeImage == nil {
			return nil, models.NewValidationError("Image uploads are not available")
		}
		image, err := s.encodeImage(in.Image)
		if err != nil {
			return nil, models.NewValidationError("Post image could not be read")
		}
		post.Image = image
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) GetPost(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

// ListPosts returns the feed, newest first. The anonymous first page is
// the hot path and is served from cache; signed-in views carry per-user
// liked flags and skip it.
func (s *PostService) ListPosts(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	if currentUserID == 0 && offset == 0 && limit == feedPageSize {
		var posts []*models.Post
		err := cache.Aside(ctx, cache.FeedKey, &posts, cache.FeedTTL, func() error {
			var loadErr error
			posts, loadErr = s.postRepo.List(ctx, limit, offset, 0)
			return loadErr
		})
		if err != nil {
			return nil, err
		}
		return posts, nil
	}
	return s.postRepo.List(ctx, limit, offset, currentUserID)
}

func (s *PostService) GetUserPosts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("You do not own this post")
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, models.NewValidationError("Title is required")
		}
		if len(title) > maxPostTitleLength {
			return nil, models.NewValidationError("Title is too long")
		}
		post.Title = title
	}
	if in.Content != nil {
		content := strings.TrimSpace(*in.Content)
		if content == "" {
			return nil, models.NewValidationError("Content is required")
		}
		if len(content) > maxPostContentLength {
			return nil, models.NewValidationError("Content is too long")
		}
		post.Content = content
	}
	if len(in.Image) > 0 {
		if s.encodeImage == nil {
			return nil, models.NewValidationError("Image uploads are not available")
		}
		image, err := s.encodeImage(in.Image)
		if err != nil {
			return nil, models.NewValidationError("Post image could not be read")
		}
		post.Image = image
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, in.PostID, in.UserID)
}

func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("You do not own this post")
	}
	return s.postRepo.Delete(ctx, postID)
}

// ToggleLike flips the caller's like on a post and reports the new state.
// Both directions are safe to repeat; a double tap converges instead of
// erroring.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, userID); err != nil {
		return false, err
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return false, err
	}

	if liked {
		if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		return false, err
	}
	return true, nil
}

// RatePost records the caller's 1-5 score for a post; re-rating replaces
// the previous score.
func (s *PostService) RatePost(ctx context.Context, userID, postID uint, score int) (*models.Post, error) {
	if score < 1 || score > 5 {
		return nil, models.NewValidationError("Score must be between 1 and 5")
	}
	if _, err := s.postRepo.GetByID(ctx, postID, userID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Rate(ctx, userID, postID, score); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID, userID)
}

func (s *PostService) AddComment(ctx context.Context, userID, postID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Comment cannot be empty")
	}
	if len(content) > maxCommentLength {
		return nil, models.NewValidationError("Comment is too long")
	}
	if _, err := s.postRepo.GetByID(ctx, postID, userID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: content,
		UserID:  userID,
		PostID:  postID,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *PostService) GetComments(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.postRepo.GetComments(ctx, postID, limit, offset)
}
