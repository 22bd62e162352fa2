package service

import (
	"context"
	"time"

	"scribe/internal/models"
	"scribe/internal/repository"
)

// PostService creates and lists posts owned by a user.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// CreatePostInput carries the fields accepted when creating a post.
type CreatePostInput struct {
	Title string
	Body  string
}

// NewPostService returns a PostService backed by the given repositories.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost persists a new post owned by the given user. The owner must
// exist; nothing is written when the lookup fails.
func (s *PostService) CreatePost(ctx context.Context, userID uint, in CreatePostInput) (*models.Post, error) {
	const maxTitleLen = 300

	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if in.Body == "" {
		return nil, models.NewValidationError("Body is required")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:     in.Title,
		Body:      in.Body,
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPostsByUserID returns the user's posts, newest first.
func (s *PostService) ListPostsByUserID(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.postRepo.ListByUserID(ctx, userID, limit, offset)
}
