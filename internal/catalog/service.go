package catalog

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Authors(ctx context.Context, page int) ([]Author, error) {
	return s.repo.ListAuthors(ctx, page)
}

func (s *Service) Genres(ctx context.Context, page int) ([]Genre, error) {
	return s.repo.ListGenres(ctx, page)
}
