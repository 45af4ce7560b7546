package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/theater-demo/theater-api/internal/core/domain"
	"github.com/theater-demo/theater-api/internal/core/ports"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubAuthService struct {
	signupFn func(ctx context.Context, in ports.SignupInput) (*domain.User, error)
	loginFn  func(ctx context.Context, username, password string) (string, *domain.User, error)
	meFn     func(ctx context.Context, id string) (*domain.User, error)
}

func (s *stubAuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	return s.signupFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Me(ctx context.Context, id string) (*domain.User, error) {
	return s.meFn(ctx, id)
}

type stubProductionService struct {
	created ports.CreateProductionInput
	updated ports.UpdateProductionInput
	deleted ports.DeleteInput
	limit   int
	genre   string
	title   string
	list    []*domain.Production
	detail  *ports.ProductionDetail
	err     error
}

func (s *stubProductionService) Create(_ context.Context, in ports.CreateProductionInput) (*domain.Production, error) {
	s.created = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Production{ID: "p1", Title: in.Title, Image: in.Image, Year: in.Year}, nil
}

func (s *stubProductionService) Get(_ context.Context, id string) (*ports.ProductionDetail, error) {
	return s.detail, s.err
}

func (s *stubProductionService) GetByTitle(_ context.Context, title string) (*ports.ProductionDetail, error) {
	s.title = title
	return s.detail, s.err
}

func (s *stubProductionService) List(_ context.Context, in ports.ListProductionsInput) ([]*domain.Production, error) {
	s.genre = in.Genre
	return s.list, s.err
}

func (s *stubProductionService) Longest(_ context.Context, limit int) ([]*domain.Production, error) {
	s.limit = limit
	return s.list, s.err
}

func (s *stubProductionService) Update(_ context.Context, in ports.UpdateProductionInput) (*domain.Production, error) {
	s.updated = in
	if s.err != nil {
		return nil, s.err
	}
	p := &domain.Production{ID: in.ID, Title: "Old", Image: "old.jpg"}
	if in.Title != nil {
		p.Title = *in.Title
	}
	return p, nil
}

func (s *stubProductionService) Delete(_ context.Context, in ports.DeleteInput) error {
	s.deleted = in
	return s.err
}

type stubActorService struct {
	created ports.CreateActorInput
	detail  *ports.ActorDetail
	err     error
}

func (s *stubActorService) Create(_ context.Context, in ports.CreateActorInput) (*domain.Actor, error) {
	s.created = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Actor{ID: "a1", Name: in.Name, Image: in.Image, Age: in.Age}, nil
}

func (s *stubActorService) Get(context.Context, string) (*ports.ActorDetail, error) {
	return s.detail, s.err
}

func (s *stubActorService) List(context.Context) ([]*domain.Actor, error) {
	return []*domain.Actor{{ID: "a1", Name: "Keanu", Image: "k.jpg"}}, s.err
}

func (s *stubActorService) Update(_ context.Context, in ports.UpdateActorInput) (*domain.Actor, error) {
	return &domain.Actor{ID: in.ID, Name: "Keanu", Image: "k.jpg"}, s.err
}

func (s *stubActorService) Delete(context.Context, ports.DeleteInput) error {
	return s.err
}

type stubRoleService struct {
	created ports.CreateRoleInput
	err     error
}

func (s *stubRoleService) Create(_ context.Context, in ports.CreateRoleInput) (*ports.RoleDetail, error) {
	s.created = in
	if s.err != nil {
		return nil, s.err
	}
	return &ports.RoleDetail{
		Role:       &domain.Role{ID: "r1", RoleName: in.RoleName, ProductionID: in.ProductionID, ActorID: in.ActorID},
		Production: &domain.Production{ID: in.ProductionID, Title: "Matrix", Image: "m.jpg"},
		Actor:      &domain.Actor{ID: in.ActorID, Name: "Keanu", Image: "k.jpg"},
	}, nil
}

func (s *stubRoleService) Get(context.Context, string) (*ports.RoleDetail, error) {
	return nil, s.err
}

func (s *stubRoleService) Delete(context.Context, ports.DeleteInput) error {
	return s.err
}
