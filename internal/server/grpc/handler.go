package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophcontacts/internal/api"
	"github.com/dmitrijs2005/gophcontacts/internal/common"
	"github.com/dmitrijs2005/gophcontacts/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto gRPC status codes. Unknown errors are
// logged and reported as Internal without their text.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorValidation), errors.Is(err, common.ErrorUnsupportedImage):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUploadIncomplete):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	tokens, err := s.auth.Login(ctx, req.ApiKey)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "client logged in")
	return &api.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *api.RefreshTokenRequest) (*api.RefreshTokenResponse, error) {
	tokens, err := s.auth.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) ListPeople(ctx context.Context, req *api.ListPeopleRequest) (*api.ListPeopleResponse, error) {
	people, err := s.people.List(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := make([]*api.Person, 0, len(people))
	for _, p := range people {
		out = append(out, personToAPI(p))
	}
	return &api.ListPeopleResponse{People: out}, nil
}

func (s *GRPCServer) CountPeople(ctx context.Context, req *api.CountPeopleRequest) (*api.CountPeopleResponse, error) {
	n, err := s.people.Count(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.CountPeopleResponse{Count: n}, nil
}

func (s *GRPCServer) GetPerson(ctx context.Context, req *api.GetPersonRequest) (*api.GetPersonResponse, error) {
	p, err := s.people.Get(ctx, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.GetPersonResponse{Person: personToAPI(p)}, nil
}

func (s *GRPCServer) PostPerson(ctx context.Context, req *api.PostPersonRequest) (*api.PostPersonResponse, error) {
	if req.Person == nil {
		return nil, status.Error(codes.InvalidArgument, "person is required")
	}
	p, err := s.people.Post(ctx, personFromAPI(req.Person))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.PostPersonResponse{Person: personToAPI(p)}, nil
}

func (s *GRPCServer) PutPerson(ctx context.Context, req *api.PutPersonRequest) (*api.PutPersonResponse, error) {
	if req.Person == nil {
		return nil, status.Error(codes.InvalidArgument, "person is required")
	}
	p, err := s.people.Put(ctx, personFromAPI(req.Person))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.PutPersonResponse{Person: personToAPI(p)}, nil
}

func (s *GRPCServer) DeletePerson(ctx context.Context, req *api.DeletePersonRequest) (*api.DeletePersonResponse, error) {
	deleted, err := s.people.Delete(ctx, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.DeletePersonResponse{Deleted: deleted}, nil
}

func (s *GRPCServer) CreateImageUpload(ctx context.Context, req *api.CreateImageUploadRequest) (*api.CreateImageUploadResponse, error) {
	key, url, err := s.images.CreateUpload(ctx, req.FileName, req.ContentType)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.CreateImageUploadResponse{Key: key, Url: url}, nil
}

func (s *GRPCServer) CompleteImageUpload(ctx context.Context, req *api.CompleteImageUploadRequest) (*api.CompleteImageUploadResponse, error) {
	ref, err := s.images.CompleteUpload(ctx, req.Key)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.CompleteImageUploadResponse{RemoteImage: ref}, nil
}

func (s *GRPCServer) GetImageUrl(ctx context.Context, req *api.GetImageUrlRequest) (*api.GetImageUrlResponse, error) {
	url, contentType, err := s.images.GetURL(ctx, req.Key)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.GetImageUrlResponse{Url: url, ContentType: contentType}, nil
}

func (s *GRPCServer) DeleteImage(ctx context.Context, req *api.DeleteImageRequest) (*api.DeleteImageResponse, error) {
	deleted, err := s.images.Delete(ctx, req.Key)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.DeleteImageResponse{Deleted: deleted}, nil
}

func personToAPI(p *models.Person) *api.Person {
	out := &api.Person{
		Id:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		Phone:       p.Phone,
		LocalImage:  p.LocalImage,
		RemoteImage: p.RemoteImage,
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

func personFromAPI(p *api.Person) *models.Person {
	out := &models.Person{
		ID:          p.Id,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		Phone:       p.Phone,
		LocalImage:  p.LocalImage,
		RemoteImage: p.RemoteImage,
	}
	if p.UpdatedAt != nil {
		out.UpdatedAt = *p.UpdatedAt
	}
	return out
}
