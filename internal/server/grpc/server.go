// Package grpc exposes the contacts services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophcontacts/internal/api"
	"github.com/dmitrijs2005/gophcontacts/internal/logging"
	"github.com/dmitrijs2005/gophcontacts/internal/server/models"
	"github.com/dmitrijs2005/gophcontacts/internal/server/services"
	"google.golang.org/grpc"
)

type authSvc interface {
	Login(ctx context.Context, apiKey string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	ValidateAccessToken(token string) (string, error)
}

type peopleSvc interface {
	List(ctx context.Context) ([]*models.Person, error)
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, id string) (*models.Person, error)
	Post(ctx context.Context, p *models.Person) (*models.Person, error)
	Put(ctx context.Context, p *models.Person) (*models.Person, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type imageSvc interface {
	CreateUpload(ctx context.Context, fileName, contentType string) (string, string, error)
	CompleteUpload(ctx context.Context, ref string) (string, error)
	GetURL(ctx context.Context, ref string) (string, string, error)
	Delete(ctx context.Context, ref string) (bool, error)
}

type GRPCServer struct {
	address string
	auth    authSvc
	people  peopleSvc
	images  imageSvc
	logger  logging.Logger
}

var _ api.ContactsServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(address string, l logging.Logger, as authSvc, ps peopleSvc, is imageSvc) *GRPCServer {
	return &GRPCServer{
		address: address,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
		people:  ps,
		images:  is,
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	api.RegisterContactsServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
