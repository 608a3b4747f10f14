package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophcontacts/internal/api"
	"github.com/dmitrijs2005/gophcontacts/internal/client/models"
	"github.com/dmitrijs2005/gophcontacts/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const pingTimeout = 2 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      api.ContactsServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

// accessTokenInterceptor attaches the access token and, when the server
// reports it expired, refreshes the pair once and retries the call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if method == api.ContactsService_RefreshToken_FullMethodName {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	access, refresh := s.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &api.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return rerr
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

func NewContactsClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = api.NewContactsServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Login(ctx context.Context, apiKey string) error {
	resp, err := s.client.Login(ctx, &api.LoginRequest{ApiKey: apiKey})
	if err != nil {
		return s.mapError(err)
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (s *GRPCClient) LoggedIn() bool {
	access, _ := s.tokens()
	return access != ""
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) ListPeople(ctx context.Context) ([]models.Person, error) {
	resp, err := s.client.ListPeople(ctx, &api.ListPeopleRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := make([]models.Person, 0, len(resp.People))
	for _, p := range resp.People {
		out = append(out, personFromAPI(p))
	}
	return out, nil
}

func (s *GRPCClient) CountPeople(ctx context.Context) (int64, error) {
	resp, err := s.client.CountPeople(ctx, &api.CountPeopleRequest{})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Count, nil
}

func (s *GRPCClient) GetPerson(ctx context.Context, id string) (*models.Person, error) {
	resp, err := s.client.GetPerson(ctx, &api.GetPersonRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	p := personFromAPI(resp.Person)
	return &p, nil
}

func (s *GRPCClient) PostPerson(ctx context.Context, p models.Person) (*models.Person, error) {
	resp, err := s.client.PostPerson(ctx, &api.PostPersonRequest{Person: personToAPI(p)})
	if err != nil {
		return nil, s.mapError(err)
	}
	saved := personFromAPI(resp.Person)
	return &saved, nil
}

func (s *GRPCClient) PutPerson(ctx context.Context, p models.Person) (*models.Person, error) {
	resp, err := s.client.PutPerson(ctx, &api.PutPersonRequest{Person: personToAPI(p)})
	if err != nil {
		return nil, s.mapError(err)
	}
	saved := personFromAPI(resp.Person)
	return &saved, nil
}

func (s *GRPCClient) DeletePerson(ctx context.Context, id string) (bool, error) {
	resp, err := s.client.DeletePerson(ctx, &api.DeletePersonRequest{Id: id})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Deleted, nil
}

func (s *GRPCClient) CreateImageUpload(ctx context.Context, fileName, contentType string) (string, string, error) {
	resp, err := s.client.CreateImageUpload(ctx, &api.CreateImageUploadRequest{FileName: fileName, ContentType: contentType})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Key, resp.Url, nil
}

func (s *GRPCClient) CompleteImageUpload(ctx context.Context, key string) (string, error) {
	resp, err := s.client.CompleteImageUpload(ctx, &api.CompleteImageUploadRequest{Key: key})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.RemoteImage, nil
}

func (s *GRPCClient) GetImageURL(ctx context.Context, ref string) (string, string, error) {
	resp, err := s.client.GetImageUrl(ctx, &api.GetImageUrlRequest{Key: ref})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Url, resp.ContentType, nil
}

func (s *GRPCClient) DeleteImage(ctx context.Context, ref string) (bool, error) {
	resp, err := s.client.DeleteImage(ctx, &api.DeleteImageRequest{Key: ref})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Deleted, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorValidation, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func personToAPI(p models.Person) *api.Person {
	return &api.Person{
		Id:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		Phone:       p.Phone,
		LocalImage:  p.LocalImage,
		RemoteImage: p.RemoteImage,
	}
}

func personFromAPI(p *api.Person) models.Person {
	if p == nil {
		return models.Person{}
	}
	return models.Person{
		ID:          p.Id,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		Phone:       p.Phone,
		LocalImage:  p.LocalImage,
		RemoteImage: p.RemoteImage,
	}
}
