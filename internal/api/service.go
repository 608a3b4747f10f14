// Package api defines the ContactsService gRPC contract shared by the client
// and the server: message types, the client stub, the server interface and
// the service descriptor. Messages are encoded with the JSON codec
// registered by this package.
package api

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "contacts.v1.ContactsService"

const (
	ContactsService_Ping_FullMethodName                = "/" + ServiceName + "/Ping"
	ContactsService_Login_FullMethodName               = "/" + ServiceName + "/Login"
	ContactsService_RefreshToken_FullMethodName        = "/" + ServiceName + "/RefreshToken"
	ContactsService_ListPeople_FullMethodName          = "/" + ServiceName + "/ListPeople"
	ContactsService_CountPeople_FullMethodName         = "/" + ServiceName + "/CountPeople"
	ContactsService_GetPerson_FullMethodName           = "/" + ServiceName + "/GetPerson"
	ContactsService_PostPerson_FullMethodName          = "/" + ServiceName + "/PostPerson"
	ContactsService_PutPerson_FullMethodName           = "/" + ServiceName + "/PutPerson"
	ContactsService_DeletePerson_FullMethodName        = "/" + ServiceName + "/DeletePerson"
	ContactsService_CreateImageUpload_FullMethodName   = "/" + ServiceName + "/CreateImageUpload"
	ContactsService_CompleteImageUpload_FullMethodName = "/" + ServiceName + "/CompleteImageUpload"
	ContactsService_GetImageUrl_FullMethodName         = "/" + ServiceName + "/GetImageUrl"
	ContactsService_DeleteImage_FullMethodName         = "/" + ServiceName + "/DeleteImage"
)

// ContactsServiceClient is the client API for ContactsService.
type ContactsServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	ListPeople(ctx context.Context, in *ListPeopleRequest, opts ...grpc.CallOption) (*ListPeopleResponse, error)
	CountPeople(ctx context.Context, in *CountPeopleRequest, opts ...grpc.CallOption) (*CountPeopleResponse, error)
	GetPerson(ctx context.Context, in *GetPersonRequest, opts ...grpc.CallOption) (*GetPersonResponse, error)
	PostPerson(ctx context.Context, in *PostPersonRequest, opts ...grpc.CallOption) (*PostPersonResponse, error)
	PutPerson(ctx context.Context, in *PutPersonRequest, opts ...grpc.CallOption) (*PutPersonResponse, error)
	DeletePerson(ctx context.Context, in *DeletePersonRequest, opts ...grpc.CallOption) (*DeletePersonResponse, error)
	CreateImageUpload(ctx context.Context, in *CreateImageUploadRequest, opts ...grpc.CallOption) (*CreateImageUploadResponse, error)
	CompleteImageUpload(ctx context.Context, in *CompleteImageUploadRequest, opts ...grpc.CallOption) (*CompleteImageUploadResponse, error)
	GetImageUrl(ctx context.Context, in *GetImageUrlRequest, opts ...grpc.CallOption) (*GetImageUrlResponse, error)
	DeleteImage(ctx context.Context, in *DeleteImageRequest, opts ...grpc.CallOption) (*DeleteImageResponse, error)
}

type contactsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewContactsServiceClient(cc grpc.ClientConnInterface) ContactsServiceClient {
	return &contactsServiceClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contactsServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, ContactsService_Ping_FullMethodName, in, opts)
}

func (c *contactsServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, ContactsService_Login_FullMethodName, in, opts)
}

func (c *contactsServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, ContactsService_RefreshToken_FullMethodName, in, opts)
}

func (c *contactsServiceClient) ListPeople(ctx context.Context, in *ListPeopleRequest, opts ...grpc.CallOption) (*ListPeopleResponse, error) {
	return invoke[ListPeopleResponse](ctx, c.cc, ContactsService_ListPeople_FullMethodName, in, opts)
}

func (c *contactsServiceClient) CountPeople(ctx context.Context, in *CountPeopleRequest, opts ...grpc.CallOption) (*CountPeopleResponse, error) {
	return invoke[CountPeopleResponse](ctx, c.cc, ContactsService_CountPeople_FullMethodName, in, opts)
}

func (c *contactsServiceClient) GetPerson(ctx context.Context, in *GetPersonRequest, opts ...grpc.CallOption) (*GetPersonResponse, error) {
	return invoke[GetPersonResponse](ctx, c.cc, ContactsService_GetPerson_FullMethodName, in, opts)
}

func (c *contactsServiceClient) PostPerson(ctx context.Context, in *PostPersonRequest, opts ...grpc.CallOption) (*PostPersonResponse, error) {
	return invoke[PostPersonResponse](ctx, c.cc, ContactsService_PostPerson_FullMethodName, in, opts)
}

func (c *contactsServiceClient) PutPerson(ctx context.Context, in *PutPersonRequest, opts ...grpc.CallOption) (*PutPersonResponse, error) {
	return invoke[PutPersonResponse](ctx, c.cc, ContactsService_PutPerson_FullMethodName, in, opts)
}

func (c *contactsServiceClient) DeletePerson(ctx context.Context, in *DeletePersonRequest, opts ...grpc.CallOption) (*DeletePersonResponse, error) {
	return invoke[DeletePersonResponse](ctx, c.cc, ContactsService_DeletePerson_FullMethodName, in, opts)
}

func (c *contactsServiceClient) CreateImageUpload(ctx context.Context, in *CreateImageUploadRequest, opts ...grpc.CallOption) (*CreateImageUploadResponse, error) {
	return invoke[CreateImageUploadResponse](ctx, c.cc, ContactsService_CreateImageUpload_FullMethodName, in, opts)
}

func (c *contactsServiceClient) CompleteImageUpload(ctx context.Context, in *CompleteImageUploadRequest, opts ...grpc.CallOption) (*CompleteImageUploadResponse, error) {
	return invoke[CompleteImageUploadResponse](ctx, c.cc, ContactsService_CompleteImageUpload_FullMethodName, in, opts)
}

func (c *contactsServiceClient) GetImageUrl(ctx context.Context, in *GetImageUrlRequest, opts ...grpc.CallOption) (*GetImageUrlResponse, error) {
	return invoke[GetImageUrlResponse](ctx, c.cc, ContactsService_GetImageUrl_FullMethodName, in, opts)
}

func (c *contactsServiceClient) DeleteImage(ctx context.Context, in *DeleteImageRequest, opts ...grpc.CallOption) (*DeleteImageResponse, error) {
	return invoke[DeleteImageResponse](ctx, c.cc, ContactsService_DeleteImage_FullMethodName, in, opts)
}

// ContactsServiceServer is the server API for ContactsService.
type ContactsServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	ListPeople(context.Context, *ListPeopleRequest) (*ListPeopleResponse, error)
	CountPeople(context.Context, *CountPeopleRequest) (*CountPeopleResponse, error)
	GetPerson(context.Context, *GetPersonRequest) (*GetPersonResponse, error)
	PostPerson(context.Context, *PostPersonRequest) (*PostPersonResponse, error)
	PutPerson(context.Context, *PutPersonRequest) (*PutPersonResponse, error)
	DeletePerson(context.Context, *DeletePersonRequest) (*DeletePersonResponse, error)
	CreateImageUpload(context.Context, *CreateImageUploadRequest) (*CreateImageUploadResponse, error)
	CompleteImageUpload(context.Context, *CompleteImageUploadRequest) (*CompleteImageUploadResponse, error)
	GetImageUrl(context.Context, *GetImageUrlRequest) (*GetImageUrlResponse, error)
	DeleteImage(context.Context, *DeleteImageRequest) (*DeleteImageResponse, error)
}

func RegisterContactsServiceServer(s grpc.ServiceRegistrar, srv ContactsServiceServer) {
	s.RegisterService(&ContactsService_ServiceDesc, srv)
}

func unaryHandler[Req, Resp any](fullMethod string, call func(ContactsServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ContactsServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ContactsServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ContactsService_ServiceDesc is the grpc.ServiceDesc for ContactsService.
var ContactsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ContactsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(ContactsService_Ping_FullMethodName, ContactsServiceServer.Ping)},
		{MethodName: "Login", Handler: unaryHandler(ContactsService_Login_FullMethodName, ContactsServiceServer.Login)},
		{MethodName: "RefreshToken", Handler: unaryHandler(ContactsService_RefreshToken_FullMethodName, ContactsServiceServer.RefreshToken)},
		{MethodName: "ListPeople", Handler: unaryHandler(ContactsService_ListPeople_FullMethodName, ContactsServiceServer.ListPeople)},
		{MethodName: "CountPeople", Handler: unaryHandler(ContactsService_CountPeople_FullMethodName, ContactsServiceServer.CountPeople)},
		{MethodName: "GetPerson", Handler: unaryHandler(ContactsService_GetPerson_FullMethodName, ContactsServiceServer.GetPerson)},
		{MethodName: "PostPerson", Handler: unaryHandler(ContactsService_PostPerson_FullMethodName, ContactsServiceServer.PostPerson)},
		{MethodName: "PutPerson", Handler: unaryHandler(ContactsService_PutPerson_FullMethodName, ContactsServiceServer.PutPerson)},
		{MethodName: "DeletePerson", Handler: unaryHandler(ContactsService_DeletePerson_FullMethodName, ContactsServiceServer.DeletePerson)},
		{MethodName: "CreateImageUpload", Handler: unaryHandler(ContactsService_CreateImageUpload_FullMethodName, ContactsServiceServer.CreateImageUpload)},
		{MethodName: "CompleteImageUpload", Handler: unaryHandler(ContactsService_CompleteImageUpload_FullMethodName, ContactsServiceServer.CompleteImageUpload)},
		{MethodName: "GetImageUrl", Handler: unaryHandler(ContactsService_GetImageUrl_FullMethodName, ContactsServiceServer.GetImageUrl)},
		{MethodName: "DeleteImage", Handler: unaryHandler(ContactsService_DeleteImage_FullMethodName, ContactsServiceServer.DeleteImage)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/api",
}
