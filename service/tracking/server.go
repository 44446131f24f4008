package tracking

import (
	"context"
	"errors"

	"github.com/QuangTung97/reva-click/pkg/grpclib"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ClickServiceName ...
const ClickServiceName = "reva.click.v1.ClickService"

const (
	verifyFullMethod     = "/" + ClickServiceName + "/Verify"
	trackFullMethod      = "/" + ClickServiceName + "/Track"
	createLinkFullMethod = "/" + ClickServiceName + "/CreateLink"
)

// ClickServiceServer ...
type ClickServiceServer interface {
	Verify(ctx context.Context, req *VerifyRequest) (*VerifyResponse, error)
	Track(ctx context.Context, req *TrackRequest) (*TrackResponse, error)
	CreateLink(ctx context.Context, req *CreateLinkRequest) (*CreateLinkResponse, error)
}

func verifyHandler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(VerifyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClickServiceServer).Verify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: verifyFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClickServiceServer).Verify(ctx, req.(*VerifyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func trackHandler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(TrackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClickServiceServer).Track(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: trackFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClickServiceServer).Track(ctx, req.(*TrackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func createLinkHandler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(CreateLinkRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClickServiceServer).CreateLink(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: createLinkFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClickServiceServer).CreateLink(ctx, req.(*CreateLinkRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ClickServiceDesc describes the service for grpc.Server, messages are JSON encoded
var ClickServiceDesc = grpc.ServiceDesc{
	ServiceName: ClickServiceName,
	HandlerType: (*ClickServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Verify", Handler: verifyHandler},
		{MethodName: "Track", Handler: trackHandler},
		{MethodName: "CreateLink", Handler: createLinkHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "reva/click/v1",
}

// RegisterClickServiceServer ...
func RegisterClickServiceServer(s grpc.ServiceRegistrar, srv ClickServiceServer) {
	s.RegisterService(&ClickServiceDesc, srv)
}

// Server ...
type Server struct {
	service IService
}

var _ ClickServiceServer = &Server{}

// NewServer ...
func NewServer(service IService) *Server {
	return &Server{
		service: service,
	}
}

func toStatusError(err error) error {
	switch {
	case errors.Is(err, ErrLinkNotFound), errors.Is(err, ErrCampaignNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrCampaignInactive):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrCodeCollision):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// Verify ...
func (s *Server) Verify(ctx context.Context, req *VerifyRequest) (*VerifyResponse, error) {
	result := s.service.Verify(ctx, req.toInput())
	return &VerifyResponse{Result: result}, nil
}

// Track ...
func (s *Server) Track(ctx context.Context, req *TrackRequest) (*TrackResponse, error) {
	output, err := s.service.Visit(ctx, VisitInput{
		Code:      req.Code,
		SourceIP:  req.SourceIP,
		UserAgent: req.UserAgent,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return newTrackResponse(output), nil
}

// CreateLink ...
func (s *Server) CreateLink(ctx context.Context, req *CreateLinkRequest) (*CreateLinkResponse, error) {
	link, err := s.service.CreateLink(ctx, req.CampaignID, req.PromoterID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return newCreateLinkResponse(link), nil
}

// Client calls ClickService with the JSON codec
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient ...
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(grpclib.JSONCodecName)}, opts...)
}

// Verify ...
func (c *Client) Verify(ctx context.Context, in *VerifyRequest, opts ...grpc.CallOption) (*VerifyResponse, error) {
	out := new(VerifyResponse)
	if err := c.cc.Invoke(ctx, verifyFullMethod, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// Track ...
func (c *Client) Track(ctx context.Context, in *TrackRequest, opts ...grpc.CallOption) (*TrackResponse, error) {
	out := new(TrackResponse)
	if err := c.cc.Invoke(ctx, trackFullMethod, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLink ...
func (c *Client) CreateLink(
	ctx context.Context, in *CreateLinkRequest, opts ...grpc.CallOption,
) (*CreateLinkResponse, error) {
	out := new(CreateLinkResponse)
	if err := c.cc.Invoke(ctx, createLinkFullMethod, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
