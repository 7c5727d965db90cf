// Package rpc serves the probability engine over gRPC. Messages are
// google.protobuf.Struct values so no generated code is needed.
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "drawodds.v1.ProbabilityService"

const (
	MethodDrawProbability     = "DrawProbability"
	MethodHandProbability     = "HandProbability"
	MethodMulliganProbability = "MulliganProbability"
	MethodTurnProbability     = "TurnProbability"
)

// ProbabilityServer is the server API for the probability service.
type ProbabilityServer interface {
	DrawProbability(context.Context, *structpb.Struct) (*structpb.Struct, error)
	HandProbability(context.Context, *structpb.Struct) (*structpb.Struct, error)
	MulliganProbability(context.Context, *structpb.Struct) (*structpb.Struct, error)
	TurnProbability(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(ProbabilityServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(name string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(ProbabilityServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(ProbabilityServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func fullMethod(name string) string { return "/" + ServiceName + "/" + name }

// ServiceDesc describes ProbabilityServer for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProbabilityServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodDrawProbability, ProbabilityServer.DrawProbability),
		unary(MethodHandProbability, ProbabilityServer.HandProbability),
		unary(MethodMulliganProbability, ProbabilityServer.MulliganProbability),
		unary(MethodTurnProbability, ProbabilityServer.TurnProbability),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "drawodds/v1/probability.proto",
}

// Register adds srv to s.
func Register(s grpc.ServiceRegistrar, srv ProbabilityServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client calls the probability service on an existing connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DrawProbability(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodDrawProbability, in, opts...)
}

func (c *Client) HandProbability(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodHandProbability, in, opts...)
}

func (c *Client) MulliganProbability(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodMulliganProbability, in, opts...)
}

func (c *Client) TurnProbability(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodTurnProbability, in, opts...)
}
