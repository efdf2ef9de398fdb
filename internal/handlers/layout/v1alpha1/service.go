package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "dungeonlayout.api.v1alpha1.LayoutService"

// Full method names
const (
	GenerateLayoutMethod   = "/" + ServiceName + "/GenerateLayout"
	GetLayoutMethod        = "/" + ServiceName + "/GetLayout"
	RegenerateLayoutMethod = "/" + ServiceName + "/RegenerateLayout"
	DeleteLayoutMethod     = "/" + ServiceName + "/DeleteLayout"
)

// LayoutServiceServer is the server API for the layout service
type LayoutServiceServer interface {
	GenerateLayout(ctx context.Context, req *GenerateLayoutRequest) (*GenerateLayoutResponse, error)
	GetLayout(ctx context.Context, req *GetLayoutRequest) (*GetLayoutResponse, error)
	RegenerateLayout(ctx context.Context, req *RegenerateLayoutRequest) (*RegenerateLayoutResponse, error)
	DeleteLayout(ctx context.Context, req *DeleteLayoutRequest) (*DeleteLayoutResponse, error)
}

// LayoutServiceDesc describes the layout service for grpc.Server registration
var LayoutServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LayoutServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("GenerateLayout", GenerateLayoutMethod, LayoutServiceServer.GenerateLayout),
		unary("GetLayout", GetLayoutMethod, LayoutServiceServer.GetLayout),
		unary("RegenerateLayout", RegenerateLayoutMethod, LayoutServiceServer.RegenerateLayout),
		unary("DeleteLayout", DeleteLayoutMethod, LayoutServiceServer.DeleteLayout),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dungeonlayout/api/v1alpha1/layout_service",
}

// RegisterLayoutServiceServer registers srv with s
func RegisterLayoutServiceServer(s grpc.ServiceRegistrar, srv LayoutServiceServer) {
	s.RegisterService(&LayoutServiceDesc, srv)
}

func unary[Req, Resp any](
	name, fullMethod string,
	call func(LayoutServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(LayoutServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(LayoutServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
