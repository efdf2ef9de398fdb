package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/KirkDiggler/dungeon-layout/internal/errors"
)

// Client is a typed client for the layout service. Errors come back as
// *errors.Error with the server's code and metadata.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a layout service client on an existing connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// GenerateLayout creates and stores a new layout
func (c *Client) GenerateLayout(ctx context.Context, req *GenerateLayoutRequest, opts ...grpc.CallOption) (*GenerateLayoutResponse, error) {
	out := new(GenerateLayoutResponse)
	if err := c.invoke(ctx, GenerateLayoutMethod, req, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLayout loads a stored layout
func (c *Client) GetLayout(ctx context.Context, req *GetLayoutRequest, opts ...grpc.CallOption) (*GetLayoutResponse, error) {
	out := new(GetLayoutResponse)
	if err := c.invoke(ctx, GetLayoutMethod, req, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// RegenerateLayout rebuilds a stored layout under a new ID
func (c *Client) RegenerateLayout(ctx context.Context, req *RegenerateLayoutRequest, opts ...grpc.CallOption) (*RegenerateLayoutResponse, error) {
	out := new(RegenerateLayoutResponse)
	if err := c.invoke(ctx, RegenerateLayoutMethod, req, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteLayout removes a stored layout
func (c *Client) DeleteLayout(ctx context.Context, req *DeleteLayoutRequest, opts ...grpc.CallOption) (*DeleteLayoutResponse, error) {
	out := new(DeleteLayoutResponse)
	if err := c.invoke(ctx, DeleteLayoutMethod, req, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) invoke(ctx context.Context, method string, req, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, method, req, out, opts...); err != nil {
		return errors.FromGRPCError(err)
	}
	return nil
}
