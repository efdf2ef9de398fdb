// Package v1alpha1 handles the layout gRPC service interface
package v1alpha1

import (
	"context"
	"time"

	"github.com/KirkDiggler/dungeon-layout/internal/errors"
	"github.com/KirkDiggler/dungeon-layout/internal/orchestrators/dungeon"
)

// HandlerConfig holds dependencies for the layout handler
type HandlerConfig struct {
	LayoutService dungeon.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.LayoutService == nil {
		return errors.InvalidArgument("layout service is required")
	}
	return nil
}

// Handler implements LayoutServiceServer
type Handler struct {
	layoutService dungeon.Service
}

var _ LayoutServiceServer = (*Handler)(nil)

// NewHandler creates a new layout handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		layoutService: cfg.LayoutService,
	}, nil
}

// GenerateLayout generates and stores a layout
func (h *Handler) GenerateLayout(
	ctx context.Context,
	req *GenerateLayoutRequest,
) (*GenerateLayoutResponse, error) {
	vb := errors.NewValidationBuilder()
	if len(req.Zones) == 0 {
		vb.RequiredField("zones")
	}
	if req.TTLSeconds < 0 {
		vb.Field("ttl_seconds", "must not be negative")
	}
	if req.Options != nil {
		if err := req.Options.WithDefaults().Validate(); err != nil {
			return nil, errors.ToGRPCError(err)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.layoutService.GenerateLayout(ctx, &dungeon.GenerateLayoutInput{
		Seed:    req.Seed,
		Zones:   req.Zones,
		Options: req.Options,
		TTL:     time.Duration(req.TTLSeconds) * time.Second,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GenerateLayoutResponse{Layout: out.Layout}, nil
}

// GetLayout retrieves a stored layout
func (h *Handler) GetLayout(
	ctx context.Context,
	req *GetLayoutRequest,
) (*GetLayoutResponse, error) {
	if req.LayoutID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("layout_id is required"))
	}

	out, err := h.layoutService.GetLayout(ctx, &dungeon.GetLayoutInput{LayoutID: req.LayoutID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetLayoutResponse{Layout: out.Layout}, nil
}

// RegenerateLayout rebuilds a stored layout
func (h *Handler) RegenerateLayout(
	ctx context.Context,
	req *RegenerateLayoutRequest,
) (*RegenerateLayoutResponse, error) {
	vb := errors.NewValidationBuilder()
	if req.LayoutID == "" {
		vb.RequiredField("layout_id")
	}
	if req.NewSeed != "" && req.FreshSeed {
		vb.Field("new_seed", "cannot be combined with fresh_seed")
	}
	if req.TTLSeconds < 0 {
		vb.Field("ttl_seconds", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.layoutService.RegenerateLayout(ctx, &dungeon.RegenerateLayoutInput{
		LayoutID:  req.LayoutID,
		NewSeed:   req.NewSeed,
		FreshSeed: req.FreshSeed,
		Options:   req.Options,
		TTL:       time.Duration(req.TTLSeconds) * time.Second,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RegenerateLayoutResponse{
		Layout:     out.Layout,
		PreviousID: out.PreviousID,
	}, nil
}

// DeleteLayout removes a stored layout
func (h *Handler) DeleteLayout(
	ctx context.Context,
	req *DeleteLayoutRequest,
) (*DeleteLayoutResponse, error) {
	if req.LayoutID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("layout_id is required"))
	}

	out, err := h.layoutService.DeleteLayout(ctx, &dungeon.DeleteLayoutInput{LayoutID: req.LayoutID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteLayoutResponse{Deleted: out.Deleted}, nil
}
