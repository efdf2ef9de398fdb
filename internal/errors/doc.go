// Package errors is the error type shared by the engine, the layout store,
// the service and the gRPC handlers. Every error carries a Code that maps
// one to one onto a gRPC status code, plus optional metadata.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("layout not found")
//	err := errors.InvalidArgumentf("zone %d must have positive dimensions", id)
//
// Adding metadata:
//
//	err := errors.NotFound("layout not found").
//	    WithMeta("layout_id", layoutID).
//	    WithMeta("seed", seed)
//
// Wrapping errors:
//
//	if err := repo.Get(id); err != nil {
//	    return errors.Wrap(err, "failed to get layout")
//	}
//
// Changing error semantics:
//
//	if err := ctx.Err(); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "generation timed out")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	if room.Name == "" {
//	    vb.RequiredField("rooms[0].name")
//	}
//	if conn.Count < 1 {
//	    vb.Fieldf("zones[0].connector.count", "must be at least 1, got %d", conn.Count)
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// Converting to gRPC:
//
//	func (h *Handler) GetLayout(ctx context.Context, req *GetLayoutRequest) (*GetLayoutResponse, error) {
//	    out, err := h.service.GetLayout(ctx, &dungeon.GetLayoutInput{LayoutID: req.LayoutID})
//	    if err != nil {
//	        return nil, errors.ToGRPCError(err)
//	    }
//	    return &GetLayoutResponse{Layout: out.Layout}, nil
//	}
//
// Error metadata is carried as a google.protobuf.Struct status detail.
//
// Converting from gRPC:
//
//	layout, err := client.GetLayout(ctx, id)
//	if err != nil {
//	    return nil, errors.FromGRPCError(err)
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include layout IDs in metadata
//   - Wrap redis errors with context
//
// Engine layer:
//   - Return InvalidArgument for malformed zone configuration
//   - Report zone level problems in the layout, not as errors
//   - Map context cancellation to Canceled or DeadlineExceeded
//
// Service/Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Convert errors to gRPC format
//   - Extract user-friendly messages
//   - Log internal errors for debugging
//
// # Error Codes
//
//   - InvalidArgument: malformed request, zone or room configuration
//   - NotFound: unknown layout id or config file
//   - AlreadyExists: layout id collision in the store
//   - OutOfRange: grid position outside the zone bands
//   - Canceled, DeadlineExceeded: generation stopped by its context
//   - Unavailable: the layout store cannot be reached
//   - DataLoss: a stored layout no longer decodes
//   - Internal: anything else
package errors
