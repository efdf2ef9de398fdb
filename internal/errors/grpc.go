package errors

import (
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts err to a status error. An *Error keeps its code and
// message, and its metadata rides along as a Struct detail. Existing status
// errors pass through and anything else becomes Internal.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var layoutErr *Error
	if !As(err, &layoutErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(layoutErr.Code.GRPCCode(), layoutErr.Message)
	// metadata that cannot be encoded is dropped, the call still fails with
	// the right code
	if details, ok := metaDetails(layoutErr.Meta); ok {
		if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
			st = withDetails
		}
	}
	return st.Err()
}

// FromGRPCError rebuilds an *Error from a status error returned by the layout
// service. Errors that carry no status are returned unchanged.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	out := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}
	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			out.Meta = meta.AsMap()
			break
		}
	}
	return out
}

// metaDetails converts error metadata to a Struct. Values go through JSON first
// so typed maps and slices become the generic shapes structpb accepts.
func metaDetails(meta map[string]interface{}) (*structpb.Struct, bool) {
	if len(meta) == 0 {
		return nil, false
	}

	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, false
	}
	var generic map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, false
	}

	details, err := structpb.NewStruct(generic)
	if err != nil {
		return nil, false
	}
	return details, true
}
