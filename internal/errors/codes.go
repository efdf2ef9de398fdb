package errors

import "google.golang.org/grpc/codes"

// Code classifies an Error. Values match the gRPC code names.
type Code string

const (
	CodeOK               Code = "OK"
	CodeCanceled         Code = "CANCELED"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeAlreadyExists    Code = "ALREADY_EXISTS"
	CodeOutOfRange       Code = "OUT_OF_RANGE"
	CodeUnimplemented    Code = "UNIMPLEMENTED"
	CodeInternal         Code = "INTERNAL"
	CodeUnavailable      Code = "UNAVAILABLE"
	CodeDataLoss         Code = "DATA_LOSS"
)

// grpcCodes pairs every Code with its gRPC status code
var grpcCodes = map[Code]codes.Code{
	CodeOK:               codes.OK,
	CodeCanceled:         codes.Canceled,
	CodeInvalidArgument:  codes.InvalidArgument,
	CodeDeadlineExceeded: codes.DeadlineExceeded,
	CodeNotFound:         codes.NotFound,
	CodeAlreadyExists:    codes.AlreadyExists,
	CodeOutOfRange:       codes.OutOfRange,
	CodeUnimplemented:    codes.Unimplemented,
	CodeInternal:         codes.Internal,
	CodeUnavailable:      codes.Unavailable,
	CodeDataLoss:         codes.DataLoss,
}

var fromGRPCCodes = func() map[codes.Code]Code {
	m := make(map[codes.Code]Code, len(grpcCodes))
	for c, g := range grpcCodes {
		m[g] = c
	}
	return m
}()

func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the gRPC status code for c. Unknown codes map to Unknown.
func (c Code) GRPCCode() codes.Code {
	if g, ok := grpcCodes[c]; ok {
		return g
	}
	return codes.Unknown
}

// codeFromGRPC maps a gRPC status code back to a Code. Codes this service
// never produces collapse to Internal.
func codeFromGRPC(g codes.Code) Code {
	if c, ok := fromGRPCCodes[g]; ok {
		return c
	}
	return CodeInternal
}
