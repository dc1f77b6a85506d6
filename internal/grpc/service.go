package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name. Requests and
// responses are google.protobuf.Struct messages.
const ServiceName = "rowid.v1.RowIDService"

const (
	MethodGenerate      = "Generate"
	MethodGenerateBatch = "GenerateBatch"
	MethodVerify        = "Verify"
	MethodValidate      = "Validate"
	MethodParse         = "Parse"
	MethodEncode        = "Encode"
	MethodRandomness    = "Randomness"
)

// RowIDServiceServer is the server API for rowid.v1.RowIDService.
type RowIDServiceServer interface {
	Generate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GenerateBatch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Verify(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Validate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Parse(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Encode(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Randomness(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterRowIDServiceServer registers srv on s.
func RegisterRowIDServiceServer(s grpc.ServiceRegistrar, srv RowIDServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

type unaryMethod func(RowIDServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RowIDServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodGenerate, RowIDServiceServer.Generate),
		unary(MethodGenerateBatch, RowIDServiceServer.GenerateBatch),
		unary(MethodVerify, RowIDServiceServer.Verify),
		unary(MethodValidate, RowIDServiceServer.Validate),
		unary(MethodParse, RowIDServiceServer.Parse),
		unary(MethodEncode, RowIDServiceServer.Encode),
		unary(MethodRandomness, RowIDServiceServer.Randomness),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rowid/v1/rowid.proto",
}

func unary(name string, m unaryMethod) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return m(srv.(RowIDServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return m(srv.(RowIDServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
