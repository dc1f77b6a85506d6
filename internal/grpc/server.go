package grpc

import (
	"context"
	"fmt"
	"math"
	"net"
	"strconv"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/weiawesome/rowid/internal/domain"
	"github.com/weiawesome/rowid/internal/generator"
	pkglog "github.com/weiawesome/rowid/pkg/log"
)

type idServer struct {
	gen generator.Generator
}

func (s *idServer) Generate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ts, err := uintField(req, "timestamp_ms")
	if err != nil {
		return nil, err
	}
	length, err := intField(req, "randomness_length")
	if err != nil {
		return nil, err
	}

	res := s.gen.GenerateAt(ts, length)
	if !res.Success {
		return nil, toStatus(res.Err)
	}
	return structpb.NewStruct(map[string]interface{}{"id": res.Result})
}

func (s *idServer) GenerateBatch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	count, err := intField(req, "count")
	if err != nil {
		return nil, err
	}
	if count == nil {
		return nil, status.Error(codes.InvalidArgument, "count is required")
	}

	ids, err := s.gen.GenerateBatch(*count)
	if err != nil {
		return nil, toStatus(err)
	}

	list := make([]interface{}, len(ids))
	for i, id := range ids {
		list[i] = id
	}
	return structpb.NewStruct(map[string]interface{}{"ids": list})
}

func (s *idServer) Verify(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := stringField(req, "id")
	if err != nil {
		return nil, err
	}

	resp := domain.NewVerifyResponse(s.gen.Verify(id))
	out := map[string]interface{}{
		"valid":   resp.Valid,
		"natural": resp.Natural,
	}
	if resp.Valid {
		out["timestamp_ms"] = strconv.FormatUint(resp.TimestampMs, 10)
		out["time"] = resp.Time
	} else {
		out["error_code"] = resp.ErrorCode
		out["error"] = resp.Error
	}
	return structpb.NewStruct(out)
}

func (s *idServer) Validate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := stringField(req, "id")
	if err != nil {
		return nil, err
	}

	valid, reason := s.gen.Validate(id)
	out := map[string]interface{}{"valid": valid}
	if !valid {
		out["reason"] = reason
	}
	return structpb.NewStruct(out)
}

func (s *idServer) Parse(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := stringField(req, "id")
	if err != nil {
		return nil, err
	}

	result, err := s.gen.Parse(id)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := domain.NewParseResponse(result)
	return structpb.NewStruct(map[string]interface{}{
		"timestamp_ms": strconv.FormatUint(resp.TimestampMs, 10),
		"time":         resp.Time,
		"natural":      resp.Natural,
		"random_part":  resp.RandomPart,
		"id_length":    resp.IDLength,
		"alphabet":     resp.Alphabet,
	})
}

func (s *idServer) Encode(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ts, err := uintField(req, "timestamp_ms")
	if err != nil {
		return nil, err
	}
	if ts == nil {
		return nil, status.Error(codes.InvalidArgument, "timestamp_ms is required")
	}

	encoded, err := s.gen.Encode(*ts)
	if err != nil {
		return nil, toStatus(err)
	}
	return structpb.NewStruct(map[string]interface{}{"encoded": encoded})
}

func (s *idServer) Randomness(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	length, err := intField(req, "length")
	if err != nil {
		return nil, err
	}
	if length == nil {
		return nil, status.Error(codes.InvalidArgument, "length is required")
	}

	r, err := s.gen.Randomness(*length)
	if err != nil {
		return nil, toStatus(err)
	}
	return structpb.NewStruct(map[string]interface{}{"randomness": r})
}

// NewServer creates a gRPC server with the rowid service and logging
// interceptor registered.
func NewServer(gen generator.Generator, logger zerolog.Logger) *grpc.Server {
	s := grpc.NewServer(
		grpc.UnaryInterceptor(pkglog.UnaryServerInterceptor(logger)),
	)
	RegisterRowIDServiceServer(s, &idServer{gen: gen})
	return s
}

// StartGRPCServer creates and starts the gRPC server in a background goroutine.
func StartGRPCServer(addr string, gen generator.Generator, logger zerolog.Logger) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s := NewServer(gen, logger)
	go func() {
		logger.Info().Str("addr", addr).Msg("grpc server listening")
		if err := s.Serve(lis); err != nil {
			logger.Error().Err(err).Msg("grpc server error")
		}
	}()

	return s, nil
}

func toStatus(err error) error {
	if domain.IsInvalidInput(err) {
		return status.Errorf(codes.InvalidArgument, "%s: %v", domain.ErrorCode(err), err)
	}
	return status.Error(codes.Internal, err.Error())
}

func field(req *structpb.Struct, key string) (*structpb.Value, bool) {
	v, ok := req.GetFields()[key]
	if !ok {
		return nil, false
	}
	if _, null := v.GetKind().(*structpb.Value_NullValue); null {
		return nil, false
	}
	return v, true
}

// uintField reads an optional non-negative integer. Numbers and decimal
// strings are accepted; strings keep precision above 2^53.
func uintField(req *structpb.Struct, key string) (*uint64, error) {
	v, ok := field(req, key)
	if !ok {
		return nil, nil
	}

	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		f := k.NumberValue
		if f < 0 || f != math.Trunc(f) || f >= math.MaxUint64 {
			return nil, status.Errorf(codes.InvalidArgument, "%s must be a non-negative integer", key)
		}
		u := uint64(f)
		return &u, nil
	case *structpb.Value_StringValue:
		u, err := strconv.ParseUint(k.StringValue, 10, 64)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "%s must be a non-negative integer", key)
		}
		return &u, nil
	default:
		return nil, status.Errorf(codes.InvalidArgument, "%s must be a number", key)
	}
}

func intField(req *structpb.Struct, key string) (*int, error) {
	v, ok := field(req, key)
	if !ok {
		return nil, nil
	}

	f, isNumber := v.GetKind().(*structpb.Value_NumberValue)
	if !isNumber || f.NumberValue != math.Trunc(f.NumberValue) ||
		f.NumberValue < math.MinInt32 || f.NumberValue > math.MaxInt32 {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be an integer", key)
	}
	n := int(f.NumberValue)
	return &n, nil
}

func stringField(req *structpb.Struct, key string) (string, error) {
	v, ok := field(req, key)
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "%s is required", key)
	}
	s, isString := v.GetKind().(*structpb.Value_StringValue)
	if !isString {
		return "", status.Errorf(codes.InvalidArgument, "%s must be a string", key)
	}
	return s.StringValue, nil
}
