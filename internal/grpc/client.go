package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

// IDClient calls rowid.v1.RowIDService.
type IDClient struct {
	conn *grpc.ClientConn
}

// NewIDClient connects to the rowid service at address. Extra dial options
// are appended after the insecure transport credentials.
func NewIDClient(address string, opts ...grpc.DialOption) (*IDClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rowid service: %w", err)
	}
	return &IDClient{conn: conn}, nil
}

// Call invokes method with req. Errors are gRPC status errors.
func (c *IDClient) Call(ctx context.Context, method string, req map[string]interface{}) (map[string]interface{}, error) {
	in, err := structpb.NewStruct(req)
	if err != nil {
		return nil, fmt.Errorf("invalid %s request: %w", method, err)
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, "/"+ServiceName+"/"+method, in, out); err != nil {
		return nil, err
	}
	return out.AsMap(), nil
}

// GenerateID returns a new ID with the service defaults.
func (c *IDClient) GenerateID(ctx context.Context) (string, error) {
	resp, err := c.Call(ctx, MethodGenerate, map[string]interface{}{})
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	id, _ := resp["id"].(string)
	return id, nil
}

func (c *IDClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
