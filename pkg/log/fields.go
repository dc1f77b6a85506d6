package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"
	FieldErrors    = "errors"

	// Service
	FieldService = "service"

	// gRPC
	FieldGRPCMethod = "grpc_method"
	FieldGRPCCode   = "grpc_code"

	// IDs
	FieldID               = "id"
	FieldTimestampMs      = "timestamp_ms"
	FieldCount            = "count"
	FieldRandomnessLength = "randomness_length"
	FieldAlphabetLength   = "alphabet_length"
	FieldReason           = "reason"
)
