package builderv1

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// String returns a required string field.
func String(s *structpb.Struct, key string) (string, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "%s is required", key)
	}
	str, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok || str.StringValue == "" {
		return "", status.Errorf(codes.InvalidArgument, "%s must be a non-empty string", key)
	}
	return str.StringValue, nil
}

// ID returns a required row id. A value that is not a UUID cannot name an
// existing row and is reported as not found.
func ID(s *structpb.Struct, key string) (string, error) {
	v, err := String(s, key)
	if err != nil {
		return "", err
	}
	if _, err := uuid.Parse(v); err != nil {
		return "", status.Errorf(codes.NotFound, "%s %q not found", key, v)
	}
	return v, nil
}

// OptionalID is OptionalString for row ids, with the same check as ID.
func OptionalID(s *structpb.Struct, key string) (value *string, set bool, err error) {
	value, set, err = OptionalString(s, key)
	if err != nil || value == nil {
		return value, set, err
	}
	if _, err := uuid.Parse(*value); err != nil {
		return nil, set, status.Errorf(codes.NotFound, "%s %q not found", key, *value)
	}
	return value, set, nil
}

// OptionalString distinguishes an absent field (set=false) from an explicit
// null (set=true, value=nil).
func OptionalString(s *structpb.Struct, key string) (value *string, set bool, err error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return nil, false, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return nil, true, nil
	case *structpb.Value_StringValue:
		if k.StringValue == "" {
			return nil, true, nil
		}
		return &k.StringValue, true, nil
	}
	return nil, false, status.Errorf(codes.InvalidArgument, "%s must be a string or null", key)
}

// Int returns a required integral number field. Fractional values are rejected
// rather than truncated.
func Int(s *structpb.Struct, key string) (int, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s is required", key)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be a number", key)
	}
	f := n.NumberValue
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be an integer", key)
	}
	return int(f), nil
}

// OptionalInt returns fallback when key is absent or null.
func OptionalInt(s *structpb.Struct, key string, fallback int) (int, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return fallback, nil
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return fallback, nil
	}
	return Int(s, key)
}

// OptionalBool returns nil when key is absent or null.
func OptionalBool(s *structpb.Struct, key string) (*bool, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return nil, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return nil, nil
	case *structpb.Value_BoolValue:
		return &k.BoolValue, nil
	}
	return nil, status.Errorf(codes.InvalidArgument, "%s must be a boolean", key)
}

// Object returns a required nested struct field encoded as JSON.
func Object(s *structpb.Struct, key string) ([]byte, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "%s is required", key)
	}
	obj := v.GetStructValue()
	if obj == nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be an object", key)
	}
	raw, err := json.Marshal(obj.AsMap())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: %v", key, err)
	}
	return raw, nil
}

// FromJSON converts any JSON-encodable value into a Struct. v must encode to
// a JSON object.
func FromJSON(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	return structpb.NewStruct(m)
}
