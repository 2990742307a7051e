package model

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Timestamp wraps time.Time and tolerates the mixed representations that
// ended up in stored records: a native BSON datetime, an RFC3339 string, or
// an epoch-milliseconds number. Everything downstream of the repositories
// sees a single comparable instant.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.Time)
}

func (t *Timestamp) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: bt, Value: data}

	switch bt {
	case bson.TypeDateTime:
		t.Time = rv.Time()
	case bson.TypeString:
		parsed, err := time.Parse(time.RFC3339, rv.StringValue())
		if err != nil {
			return fmt.Errorf("timestamp %q is not RFC3339: %w", rv.StringValue(), err)
		}
		t.Time = parsed
	case bson.TypeInt64:
		t.Time = time.UnixMilli(rv.Int64())
	case bson.TypeInt32:
		t.Time = time.UnixMilli(int64(rv.Int32()))
	case bson.TypeDouble:
		t.Time = time.UnixMilli(int64(rv.Double()))
	case bson.TypeNull:
		t.Time = time.Time{}
	default:
		return fmt.Errorf("unsupported timestamp BSON type %s", bt)
	}
	return nil
}
