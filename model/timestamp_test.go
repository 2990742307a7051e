package model

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Each representation the stored records use for the same instant must
// unmarshal to the same Timestamp.
func TestTimestampUnmarshalMixedRepresentations(t *testing.T) {
	want := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	type doc struct {
		TS Timestamp `bson:"ts"`
	}

	cases := []struct {
		name string
		raw  bson.M
	}{
		{"datetime", bson.M{"ts": want}},
		{"rfc3339 string", bson.M{"ts": want.Format(time.RFC3339)}},
		{"epoch millis int64", bson.M{"ts": want.UnixMilli()}},
		{"epoch millis double", bson.M{"ts": float64(want.UnixMilli())}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := bson.Marshal(tc.raw)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}

			var got doc
			if err := bson.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !got.TS.Equal(want) {
				t.Errorf("timestamp = %v, want %v", got.TS.Time, want)
			}
		})
	}
}

func TestTimestampUnmarshalNull(t *testing.T) {
	type doc struct {
		TS Timestamp `bson:"ts"`
	}

	data, err := bson.Marshal(bson.M{"ts": nil})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got doc
	if err := bson.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.TS.IsZero() {
		t.Errorf("timestamp = %v, want zero", got.TS.Time)
	}
}

func TestTimestampRejectsUnknownType(t *testing.T) {
	type doc struct {
		TS Timestamp `bson:"ts"`
	}

	data, err := bson.Marshal(bson.M{"ts": true})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got doc
	if err := bson.Unmarshal(data, &got); err == nil {
		t.Error("expected error for boolean timestamp")
	}
}

func TestTimestampMarshalRoundTrip(t *testing.T) {
	type doc struct {
		TS Timestamp `bson:"ts"`
	}

	want := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	data, err := bson.Marshal(doc{TS: NewTimestamp(want)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got doc
	if err := bson.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.TS.Equal(want) {
		t.Errorf("timestamp = %v, want %v", got.TS.Time, want)
	}
}
