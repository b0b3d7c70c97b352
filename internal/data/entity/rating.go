package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Rating is a review score. Stored documents hold it either as a number or
// as a numeric string, so decoding accepts both and truncates to an int.
type Rating int

func (r Rating) Int() int {
	return int(r)
}

func parseRating(s string) (Rating, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("rating %q is not numeric", s)
	}
	return Rating(math.Trunc(f)), nil
}

func (r Rating) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(r))), nil
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := parseRating(s)
		if err != nil {
			return err
		}
		*r = v
		return nil
	}

	v, err := parseRating(string(data))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Rating) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(int32(r))
}

// UnmarshalBSONValue never fails on a malformed string; it reads as 0,
// the same value the count-up aggregation uses for it.
func (r *Rating) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.Int32:
		*r = Rating(raw.Int32())
	case bsontype.Int64:
		*r = Rating(raw.Int64())
	case bsontype.Double:
		*r = Rating(math.Trunc(raw.Double()))
	case bsontype.Decimal128:
		v, _ := parseRating(raw.Decimal128().String())
		*r = v
	case bsontype.String:
		v, _ := parseRating(raw.StringValue())
		*r = v
	case bsontype.Null, bsontype.Undefined:
		*r = 0
	default:
		return fmt.Errorf("cannot decode rating from bson %s", t)
	}

	return nil
}
