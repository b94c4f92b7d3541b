package schema

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestCastNilIsAlwaysNil(t *testing.T) {
	is := is.New(t)

	v, err := DefaultCaster(Attribute{Name: "title", Type: String}, nil)
	is.NoErr(err)
	is.Equal(v, nil)
}

func TestCastInteger(t *testing.T) {
	is := is.New(t)
	attr := Attribute{Name: "pages", Type: Integer}

	v, err := DefaultCaster(attr, float64(412))
	is.NoErr(err)
	is.Equal(v, int64(412))

	_, err = DefaultCaster(attr, 4.5)
	is.True(err != nil) // fractions are not integers
}

func TestCastIntegerOutOfRangeFails(t *testing.T) {
	is := is.New(t)
	attr := Attribute{Name: "pages", Type: Integer}

	_, err := DefaultCaster(attr, float64(1e20))
	is.True(err != nil)

	_, err = DefaultCaster(attr, float64(-1e20))
	is.True(err != nil)

	_, err = DefaultCaster(attr, math.Inf(1))
	is.True(err != nil)

	_, err = DefaultCaster(attr, math.NaN())
	is.True(err != nil)

	v, err := DefaultCaster(attr, float64(math.MinInt64))
	is.NoErr(err)
	is.Equal(v, int64(math.MinInt64))
}

func TestCastIntegerFromJSONNumberIsExact(t *testing.T) {
	is := is.New(t)
	attr := Attribute{Name: "pages", Type: Integer}

	v, err := DefaultCaster(attr, json.Number("9007199254740993"))
	is.NoErr(err)
	is.Equal(v, int64(9007199254740993))

	_, err = DefaultCaster(attr, json.Number("99999999999999999999"))
	is.True(err != nil)
}

func TestCastTime(t *testing.T) {
	is := is.New(t)

	v, err := DefaultCaster(Attribute{Name: "born", Type: Time}, "1947-09-21T00:00:00Z")
	is.NoErr(err)
	is.Equal(v, time.Date(1947, 9, 21, 0, 0, 0, 0, time.UTC))

	_, err = DefaultCaster(Attribute{Name: "born", Type: Time}, "yesterday")
	is.True(err != nil)
}

func TestCastMismatchFails(t *testing.T) {
	is := is.New(t)

	_, err := DefaultCaster(Attribute{Name: "title", Type: String}, float64(1))
	is.True(err != nil)

	_, err = DefaultCaster(Attribute{Name: "active", Type: Boolean}, "yes")
	is.True(err != nil)
}

func TestCastAnyPassesValuesThrough(t *testing.T) {
	is := is.New(t)

	raw := map[string]any{"nested": []any{"a", "b"}}
	v, err := DefaultCaster(Attribute{Name: "extra", Type: Any}, raw)
	is.NoErr(err)
	is.Equal(v, raw)
}
