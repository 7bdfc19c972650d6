package report

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/domonda/go-types/date"
	"gopkg.in/yaml.v3"
)

// Kind is the discriminator of a Value.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindText:
		return "Text"
	case KindNumber:
		return "Number"
	case KindDate:
		return "Date"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is the content of a single table cell.
// It is a tagged union of text, number, date or empty
// and the zero value is an empty cell.
//
// Formatters switch over Kind instead of
// inspecting arbitrary Go types at runtime.
type Value struct {
	kind Kind
	text string
	num  float64
	time time.Time
}

// Empty returns an empty Value.
func Empty() Value { return Value{} }

// Text returns a text Value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number returns a numeric Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Date returns a date Value.
func Date(t time.Time) Value { return Value{kind: KindDate, time: t} }

// Percent returns a numeric Value holding the fraction of p,
// which is the stored convention of percentage formatted cells.
//
// Use Percent(WholePercent(45)) or Percent(Fraction(0.45))
// to get a cell that renders as "45.00%".
func Percent(p Percentage) Value { return Number(p.Fraction()) }

// ValueOf converts a Go value into a Value.
//
// Supported are string, time.Time, date.Date, Value itself,
// nil and pointers to them. All types with an integer or float
// kind become numbers, including named types like money.Amount.
// Other types are converted to text with their String method
// or fmt.Sprint.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Empty()
	case Value:
		return x
	case string:
		return Text(x)
	case time.Time:
		return Date(x)
	case date.Date:
		if x.IsZero() {
			return Empty()
		}
		return Date(x.MidnightUTC())
	case Percentage:
		return Percent(x)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.Pointer:
		if rv.IsNil() {
			return Empty()
		}
	}
	if s, ok := v.(fmt.Stringer); ok {
		return Text(s.String())
	}
	if rv.Kind() == reflect.Pointer {
		return ValueOf(rv.Elem().Interface())
	}
	return Text(fmt.Sprint(v))
}

// Values converts a slice of Go values with ValueOf.
func Values(vals ...any) []Value {
	row := make([]Value, len(vals))
	for i, v := range vals {
		row[i] = ValueOf(v)
	}
	return row
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// Text returns the string of a text Value
// and false for all other kinds.
func (v Value) Text() (string, bool) { return v.text, v.kind == KindText }

// Number returns the float of a numeric Value
// and false for all other kinds.
func (v Value) Number() (float64, bool) { return v.num, v.kind == KindNumber }

// Date returns the time of a date Value
// and false for all other kinds.
func (v Value) Date() (time.Time, bool) { return v.time, v.kind == KindDate }

// Interface returns the underlying Go value
// or nil for an empty Value.
func (v Value) Interface() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return v.num
	case KindDate:
		return v.time
	}
	return nil
}

// String returns the raw string representation of the value
// as used for column width calculation and CSV output.
// Numbers use the shortest representation that round trips,
// dates use the ISO 8601 date when they have no time of day.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		if math.IsInf(v.num, 0) || math.IsNaN(v.num) {
			return fmt.Sprint(v.num)
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindDate:
		if h, m, s := v.time.Clock(); h == 0 && m == 0 && s == 0 && v.time.Nanosecond() == 0 {
			return v.time.Format(time.DateOnly)
		}
		return v.time.Format(time.RFC3339)
	}
	return ""
}

// Equal reports if v and other have the same kind and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == other.text
	case KindNumber:
		return v.num == other.num
	case KindDate:
		return v.time.Equal(other.time)
	}
	return true
}

func (v Value) GoString() string {
	switch v.kind {
	case KindText:
		return fmt.Sprintf("report.Text(%q)", v.text)
	case KindNumber:
		return fmt.Sprintf("report.Number(%v)", v.num)
	case KindDate:
		return fmt.Sprintf("report.Date(%s)", v.time.Format(time.RFC3339))
	}
	return "report.Empty()"
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindNumber:
		return json.Marshal(v.num)
	case KindDate:
		return json.Marshal(v.String())
	}
	return []byte("null"), nil
}

// UnmarshalJSON implements json.Unmarshaler.
// JSON strings become text, numbers become numbers
// and null becomes an empty Value.
// Date strings stay text until a date formatter parses them.
func (v *Value) UnmarshalJSON(data []byte) error {
	var x any
	if err := json.Unmarshal(data, &x); err != nil {
		return err
	}
	switch x := x.(type) {
	case nil:
		*v = Empty()
	case string:
		*v = Text(x)
	case float64:
		*v = Number(x)
	case bool:
		*v = Text(strconv.FormatBool(x))
	default:
		return fmt.Errorf("can't unmarshal JSON %s as report.Value", data)
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
// Scalars tagged as int or float become numbers,
// null becomes an empty Value and everything else text.
// Unquoted YAML timestamps are kept as text
// so date parsing stays with the date formatter.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected scalar for report.Value", node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		*v = Empty()
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*v = Number(f)
	default:
		*v = Text(node.Value)
	}
	return nil
}
