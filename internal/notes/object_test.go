package notes

import (
	"encoding/json"
	"strings"
	"testing"
)

// object builds an *Object from alternating keys and values.
func object(kv ...any) *Object {
	o := NewObject()
	for i := 0; i+1 < len(kv); i += 2 {
		o.Set(kv[i].(string), kv[i+1])
	}
	return o
}

func TestObjectSetKeepsFirstPosition(t *testing.T) {
	o := object("b", 1, "a", 2)
	o.Set("b", 3).Set("c", 4)

	if got := strings.Join(o.Keys(), ","); got != "b,a,c" {
		t.Errorf("Keys() = %s, want b,a,c", got)
	}
	if o.Value("b") != 3 || o.Len() != 3 {
		t.Errorf("b = %v, len = %d", o.Value("b"), o.Len())
	}
	if _, ok := o.Get("missing"); ok {
		t.Error("Get(missing) reported a value")
	}
}

func TestObjectMarshalJSON(t *testing.T) {
	o := object("z", "last", "a", []any{1, object("y", true, "x", nil)})
	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"z":"last","a":[1,{"y":true,"x":null}]}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var nilObj *Object
	if data, _ := json.Marshal(nilObj); string(data) != "null" {
		t.Errorf("nil object = %s", data)
	}
}

func TestDecodeKeepsMemberOrder(t *testing.T) {
	doc, err := Decode([]byte(`[{"type":"section","content":["a"],"title":"t","level":1,"attrs":{"trigger":"timeline","id":"x"}}]`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	entry := doc[0].(*Object)
	if got := strings.Join(entry.Keys(), ","); got != "type,content,title,level,attrs" {
		t.Errorf("keys = %s", got)
	}
	attrs := entry.Value("attrs").(*Object)
	if got := strings.Join(attrs.Keys(), ","); got != "trigger,id" {
		t.Errorf("attrs keys = %s", got)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, in := range []string{`[1,]`, `[{"a" 1}]`, `[{"a":1}`, `[`, `]`} {
		if _, err := Decode([]byte(in)); err == nil {
			t.Errorf("Decode(%q) error = nil", in)
		}
	}
}
