package batch

import (
	"strconv"

	"github.com/tidwall/sjson"
)

// Report encodes r as compact JSON:
//
//	{"id":"…","text":"…","size":5,"capacity":16,"truncated":false,
//	 "display":{"width":5,"graphemes":5},"failed":0,
//	 "ops":[{"op":"append","size":12,"truncated":false}, …]}
//
// A failed op carries an "error" member.
func Report(r *Result) ([]byte, error) {
	out := []byte(`{}`)
	var err error
	set := func(path string, v any) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, path, v)
	}

	set("id", r.ID)
	set("text", r.Text)
	set("size", r.Size)
	set("capacity", r.Capacity)
	set("truncated", r.Truncated)
	set("display.width", r.Width)
	set("display.graphemes", r.Graphemes)
	set("failed", r.Failed())
	set("ops", []any{})
	for i, step := range r.Steps {
		prefix := "ops." + strconv.Itoa(i) + "."
		set(prefix+"op", step.Op)
		set(prefix+"size", step.Size)
		set(prefix+"truncated", step.Truncated)
		if step.Err != nil {
			set(prefix+"error", step.Err.Error())
		}
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
