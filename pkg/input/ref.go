package input

import "sync"

// Ref receives the underlying field once an Input has built it.
type Ref interface {
	SetField(field *Field)
}

// RefFunc adapts a plain function to the Ref interface.
type RefFunc func(field *Field)

// SetField calls fn.
func (fn RefFunc) SetField(field *Field) {
	if fn != nil {
		fn(field)
	}
}

// FieldRef is a Ref that stores the assigned field so callers can reach it
// later to focus or read it.
type FieldRef struct {
	mu      sync.RWMutex
	current *Field
}

// SetField stores field as the current target.
func (r *FieldRef) SetField(field *Field) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.current = field
	r.mu.Unlock()
}

// Current returns the assigned field or nil.
func (r *FieldRef) Current() *Field {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

type mergedRef []Ref

// MergeRefs returns a Ref that forwards every assignment to each of refs in
// order. Nil entries are skipped; merged refs are flattened.
func MergeRefs(refs ...Ref) Ref {
	out := make(mergedRef, 0, len(refs))
	for _, ref := range refs {
		switch v := ref.(type) {
		case nil:
			continue
		case mergedRef:
			out = append(out, v...)
		case *FieldRef:
			if v != nil {
				out = append(out, v)
			}
		case RefFunc:
			if v != nil {
				out = append(out, v)
			}
		default:
			out = append(out, v)
		}
	}
	return out
}

func (m mergedRef) SetField(field *Field) {
	for _, ref := range m {
		ref.SetField(field)
	}
}
