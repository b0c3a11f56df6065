package status

import "sync/atomic"

// MaxLabelLen bounds text metrics so overlay rows keep a fixed width
const MaxLabelLen = 20

// labelValue is an atomically swapped string; the zero value reads as empty
type labelValue struct {
	ptr atomic.Pointer[string]
}

func (v *labelValue) store(val string) {
	runes := []rune(val)
	if len(runes) > MaxLabelLen {
		val = string(runes[:MaxLabelLen])
	}
	v.ptr.Store(&val)
}

func (v *labelValue) load() string {
	if p := v.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
