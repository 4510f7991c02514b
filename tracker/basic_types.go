package tracker

import (
	"strconv"
)

// Enabler is an interface that defines a single Enabled() method, which is used
// by the UI to check if UI Action/Int etc. is enabled or not.
type Enabler interface {
	Enabled() bool
}

// Action

type (
	// Action describes a user action that can be performed on the document,
	// which can be initiated by calling the Do() method. It is usually
	// initiated by a button press or a key binding. Action advertises whether
	// it is enabled, so UI can e.g. gray out buttons when the underlying action
	// is not allowed. The underlying Doer can optionally implement the Enabler
	// interface to decide if the action is enabled or not; if it does not
	// implement the Enabler interface, the action is always allowed.
	Action struct {
		doer Doer
	}

	// Doer is an interface that defines a single Do() method, which is called
	// when an action is performed.
	Doer interface {
		Do()
	}
)

func MakeAction(doer Doer) Action { return Action{doer: doer} }

func (a Action) Do() {
	e, ok := a.doer.(Enabler)
	if ok && !e.Enabled() {
		return
	}
	if a.doer != nil {
		a.doer.Do()
	}
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false // no doer, not allowed
	}
	e, ok := a.doer.(Enabler)
	if !ok {
		return true // not enabler, always allowed
	}
	return e.Enabled()
}

// Int

type (
	// Int represents an integer value in the document e.g. beats per bar, bars
	// per song etc. It is a wrapper around an IntValue interface that provides
	// methods to manipulate the value, but Int guards that all changes are
	// within the range of the underlying IntValue implementation and that
	// SetValue is not called when the value is unchanged. The IntValue can
	// optionally implement the StringOfer interface to provide custom string
	// representations of the integer values.
	Int struct {
		value IntValue
	}

	IntValue interface {
		Value() int
		SetValue(int) (changed bool)
		Range() RangeInclusive
	}

	StringOfer interface {
		StringOf(value int) string
	}
)

func MakeInt(value IntValue) Int { return Int{value} }

func (v Int) Add(delta int) (changed bool) {
	return v.SetValue(v.Value() + delta)
}

func (v Int) SetValue(value int) (changed bool) {
	if v.value == nil {
		return false
	}
	r := v.Range()
	value = r.Clamp(value)
	if value == v.Value() || value < r.Min || value > r.Max {
		return false
	}
	return v.value.SetValue(value)
}

func (v Int) Range() RangeInclusive {
	if v.value == nil {
		return RangeInclusive{0, 0}
	}
	return v.value.Range()
}

func (v Int) Value() int {
	if v.value == nil {
		return 0
	}
	return v.value.Value()
}

func (v Int) String() string {
	return v.StringOf(v.Value())
}

func (v Int) StringOf(value int) string {
	if s, ok := v.value.(StringOfer); ok {
		return s.StringOf(value)
	}
	return strconv.Itoa(value)
}

// RangeInclusive

// RangeInclusive represents a range of integers [Min, Max], inclusive.
type RangeInclusive struct{ Min, Max int }

func (r RangeInclusive) Clamp(value int) int { return max(min(value, r.Max), r.Min) }

func (r RangeInclusive) Contains(value int) bool { return value >= r.Min && value <= r.Max }
