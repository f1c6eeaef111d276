package value

import (
	"fmt"
	"strings"
	"time"
	"unsafe"

	"github.com/funvibe/refinedtype/internal/config"
	"github.com/google/uuid"
)

// Date is a calendar instant.
type Date struct {
	Time time.Time
}

func NewDate(t time.Time) *Date { return &Date{Time: t} }

func (d *Date) Kind() Kind         { return DATE_VAL }
func (d *Date) NativeType() string { return config.NativeObject }
func (d *Date) Inspect() string    { return d.Time.UTC().Format(time.RFC3339Nano) }
func (d *Date) Hash() uint32       { return hashIdentity(unsafe.Pointer(d)) }

// RegExp is a pattern-matching object written as /source/flags. The source
// is kept as written and never compiled.
type RegExp struct {
	Source string
	Flags  string
}

const regexpFlagSet = "dgimsuvy"

// NewRegExp checks flags and builds the pattern. Unknown or repeated flags
// are an error.
func NewRegExp(source, flags string) (*RegExp, error) {
	seen := make(map[rune]bool)
	for _, f := range flags {
		if !strings.ContainsRune(regexpFlagSet, f) {
			return nil, fmt.Errorf("invalid regexp flag %q in /%s/%s", f, source, flags)
		}
		if seen[f] {
			return nil, fmt.Errorf("duplicate regexp flag %q in /%s/%s", f, source, flags)
		}
		seen[f] = true
	}
	return &RegExp{Source: source, Flags: flags}, nil
}

// ParseRegExp reads the literal form /source/flags.
func ParseRegExp(literal string) (*RegExp, error) {
	end := strings.LastIndexByte(literal, '/')
	if !strings.HasPrefix(literal, "/") || end < 1 {
		return nil, fmt.Errorf("regexp literal %q is not of the form /source/flags", literal)
	}
	return NewRegExp(literal[1:end], literal[end+1:])
}

func (r *RegExp) Kind() Kind         { return REGEXP_VAL }
func (r *RegExp) NativeType() string { return config.NativeObject }
func (r *RegExp) Inspect() string    { return "/" + r.Source + "/" + r.Flags }
func (r *RegExp) Hash() uint32       { return hashIdentity(unsafe.Pointer(r)) }

// PromiseState is the settlement state of a Promise.
type PromiseState int

const (
	PromisePending PromiseState = iota
	PromiseFulfilled
	PromiseRejected
)

func (s PromiseState) String() string {
	switch s {
	case PromiseFulfilled:
		return "fulfilled"
	case PromiseRejected:
		return "rejected"
	default:
		return "pending"
	}
}

// Promise is a placeholder for a deferred result. It is never awaited here;
// only its state and settled value are observable.
type Promise struct {
	ID     uuid.UUID
	State  PromiseState
	Result Value
}

func NewPromise(state PromiseState, result Value) *Promise {
	if state == PromisePending {
		result = nil
	} else {
		result = orUndefined(result)
	}
	return &Promise{ID: uuid.New(), State: state, Result: result}
}

func (p *Promise) Kind() Kind         { return PROMISE_VAL }
func (p *Promise) NativeType() string { return config.NativeObject }
func (p *Promise) Hash() uint32       { return p.ID.ID() }
func (p *Promise) Inspect() string {
	switch p.State {
	case PromiseFulfilled:
		return "Promise { " + p.Result.Inspect() + " }"
	case PromiseRejected:
		return "Promise { <rejected> " + p.Result.Inspect() + " }"
	default:
		return "Promise { <pending> }"
	}
}
