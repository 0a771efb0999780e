// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"github.com/pkg/errors"
)

// VoidPolicy decides what a method without a return type gets when it is
// not wrapped in a promise.
type VoidPolicy int

const (
	// OmitVoid renders no annotation: "name();".
	OmitVoid VoidPolicy = iota
	// ExplicitVoid renders ": void".
	ExplicitVoid
)

// AsyncPolicy decides when an async method is wrapped in Promise<...>.
type AsyncPolicy int

const (
	// WrapAsyncAlways wraps every async method, Promise<void> when nothing is returned.
	WrapAsyncAlways AsyncPolicy = iota
	// WrapAsyncOnlyIfReturnType wraps only async methods that declare a return type.
	WrapAsyncOnlyIfReturnType
)

type ReturnPolicy struct {
	Void  VoidPolicy
	Async AsyncPolicy
}

var (
	InterfaceReturnPolicy = ReturnPolicy{Void: OmitVoid, Async: WrapAsyncAlways}
	TypeAliasReturnPolicy = ReturnPolicy{Void: ExplicitVoid, Async: WrapAsyncOnlyIfReturnType}
)

// Annotation returns the colon-prefixed return annotation of a method.
// typeName is the projected return type and is ignored when declared is false.
func (p ReturnPolicy) Annotation(typeName string, declared, async bool) string {

	switch {
	case declared && async:
		return ": Promise<" + typeName + ">"
	case declared:
		return ": " + typeName
	case async && p.Async == WrapAsyncAlways:
		return ": Promise<void>"
	case p.Void == ExplicitVoid:
		return ": void"
	}
	return ""
}

func (v VoidPolicy) String() string {

	switch v {
	case OmitVoid:
		return "omit"
	case ExplicitVoid:
		return "explicit"
	}
	return "unknown"
}

func (a AsyncPolicy) String() string {

	switch a {
	case WrapAsyncAlways:
		return "always"
	case WrapAsyncOnlyIfReturnType:
		return "if-return"
	}
	return "unknown"
}

func ParseVoidPolicy(s string) (VoidPolicy, error) {

	switch s {
	case "omit":
		return OmitVoid, nil
	case "explicit":
		return ExplicitVoid, nil
	}
	return 0, errors.Errorf("unknown void policy %q, want omit or explicit", s)
}

func ParseAsyncPolicy(s string) (AsyncPolicy, error) {

	switch s {
	case "always":
		return WrapAsyncAlways, nil
	case "if-return":
		return WrapAsyncOnlyIfReturnType, nil
	}
	return 0, errors.Errorf("unknown async policy %q, want always or if-return", s)
}
