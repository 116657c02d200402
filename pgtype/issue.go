package pgtype

import (
	"fmt"
)

// IssueCode identifies the kind of validation failure described by an Issue.
type IssueCode string

const (
	IssueInvalidType       IssueCode = "invalid_type"
	IssueInvalidString     IssueCode = "invalid_string"
	IssueInvalidKeyType    IssueCode = "invalid_key_type"
	IssueInvalidTimezone   IssueCode = "invalid_timezone"
	IssueInvalidRangeBound IssueCode = "invalid_range_bound"
	IssueUnrecognizedKeys  IssueCode = "unrecognized_keys"
	IssueMissingKeys       IssueCode = "missing_keys"
	IssueInvalidDate       IssueCode = "invalid_date"
	IssueInvalidJSON       IssueCode = "invalid_json"
	IssueTooSmall          IssueCode = "too_small"
	IssueTooBig            IssueCode = "too_big"
	IssueInvalidNLength    IssueCode = "invalid_n_length"
	IssueNotFinite         IssueCode = "not_finite"
	IssueNotWhole          IssueCode = "not_whole"
)

// Subject is what a TooSmall or TooBig issue is measuring.
type Subject string

const (
	SubjectArray     Subject = "array"
	SubjectNumber    Subject = "number"
	SubjectBigInt    Subject = "bigint"
	SubjectArguments Subject = "arguments"
	SubjectBytes     Subject = "bytes"
)

// Issue is a structured description of why a value could not be parsed. The set of issues is closed; every
// implementation is declared in this file.
type Issue interface {
	Code() IssueCode
	issue()
}

type InvalidType struct {
	Expected []string
	Received string
}

type InvalidString struct {
	Expected string
	Received string
}

type InvalidKeyType struct {
	Key      string
	Expected []string
	Received string
}

type InvalidTimezone struct {
	Received string
}

type InvalidRangeBound struct {
	Lower string
	Upper string
}

type UnrecognizedKeys struct {
	Keys []string
}

type MissingKeys struct {
	Keys []string
}

type InvalidDate struct {
	Received string
}

type InvalidJSON struct {
	Received string
}

// TooSmall reports a value below its lower limit. Minimum is decimal text so that arbitrary precision limits are
// carried exactly.
type TooSmall struct {
	Subject   Subject
	Minimum   string
	Inclusive bool
	Exact     bool
}

// TooBig reports a value above its upper limit.
type TooBig struct {
	Subject   Subject
	Maximum   string
	Inclusive bool
	Exact     bool
}

// InvalidNLength reports a bit string whose length does not fit its type modifier.
type InvalidNLength struct {
	Maximum  int
	Received int
	Exact    bool
}

type NotFinite struct{}

type NotWhole struct{}

func (InvalidType) Code() IssueCode       { return IssueInvalidType }
func (InvalidString) Code() IssueCode     { return IssueInvalidString }
func (InvalidKeyType) Code() IssueCode    { return IssueInvalidKeyType }
func (InvalidTimezone) Code() IssueCode   { return IssueInvalidTimezone }
func (InvalidRangeBound) Code() IssueCode { return IssueInvalidRangeBound }
func (UnrecognizedKeys) Code() IssueCode  { return IssueUnrecognizedKeys }
func (MissingKeys) Code() IssueCode       { return IssueMissingKeys }
func (InvalidDate) Code() IssueCode       { return IssueInvalidDate }
func (InvalidJSON) Code() IssueCode       { return IssueInvalidJSON }
func (TooSmall) Code() IssueCode          { return IssueTooSmall }
func (TooBig) Code() IssueCode            { return IssueTooBig }
func (InvalidNLength) Code() IssueCode    { return IssueInvalidNLength }
func (NotFinite) Code() IssueCode         { return IssueNotFinite }
func (NotWhole) Code() IssueCode          { return IssueNotWhole }

func (InvalidType) issue()       {}
func (InvalidString) issue()     {}
func (InvalidKeyType) issue()    {}
func (InvalidTimezone) issue()   {}
func (InvalidRangeBound) issue() {}
func (UnrecognizedKeys) issue()  {}
func (MissingKeys) issue()       {}
func (InvalidDate) issue()       {}
func (InvalidJSON) issue()       {}
func (TooSmall) issue()          {}
func (TooBig) issue()            {}
func (InvalidNLength) issue()    {}
func (NotFinite) issue()         {}
func (NotWhole) issue()          {}

// Error is the error returned by every From function and setter. It wraps exactly one Issue.
type Error struct {
	Issue   Issue
	Message string
}

// NewError builds an Error for issue with its rendered message.
func NewError(issue Issue) *Error {
	return &Error{Issue: issue, Message: Message(issue)}
}

func (e *Error) Error() string {
	return e.Message
}

// Code returns the code of the wrapped issue.
func (e *Error) Code() IssueCode {
	return e.Issue.Code()
}

func (e *Error) GoString() string {
	return fmt.Sprintf("pgtype.Error{Issue: %#v}", e.Issue)
}
