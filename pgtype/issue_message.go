package pgtype

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var englishMessages = map[string]string{
	"invalid_type":        "Expected %s, received '%s'",
	"invalid_string":      "Invalid %s literal, received '%s'",
	"invalid_key_type":    "Expected %s for key '%s', received '%s'",
	"invalid_timezone":    "Invalid timezone, received '%s'",
	"invalid_range_bound": "Range lower bound '%s' must be less than or equal to upper bound '%s'",
	"unrecognized_keys":   "Unrecognized key(s) in object: %s",
	"missing_keys":        "Missing key(s) in object: %s",
	"invalid_date":        "Invalid date, received '%s'",
	"invalid_json":        "Invalid JSON, received '%s'",
	"not_finite":          "Number must be finite",
	"not_whole":           "Number must be whole",

	"invalid_n_length.exact":   "Bit string length must be exactly %d, received %d",
	"invalid_n_length.maximum": "Bit string length must be at most %d, received %d",

	"too_small.array.exact":         "Array must contain exactly %s element(s)",
	"too_small.array.inclusive":     "Array must contain at least %s element(s)",
	"too_small.array.exclusive":     "Array must contain more than %s element(s)",
	"too_small.number.exact":        "Number must be exactly equal to %s",
	"too_small.number.inclusive":    "Number must be greater than or equal to %s",
	"too_small.number.exclusive":    "Number must be greater than %s",
	"too_small.bigint.exact":        "BigInt must be exactly equal to %s",
	"too_small.bigint.inclusive":    "BigInt must be greater than or equal to %s",
	"too_small.bigint.exclusive":    "BigInt must be greater than %s",
	"too_small.arguments.exact":     "Function must have exactly %s argument(s)",
	"too_small.arguments.inclusive": "Function must have at least %s argument(s)",
	"too_small.arguments.exclusive": "Function must have more than %s argument(s)",
	"too_small.bytes.exact":         "Buffer must be exactly %s byte(s) long",
	"too_small.bytes.inclusive":     "Buffer must be at least %s byte(s) long",
	"too_small.bytes.exclusive":     "Buffer must be more than %s byte(s) long",

	"too_big.array.exact":         "Array must contain exactly %s element(s)",
	"too_big.array.inclusive":     "Array must contain at most %s element(s)",
	"too_big.array.exclusive":     "Array must contain less than %s element(s)",
	"too_big.number.exact":        "Number must be exactly equal to %s",
	"too_big.number.inclusive":    "Number must be less than or equal to %s",
	"too_big.number.exclusive":    "Number must be less than %s",
	"too_big.bigint.exact":        "BigInt must be exactly equal to %s",
	"too_big.bigint.inclusive":    "BigInt must be less than or equal to %s",
	"too_big.bigint.exclusive":    "BigInt must be less than %s",
	"too_big.arguments.exact":     "Function must have exactly %s argument(s)",
	"too_big.arguments.inclusive": "Function must have at most %s argument(s)",
	"too_big.arguments.exclusive": "Function must have less than %s argument(s)",
	"too_big.bytes.exact":         "Buffer must be exactly %s byte(s) long",
	"too_big.bytes.inclusive":     "Buffer must be at most %s byte(s) long",
	"too_big.bytes.exclusive":     "Buffer must be less than %s byte(s) long",
}

var messagePrinter = newMessagePrinter()

func newMessagePrinter() *message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range englishMessages {
		if err := b.SetString(language.English, key, msg); err != nil {
			panic(err)
		}
	}
	return message.NewPrinter(language.English, message.Catalog(b))
}

// Message renders issue as a human readable message. Message panics if issue is not one of the issue types
// declared by this package or if a bound issue carries an unknown Subject.
func Message(issue Issue) string {
	p := messagePrinter

	switch issue := issue.(type) {
	case InvalidType:
		return p.Sprintf(string(IssueInvalidType), quoteList(issue.Expected, " | "), issue.Received)
	case InvalidString:
		return p.Sprintf(string(IssueInvalidString), issue.Expected, issue.Received)
	case InvalidKeyType:
		return p.Sprintf(string(IssueInvalidKeyType), quoteList(issue.Expected, " | "), issue.Key, issue.Received)
	case InvalidTimezone:
		return p.Sprintf(string(IssueInvalidTimezone), issue.Received)
	case InvalidRangeBound:
		return p.Sprintf(string(IssueInvalidRangeBound), issue.Lower, issue.Upper)
	case UnrecognizedKeys:
		return p.Sprintf(string(IssueUnrecognizedKeys), quoteList(issue.Keys, ", "))
	case MissingKeys:
		return p.Sprintf(string(IssueMissingKeys), quoteList(issue.Keys, ", "))
	case InvalidDate:
		return p.Sprintf(string(IssueInvalidDate), issue.Received)
	case InvalidJSON:
		return p.Sprintf(string(IssueInvalidJSON), issue.Received)
	case TooSmall:
		return p.Sprintf(boundMessageKey(IssueTooSmall, issue.Subject, issue.Exact, issue.Inclusive), issue.Minimum)
	case TooBig:
		return p.Sprintf(boundMessageKey(IssueTooBig, issue.Subject, issue.Exact, issue.Inclusive), issue.Maximum)
	case InvalidNLength:
		if issue.Exact {
			return p.Sprintf("invalid_n_length.exact", issue.Maximum, issue.Received)
		}
		return p.Sprintf("invalid_n_length.maximum", issue.Maximum, issue.Received)
	case NotFinite:
		return p.Sprintf(string(IssueNotFinite))
	case NotWhole:
		return p.Sprintf(string(IssueNotWhole))
	default:
		panic(fmt.Sprintf("pgtype: no message for issue %T", issue))
	}
}

func boundMessageKey(code IssueCode, subject Subject, exact, inclusive bool) string {
	switch subject {
	case SubjectArray, SubjectNumber, SubjectBigInt, SubjectArguments, SubjectBytes:
	default:
		panic(fmt.Sprintf("pgtype: unknown %s subject %q", code, subject))
	}

	mode := "exclusive"
	if exact {
		mode = "exact"
	} else if inclusive {
		mode = "inclusive"
	}

	return string(code) + "." + string(subject) + "." + mode
}

func quoteList(items []string, sep string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return strings.Join(quoted, sep)
}
