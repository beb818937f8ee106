package histogram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jgbaldwinbrown/csvh"
)

type OptionType int

const (
	Required OptionType = iota
	Optional
)

// A problem with one command-line option. Err is nil when the option was
// simply not given.
type OptionError struct {
	Flag string
	Err error
}

func (o *OptionError) Error() string {
	if o.Err == nil {
		return fmt.Sprintf("option %v not found", o.Flag)
	}
	return fmt.Sprintf("option %v: %v", o.Flag, o.Err)
}

func (o *OptionError) Unwrap() error {
	return o.Err
}

// Find flag anywhere in args and return every token after it, joined by
// spaces. A flag in the last position has no value and counts as absent.
func ArgumentOfFlag(args []string, flag string, typ OptionType) (string, error) {
	for i := 0; i < len(args); i++ {
		if args[i] != flag {
			continue
		}
		if i == len(args)-1 {
			break
		}
		return strings.Join(args[i+1:], " "), nil
	}
	if typ == Required {
		return "", &OptionError{Flag: flag}
	}
	return "", nil
}

// Scan the first token of the flag's value into ptr. Returns false without
// error if the option is optional and absent.
func ScanFlag(args []string, flag string, typ OptionType, ptr any) (bool, error) {
	val, e := ArgumentOfFlag(args, flag, typ)
	if e != nil {
		return false, e
	}
	fields := strings.Fields(val)
	if len(fields) < 1 {
		if typ == Required {
			return false, &OptionError{Flag: flag}
		}
		return false, nil
	}
	if _, e := csvh.ScanF(fields[:1], StrictScan, ptr); e != nil {
		return false, &OptionError{flag, e}
	}
	return true, nil
}

// The single argv token directly after the flag, untouched, so paths with
// spaces and whitespace delimiters survive.
func FlagToken(args []string, flag string, typ OptionType) (string, error) {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1], nil
		}
	}
	if typ == Required {
		return "", &OptionError{Flag: flag}
	}
	return "", nil
}

// Convert the whole field or fail; trailing garbage like "0.5x" is an error.
func StrictScan(field string, ptr any) error {
	switch p := ptr.(type) {
	case *float64:
		v, e := strconv.ParseFloat(field, 64)
		if e != nil { return e }
		*p = v
	case *int64:
		v, e := strconv.ParseInt(field, 10, 64)
		if e != nil { return e }
		*p = v
	case *string:
		*p = field
	default:
		return fmt.Errorf("StrictScan: unsupported type %T", ptr)
	}
	return nil
}
