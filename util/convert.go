package util

import (
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/ldelia/cmdline/types"
)

// ConvertString parses value into the variable pointed to by data. Parsing is
// strict: the whole token must convert, trailing characters are an error, and
// booleans accept only the literal strings "true" and "false". arg names the
// option the value belongs to and is only used in error messages.
func ConvertString(value string, data any, arg string) error {
	switch t := data.(type) {
	case *string:
		*(t) = value
	case *bool:
		switch value {
		case "true":
			*(t) = true
		case "false":
			*(t) = false
		default:
			return fmt.Errorf(types.FmtErrorWithString, types.ErrParseBool, value)
		}
	case *int:
		if val, err := strconv.ParseInt(value, 10, strconv.IntSize); err == nil {
			*(t) = int(val)
		} else {
			return fmt.Errorf(types.FmtErrorWithString, types.ErrParseInt, value)
		}
	case *int8:
		if val, err := strconv.ParseInt(value, 10, 8); err == nil {
			*(t) = int8(val)
		} else {
			return fmt.Errorf(types.FmtErrorWithString, types.ErrParseInt, value)
		}
	case *int16:
		if val, err := strconv.ParseInt(value, 10, 16); err == nil {
			*(t) = int16(val)
		} else {
			return fmt.Errorf(types.FmtErrorWithString, types.ErrParseInt, value)
		}
	case *int32:
		if val, err := strconv.ParseInt(value, 10, 32); err == nil {
			*(t) = int32(val)
		} else {
			return fmt.Errorf(types.FmtErrorWithString, types.ErrParseInt, value)
		}
	case *int64:
		if val, err := strconv.ParseInt(value, 10, 64); err == nil {
			*(t) = val
		} else {
			return fmt.Errorf(types.FmtErrorWithString, types.ErrParseInt, value)
		}
	case *uint:
		if val, err := strconv.ParseUint(value, 10, strconv.IntSize); err == nil {
			*(t) = uint(val)
		} else {
			return fmt.Errorf(types.FmtErrorWithString, types.ErrParseUint, value)
		}
	case *uint8:
		if val, err := strconv.ParseUint(value, 10, 8); err == nil {
			*(t) = uint8(val)
		} else {
			return fmt.Errorf(types.FmtErrorWithString, types.ErrParseUint, value)
		}
	case *uint16:
		if val, err := strconv.ParseUint(value, 10, 16); err == nil {
			*(t) = uint16(val)
		} else {
			return fmt.Errorf(types.FmtErrorWithString, types.ErrParseUint, value)
		}
	case *uint32:
		if val, err := strconv.ParseUint(value, 10, 32); err == nil {
			*(t) = uint32(val)
		} else {
			return fmt.Errorf(types.FmtErrorWithString, types.ErrParseUint, value)
		}
	case *uint64:
		if val, err := strconv.ParseUint(value, 10, 64); err == nil {
			*(t) = val
		} else {
			return fmt.Errorf(types.FmtErrorWithString, types.ErrParseUint, value)
		}
	case *float32:
		if val, err := strconv.ParseFloat(value, 32); err == nil {
			*(t) = float32(val)
		} else {
			return fmt.Errorf(types.FmtErrorWithString, types.ErrParseFloat, value)
		}
	case *float64:
		if val, err := strconv.ParseFloat(value, 64); err == nil {
			*(t) = val
		} else {
			return fmt.Errorf(types.FmtErrorWithString, types.ErrParseFloat, value)
		}
	case *time.Time:
		if val, err := dateparse.ParseLocal(value); err == nil {
			*(t) = val
		} else {
			return fmt.Errorf(types.FmtErrorWithString, types.ErrParseTime, value)
		}
	case *time.Duration:
		if val, err := time.ParseDuration(value); err == nil {
			*(t) = val
		} else {
			return fmt.Errorf(types.FmtErrorWithString, types.ErrParseDuration, value)
		}
	default:
		return fmt.Errorf("%w: %T for %s", types.ErrUnsupportedTypeConversion, t, arg)
	}

	return nil
}
