// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
)

// Object is a JSON object that keeps its keys in document order.
type Object = orderedmap.OrderedMap[string, any]

func NewObject() *Object {
	return orderedmap.NewOrderedMap[string, any]()
}

// DecodeValue reads exactly one JSON value from r. The result is built from
// nil, bool, json.Number, string, []any and *Object.
func DecodeValue(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, &DecodeError{Offset: dec.InputOffset(), Err: err}
	}
	if _, err = dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("invalid character after top-level value")
		}
		return nil, &DecodeError{Offset: dec.InputOffset(), Err: err}
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		obj := NewObject()
		for dec.More() {
			tok, err = dec.Token()
			if err != nil {
				return nil, err
			}
			key := tok.(string) // object keys are always strings
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
		if _, err = dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err = dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", rune(delim))
	}
}

type DecodeError struct {
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// literal renders v as compact JSON text.
func literal(v any) string {
	var sb strings.Builder
	appendLiteral(&sb, v)
	return sb.String()
}

func appendLiteral(sb *strings.Builder, v any) {
	switch v := v.(type) {
	case nil:
		sb.WriteString("null")
	case bool:
		sb.WriteString(strconv.FormatBool(v))
	case json.Number:
		sb.WriteString(v.String())
	case float64:
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case int:
		sb.WriteString(strconv.Itoa(v))
	case string:
		sb.WriteString(quote(v))
	case []any:
		sb.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				sb.WriteByte(',')
			}
			appendLiteral(sb, item)
		}
		sb.WriteByte(']')
	case *Object:
		sb.WriteByte('{')
		i := 0
		for key, item := range v.AllFromFront() {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(quote(key))
			sb.WriteByte(':')
			appendLiteral(sb, item)
			i++
		}
		sb.WriteByte('}')
	default:
		sb.WriteString("null")
	}
}

// quote returns s as a JSON string literal without HTML escaping.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return string(buf.Bytes()[:buf.Len()-1]) // remove a trailing newline
}
