package quotes

import (
	"github.com/mailru/easyjson/jlexer"
)

// chartResponse mirrors the parts of the v8 chart payload we use.
type chartResponse struct {
	Result []chartResult
	Error  *chartError
}

type chartError struct {
	Code        string
	Description string
}

type chartResult struct {
	Timestamp []int64
	Quote     []chartQuote
}

type chartQuote struct {
	Open   []*float64
	High   []*float64
	Low    []*float64
	Close  []*float64
	Volume []*float64
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *chartResponse) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	v.UnmarshalEasyJSON(&r)
	r.Consumed()
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *chartResponse) UnmarshalEasyJSON(in *jlexer.Lexer) {
	object(in, func(key string) {
		if key != "chart" {
			in.SkipRecursive()
			return
		}
		object(in, func(key string) {
			switch key {
			case "result":
				array(in, func() {
					var res chartResult
					res.decode(in)
					v.Result = append(v.Result, res)
				})
			case "error":
				v.Error = &chartError{}
				object(in, func(key string) {
					switch key {
					case "code":
						v.Error.Code = in.String()
					case "description":
						v.Error.Description = in.String()
					default:
						in.SkipRecursive()
					}
				})
			default:
				in.SkipRecursive()
			}
		})
	})
}

func (v *chartResult) decode(in *jlexer.Lexer) {
	object(in, func(key string) {
		switch key {
		case "timestamp":
			array(in, func() {
				v.Timestamp = append(v.Timestamp, in.Int64())
			})
		case "indicators":
			object(in, func(key string) {
				if key != "quote" {
					in.SkipRecursive()
					return
				}
				array(in, func() {
					var q chartQuote
					q.decode(in)
					v.Quote = append(v.Quote, q)
				})
			})
		default:
			in.SkipRecursive()
		}
	})
}

func (v *chartQuote) decode(in *jlexer.Lexer) {
	object(in, func(key string) {
		switch key {
		case "open":
			v.Open = floats(in)
		case "high":
			v.High = floats(in)
		case "low":
			v.Low = floats(in)
		case "close":
			v.Close = floats(in)
		case "volume":
			v.Volume = floats(in)
		default:
			in.SkipRecursive()
		}
	})
}

func object(in *jlexer.Lexer, field func(key string)) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		field(key)
		in.WantComma()
	}
	in.Delim('}')
}

func array(in *jlexer.Lexer, elem func()) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('[')
	for !in.IsDelim(']') {
		elem()
		in.WantComma()
	}
	in.Delim(']')
}

// floats reads an array of numbers where any entry may be null.
func floats(in *jlexer.Lexer) []*float64 {
	var out []*float64
	array(in, func() {
		if in.IsNull() {
			in.Skip()
			out = append(out, nil)
			return
		}
		f := in.Float64()
		out = append(out, &f)
	})
	return out
}

func at(values []*float64, i int) (float64, bool) {
	if i >= len(values) || values[i] == nil {
		return 0, false
	}
	return *values[i], true
}
