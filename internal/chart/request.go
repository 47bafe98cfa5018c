package chart

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Request is a decoded chart request. The set of implementations is
// closed: each kind has one struct, and decoders below must cover every
// entry of the allow-list.
type Request interface {
	Kind() Kind
	synthesize() (*Series, error)
}

type decoder func(gjson.Result) (Request, error)

// decoders is keyed by every allow-listed kind.
var decoders = map[Kind]decoder{
	KindLinear:        decodeLinear,
	KindQuadratic:     decodeQuadratic,
	KindAbsoluteValue: decodeAbsoluteValue,
	KindExponential:   decodeExponential,
	KindBar:           decodeBar,
	KindHistogram:     decodeHistogram,
	KindScatter:       decodeScatter,
	KindPie:           decodePie,
	KindPolygon:       decodePolygon,
	KindFractionRect:  decodeFractionRect,
	KindNumberLine:    decodeNumberLine,
}

// DecodeRequest reads the discriminator and kind-specific fields from a
// parsed <chart> payload.
func DecodeRequest(raw json.RawMessage) (Request, error) {
	if !gjson.ValidBytes(raw) {
		return nil, invalidf("payload is not valid JSON")
	}
	r := gjson.ParseBytes(raw)
	if !r.IsObject() {
		return nil, invalidf("payload is not an object")
	}

	disc, ok := lookup(r, "kind", "type", "chartType", "chart_type")
	if !ok || disc.Type != gjson.String {
		return nil, fmt.Errorf("%w: missing discriminator", ErrUnknownKind)
	}
	kind, ok := ParseKind(disc.Str)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, disc.Str)
	}

	dec, ok := decoders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no decoder", ErrUnknownKind, kind)
	}
	return dec(r)
}

// Build synthesizes a decoded request, returning the failure reason.
func Build(req Request) (*Series, error) {
	s, err := req.synthesize()
	if err != nil {
		return nil, err
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

// Synthesize expands a raw chart payload into a Series. Unknown kinds and
// inconsistent requests yield nil; it never panics.
func Synthesize(raw json.RawMessage) (s *Series) {
	s, _ = SynthesizeErr(raw)
	return s
}

// SynthesizeErr is Synthesize with the failure reason, for logging.
func SynthesizeErr(raw json.RawMessage) (s *Series, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, invalidf("synthesis panicked: %v", r)
		}
	}()

	req, err := DecodeRequest(raw)
	if err != nil {
		return nil, err
	}
	return Build(req)
}
