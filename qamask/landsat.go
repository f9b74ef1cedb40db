package qamask

import (
	"fmt"
	"sort"
)

// Confidence is the level of confidence that a condition exists at a pixel,
// as encoded in Landsat 8 QA fields.
//
//	high      - 67-100 percent confidence
//	medium    - 34-66 percent confidence
//	low       - 0-33 percent confidence
//	undefined - the algorithm did not determine the condition's status
//
// ConfidenceNone is a sentinel meaning "condition not requested"; it is not
// a bit pattern and never reaches the extractor.
type Confidence int

const (
	ConfidenceNone      Confidence = -1
	ConfidenceUndefined Confidence = 0
	ConfidenceLow       Confidence = 1
	ConfidenceMedium    Confidence = 2
	ConfidenceHigh      Confidence = 3
)

var confidenceNames = map[string]Confidence{
	"none":      ConfidenceNone,
	"undefined": ConfidenceUndefined,
	"low":       ConfidenceLow,
	"medium":    ConfidenceMedium,
	"high":      ConfidenceHigh,
}

// ParseConfidence maps a level name to its Confidence code.
func ParseConfidence(name string) (Confidence, error) {
	c, ok := confidenceNames[name]
	if !ok {
		return ConfidenceNone, fmt.Errorf("confidence %q: %w", name, ErrLevel)
	}
	return c, nil
}

func (c Confidence) String() string {
	switch c {
	case ConfidenceNone:
		return "none"
	case ConfidenceUndefined:
		return "undefined"
	case ConfidenceLow:
		return "low"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceHigh:
		return "high"
	}
	return fmt.Sprintf("confidence(%d)", int(c))
}

// requested reports whether c asks for a real level rather than the
// "not requested" sentinel.
func (c Confidence) requested() bool {
	return c != ConfidenceNone
}

func (c Confidence) validate() error {
	if c < ConfidenceUndefined || c > ConfidenceHigh {
		return fmt.Errorf("confidence %d: %w", int(c), ErrLevel)
	}
	return nil
}

// Landsat 8 QA band condition fields. Each condition occupies a 3-bit
// confidence field; the fill flag is the single bit 0.
var landsatConditions = map[string]Field{
	"cloud":      {Offset: 14, Width: 3},
	"cirrus":     {Offset: 12, Width: 3},
	"snow":       {Offset: 10, Width: 3},
	"vegetation": {Offset: 8, Width: 3},
	"water":      {Offset: 4, Width: 3},
}

var landsatFill = Field{Offset: 0, Width: 1}

// LandsatMasker decodes the quality assessment band of Landsat 8.
type LandsatMasker struct {
	*Masker
}

// NewLandsatMasker returns a Landsat decoder over an in-memory QA grid.
func NewLandsatMasker(g *Grid) *LandsatMasker {
	return &LandsatMasker{Masker: NewMasker(g)}
}

// Conditions returns the catalog's condition names in sorted order.
func (l *LandsatMasker) Conditions() []string {
	names := make([]string, 0, len(landsatConditions))
	for name := range landsatConditions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ConditionMask returns the mask for one named condition at the given
// confidence. With cumulative set, any confidence at or above the requested
// level matches.
func (l *LandsatMasker) ConditionMask(name string, conf Confidence, cumulative bool) (*Mask, error) {
	field, ok := landsatConditions[name]
	if !ok {
		return nil, fmt.Errorf("condition %q: %w", name, ErrUnknownCondition)
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return l.Mask(field, uint32(conf), cumulative)
}

// CloudMask returns the cloud confidence mask.
func (l *LandsatMasker) CloudMask(conf Confidence, cumulative bool) (*Mask, error) {
	return l.ConditionMask("cloud", conf, cumulative)
}

// CirrusMask returns the cirrus confidence mask.
func (l *LandsatMasker) CirrusMask(conf Confidence, cumulative bool) (*Mask, error) {
	return l.ConditionMask("cirrus", conf, cumulative)
}

// SnowMask returns the snow/ice confidence mask.
func (l *LandsatMasker) SnowMask(conf Confidence, cumulative bool) (*Mask, error) {
	return l.ConditionMask("snow", conf, cumulative)
}

// VegMask returns the vegetation confidence mask.
func (l *LandsatMasker) VegMask(conf Confidence, cumulative bool) (*Mask, error) {
	return l.ConditionMask("vegetation", conf, cumulative)
}

// WaterMask returns the water-body confidence mask.
func (l *LandsatMasker) WaterMask(conf Confidence, cumulative bool) (*Mask, error) {
	return l.ConditionMask("water", conf, cumulative)
}

// FillMask marks designated-fill pixels: bit 0 set, all other bits ignored.
func (l *LandsatMasker) FillMask() (*Mask, error) {
	return l.Mask(landsatFill, 1, false)
}

// ConditionRequest is one entry of a multi-condition query. A request with
// ConfidenceNone is skipped entirely and contributes nothing to the
// composition.
type ConditionRequest struct {
	Condition  string
	Confidence Confidence
	Cumulative bool
}

// MultiMask composes several condition masks into one. With inclusive set
// the result marks pixels matching ANY requested condition (OR, seeded
// all-false); otherwise it marks pixels matching ALL of them (AND, seeded
// all-true). Requests are folded in order, though AND/OR make the order
// immaterial.
func (l *LandsatMasker) MultiMask(reqs []ConditionRequest, inclusive bool) (*Mask, error) {
	var out *Mask
	if inclusive {
		out = l.allFalse()
	} else {
		out = l.allTrue()
	}

	for _, req := range reqs {
		if !req.Confidence.requested() {
			continue
		}
		mask, err := l.ConditionMask(req.Condition, req.Confidence, req.Cumulative)
		if err != nil {
			return nil, err
		}
		if inclusive {
			err = out.Or(mask)
		} else {
			err = out.And(mask)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
