package qamask

import "fmt"

// Quality is the per-pixel data quality tier of MODIS land products.
//
//	high      - corrected product produced at ideal quality for all bands
//	medium    - corrected product produced at less than ideal quality
//	low       - corrected product not produced for some or all bands
//	low_cloud - corrected product not produced due to cloud effects
//
// Tiers are categorical codes, not an ordered confidence scale, so MODIS
// queries are exact-match only.
type Quality uint

const (
	QualityHigh     Quality = 0
	QualityMedium   Quality = 1
	QualityLow      Quality = 2
	QualityLowCloud Quality = 3
)

var qualityNames = map[string]Quality{
	"high":      QualityHigh,
	"medium":    QualityMedium,
	"low":       QualityLow,
	"low_cloud": QualityLowCloud,
}

// ParseQuality maps a tier name to its Quality code.
func ParseQuality(name string) (Quality, error) {
	q, ok := qualityNames[name]
	if !ok {
		return 0, fmt.Errorf("quality %q: %w", name, ErrLevel)
	}
	return q, nil
}

func (q Quality) String() string {
	switch q {
	case QualityHigh:
		return "high"
	case QualityMedium:
		return "medium"
	case QualityLow:
		return "low"
	case QualityLowCloud:
		return "low_cloud"
	}
	return fmt.Sprintf("quality(%d)", uint(q))
}

// The MODIS QA band carries a single quality field in its two lowest bits.
var modisQuality = Field{Offset: 0, Width: 2}

// ModisMasker decodes the quality assessment band of MODIS land products.
type ModisMasker struct {
	*Masker
}

// NewModisMasker returns a MODIS decoder over an in-memory QA grid.
func NewModisMasker(g *Grid) *ModisMasker {
	return &ModisMasker{Masker: NewMasker(g)}
}

// QualityMask marks pixels whose quality tier equals q exactly.
func (m *ModisMasker) QualityMask(q Quality) (*Mask, error) {
	if q > QualityLowCloud {
		return nil, fmt.Errorf("quality %d: %w", uint(q), ErrLevel)
	}
	return m.Mask(modisQuality, uint32(q), false)
}
