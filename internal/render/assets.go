package render

import "fmt"

// Rarity is the identity tier shown by the border overlay.
type Rarity int

const (
	RarityOne Rarity = iota + 1
	RarityTwo
	RarityThree

	rarityEnd
)

// borderAssets must hold one entry per Rarity.
var borderAssets = [rarityEnd]string{
	RarityOne:   "0.png",
	RarityTwo:   "00.png",
	RarityThree: "000.png",
}

// LineBucket is the number of lines the title wraps to.
type LineBucket int

const (
	LinesOne LineBucket = iota + 1
	LinesTwo

	lineBucketEnd
)

// gradientAssets must hold one entry per LineBucket. Taller titles need a
// taller gradient behind them to stay legible.
var gradientAssets = [lineBucketEnd]string{
	LinesOne: "gradient_small.png",
	LinesTwo: "gradient_large.png",
}

// ParseRarity validates a configured rarity level.
func ParseRarity(level int) (Rarity, error) {
	if level < int(RarityOne) || level >= int(rarityEnd) {
		return 0, fmt.Errorf("%w: %d (must be %d to %d)", ErrBadRarityLevel, level, RarityOne, rarityEnd-1)
	}
	return Rarity(level), nil
}

// ParseLineBucket validates the wrapped line count of a title.
func ParseLineBucket(lines int) (LineBucket, error) {
	if lines < int(LinesOne) || lines >= int(lineBucketEnd) {
		return 0, fmt.Errorf("%w: title wraps to %d lines (at most %d allowed)", ErrTextTooLong, lines, lineBucketEnd-1)
	}
	return LineBucket(lines), nil
}

// Asset returns the border overlay filename for r.
func (r Rarity) Asset() string { return borderAssets[r] }

// Asset returns the gradient overlay filename for b.
func (b LineBucket) Asset() string { return gradientAssets[b] }

// BorderFor maps a rarity level to its border overlay filename.
func BorderFor(level int) (string, error) {
	r, err := ParseRarity(level)
	if err != nil {
		return "", err
	}
	return r.Asset(), nil
}

// GradientFor maps a title line count to its gradient overlay filename.
func GradientFor(lines int) (string, error) {
	b, err := ParseLineBucket(lines)
	if err != nil {
		return "", err
	}
	return b.Asset(), nil
}
