package plot3d

import (
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// labelFont is parsed once, on first use.
var labelFont = sync.OnceValues(func() (*text.FontSource, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("plot3d: load label font: %w", err)
	}
	return src, nil
})

func labelFace(size float64) (text.Face, error) {
	src, err := labelFont()
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}

var tickPrinter = message.NewPrinter(language.English)

// formatTick renders an axis value with digit grouping and as many
// fraction digits as the axis span needs.
func formatTick(v, span float64) string {
	if span > 0 && math.Abs(v) < span*1e-9 {
		v = 0
	}
	digits := 0
	if span > 0 {
		digits = int(math.Max(0, math.Ceil(-math.Log10(span/100))))
	}
	return tickPrinter.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(digits)))
}
