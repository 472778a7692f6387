package html

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/sonnes/rangoli/core"
)

//go:embed templates/*.html
var content embed.FS

func funcMap() template.FuncMap {
	return template.FuncMap{
		"formatNumber": formatNumber,
		"percent": func(a uint8) int {
			return core.AlphaToPercent(a)
		},
		"isSolid": func(m core.OutputMode) bool {
			return m == core.ModeSolid
		},
	}
}

func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatNumber(n/1000) + "," + fmt.Sprintf("%03d", n%1000)
}
