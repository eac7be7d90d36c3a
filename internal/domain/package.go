package domain

import (
	"regexp"
	"strconv"
)

// PackageType a named sailing/anchorage duration pair offered as a pricing unit
type PackageType string

const (
	Package2Hr1 PackageType = "1_hour_sailing_1_hour_anchorage"
	Package2Hr2 PackageType = "1.5_hours_sailing_0.5_hour_anchorage"
	Package2Hr3 PackageType = "2_hours_sailing_0_hour_anchorage"

	Package3Hr1 PackageType = "2_hours_sailing_1_hour_anchorage"
	Package3Hr2 PackageType = "1.5_hours_sailing_1.5_hours_anchorage"
	Package3Hr3 PackageType = "2.5_hours_sailing_0.5_hour_anchorage"

	Package4Hr1 PackageType = "2_hours_sailing_2_hours_anchorage"
	Package4Hr2 PackageType = "3_hours_sailing_1_hour_anchorage"
	Package4Hr3 PackageType = "3.5_hours_sailing_0.5_hour_anchorage"
)

// PackageCatalog закрытый каталог пакетов, валидация на границе API
var PackageCatalog = []PackageType{
	Package2Hr1, Package2Hr2, Package2Hr3,
	Package3Hr1, Package3Hr2, Package3Hr3,
	Package4Hr1, Package4Hr2, Package4Hr3,
}

// IsValid returns true if the package is part of the catalog
func (p PackageType) IsValid() bool {
	for _, known := range PackageCatalog {
		if p == known {
			return true
		}
	}
	return false
}

// PackageDuration structured sailing/anchorage hours decoded from a package
type PackageDuration struct {
	SailingHours float64
	AnchorHours  float64
}

// TotalHours returns the full trip duration
func (d PackageDuration) TotalHours() float64 {
	return d.SailingHours + d.AnchorHours
}

var packageNumberRe = regexp.MustCompile(`\d+(\.\d+)?`)

// Duration декодирует часы из метки пакета: первые два числа в строке -
// часы хода и часы стоянки. Отсутствующее число дает 0.
// Валидные значения каталога всегда содержат оба числа; разбор свободного
// текста сохранен только для совместимости на границе
func (p PackageType) Duration() PackageDuration {
	numbers := packageNumberRe.FindAllString(string(p), 2)

	var d PackageDuration
	if len(numbers) > 0 {
		d.SailingHours, _ = strconv.ParseFloat(numbers[0], 64)
	}
	if len(numbers) > 1 {
		d.AnchorHours, _ = strconv.ParseFloat(numbers[1], 64)
	}
	return d
}
