package formatting

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	nonDigits   = regexp.MustCompile(`[^0-9]`)
	heightRange = regexp.MustCompile(`(\d+)~?(\d+)?`)
)

// Phone приводит номер телефона к виду 010-1234-5678.
// Номера не из 10 или 11 цифр возвращаются как есть.
func Phone(phone string) string {
	if phone == "" {
		return ""
	}

	digits := nonDigits.ReplaceAllString(phone, "")
	switch len(digits) {
	case 11:
		return fmt.Sprintf("%s-%s-%s", digits[:3], digits[3:7], digits[7:])
	case 10:
		return fmt.Sprintf("%s-%s-%s", digits[:3], digits[3:6], digits[6:])
	}
	return phone
}

// Height форматирует рост: для диапазона "175~180" берётся округлённое среднее
func Height(height string) string {
	if height == "" {
		return ""
	}

	match := heightRange.FindStringSubmatch(height)
	if match == nil {
		return height
	}

	if match[2] != "" {
		lo, _ := strconv.Atoi(match[1])
		hi, _ := strconv.Atoi(match[2])
		avg := int(math.Round(float64(lo+hi) / 2))
		return fmt.Sprintf("%dcm", avg)
	}

	return match[1] + "cm"
}

// Коды позиций из форм сайта
const (
	PositionLeading  = "leading"
	PositionSmall    = "small"
	PositionBaseline = "baseline"
)

var positionShort = map[string]string{
	"리딩 가드 1,2번":    "가드",
	PositionLeading:  "가드",
	"스몰포워드 2,3번":    "포워드",
	PositionSmall:    "포워드",
	"밑선라인 4,5번":     "센터",
	PositionBaseline: "수비수",
}

var positionLong = map[string]string{
	PositionLeading:  "리딩 가드 1,2번",
	PositionSmall:    "스몰포워드 2,3번",
	PositionBaseline: "밑선라인 4,5번",
}

// Position возвращает короткое название позиции для таблиц
func Position(position string) string {
	if short, ok := positionShort[strings.TrimSpace(position)]; ok {
		return short
	}
	return position
}

// PositionText возвращает полное название позиции для сообщений в чат
func PositionText(position string) string {
	if long, ok := positionLong[position]; ok {
		return long
	}
	return position
}

var sizeText = map[string]string{
	"s":   "사이즈 S 95",
	"m":   "사이즈 M 100",
	"l":   "사이즈 L 105",
	"xl":  "사이즈 XL 110",
	"xxl": "사이즈 XXL 115",
}

// SizeText возвращает подпись размера формы
func SizeText(size string) string {
	if text, ok := sizeText[size]; ok {
		return text
	}
	return size
}
