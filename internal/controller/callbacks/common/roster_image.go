package common

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"strings"
	"sync"

	"github.com/Freeeeeet/thunders/internal/formatting"
	"github.com/Freeeeeet/thunders/internal/service"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Константы размеров и отступов
const (
	cardWidth     = 900
	cardPaddingX  = 48
	headerHeight  = 150
	rowHeight     = 56
	footerHeight  = 60
	minCardRows   = 3
	rowRadius     = 10.0
	badgeDiameter = 36.0
)

// Константы шрифтов
const (
	titleFontSize  = 34.0
	windowFontSize = 22.0
	rowFontSize    = 24.0
	footerFontSize = 18.0
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	headerColor    = color.RGBA{24, 38, 74, 255}
	headerText     = color.RGBA{255, 255, 255, 255}
	accentColor    = color.RGBA{255, 196, 0, 255}
	evenRowColor   = color.RGBA{255, 255, 255, 255}
	oddRowColor    = color.RGBA{234, 237, 242, 255}
	rowTextColor   = color.RGBA{30, 34, 40, 255}
	badgeTextColor = color.RGBA{24, 38, 74, 255}
	mutedColor     = color.RGBA{110, 115, 120, 220}
)

// fontCache разобранные шрифты по пути файла
var (
	fontMu    sync.Mutex
	fontCache = make(map[string]*opentype.Font)
)

// loadFont загружает TTF/OTF из fontPath или использует basicfont как fallback.
// Для корейских имён нужен шрифт с хангылем (например NanumGothic).
func loadFont(dc *gg.Context, fontPath string, size float64) {
	if fontPath == "" {
		dc.SetFontFace(basicfont.Face7x13)
		return
	}

	parsed, err := parsedFont(fontPath)
	if err != nil {
		dc.SetFontFace(basicfont.Face7x13)
		return
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		dc.SetFontFace(basicfont.Face7x13)
		return
	}
	dc.SetFontFace(face)
}

func parsedFont(fontPath string) (*opentype.Font, error) {
	fontMu.Lock()
	defer fontMu.Unlock()

	if f, ok := fontCache[fontPath]; ok {
		return f, nil
	}

	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	fontCache[fontPath] = f
	return f, nil
}

// GenerateRosterImage рисует карточку списка гостей недели в PNG
func GenerateRosterImage(roster *service.Roster, fontPath string) ([]byte, error) {
	rows := max(len(roster.Guests), minCardRows)
	height := headerHeight + rows*rowHeight + footerHeight

	dc := gg.NewContext(cardWidth, height)
	dc.SetColor(bgColor)
	dc.Clear()

	drawCardHeader(dc, roster, fontPath)
	drawGuestRows(dc, roster, fontPath)
	drawCardFooter(dc, roster, height, fontPath)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode roster image: %w", err)
	}
	return buf.Bytes(), nil
}

// drawCardHeader рисует плашку с подписью недели и окном набора
func drawCardHeader(dc *gg.Context, roster *service.Roster, fontPath string) {
	dc.SetColor(headerColor)
	dc.DrawRectangle(0, 0, cardWidth, headerHeight)
	dc.Fill()

	dc.SetColor(accentColor)
	dc.DrawRectangle(0, headerHeight-6, cardWidth, 6)
	dc.Fill()

	loadFont(dc, fontPath, titleFontSize)
	dc.SetColor(headerText)
	dc.DrawStringAnchored(roster.Week.Label+" 게스트", cardPaddingX, headerHeight*0.4, 0, 0.5)

	loadFont(dc, fontPath, windowFontSize)
	dc.SetColor(accentColor)
	dc.DrawStringAnchored(formatting.FormatWindow(roster.Week.Start, roster.Week.End), cardPaddingX, headerHeight*0.72, 0, 0.5)
}

// drawGuestRows рисует строки гостей с номером в круге
func drawGuestRows(dc *gg.Context, roster *service.Roster, fontPath string) {
	if len(roster.Guests) == 0 {
		loadFont(dc, fontPath, rowFontSize)
		dc.SetColor(mutedColor)
		dc.DrawStringAnchored("신청자가 없습니다", cardWidth/2, headerHeight+float64(minCardRows*rowHeight)/2, 0.5, 0.5)
		return
	}

	lines := formatting.RosterLines(roster.Guests)
	for i := range roster.Guests {
		y := float64(headerHeight + i*rowHeight)

		if i%2 == 0 {
			dc.SetColor(evenRowColor)
		} else {
			dc.SetColor(oddRowColor)
		}
		dc.DrawRoundedRectangle(cardPaddingX/2, y+4, cardWidth-cardPaddingX, rowHeight-8, rowRadius)
		dc.Fill()

		cx := float64(cardPaddingX) + badgeDiameter/2
		cy := y + rowHeight/2
		dc.SetColor(accentColor)
		dc.DrawCircle(cx, cy, badgeDiameter/2)
		dc.Fill()

		loadFont(dc, fontPath, footerFontSize)
		dc.SetColor(badgeTextColor)
		dc.DrawStringAnchored(fmt.Sprintf("%d", i+1), cx, cy, 0.5, 0.5)

		// номер уже в круге
		text := strings.TrimPrefix(lines[i], fmt.Sprintf("%d. ", i+1))
		loadFont(dc, fontPath, rowFontSize)
		dc.SetColor(rowTextColor)
		dc.DrawStringAnchored(text, cx+badgeDiameter, cy, 0, 0.5)
	}
}

// drawCardFooter рисует итог по количеству гостей
func drawCardFooter(dc *gg.Context, roster *service.Roster, height int, fontPath string) {
	loadFont(dc, fontPath, footerFontSize)
	dc.SetColor(mutedColor)
	dc.DrawStringAnchored(
		fmt.Sprintf("총 %d명", len(roster.Guests)),
		cardWidth-cardPaddingX,
		float64(height)-float64(footerHeight)/2,
		1, 0.5,
	)
}
