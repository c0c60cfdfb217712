package main

import (
	"flag"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/Freeeeeet/thunders/internal/config"
	"github.com/Freeeeeet/thunders/internal/controller/callbacks/common"
	"github.com/Freeeeeet/thunders/internal/gameweek"
	"github.com/Freeeeeet/thunders/internal/model"
	"github.com/Freeeeeet/thunders/internal/service"
	"github.com/google/uuid"
)

// Рисует карточку списка гостей на тестовых данных без БД и Telegram
func main() {
	out := flag.String("out", "roster.png", "output PNG file")
	fontPath := flag.String("font", os.Getenv("FONT_PATH"), "TTF/OTF font with Hangul glyphs")
	offset := flag.Int("offset", 0, "week offset from the current one")
	flag.Parse()

	loc, err := time.LoadLocation(config.DefaultTimeZone)
	if err != nil {
		fmt.Printf("Ошибка загрузки часового пояса: %v\n", err)
		os.Exit(1)
	}
	weeks, err := gameweek.New(loc)
	if err != nil {
		fmt.Printf("Ошибка калькулятора недель: %v\n", err)
		os.Exit(1)
	}

	week := weeks.WeekAt(time.Now(), *offset)

	// Тестовые заявки внутри окна недели
	guests := []*model.GuestApplication{
		{Name: "김철수", Age: "30", Height: "178", Position: "leading"},
		{Name: "이영희", Age: "27", Height: "165", Position: "small"},
		{Name: "박민수", Age: "34", Height: "185", Position: "baseline"},
		{Name: "최지훈(정규)", Age: "29", Height: "180~185", Position: "leading"},
	}
	for i, g := range guests {
		g.ID = uuid.New()
		g.AppliedAt = week.Start.Add(time.Duration(i+1) * 20 * time.Hour)
	}

	roster := &service.Roster{Week: week, Offset: *offset, Guests: guests}

	imageData, err := common.GenerateRosterImage(roster, *fontPath)
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, imageData, 0644); err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение успешно сохранено в %s\n", *out)
	fmt.Printf("📅 %s: %s - %s\n", week.Label, week.Start.Format("02.01.2006"), week.End.Format("02.01.2006 15:04"))
	fmt.Printf("📊 Гостей: %d\n", len(guests))
}
