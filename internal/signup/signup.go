package signup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Freeeeeet/thunders/internal/formatting"
	"github.com/Freeeeeet/thunders/internal/model"
)

var (
	ErrMissingFields   = errors.New("required fields are missing")
	ErrConsentRequired = errors.New("rules and data consent are required")
)

const (
	guestPlaceholder      = "위 항목을 선택하면 자동으로 메시지가 구성됩니다."
	membershipPlaceholder = "모든 필드를 입력해주세요."
)

// Guest данные одного гостя
type Guest struct {
	Name     string `json:"name"`
	Age      string `json:"age"`
	Position string `json:"position"`
	Height   string `json:"height"`
}

func (g Guest) complete() bool {
	return g.Name != "" && g.Age != "" && g.Position != "" && g.Height != ""
}

func (g Guest) line() string {
	return fmt.Sprintf("[%s, %s, %s, %s]", g.Name, g.Age, g.Height, formatting.PositionText(g.Position))
}

// GuestForm форма заявки гостя: основной гость и приведённые им друзья
type GuestForm struct {
	Guest
	Contact          string  `json:"contact"`
	AdditionalGuests []Guest `json:"additionalGuests"`
}

// Validate проверяет обязательные поля основного гостя
func (f GuestForm) Validate() error {
	if f.Name == "" || f.Contact == "" || f.Age == "" || f.Position == "" || f.Height == "" {
		return fmt.Errorf("guest form: %w", ErrMissingFields)
	}
	return nil
}

// Guests возвращает основного гостя и всех заполненных друзей
func (f GuestForm) Guests() []Guest {
	guests := []Guest{f.Guest}
	for _, g := range f.AdditionalGuests {
		if g.complete() {
			guests = append(guests, g)
		}
	}
	return guests
}

// Message собирает текст заявки для отправки в открытый чат
func (f GuestForm) Message() string {
	if f.Name == "" || f.Contact == "" || f.Age == "" || f.Position == "" {
		return guestPlaceholder
	}

	var sb strings.Builder
	sb.WriteString("안녕하세요. 김포 삼성썬더스 게스트 신청합니다.\n")
	sb.WriteString(f.Guest.line())
	sb.WriteString("\n연락처: ")
	sb.WriteString(f.Contact)

	for _, g := range f.AdditionalGuests {
		if g.complete() {
			sb.WriteString("\n")
			sb.WriteString(g.line())
		}
	}

	return sb.String()
}

// MembershipForm форма заявки на членство
type MembershipForm struct {
	Name           string `json:"name"`
	Contact        string `json:"contact"`
	Age            string `json:"age"`
	Position       string `json:"position"`
	Height         string `json:"height"`
	JerseySize     string `json:"jerseySize"`
	MembershipType string `json:"membershipType"`
	TargetMonth    string `json:"targetMonth,omitempty"`
	AgreeRules     bool   `json:"agreeRules"`
	DataConsent    bool   `json:"dataConsent"`
}

func (f MembershipForm) filled() bool {
	return f.Name != "" && f.Contact != "" && f.Age != "" && f.Position != "" &&
		f.JerseySize != "" && f.MembershipType != ""
}

// Validate проверяет согласия и обязательные поля
func (f MembershipForm) Validate() error {
	if !f.AgreeRules || !f.DataConsent {
		return fmt.Errorf("membership form: %w", ErrConsentRequired)
	}
	if !f.filled() {
		return fmt.Errorf("membership form: %w", ErrMissingFields)
	}
	return nil
}

// Plan переводит тип членства из формы в тариф
func (f MembershipForm) Plan() string {
	switch f.MembershipType {
	case "dormant":
		return model.PlanRegular4
	case "firefighter":
		return model.PlanGuestOnce
	}
	return model.PlanRegular2
}

// Message собирает текст заявки на членство для открытого чата
func (f MembershipForm) Message() string {
	if !f.filled() {
		return membershipPlaceholder
	}

	return fmt.Sprintf(
		"안녕하세요 이름 %s, 연락처 %s, 나이 %s, 포지션 %s, (상의) %s, %s으로 THE DAN 농구 정규 회원제 신청 문의입니다.",
		f.Name,
		f.Contact,
		f.Age,
		formatting.PositionText(f.Position),
		formatting.SizeText(f.JerseySize),
		formatting.MembershipText(f.MembershipType),
	)
}
