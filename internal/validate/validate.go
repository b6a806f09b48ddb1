// Package validate 按实体持有显式规则表（数据而非行为），
// 由同一个例程逐条执行，遇到第一条违规即返回带字段名的校验错误。
package validate

import (
	"regexp"
	"strings"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/apperr"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/domain"
)

var (
	emailRe = regexp.MustCompile(`^([a-zA-Z0-9_\-\.]+)@([a-zA-Z0-9_\-\.]+)\.([a-zA-Z]{2,5})$`)
	phoneRe = regexp.MustCompile(`^0[0-9]{1,2}-?\s?[0-9]{3}\s?[0-9]{4}$`)
	urlRe   = regexp.MustCompile(`^(https?://)?(www\.)?[a-zA-Z0-9][a-zA-Z0-9\-]*\.[^\s]{2,}$`)
	// RE2 不支持前瞻，密码强度按成分逐项检查
	upperRe = regexp.MustCompile(`[A-Z]`)
	lowerRe = regexp.MustCompile(`[a-z]`)
	digitRe = regexp.MustCompile(`[0-9]`)
)

const passwordSymbols = "!@#$%^&*-"

type check int

const (
	text     check = iota // [2,256] 字符
	longText              // [2,1024] 字符
	freeText              // 只限最大长度
	email
	phone
	password
	urlField
)

type strRule struct {
	field    string
	value    string
	required bool
	check    check
}

func checkString(r strRule) error {
	v := strings.TrimSpace(r.value)
	if v == "" {
		if r.required {
			return apperr.FieldError(r.field, "is required")
		}
		return nil
	}
	switch r.check {
	case text:
		if len(v) < 2 || len(v) > 256 {
			return apperr.FieldError(r.field, "must be between 2 and 256 characters")
		}
	case longText:
		if len(v) < 2 || len(v) > 1024 {
			return apperr.FieldError(r.field, "must be between 2 and 1024 characters")
		}
	case freeText:
		if len(v) > 256 {
			return apperr.FieldError(r.field, "must be at most 256 characters")
		}
	case email:
		if !emailRe.MatchString(v) {
			return apperr.FieldError(r.field, "must be a valid email address")
		}
	case phone:
		if !phoneRe.MatchString(v) {
			return apperr.FieldError(r.field, "must be a valid phone number")
		}
	case password:
		if len(v) < 7 || len(v) > 20 ||
			!upperRe.MatchString(v) || !lowerRe.MatchString(v) ||
			!digitRe.MatchString(v) || !strings.ContainsAny(v, passwordSymbols) {
			return apperr.FieldError(r.field,
				"must be 7-20 characters and contain an uppercase letter, a lowercase letter, a digit and one of !@#$%^&*-")
		}
	case urlField:
		if !urlRe.MatchString(v) {
			return apperr.FieldError(r.field, "must be a valid url")
		}
	}
	return nil
}

func run(rules []strRule) error {
	for _, r := range rules {
		if err := checkString(r); err != nil {
			return err
		}
	}
	return nil
}

func addressRules(a domain.AddressInput) []strRule {
	return []strRule{
		{"address.state", a.State, false, freeText},
		{"address.country", a.Country, true, text},
		{"address.city", a.City, true, text},
		{"address.street", a.Street, true, text},
	}
}

func checkAddressNumbers(a domain.AddressInput) error {
	if a.HouseNumber < 1 {
		return apperr.FieldError("address.houseNumber", "must be at least 1")
	}
	if a.Zip < 0 {
		return apperr.FieldError("address.zip", "cannot be negative")
	}
	return nil
}

// User 覆盖注册与整体编辑载荷
func User(in *domain.UserInput) error {
	rules := []strRule{
		{"name.first", in.Name.First, true, text},
		{"name.middle", in.Name.Middle, false, text},
		{"name.last", in.Name.Last, true, text},
		{"phone", in.Phone, true, phone},
		{"email", in.Email, true, email},
		{"password", in.Password, true, password},
		{"image.url", in.Image.URL, false, urlField},
		{"image.alt", in.Image.Alt, false, text},
	}
	rules = append(rules, addressRules(in.Address)...)
	if err := run(rules); err != nil {
		return err
	}
	return checkAddressNumbers(in.Address)
}

// Login 是更窄的模式：只要求 email + password
func Login(in *domain.LoginInput) error {
	return run([]strRule{
		{"email", in.Email, true, email},
		{"password", in.Password, true, password},
	})
}

// Card 覆盖名片创建与整体编辑载荷
func Card(in *domain.CardInput) error {
	rules := []strRule{
		{"title", in.Title, true, text},
		{"subtitle", in.Subtitle, true, text},
		{"description", in.Description, true, longText},
		{"phone", in.Phone, true, phone},
		{"email", in.Email, true, email},
		{"web", in.Web, false, urlField},
		{"image.url", in.Image.URL, false, urlField},
		{"image.alt", in.Image.Alt, false, text},
	}
	rules = append(rules, addressRules(in.Address)...)
	if err := run(rules); err != nil {
		return err
	}
	return checkAddressNumbers(in.Address)
}

// BizNumber 必须是 7 位数
func BizNumber(n int64) error {
	if n < 1_000_000 || n > 9_999_999 {
		return apperr.FieldError("bizNumber", "must be a 7 digit number")
	}
	return nil
}
