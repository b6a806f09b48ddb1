package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/apperr"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/domain"
)

func validUser() *domain.UserInput {
	return &domain.UserInput{
		Name:     domain.NameInput{First: "Dana", Last: "Cohen"},
		Phone:    "050-123 4567",
		Email:    "dana@x.com",
		Password: "Abcd1!23",
		Address: domain.AddressInput{
			Country: "IL", City: "TLV", Street: "Main", HouseNumber: 5,
		},
	}
}

func validCard() *domain.CardInput {
	return &domain.CardInput{
		Title:       "Levi Plumbing",
		Subtitle:    "Pipes and fittings",
		Description: "Emergency plumbing around the clock",
		Phone:       "03-555 1234",
		Email:       "office@levi.dev",
		Address: domain.AddressInput{
			Country: "Israel", City: "Tel Aviv", Street: "Allenby", HouseNumber: 3,
		},
	}
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var e *apperr.Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, apperr.Validation, e.Kind)
	return e.Field
}

func TestUserValid(t *testing.T) {
	require.NoError(t, User(validUser()))
}

func TestUserFieldViolations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.UserInput)
		field  string
	}{
		{"missing first name", func(u *domain.UserInput) { u.Name.First = "" }, "name.first"},
		{"first name too short", func(u *domain.UserInput) { u.Name.First = "d" }, "name.first"},
		{"first name too long", func(u *domain.UserInput) { u.Name.First = strings.Repeat("a", 257) }, "name.first"},
		{"missing last name", func(u *domain.UserInput) { u.Name.Last = "" }, "name.last"},
		{"bad phone", func(u *domain.UserInput) { u.Phone = "12345" }, "phone"},
		{"bad email", func(u *domain.UserInput) { u.Email = "not-an-email" }, "email"},
		{"email without tld", func(u *domain.UserInput) { u.Email = "a@b" }, "email"},
		{"password too short", func(u *domain.UserInput) { u.Password = "Ab1!" }, "password"},
		{"password no upper", func(u *domain.UserInput) { u.Password = "abcd1!23" }, "password"},
		{"password no digit", func(u *domain.UserInput) { u.Password = "Abcdef!g" }, "password"},
		{"password no symbol", func(u *domain.UserInput) { u.Password = "Abcd1234" }, "password"},
		{"bad image url", func(u *domain.UserInput) { u.Image.URL = "not a url" }, "image.url"},
		{"missing country", func(u *domain.UserInput) { u.Address.Country = "" }, "address.country"},
		{"missing city", func(u *domain.UserInput) { u.Address.City = "" }, "address.city"},
		{"missing street", func(u *domain.UserInput) { u.Address.Street = "" }, "address.street"},
		{"house number zero", func(u *domain.UserInput) { u.Address.HouseNumber = 0 }, "address.houseNumber"},
		{"negative zip", func(u *domain.UserInput) { u.Address.Zip = -1 }, "address.zip"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validUser()
			tc.mutate(in)
			err := User(in)
			require.Error(t, err)
			require.Equal(t, tc.field, fieldOf(t, err))
		})
	}
}

func TestUserOptionalFieldsMayBeAbsent(t *testing.T) {
	in := validUser()
	in.Name.Middle = ""
	in.Image = domain.ImageInput{}
	in.Address.State = ""
	in.Address.Zip = 0
	require.NoError(t, User(in))
}

func TestLoginIsNarrowerSchema(t *testing.T) {
	// 登录只要求 email + password，缺少其余 User 字段不报错
	require.NoError(t, Login(&domain.LoginInput{Email: "dana@x.com", Password: "Abcd1!23"}))

	err := Login(&domain.LoginInput{Email: "", Password: "Abcd1!23"})
	require.Equal(t, "email", fieldOf(t, err))

	err = Login(&domain.LoginInput{Email: "dana@x.com", Password: "weak"})
	require.Equal(t, "password", fieldOf(t, err))
}

func TestCardValid(t *testing.T) {
	require.NoError(t, Card(validCard()))
}

func TestCardFieldViolations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.CardInput)
		field  string
	}{
		{"missing title", func(c *domain.CardInput) { c.Title = "" }, "title"},
		{"missing subtitle", func(c *domain.CardInput) { c.Subtitle = "" }, "subtitle"},
		{"missing description", func(c *domain.CardInput) { c.Description = "" }, "description"},
		{"bad phone", func(c *domain.CardInput) { c.Phone = "abc" }, "phone"},
		{"bad email", func(c *domain.CardInput) { c.Email = "nope" }, "email"},
		{"bad web url", func(c *domain.CardInput) { c.Web = "::::" }, "web"},
		{"house number missing", func(c *domain.CardInput) { c.Address.HouseNumber = 0 }, "address.houseNumber"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCard()
			tc.mutate(in)
			err := Card(in)
			require.Error(t, err)
			require.Equal(t, tc.field, fieldOf(t, err))
		})
	}
}

func TestCardWebOptional(t *testing.T) {
	in := validCard()
	in.Web = ""
	require.NoError(t, Card(in))

	in.Web = "www.example.com"
	require.NoError(t, Card(in))
}

func TestFailFastReportsFirstViolation(t *testing.T) {
	in := validUser()
	in.Name.First = "" // 第一条规则
	in.Email = "bad"   // 后续违规不应盖过第一条
	err := User(in)
	require.Equal(t, "name.first", fieldOf(t, err))
}

func TestBizNumber(t *testing.T) {
	require.NoError(t, BizNumber(1_000_000))
	require.NoError(t, BizNumber(9_999_999))
	for _, n := range []int64{0, -5, 999_999, 10_000_000} {
		err := BizNumber(n)
		require.Error(t, err)
		require.Equal(t, "bizNumber", fieldOf(t, err))
	}
}

func TestPhoneFormats(t *testing.T) {
	valid := []string{"050-1234567", "050-123 4567", "03-555 1234", "0501234567", "04 222 9876"}
	for _, p := range valid {
		in := validUser()
		in.Phone = p
		require.NoError(t, User(in), p)
	}
	invalid := []string{"150-1234567", "05-12-34", "phone", ""}
	for _, p := range invalid {
		in := validUser()
		in.Phone = p
		require.Error(t, User(in), p)
	}
}
