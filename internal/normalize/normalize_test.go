package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/domain"
)

func fakeHash(pw string) string { return "digest(" + pw + ")" }

func userInput() *domain.UserInput {
	return &domain.UserInput{
		Name:     domain.NameInput{First: " Dana ", Last: "Cohen"},
		Phone:    "050-123 4567",
		Email:    " Dana@X.Com ",
		Password: "Abcd1!23",
		Address:  domain.AddressInput{Country: "IL", City: "TLV", Street: "Main", HouseNumber: 5},
	}
}

func TestUserFillsDefaultsAndFoldsEmail(t *testing.T) {
	u := User(userInput(), fakeHash)

	require.Equal(t, "dana", u.Name.First)
	require.Equal(t, "", u.Name.Middle)
	require.Equal(t, "dana@x.com", u.Email)
	require.Equal(t, DefaultImageURL, u.Image.URL)
	require.Equal(t, DefaultImageAlt, u.Image.Alt)
	require.Equal(t, "", u.Address.State)
	require.False(t, u.IsAdmin)
}

func TestUserNeverKeepsPlaintext(t *testing.T) {
	in := userInput()
	u := User(in, fakeHash)
	require.Equal(t, "digest(Abcd1!23)", u.Password)
	require.NotContains(t, []string{u.Name.First, u.Email, u.Phone}, in.Password)
}

func TestUserExplicitImageKept(t *testing.T) {
	in := userInput()
	in.Image = domain.ImageInput{URL: "https://x.dev/me.png", Alt: "Portrait"}
	u := User(in, fakeHash)
	require.Equal(t, "https://x.dev/me.png", u.Image.URL)
	require.Equal(t, "portrait", u.Image.Alt)
}

// 对已规范化输入再跑一遍，非敏感字段必须保持不变
func TestUserIdempotentOnNormalizedInput(t *testing.T) {
	identity := func(s string) string { return s }
	first := User(userInput(), identity)

	again := User(&domain.UserInput{
		Name:       domain.NameInput{First: first.Name.First, Middle: first.Name.Middle, Last: first.Name.Last},
		Phone:      first.Phone,
		Email:      first.Email,
		Password:   first.Password,
		Image:      domain.ImageInput{URL: first.Image.URL, Alt: first.Image.Alt},
		Address:    domain.AddressInput{State: first.Address.State, Country: first.Address.Country, City: first.Address.City, Street: first.Address.Street, HouseNumber: first.Address.HouseNumber, Zip: first.Address.Zip},
		IsBusiness: first.IsBusiness,
	}, identity)

	require.Equal(t, first, again)
}

func TestCardDefaultsAndOwnership(t *testing.T) {
	in := &domain.CardInput{
		Title:       "Levi Plumbing",
		Subtitle:    "Pipes",
		Description: "Emergency plumbing",
		Phone:       "03-555 1234",
		Email:       "Office@Levi.Dev",
		Address:     domain.AddressInput{Country: "IL", City: "TLV", Street: "Allenby", HouseNumber: 3},
	}
	c := Card(in, "owner-1")

	require.Equal(t, "owner-1", c.OwnerID)
	require.Nil(t, c.BizNumber)
	require.NotNil(t, c.Likes)
	require.Empty(t, c.Likes)
	require.Equal(t, "office@levi.dev", c.Email)
	require.Equal(t, DefaultImageURL, c.Image.URL)
	require.Equal(t, DefaultImageAlt, c.Image.Alt)
}
