// Package normalize 把已通过校验的载荷补齐默认值并转成存储形态。
// 它不查存储、不失败：非法形状在校验阶段已被拒绝。
package normalize

import (
	"strings"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/domain"
)

// 原项目沿用的默认配图
const (
	DefaultImageURL = "https://cdn.pixabay.com/photo/2016/04/20/08/21/entrepreneur-1340649_960_720.jpg"
	DefaultImageAlt = "business card image"
)

func image(in domain.ImageInput) domain.Image {
	out := domain.Image{
		URL: strings.TrimSpace(in.URL),
		Alt: strings.ToLower(strings.TrimSpace(in.Alt)),
	}
	if out.URL == "" {
		out.URL = DefaultImageURL
	}
	if out.Alt == "" {
		out.Alt = DefaultImageAlt
	}
	return out
}

func address(in domain.AddressInput) domain.Address {
	return domain.Address{
		State:       strings.ToLower(strings.TrimSpace(in.State)),
		Country:     strings.ToLower(strings.TrimSpace(in.Country)),
		City:        strings.ToLower(strings.TrimSpace(in.City)),
		Street:      strings.ToLower(strings.TrimSpace(in.Street)),
		HouseNumber: in.HouseNumber,
		Zip:         in.Zip,
	}
}

// Email 大小写折叠；唯一性按折叠后的值判断
func Email(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// User 是明文密码被触碰的唯一位置：出参只携带摘要
func User(in *domain.UserInput, hash func(string) string) *domain.User {
	return &domain.User{
		Name: domain.Name{
			First:  strings.ToLower(strings.TrimSpace(in.Name.First)),
			Middle: strings.ToLower(strings.TrimSpace(in.Name.Middle)),
			Last:   strings.ToLower(strings.TrimSpace(in.Name.Last)),
		},
		Phone:      strings.TrimSpace(in.Phone),
		Email:      Email(in.Email),
		Password:   hash(in.Password),
		Image:      image(in.Image),
		Address:    address(in.Address),
		IsBusiness: in.IsBusiness,
	}
}

// Card 补默认值并绑定归属；likes 初始为空集合
func Card(in *domain.CardInput, ownerID string) *domain.Card {
	return &domain.Card{
		OwnerID:     ownerID,
		Title:       strings.ToLower(strings.TrimSpace(in.Title)),
		Subtitle:    strings.ToLower(strings.TrimSpace(in.Subtitle)),
		Description: strings.ToLower(strings.TrimSpace(in.Description)),
		Phone:       strings.TrimSpace(in.Phone),
		Email:       Email(in.Email),
		Web:         strings.TrimSpace(in.Web),
		Image:       image(in.Image),
		Address:     address(in.Address),
		Likes:       domain.IDSet{},
	}
}
