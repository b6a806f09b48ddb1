package domain

import (
	"context"
	"time"
)

type Name struct {
	First  string `gorm:"size:256;not null" json:"first"`
	Middle string `gorm:"size:256" json:"middle"`
	Last   string `gorm:"size:256;not null" json:"last"`
}

type Image struct {
	URL string `gorm:"size:1024" json:"url"`
	Alt string `gorm:"size:256" json:"alt"`
}

type Address struct {
	State       string `gorm:"size:256" json:"state"`
	Country     string `gorm:"size:256;not null" json:"country"`
	City        string `gorm:"size:256;not null" json:"city"`
	Street      string `gorm:"size:256;not null" json:"street"`
	HouseNumber int    `gorm:"not null" json:"houseNumber"`
	Zip         int    `json:"zip"`
}

type User struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Name       Name      `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Phone      string    `gorm:"size:32;not null" json:"phone"`
	Email      string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password   string    `gorm:"size:100;not null" json:"-"` // 只存 bcrypt 摘要
	Image      Image     `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	Address    Address   `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	IsAdmin    bool      `gorm:"not null;default:false" json:"isAdmin"`
	IsBusiness bool      `gorm:"not null;default:false" json:"isBusiness"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (User) TableName() string { return "users" }

// 查不到时返回 (nil, nil)，由调用方决定是否 NotFound
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
}
