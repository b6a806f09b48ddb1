package domain

// 入站载荷：校验、规范化之后才会变成实体

type NameInput struct {
	First  string `json:"first"`
	Middle string `json:"middle"`
	Last   string `json:"last"`
}

type ImageInput struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type AddressInput struct {
	State       string `json:"state"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber int    `json:"houseNumber"`
	Zip         int    `json:"zip"`
}

type UserInput struct {
	Name       NameInput    `json:"name"`
	Phone      string       `json:"phone"`
	Email      string       `json:"email"`
	Password   string       `json:"password"`
	Image      ImageInput   `json:"image"`
	Address    AddressInput `json:"address"`
	IsBusiness bool         `json:"isBusiness"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CardInput struct {
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	Description string       `json:"description"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	Web         string       `json:"web"`
	Image       ImageInput   `json:"image"`
	Address     AddressInput `json:"address"`
}
