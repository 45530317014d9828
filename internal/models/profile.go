package models

// Profile — профиль пользователя. У пользователя не больше одного профиля.
type Profile struct {
	ID           string `json:"id"`
	UserID       string `json:"userId" validate:"required"`
	MemberTypeID string `json:"memberTypeId" validate:"required"`
	Avatar       string `json:"avatar" validate:"required"`
	Sex          string `json:"sex" validate:"required"`
	Birthday     int64  `json:"birthday"`
	Country      string `json:"country" validate:"required"`
	Street       string `json:"street" validate:"required"`
	City         string `json:"city" validate:"required"`
}

func (p Profile) RecordID() string { return p.ID }

func (p Profile) WithID(id string) Profile {
	p.ID = id
	return p
}

func (p Profile) Clone() Profile { return p }

// Field возвращает значение поля по его JSON-имени.
func (p Profile) Field(key string) (any, bool) {
	switch key {
	case "id":
		return p.ID, true
	case "userId":
		return p.UserID, true
	case "memberTypeId":
		return p.MemberTypeID, true
	case "avatar":
		return p.Avatar, true
	case "sex":
		return p.Sex, true
	case "birthday":
		return p.Birthday, true
	case "country":
		return p.Country, true
	case "street":
		return p.Street, true
	case "city":
		return p.City, true
	}
	return nil, false
}

// CreateProfile используется для приёма данных нового профиля из JSON-запроса.
// Birthday — unix-время в миллисекундах; 0 допустим, отсутствие поля — нет.
type CreateProfile struct {
	UserID       string `json:"userId" validate:"required"`
	MemberTypeID string `json:"memberTypeId" validate:"required"`
	Avatar       string `json:"avatar" validate:"required"`
	Sex          string `json:"sex" validate:"required"`
	Birthday     *int64 `json:"birthday" validate:"required"`
	Country      string `json:"country" validate:"required"`
	Street       string `json:"street" validate:"required"`
	City         string `json:"city" validate:"required"`
}

// Profile собирает запись профиля без id.
func (c CreateProfile) Profile() Profile {
	var birthday int64
	if c.Birthday != nil {
		birthday = *c.Birthday
	}
	return Profile{
		UserID:       c.UserID,
		MemberTypeID: c.MemberTypeID,
		Avatar:       c.Avatar,
		Sex:          c.Sex,
		Birthday:     birthday,
		Country:      c.Country,
		Street:       c.Street,
		City:         c.City,
	}
}

// ChangeProfile — частичное обновление профиля. Владельца профиля сменить нельзя.
type ChangeProfile struct {
	MemberTypeID *string `json:"memberTypeId,omitempty" validate:"omitempty,min=1"`
	Avatar       *string `json:"avatar,omitempty"`
	Sex          *string `json:"sex,omitempty"`
	Birthday     *int64  `json:"birthday,omitempty"`
	Country      *string `json:"country,omitempty"`
	Street       *string `json:"street,omitempty"`
	City         *string `json:"city,omitempty"`
}

// Apply переносит заданные поля в p.
func (c ChangeProfile) Apply(p *Profile) {
	if c.MemberTypeID != nil {
		p.MemberTypeID = *c.MemberTypeID
	}
	if c.Avatar != nil {
		p.Avatar = *c.Avatar
	}
	if c.Sex != nil {
		p.Sex = *c.Sex
	}
	if c.Birthday != nil {
		p.Birthday = *c.Birthday
	}
	if c.Country != nil {
		p.Country = *c.Country
	}
	if c.Street != nil {
		p.Street = *c.Street
	}
	if c.City != nil {
		p.City = *c.City
	}
}
